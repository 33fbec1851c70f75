package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	NavButton     lipgloss.Style
	SearchBox     lipgloss.Style
	SearchActive  lipgloss.Style
	Dropdown      lipgloss.Style
	DropdownRow   lipgloss.Style
	DropdownSel   lipgloss.Style
	GoButton      lipgloss.Style
	Banner        lipgloss.Style
	Dot           lipgloss.Style
	DotActive     lipgloss.Style
	Category      lipgloss.Style
	CategorySel   lipgloss.Style
	ProductName   lipgloss.Style
	Price         lipgloss.Style
	OldPrice      lipgloss.Style
	Discount      lipgloss.Style
	Mark          lipgloss.Style
	SelectionBg   lipgloss.Style
	PageButton    lipgloss.Style
	PageCurrent   lipgloss.Style
	PageDisabled  lipgloss.Style
	FilterBox     lipgloss.Style
	FilterSection lipgloss.Style
	Checked       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Footer        lipgloss.Style
	BottomNav     lipgloss.Style
	InfoBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(0, 2),
		NavButton: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		DropdownRow: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DropdownSel: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")),
		GoButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Foreground(lipgloss.Color("213")).
			Bold(true).
			Align(lipgloss.Center),
		Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		CategorySel: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 1),
		ProductName: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		OldPrice:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Discount:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Mark:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		PageButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		PageCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99")).Padding(0, 1),
		PageDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 1),
		FilterBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FilterSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		BottomNav: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("238")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}

// MarkColor returns the color used for a product mark label
func MarkColor(name string) string {
	switch strings.ToLower(name) {
	case "sale":
		return "203" // red
	case "new":
		return "78" // green
	case "hit":
		return "214" // yellow
	default:
		return "252"
	}
}
