package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/internal/domain"
)

// MaxDropdownRows is how many suggestions the dropdown lists
const MaxDropdownRows = 8

// SearchRenderer renders the search bar and its dropdown
type SearchRenderer struct {
	styles *Styles
}

// NewSearchRenderer creates a new search renderer
func NewSearchRenderer(styles *Styles) *SearchRenderer {
	return &SearchRenderer{styles: styles}
}

// RenderBar renders the input box. The "перейти" button appears once there
// are suggestions to go to.
func (s *SearchRenderer) RenderBar(input string, active, showGo bool, width int) string {
	box := s.styles.SearchBox
	if active {
		box = s.styles.SearchActive
	}

	boxWidth := width - 6
	if showGo {
		boxWidth -= lipgloss.Width(s.styles.GoButton.Render("перейти")) + 1
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	bar := box.Width(boxWidth).Render(input)
	if !showGo {
		return bar
	}
	button := s.styles.GoButton.Render("перейти")
	return lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", button)
}

// RenderDropdown lists the live suggestions. cursor is the highlighted row,
// -1 for none.
func (s *SearchRenderer) RenderDropdown(suggestions []domain.Product, text string, cursor int, loading bool, width int) string {
	if len(suggestions) == 0 {
		if loading {
			return s.styles.Dropdown.Render(s.styles.Dim.Render("Поиск..."))
		}
		return ""
	}

	rows := make([]string, 0, MaxDropdownRows+1)
	for i, p := range suggestions {
		if i >= MaxDropdownRows {
			rows = append(rows, s.styles.Dim.Render("…"))
			break
		}
		rowStyle := s.styles.DropdownRow
		if i == cursor {
			rowStyle = s.styles.DropdownSel
		}
		name := highlightMatch(truncate(p.Name, 40), text, rowStyle.Foreground(lipgloss.Color("226")), rowStyle)
		price := s.styles.Price.Render(FormatPrice(p.DisplayPrice()))
		rows = append(rows, name+"  "+price)
	}

	w := width - 6
	if w < 20 {
		w = 20
	}
	return s.styles.Dropdown.Width(w).Render(strings.Join(rows, "\n"))
}

// RenderPopular shows the "Часто ищут" list for an empty search bar
func (s *SearchRenderer) RenderPopular(popular []string, cursor int) string {
	if len(popular) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.styles.FilterSection.Render("Часто ищут"))
	for i, p := range popular {
		style := s.styles.DropdownRow
		if i == cursor {
			style = s.styles.DropdownSel
		}
		b.WriteString("\n  ")
		b.WriteString(style.Render("🔍 " + p))
	}
	return b.String()
}
