package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyMap describes the browse keys for the help line and the help pager.
// Dispatch itself lives in the input modes.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Home     key.Binding
	End      key.Binding
	Digits   key.Binding
	Details  key.Binding
	Search   key.Binding
	Filters  key.Binding
	Close    key.Binding
	Refresh  key.Binding
	Banner   key.Binding
	Category key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h", "p", "pgup"), key.WithHelp("←/h", "назад")),
		NextPage: key.NewBinding(key.WithKeys("right", "l", "n", "pgdown"), key.WithHelp("→/l", "вперед")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "первая страница")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "последняя страница")),
		Digits:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "страница N")),
		Details:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "о товаре")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "поиск")),
		Filters:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "фильтры")),
		Close:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "закрыть результаты")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "обновить")),
		Banner:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "баннер")),
		Category: key.NewBinding(key.WithKeys("<", ">", ",", "."), key.WithHelp("</>", "категории")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "справка")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.PrevPage, k.NextPage, k.Filters, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Details},
		{k.PrevPage, k.NextPage, k.Home, k.End, k.Digits},
		{k.Search, k.Close, k.Filters, k.Refresh},
		{k.Banner, k.Category, k.Help, k.Quit},
	}
}

var helpSections = []string{"Товары", "Страницы", "Поиск и фильтры", "Прочее"}

// searchHelp lists the keys of the search bar, which has no key.Binding of
// its own since every unhandled key types into the input
var searchHelp = [][2]string{
	{"↓/ctrl+n", "следующая подсказка"},
	{"↑/ctrl+p", "предыдущая подсказка"},
	{"enter", "перейти к результатам"},
	{"esc", "назад"},
}

var filterHelp = [][2]string{
	{"space/x", "отметить"},
	{"enter", "применить фильтры"},
	{"r", "сбросить фильтры"},
	{"esc/f", "закрыть панель"},
}

// HelpContent renders the full key reference for the pager
func HelpContent(k keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Справка"))
	help.WriteString("\n")

	for i, group := range k.FullHelp() {
		help.WriteString(sectionStyle.Render(helpSections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	for _, extra := range []struct {
		title string
		rows  [][2]string
	}{{"Строка поиска", searchHelp}, {"Панель фильтров", filterHelp}} {
		help.WriteString(sectionStyle.Render(extra.title))
		help.WriteString("\n")
		for _, row := range extra.rows {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(row[0]), descStyle.Render(row[1])))
		}
		help.WriteString("\n")
	}

	return help.String()
}
