package views

import (
	"strings"
)

// FilterRow is one line of the filter panel: a section title or a checkbox
type FilterRow struct {
	Header  bool
	Label   string
	Checked bool
}

// RenderFilters renders the filter panel. cursor indexes rows and may
// point at a header, which is then shown without highlight.
func (r *Renderer) RenderFilters(rows []FilterRow, cursor int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Фильтры"))

	if len(rows) == 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Нет доступных фильтров"))
	}

	for i, row := range rows {
		b.WriteString("\n")
		if row.Header {
			b.WriteString(r.styles.FilterSection.Render(row.Label))
			continue
		}

		box := "[ ]"
		if row.Checked {
			box = r.styles.Checked.Render("[x]")
		}
		line := box + " " + row.Label
		if i == cursor {
			line = r.styles.SelectionBg.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
	}

	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("space: отметить • enter: Применить фильтры • r: Сбросить фильтры • esc: закрыть"))
	return b.String()
}
