package views

import (
	"fmt"
	"strings"

	"storefront/internal/pagination"
)

// RenderPagination renders "Назад 1 … 4 5 6 … 10 Вперед". Nothing is shown
// for a single page.
func (r *Renderer) RenderPagination(current, total int) string {
	labels := pagination.Labels(current, total)
	if len(labels) == 0 {
		return ""
	}

	parts := make([]string, 0, len(labels)+2)
	if pagination.CanPrev(current) {
		parts = append(parts, r.styles.PageButton.Render("← Назад"))
	} else {
		parts = append(parts, r.styles.PageDisabled.Render("← Назад"))
	}

	for _, l := range labels {
		switch {
		case l.Ellipsis:
			parts = append(parts, r.styles.Dim.Render(l.String()))
		case l.Current:
			parts = append(parts, r.styles.PageCurrent.Render(l.String()))
		default:
			parts = append(parts, r.styles.PageButton.Render(l.String()))
		}
	}

	if pagination.CanNext(current, total) {
		parts = append(parts, r.styles.PageButton.Render("Вперед →"))
	} else {
		parts = append(parts, r.styles.PageDisabled.Render("Вперед →"))
	}
	return strings.Join(parts, " ")
}

// RenderResultCount renders the "Найдено товаров" line of the results view
func (r *Renderer) RenderResultCount(count int) string {
	return r.styles.Title.Render(fmt.Sprintf("Найдено товаров: %d", count))
}
