package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/internal/domain"
)

// RenderDetails renders the full product description shown in the pager
func (r *Renderer) RenderDetails(p domain.Product) string {
	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Артикул: %d", p.ID)))
	b.WriteString("\n\n")

	b.WriteString(r.productRender.priceLine(p))
	b.WriteString("\n")
	if marks := r.productRender.marksLine(p); marks != "" {
		b.WriteString(marks)
		b.WriteString("\n")
	}

	if len(p.PriceVariants) > 1 {
		b.WriteString("\n")
		b.WriteString(section.Render("Варианты"))
		b.WriteString("\n")
		for _, v := range p.PriceVariants {
			marker := "  "
			if v.IsChosen {
				marker = "▸ "
			}
			line := marker + v.Name + "  " + FormatPrice(v.Price)
			if v.OldPrice != nil && v.OldPrice.GreaterThan(v.Price) {
				line += "  " + r.styles.OldPrice.Render(FormatPrice(*v.OldPrice))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if len(p.Categories) > 0 {
		names := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			names[i] = c.Name
		}
		b.WriteString("\n")
		b.WriteString(section.Render("Категории"))
		b.WriteString("\n  ")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if len(p.Colors) > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render("Цвета"))
		b.WriteString("\n")
		for _, c := range p.Colors {
			swatch := "■"
			if c.Code != "" {
				swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Code)).Render("■")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", swatch, c.Name))
		}
	}

	if len(p.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render("Теги"))
		b.WriteString("\n  ")
		b.WriteString(strings.Join(p.Tags, " · "))
		b.WriteString("\n")
	}

	if img, ok := p.MainImage(); ok {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Фото: " + img.URL))
		b.WriteString("\n")
	}

	return b.String()
}
