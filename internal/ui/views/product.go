package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/internal/domain"
)

const (
	cardWidth  = 34
	cardHeight = 6 // including border
	cardGap    = 1
)

// ProductRenderer handles rendering of product cards
type ProductRenderer struct {
	styles       *Styles
	showOldPrice bool
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles, showOldPrice bool) *ProductRenderer {
	return &ProductRenderer{
		styles:       styles,
		showOldPrice: showOldPrice,
	}
}

// GridColumns returns how many cards fit side by side in the given width
func GridColumns(width int) int {
	if width <= 0 {
		width = 80
	}
	cols := (width - 4) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// RenderCard renders one product card
func (r *ProductRenderer) RenderCard(p domain.Product, isSelected bool, searchQuery string) string {
	inner := cardWidth - 4

	nameStyle := r.styles.ProductName
	name := truncate(p.Name, inner)
	if searchQuery != "" {
		name = highlightMatch(name, searchQuery, nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
	} else {
		name = nameStyle.Render(name)
	}

	lines := []string{name, r.priceLine(p), r.marksLine(p), r.styles.Dim.Render(r.variantLine(p, inner))}

	border := lipgloss.NormalBorder()
	borderColor := lipgloss.Color("238")
	if isSelected {
		border = lipgloss.ThickBorder()
		borderColor = lipgloss.Color("99")
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// priceLine shows the display price, the crossed-out old price and the discount
func (r *ProductRenderer) priceLine(p domain.Product) string {
	v, ok := p.DisplayVariant()
	if !ok {
		return r.styles.Dim.Render("нет в наличии")
	}

	parts := []string{r.styles.Price.Render(FormatPrice(v.Price))}
	if r.showOldPrice && v.OldPrice != nil && v.OldPrice.GreaterThan(v.Price) {
		parts = append(parts, r.styles.OldPrice.Render(FormatPrice(*v.OldPrice)))
	}
	if pct, ok := p.DiscountPercent(); ok {
		parts = append(parts, r.styles.Discount.Render(fmt.Sprintf("-%d%%", pct)))
	}
	return strings.Join(parts, " ")
}

func (r *ProductRenderer) marksLine(p domain.Product) string {
	if len(p.Marks) == 0 {
		return ""
	}
	marks := make([]string, 0, len(p.Marks))
	for _, m := range p.Marks {
		style := r.styles.Mark.Foreground(lipgloss.Color(MarkColor(m.Name)))
		marks = append(marks, style.Render(MarkLabel(m.Name)))
	}
	return strings.Join(marks, " ")
}

// MarkLabel returns the text shown for a mark; "hit" reads as ХИТ
func MarkLabel(name string) string {
	if strings.EqualFold(name, "hit") {
		return "ХИТ"
	}
	return name
}

// variantLine lists variant names when there is more than one
func (r *ProductRenderer) variantLine(p domain.Product, width int) string {
	if len(p.PriceVariants) < 2 {
		return ""
	}
	names := make([]string, 0, len(p.PriceVariants))
	for _, v := range p.PriceVariants {
		if v.Name != "" {
			names = append(names, v.Name)
		}
	}
	return truncate(strings.Join(names, " · "), width)
}

// RenderGrid lays out cards in rows and keeps the selected card in view.
// maxRows limits the number of card rows drawn.
func (r *ProductRenderer) RenderGrid(products []domain.Product, selected, width, maxRows int, searchQuery string) string {
	cols := GridColumns(width)
	if maxRows < 1 {
		maxRows = 1
	}

	totalRows := (len(products) + cols - 1) / cols
	selectedRow := 0
	if selected >= 0 {
		selectedRow = selected / cols
	}
	firstRow := 0
	if selectedRow >= maxRows {
		firstRow = selectedRow - maxRows + 1
	}

	var rows []string
	if firstRow > 0 {
		rows = append(rows, r.styles.Dim.Render(fmt.Sprintf("↑ ещё %d выше", firstRow*cols)))
	}
	for row := firstRow; row < totalRows && row < firstRow+maxRows; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(products) {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, r.RenderCard(products[i], i == selected, searchQuery))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if last := firstRow + maxRows; last < totalRows {
		below := len(products) - last*cols
		rows = append(rows, r.styles.Dim.Render(fmt.Sprintf("↓ ещё %d ниже", below)))
	}
	return strings.Join(rows, "\n")
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	runes := []rune(text)
	lowerRunes := []rune(strings.ToLower(text))
	q := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(q) == 0 || len(lowerRunes) != len(runes) {
		return normalStyle.Render(text)
	}

	index := strings.Index(string(lowerRunes), string(q))
	if index == -1 {
		return normalStyle.Render(text)
	}
	start := len([]rune(string(lowerRunes)[:index]))
	end := start + len(q)

	var result []string
	if start > 0 {
		result = append(result, normalStyle.Render(string(runes[:start])))
	}
	result = append(result, highlightStyle.Render(string(runes[start:end])))
	if end < len(runes) {
		result = append(result, normalStyle.Render(string(runes[end:])))
	}
	return strings.Join(result, "")
}

// truncate cuts s to n cells, ending with an ellipsis when shortened
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
