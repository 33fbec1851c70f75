package filter

import (
	"sort"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// Group is a section of the filter panel
type Group int

const (
	GroupCategory Group = iota
	GroupMark
	GroupColor
	GroupPrice
)

// Title returns the section heading shown in the panel
func (g Group) Title() string {
	switch g {
	case GroupCategory:
		return "Категории"
	case GroupMark:
		return "Метки"
	case GroupColor:
		return "Цвета"
	default:
		return "Цена"
	}
}

// Option is one checkbox of the filter panel
type Option struct {
	Group Group
	ID    int // category, mark or color id; index into PriceBands for prices
	Label string
}

// PriceBand is a preset price range. A nil bound is open.
type PriceBand struct {
	Label string
	Min   *decimal.Decimal
	Max   *decimal.Decimal
}

// PriceBands are the price presets offered by the panel
var PriceBands = []PriceBand{
	{Label: "до 1 000 ₽", Max: decimalPtr(1000)},
	{Label: "1 000 – 5 000 ₽", Min: decimalPtr(1000), Max: decimalPtr(5000)},
	{Label: "от 5 000 ₽", Min: decimalPtr(5000)},
}

// Options lists the checkboxes for a page: its category and mark facets,
// the colors of its products and the price presets
func Options(page *domain.ResultPage) []Option {
	var out []Option
	if page == nil {
		return priceOptions(out)
	}

	categories := append([]domain.Category(nil), page.Categories...)
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].SortOrder < categories[j].SortOrder })
	for _, c := range categories {
		out = append(out, Option{Group: GroupCategory, ID: c.ID, Label: c.Name})
	}
	for _, m := range page.Marks {
		out = append(out, Option{Group: GroupMark, ID: m.ID, Label: m.Name})
	}
	for _, c := range UniqueColors(page.Items) {
		out = append(out, Option{Group: GroupColor, ID: c.ID, Label: c.Name})
	}
	return priceOptions(out)
}

func priceOptions(out []Option) []Option {
	for i, b := range PriceBands {
		out = append(out, Option{Group: GroupPrice, ID: i, Label: b.Label})
	}
	return out
}

// Checked reports whether the option is selected
func (s *State) Checked(o Option) bool {
	switch o.Group {
	case GroupCategory:
		return s.Categories[o.ID]
	case GroupMark:
		return s.Marks[o.ID]
	case GroupColor:
		return s.Colors[o.ID]
	case GroupPrice:
		if o.ID < 0 || o.ID >= len(PriceBands) {
			return false
		}
		b := PriceBands[o.ID]
		return sameBound(s.PriceMin, b.Min) && sameBound(s.PriceMax, b.Max)
	}
	return false
}

// Toggle flips the option. Price presets are exclusive: selecting one
// replaces the current range, selecting it again clears it.
func (s *State) Toggle(o Option) {
	switch o.Group {
	case GroupCategory:
		s.ToggleCategory(o.ID)
	case GroupMark:
		s.ToggleMark(o.ID)
	case GroupColor:
		s.ToggleColor(o.ID)
	case GroupPrice:
		if o.ID < 0 || o.ID >= len(PriceBands) {
			return
		}
		if s.Checked(o) {
			s.SetPriceMin(nil)
			s.SetPriceMax(nil)
			return
		}
		b := PriceBands[o.ID]
		s.SetPriceMin(b.Min)
		s.SetPriceMax(b.Max)
	}
}

func sameBound(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
