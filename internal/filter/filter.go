// Package filter keeps the state of the catalog filter panel and applies it
// to a page of products.
package filter

import (
	"sort"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// State holds the selected filter values. Use New to create one.
type State struct {
	Categories map[int]bool
	Marks      map[int]bool
	Colors     map[int]bool
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
}

// New returns an empty filter state
func New() *State {
	return &State{
		Categories: make(map[int]bool),
		Marks:      make(map[int]bool),
		Colors:     make(map[int]bool),
	}
}

// SetCategory checks or unchecks a category
func (s *State) SetCategory(id int, checked bool) {
	setChecked(s.Categories, id, checked)
}

// SetMark checks or unchecks a mark
func (s *State) SetMark(id int, checked bool) {
	setChecked(s.Marks, id, checked)
}

// ToggleCategory flips a category checkbox
func (s *State) ToggleCategory(id int) {
	setChecked(s.Categories, id, !s.Categories[id])
}

// ToggleMark flips a mark checkbox
func (s *State) ToggleMark(id int) {
	setChecked(s.Marks, id, !s.Marks[id])
}

// ToggleColor flips a color swatch
func (s *State) ToggleColor(id int) {
	setChecked(s.Colors, id, !s.Colors[id])
}

// SetPriceMin sets the lower price bound; nil clears it
func (s *State) SetPriceMin(v *decimal.Decimal) {
	s.PriceMin = v
}

// SetPriceMax sets the upper price bound; nil clears it
func (s *State) SetPriceMax(v *decimal.Decimal) {
	s.PriceMax = v
}

// Reset clears every selection
func (s *State) Reset() {
	*s = *New()
}

// Active reports whether any filter is selected
func (s *State) Active() bool {
	return len(s.Categories) > 0 || len(s.Marks) > 0 || len(s.Colors) > 0 ||
		s.PriceMin != nil || s.PriceMax != nil
}

// Clone returns an independent copy, used to apply a snapshot of the panel
func (s *State) Clone() *State {
	out := New()
	for k := range s.Categories {
		out.Categories[k] = true
	}
	for k := range s.Marks {
		out.Marks[k] = true
	}
	for k := range s.Colors {
		out.Colors[k] = true
	}
	out.PriceMin = s.PriceMin
	out.PriceMax = s.PriceMax
	return out
}

// Matches reports whether a product passes every active filter. Within one
// group (categories, marks, colors) any selected value is enough.
func (s *State) Matches(p domain.Product) bool {
	if len(s.Categories) > 0 && !anyOf(s.Categories, p.InCategory) {
		return false
	}
	if len(s.Marks) > 0 && !anyOf(s.Marks, p.HasMark) {
		return false
	}
	if len(s.Colors) > 0 && !anyOf(s.Colors, p.HasColor) {
		return false
	}
	price := p.DisplayPrice()
	if s.PriceMin != nil && price.LessThan(*s.PriceMin) {
		return false
	}
	if s.PriceMax != nil && price.GreaterThan(*s.PriceMax) {
		return false
	}
	return true
}

// Apply returns the products that pass the filters, keeping their order
func (s *State) Apply(products []domain.Product) []domain.Product {
	if !s.Active() {
		return products
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if s.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// UniqueColors collects the distinct colors of the products, ordered by id
func UniqueColors(products []domain.Product) []domain.Color {
	seen := make(map[int]bool)
	var out []domain.Color
	for _, p := range products {
		for _, c := range p.Colors {
			if !seen[c.ID] {
				seen[c.ID] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func setChecked(set map[int]bool, id int, checked bool) {
	if checked {
		set[id] = true
	} else {
		delete(set, id)
	}
}

func anyOf(set map[int]bool, has func(int) bool) bool {
	for id := range set {
		if has(id) {
			return true
		}
	}
	return false
}
