package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Query identifies one page of catalog results
type Query struct {
	Text     string
	Page     int
	PageSize int
}

// Valid reports whether the query can be sent to the catalog
func (q Query) Valid() bool {
	return q.Page >= 1 && q.PageSize > 0
}

// WithPage returns a copy of the query pointing at page n
func (q Query) WithPage(n int) Query {
	q.Page = n
	return q
}

// PriceVariant is one purchasable option of a product (size, volume...)
type PriceVariant struct {
	Name     string
	Price    decimal.Decimal
	OldPrice *decimal.Decimal // nil when there is no crossed-out price
	IsChosen bool
}

// Image is a product picture
type Image struct {
	URL    string
	IsMain bool
}

// Mark is a product label such as "Sale" or "New"
type Mark struct {
	ID   int
	Name string
}

// Category groups products in the catalog
type Category struct {
	ID        int
	Name      string
	SortOrder int
}

// Color is a color option of a product
type Color struct {
	ID   int
	Name string
	Code string // hex code, e.g. "#ff0000"
}

// Product is a catalog item as returned by the catalog service
type Product struct {
	ID            int
	Name          string
	PriceVariants []PriceVariant
	Images        []Image
	Marks         []Mark
	Tags          []string
	Categories    []Category
	Colors        []Color
}

// DisplayVariant returns the chosen variant, falling back to the first one.
// ok is false when the product has no variants at all.
func (p Product) DisplayVariant() (PriceVariant, bool) {
	for _, v := range p.PriceVariants {
		if v.IsChosen {
			return v, true
		}
	}
	if len(p.PriceVariants) > 0 {
		return p.PriceVariants[0], true
	}
	return PriceVariant{}, false
}

// DisplayPrice returns the price shown on the product card
func (p Product) DisplayPrice() decimal.Decimal {
	v, _ := p.DisplayVariant()
	return v.Price
}

// DiscountPercent returns the rounded discount of the display variant.
// ok is false when there is no old price or it is not above the price.
func (p Product) DiscountPercent() (int, bool) {
	v, found := p.DisplayVariant()
	if !found || v.OldPrice == nil || v.OldPrice.LessThanOrEqual(v.Price) {
		return 0, false
	}
	pct := v.OldPrice.Sub(v.Price).Div(*v.OldPrice).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart()), true
}

// MainImage returns the main image, falling back to the first one
func (p Product) MainImage() (Image, bool) {
	for _, img := range p.Images {
		if img.IsMain {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return Image{}, false
}

// HasMark reports whether the product carries the mark with the given id
func (p Product) HasMark(id int) bool {
	for _, m := range p.Marks {
		if m.ID == id {
			return true
		}
	}
	return false
}

// InCategory reports whether the product belongs to the category
func (p Product) InCategory(id int) bool {
	for _, c := range p.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is available in the color
func (p Product) HasColor(id int) bool {
	for _, c := range p.Colors {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ResultPage is one page of catalog results plus pagination metadata
type ResultPage struct {
	Items       []Product
	CurrentPage int
	TotalPages  int
	HasNext     bool
	HasPrev     bool
	TotalCount  int

	// Facets shipped alongside the page
	Categories []Category
	Marks      []Mark
}

// NewResultPage builds a page from collaborator data. The collaborator's
// current page is authoritative but is clamped into [1, totalPages], and the
// navigation flags are always derived from the two numbers.
func NewResultPage(items []Product, currentPage, totalPages, totalCount, pageSize int) (*ResultPage, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	if len(items) > pageSize {
		return nil, fmt.Errorf("page holds %d items, more than page size %d", len(items), pageSize)
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if totalCount < len(items) {
		totalCount = len(items)
	}

	return &ResultPage{
		Items:       items,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasNext:     currentPage < totalPages,
		HasPrev:     currentPage > 1,
		TotalCount:  totalCount,
	}, nil
}
