package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// MemoryCatalog is an in-memory implementation of Fetcher. It backs the
// -demo mode and tests, and follows the same paging and name-matching rules
// the catalog service applies.
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   map[int]domain.Product
	categories []domain.Category
	marks      []domain.Mark
}

// NewMemoryCatalog creates a catalog holding the given products
func NewMemoryCatalog(products ...domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make(map[int]domain.Product),
	}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// SetFacets sets the categories and marks returned with every page
func (c *MemoryCatalog) SetFacets(categories []domain.Category, marks []domain.Mark) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = categories
	c.marks = marks
}

// AddProduct adds or replaces a product
func (c *MemoryCatalog) AddProduct(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

// RemoveProduct deletes a product by id
func (c *MemoryCatalog) RemoveProduct(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, id)
}

// Len returns the number of products
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// FetchCatalog returns the requested page of products whose name contains the
// query text, ordered by id. Pages past the end return the last page.
func (c *MemoryCatalog) FetchCatalog(ctx context.Context, q domain.Query) (*domain.ResultPage, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidQuery, q.Page, q.PageSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	c.mu.RLock()
	matched := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if NameMatches(p.Name, q.Text) {
			matched = append(matched, p)
		}
	}
	categories := c.categories
	marks := c.marks
	c.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	totalPages := (len(matched) + q.PageSize - 1) / q.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	current := q.Page
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * q.PageSize
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	items := make([]domain.Product, end-start)
	copy(items, matched[start:end])

	page, err := domain.NewResultPage(items, current, totalPages, len(matched), q.PageSize)
	if err != nil {
		return nil, err
	}
	page.Categories = categories
	page.Marks = marks
	return page, nil
}

// NameMatches reports whether name contains text, ignoring case and
// surrounding whitespace. Empty text matches everything.
func NameMatches(name, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(text))
}

// DemoCatalog returns a catalog stocked with sample clothing products
func DemoCatalog() *MemoryCatalog {
	categories := []domain.Category{
		{ID: 1, Name: "Одежда", SortOrder: 1},
		{ID: 2, Name: "Обувь", SortOrder: 2},
		{ID: 3, Name: "Сертификаты", SortOrder: 3},
	}
	marks := []domain.Mark{
		{ID: 1, Name: "Sale"},
		{ID: 2, Name: "New"},
		{ID: 3, Name: "Hit"},
	}
	colors := []domain.Color{
		{ID: 1, Name: "Черный", Code: "#000000"},
		{ID: 2, Name: "Белый", Code: "#ffffff"},
		{ID: 3, Name: "Красный", Code: "#ff0000"},
	}

	type seed struct {
		name     string
		category int
		price    int64
		oldPrice int64
	}
	seeds := []seed{
		{"Футболка с принтом", 1, 1200, 1500},
		{"Джинсы классические", 1, 2500, 0},
		{"Женская кофта", 1, 3100, 3900},
		{"Куртка демисезонная", 1, 7800, 0},
		{"Футболка детская", 1, 800, 1000},
		{"Штаны спортивные", 1, 2200, 0},
		{"Шапка брелок", 1, 600, 0},
		{"Кроссовки беговые", 2, 5400, 6000},
		{"Подарочный сертификат", 3, 1000, 0},
	}

	var products []domain.Product
	id := 1
	for round := 0; round < 5; round++ {
		for _, s := range seeds {
			name := s.name
			if round > 0 {
				name = fmt.Sprintf("%s #%d", s.name, round+1)
			}
			variant := domain.PriceVariant{
				Name:     "Размер M",
				Price:    decimal.NewFromInt(s.price + int64(round*100)),
				IsChosen: true,
			}
			if s.oldPrice > 0 {
				old := decimal.NewFromInt(s.oldPrice + int64(round*100))
				variant.OldPrice = &old
			}
			p := domain.Product{
				ID:            id,
				Name:          name,
				PriceVariants: []domain.PriceVariant{variant},
				Images: []domain.Image{{
					URL:    fmt.Sprintf("https://example.com/images/%d.jpg", id),
					IsMain: true,
				}},
				Categories: []domain.Category{categories[s.category-1]},
				Colors:     []domain.Color{colors[id%len(colors)]},
				Tags:       []string{strings.ToLower(strings.Fields(s.name)[0])},
			}
			if s.oldPrice > 0 {
				p.Marks = append(p.Marks, marks[0])
			}
			if round == 0 {
				p.Marks = append(p.Marks, marks[1])
			}
			products = append(products, p)
			id++
		}
	}

	c := NewMemoryCatalog(products...)
	c.SetFacets(categories, marks)
	return c
}
