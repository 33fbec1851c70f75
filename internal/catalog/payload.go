package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// productsResponse mirrors the catalog service JSON payload
type productsResponse struct {
	Products     []productDTO   `json:"products"`
	Categories   []categoryDTO  `json:"categories"`
	ProductMarks []markDTO      `json:"product_marks"`
	Pagination   *paginationDTO `json:"pagination"`
}

type paginationDTO struct {
	CurrentPage   int  `json:"current_page"`
	HasNext       bool `json:"has_next"`
	HasPrev       bool `json:"has_prev"`
	PerPage       int  `json:"per_page"`
	TotalPages    int  `json:"total_pages"`
	TotalProducts int  `json:"total_products"`
}

type categoryDTO struct {
	ID        int    `json:"Category_ID"`
	Name      string `json:"Category_Name"`
	Image     string `json:"Category_Image"`
	SortOrder int    `json:"sort_order"`
}

type markDTO struct {
	ID   int    `json:"Mark_ID"`
	Name string `json:"Mark_Name"`
}

type colorDTO struct {
	ID   int    `json:"Color_ID"`
	Name string `json:"Color_Name"`
	Code string `json:"Color_Code"`
}

type imageDTO struct {
	ID     int    `json:"Image_ID"`
	URL    string `json:"Image_URL"`
	IsMain bool   `json:"MainImage"`
}

type parameterDTO struct {
	ID       int              `json:"Parameter_ID"`
	Name     string           `json:"name"`
	Chosen   bool             `json:"chosen"`
	Disabled bool             `json:"disabled"`
	Price    decimal.Decimal  `json:"price"`
	OldPrice *decimal.Decimal `json:"old_price"`
}

type productDTO struct {
	ID         int            `json:"Product_ID"`
	Name       string         `json:"Product_Name"`
	Categories []categoryDTO  `json:"categories"`
	Colors     []colorDTO     `json:"colors"`
	Images     []imageDTO     `json:"images"`
	Parameters []parameterDTO `json:"parameters"`
	Marks      []markDTO      `json:"marks"`
	Tags       []string       `json:"tags"`
}

// toResultPage validates the payload and converts it to a ResultPage.
// pageSize is the size the request asked for; the reported per_page does
// not loosen it. Every shape problem is reported as ErrMalformedResponse.
func (r *productsResponse) toResultPage(pageSize int) (*domain.ResultPage, error) {
	if r.Products == nil {
		return nil, fmt.Errorf("%w: missing products", ErrMalformedResponse)
	}
	if r.Pagination == nil {
		return nil, fmt.Errorf("%w: missing pagination", ErrMalformedResponse)
	}
	if r.Pagination.PerPage <= 0 {
		return nil, fmt.Errorf("%w: per_page must be positive, got %d", ErrMalformedResponse, r.Pagination.PerPage)
	}

	items := make([]domain.Product, 0, len(r.Products))
	for i, p := range r.Products {
		if p.ID == 0 {
			return nil, fmt.Errorf("%w: product %d has no Product_ID", ErrMalformedResponse, i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: product %d has no Product_Name", ErrMalformedResponse, p.ID)
		}
		if chosen := p.chosenCount(); chosen > 1 {
			return nil, fmt.Errorf("%w: product %d has %d chosen parameters", ErrMalformedResponse, p.ID, chosen)
		}
		items = append(items, p.toDomain())
	}

	page, err := domain.NewResultPage(items, r.Pagination.CurrentPage, r.Pagination.TotalPages,
		r.Pagination.TotalProducts, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	for _, c := range r.Categories {
		page.Categories = append(page.Categories, c.toDomain())
	}
	for _, m := range r.ProductMarks {
		page.Marks = append(page.Marks, domain.Mark{ID: m.ID, Name: m.Name})
	}

	return page, nil
}

func (c categoryDTO) toDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder}
}

func (p productDTO) chosenCount() int {
	n := 0
	for _, v := range p.Parameters {
		if v.Chosen {
			n++
		}
	}
	return n
}

func (p productDTO) toDomain() domain.Product {
	out := domain.Product{
		ID:   p.ID,
		Name: p.Name,
		Tags: p.Tags,
	}
	for _, v := range p.Parameters {
		out.PriceVariants = append(out.PriceVariants, domain.PriceVariant{
			Name:     v.Name,
			Price:    v.Price,
			OldPrice: v.OldPrice,
			IsChosen: v.Chosen,
		})
	}
	for _, img := range p.Images {
		out.Images = append(out.Images, domain.Image{URL: img.URL, IsMain: img.IsMain})
	}
	for _, m := range p.Marks {
		out.Marks = append(out.Marks, domain.Mark{ID: m.ID, Name: m.Name})
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, c.toDomain())
	}
	for _, c := range p.Colors {
		out.Colors = append(out.Colors, domain.Color{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return out
}
