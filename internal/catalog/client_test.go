package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

const samplePayload = `{
  "products": [
    {
      "Product_ID": 7,
      "Product_Name": "Футболка детская",
      "categories": [{"Category_ID": 1, "Category_Name": "Одежда", "sort_order": 2}],
      "colors": [{"Color_ID": 3, "Color_Name": "Красный", "Color_Code": "#ff0000"}],
      "images": [{"Image_ID": 1, "Image_URL": "https://example.com/7.jpg", "MainImage": true}],
      "parameters": [
        {"Parameter_ID": 1, "name": "S", "chosen": false, "price": 800},
        {"Parameter_ID": 2, "name": "M", "chosen": true, "price": "900.50", "old_price": 1000}
      ],
      "marks": [{"Mark_ID": 1, "Mark_Name": "Sale"}],
      "tags": ["футболка"]
    }
  ],
  "categories": [{"Category_ID": 1, "Category_Name": "Одежда", "sort_order": 2}],
  "product_marks": [{"Mark_ID": 1, "Mark_Name": "Sale"}],
  "pagination": {"current_page": 2, "has_next": true, "has_prev": true, "per_page": 20, "total_pages": 3, "total_products": 45}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetchCatalog(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotRequestID string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"page":     r.URL.Query().Get("page"),
			"per_page": r.URL.Query().Get("per_page"),
			"search":   r.URL.Query().Get("search"),
		}
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	})

	client := NewClient(srv.URL+"/", WithProductsPath("/api/products"))
	page, err := client.FetchCatalog(context.Background(), domain.Query{Text: " футболка ", Page: 2, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, "/api/products", gotPath)
	assert.Equal(t, map[string]string{"page": "2", "per_page": "20", "search": "футболка"}, gotQuery)
	assert.NotEmpty(t, gotRequestID)

	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 45, page.TotalCount)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	require.Len(t, page.Items, 1)

	p := page.Items[0]
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "Футболка детская", p.Name)
	assert.Equal(t, "900.5", p.DisplayPrice().String())
	pct, ok := p.DiscountPercent()
	require.True(t, ok)
	assert.Equal(t, 10, pct)
	assert.True(t, p.HasMark(1))
	assert.True(t, p.InCategory(1))
	assert.True(t, p.HasColor(3))
	assert.Equal(t, []string{"футболка"}, p.Tags)

	require.Len(t, page.Categories, 1)
	assert.Equal(t, "Одежда", page.Categories[0].Name)
	require.Len(t, page.Marks, 1)
	assert.Equal(t, "Sale", page.Marks[0].Name)
}

func TestClientOmitsEmptySearch(t *testing.T) {
	hasSearch := true
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasSearch = r.URL.Query()["search"]
		_, _ = w.Write([]byte(`{"products": [], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`))
	})

	page, err := NewClient(srv.URL).FetchCatalog(context.Background(), domain.Query{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.False(t, hasSearch)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestClientStatusErrorIsTransient(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := NewClient(srv.URL).FetchCatalog(context.Background(), domain.Query{Page: 1, PageSize: 20})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.False(t, IsMalformed(err))
}

func TestClientTimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	client := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := client.FetchCatalog(context.Background(), domain.Query{Page: 1, PageSize: 20})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestClientMalformedPayloads(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		pageSize int
	}{
		{"not json", `<html>oops</html>`, 20},
		{"missing products", `{"pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`, 20},
		{"missing pagination", `{"products": []}`, 20},
		{"zero per_page", `{"products": [], "pagination": {"current_page": 1, "per_page": 0, "total_pages": 1}}`, 20},
		{"product without id", `{"products": [{"Product_Name": "x"}], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`, 20},
		{"product without name", `{"products": [{"Product_ID": 1}], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`, 20},
		{"blank product name", `{"products": [{"Product_ID": 1, "Product_Name": "  "}], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`, 20},
		{"two chosen variants", `{"products": [{"Product_ID": 1, "Product_Name": "x", "parameters": [{"chosen": true, "price": 1}, {"chosen": true, "price": 2}]}], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`, 20},
		{"more items than per_page", `{"products": [{"Product_ID": 1, "Product_Name": "a"}, {"Product_ID": 2, "Product_Name": "b"}], "pagination": {"current_page": 1, "per_page": 1, "total_pages": 2}}`, 1},
		// The server ignored per_page=1 and claims a bigger page
		{"more items than requested", `{"products": [{"Product_ID": 1, "Product_Name": "a"}, {"Product_ID": 2, "Product_Name": "b"}], "pagination": {"current_page": 1, "per_page": 50, "total_pages": 1}}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := NewClient(srv.URL).FetchCatalog(context.Background(), domain.Query{Page: 1, PageSize: tt.pageSize})
			require.Error(t, err)
			assert.True(t, IsMalformed(err), "got %v", err)
		})
	}
}

func TestClientTimeoutWithNilHTTPClient(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [], "pagination": {"current_page": 1, "per_page": 20, "total_pages": 1}}`))
	})

	var client *Client
	require.NotPanics(t, func() {
		client = NewClient(srv.URL, WithHTTPClient(nil), WithTimeout(time.Second))
	})
	_, err := client.FetchCatalog(context.Background(), domain.Query{Page: 1, PageSize: 20})
	require.NoError(t, err)
}

func TestClientTimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	client := NewClient("http://example.com", WithTimeout(time.Second), WithHTTPClient(shared))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, client.httpClient.Timeout)
}

func TestClientClampsCurrentPage(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [], "pagination": {"current_page": 9, "per_page": 20, "total_pages": 3}}`))
	})

	page, err := NewClient(srv.URL).FetchCatalog(context.Background(), domain.Query{Page: 9, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
	assert.False(t, page.HasNext)
}

func TestClientRejectsInvalidQuery(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1").FetchCatalog(context.Background(), domain.Query{Page: 0, PageSize: 20})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
