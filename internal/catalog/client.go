package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// Fetcher fetches one page of the catalog. An empty query text means the
// unfiltered catalog. Implementations must be safe for concurrent use.
type Fetcher interface {
	FetchCatalog(ctx context.Context, q domain.Query) (*domain.ResultPage, error)
}

// maxBodySize caps how much of a response body is read
const maxBodySize = 8 << 20

// Client talks to the catalog service over HTTP
type Client struct {
	baseURL      string
	productsPath string
	httpClient   *http.Client
	timeout      time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithProductsPath sets the path of the products endpoint
func WithProductsPath(path string) Option {
	return func(c *Client) {
		c.productsPath = path
	}
}

// WithTimeout sets the timeout applied to every request. It wins over the
// timeout of a client given with WithHTTPClient, regardless of order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new catalog client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		productsPath: "/api/products",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.timeout > 0 {
		// Copy so a shared client passed in is left untouched
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// FetchCatalog retrieves one page of products
func (c *Client) FetchCatalog(ctx context.Context, q domain.Query) (*domain.ResultPage, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidQuery, q.Page, q.PageSize)
	}

	endpoint, err := c.endpoint(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("catalog: request %s failed after %s: %v", requestID, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("catalog: request %s returned status %d", requestID, resp.StatusCode)
		return nil, fmt.Errorf("%w: request failed with status %d: %s", ErrTransient, resp.StatusCode, truncate(string(body), 200))
	}

	var payload productsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrMalformedResponse, err)
	}

	page, err := payload.toResultPage(q.PageSize)
	if err != nil {
		log.Printf("catalog: request %s: %v", requestID, err)
		return nil, err
	}

	log.Printf("catalog: request %s page %d/%d (%d items) in %s",
		requestID, page.CurrentPage, page.TotalPages, len(page.Items), time.Since(start))
	return page, nil
}

func (c *Client) endpoint(q domain.Query) (string, error) {
	u, err := url.Parse(c.baseURL + c.productsPath)
	if err != nil {
		return "", fmt.Errorf("invalid catalog url: %w", err)
	}
	params := u.Query()
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PageSize))
	if text := strings.TrimSpace(q.Text); text != "" {
		params.Set("search", text)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
