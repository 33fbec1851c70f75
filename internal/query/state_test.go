package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/eventbus"
)

// recordingBus collects published events synchronously
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) { b.events = append(b.events, event) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func (b *recordingBus) count(t eventbus.EventType) int {
	n := 0
	for _, e := range b.events {
		if e.Type() == t {
			n++
		}
	}
	return n
}

func shirts(n int) *catalog.MemoryCatalog {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, domain.Product{ID: i, Name: fmt.Sprintf("Shirt %d", i)})
	}
	return catalog.NewMemoryCatalog(products...)
}

// perform runs a request against the catalog and resolves it
func perform(t *testing.T, s *State, c catalog.Fetcher, req Request) bool {
	t.Helper()
	page, err := c.FetchCatalog(context.Background(), req.Query)
	return s.Resolve(req.Seq, page, err)
}

func TestInitialLoadIsUnfilteredFirstPage(t *testing.T) {
	s := New(20, nil)
	assert.Nil(t, s.Page())
	assert.False(t, s.Loading())

	req := s.Load()
	assert.Equal(t, domain.Query{Text: "", Page: 1, PageSize: 20}, req.Query)
	assert.True(t, s.Loading())
	assert.Equal(t, req.Seq, s.Seq())
}

func TestPagingThroughResults(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)

	require.True(t, perform(t, s, c, s.SetQuery("shirt")))
	page := s.Page()
	require.NotNil(t, page)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
	assert.False(t, s.Loading())

	req, ok := s.NextPage()
	require.True(t, ok)
	assert.Equal(t, domain.Query{Text: "shirt", Page: 2, PageSize: 20}, req.Query)
	require.True(t, perform(t, s, c, req))
	assert.Equal(t, 2, s.Page().CurrentPage)
	assert.True(t, s.Page().HasNext)
	assert.True(t, s.Page().HasPrev)

	req, ok = s.GoToPage(3)
	require.True(t, ok)
	require.True(t, perform(t, s, c, req))
	assert.Equal(t, 3, s.Page().CurrentPage)
	assert.Len(t, s.Page().Items, 5)
	assert.False(t, s.Page().HasNext)

	_, ok = s.NextPage()
	assert.False(t, ok, "no page after the last one")
}

func TestGoToPageOutOfRangeIsNoop(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)

	_, ok := s.GoToPage(2)
	assert.False(t, ok, "nothing shown yet")

	require.True(t, perform(t, s, c, s.Load()))
	seq := s.Seq()

	for _, n := range []int{0, -1, 4, 1} {
		_, ok := s.GoToPage(n)
		assert.False(t, ok, "page %d", n)
	}
	_, ok = s.PrevPage()
	assert.False(t, ok)

	assert.Equal(t, seq, s.Seq(), "no request was issued")
	assert.False(t, s.Loading())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	c := shirts(45)
	bus := &recordingBus{}
	s := New(20, bus)
	require.True(t, perform(t, s, c, s.Load()))

	older, ok := s.GoToPage(2)
	require.True(t, ok)
	newer, ok := s.GoToPage(3)
	require.True(t, ok)

	// The newer response arrives first
	require.True(t, perform(t, s, c, newer))
	assert.Equal(t, 3, s.Page().CurrentPage)

	assert.False(t, perform(t, s, c, older))
	assert.Equal(t, 3, s.Page().CurrentPage)
	assert.Equal(t, 1, bus.count(eventbus.EventStaleDiscarded))
}

func TestStaleResponseWhileLoadingKeepsLoading(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)

	first := s.SetQuery("shirt 1")
	second := s.SetQuery("shirt")

	assert.False(t, perform(t, s, c, first))
	assert.True(t, s.Loading())
	assert.Nil(t, s.Page())

	require.True(t, perform(t, s, c, second))
	assert.Equal(t, "shirt", s.Text())
	assert.Equal(t, 45, s.Page().TotalCount)
}

func TestErrorKeepsShownPage(t *testing.T) {
	c := shirts(45)
	bus := &recordingBus{}
	s := New(20, bus)
	require.True(t, perform(t, s, c, s.SetQuery("shirt")))
	shown := s.Page()

	req := s.SetQuery("jacket")
	fetchErr := fmt.Errorf("%w: connection refused", catalog.ErrTransient)
	require.True(t, s.Resolve(req.Seq, nil, fetchErr))

	assert.Same(t, shown, s.Page())
	assert.Equal(t, "shirt", s.Text(), "text goes back to the one the shown page belongs to")
	assert.False(t, s.Loading())
	assert.True(t, errors.Is(s.Err(), catalog.ErrTransient))
	assert.Equal(t, 1, bus.count(eventbus.EventFetchFailed))

	s.AckError()
	assert.NoError(t, s.Err())
	assert.Same(t, shown, s.Page())
}

func TestNextRequestClearsError(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)
	req := s.Load()
	require.True(t, s.Resolve(req.Seq, nil, catalog.ErrTransient))
	require.Error(t, s.Err())
	assert.Nil(t, s.Page())

	require.True(t, perform(t, s, c, s.Refresh()))
	assert.NoError(t, s.Err())
	assert.NotNil(t, s.Page())
}

func TestNilPageIsAnError(t *testing.T) {
	s := New(20, nil)
	req := s.Load()
	require.True(t, s.Resolve(req.Seq, nil, nil))
	assert.Error(t, s.Err())
	assert.Nil(t, s.Page())
}

func TestSetQueryThenResetRoundTrip(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)
	require.True(t, perform(t, s, c, s.Load()))
	initial := s.Page()

	require.True(t, perform(t, s, c, s.SetQuery("shirt 4")))
	assert.Equal(t, "shirt 4", s.Text())
	assert.Less(t, s.Page().TotalCount, initial.TotalCount)

	req := s.Reset()
	assert.Equal(t, domain.Query{Text: "", Page: 1, PageSize: 20}, req.Query)
	require.True(t, perform(t, s, c, req))
	assert.Equal(t, "", s.Text())
	assert.Equal(t, initial.TotalCount, s.Page().TotalCount)
	assert.Equal(t, initial.CurrentPage, s.Page().CurrentPage)
	assert.Equal(t, initial.TotalPages, s.Page().TotalPages)
}

func TestRefreshReissuesShownPage(t *testing.T) {
	c := shirts(45)
	s := New(20, nil)

	req := s.Refresh()
	assert.Equal(t, 1, req.Query.Page)
	require.True(t, perform(t, s, c, req))

	req, ok := s.GoToPage(2)
	require.True(t, ok)
	require.True(t, perform(t, s, c, req))

	req = s.Refresh()
	assert.Equal(t, domain.Query{Text: "", Page: 2, PageSize: 20}, req.Query)
}

func TestSequenceNumbersIncrease(t *testing.T) {
	s := New(20, nil)
	a := s.Load()
	b := s.SetQuery("x")
	c := s.Reset()
	assert.Less(t, a.Seq, b.Seq)
	assert.Less(t, b.Seq, c.Seq)
}

func TestNonPositivePageSizeFallsBack(t *testing.T) {
	assert.Equal(t, 20, New(0, nil).PageSize())
	assert.Equal(t, 5, New(5, nil).PageSize())
}
