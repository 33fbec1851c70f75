// Package query holds the product listing state: what is shown, what is
// loading, and which fetch result is allowed to replace what is shown.
package query

import (
	"log"

	"storefront/internal/domain"
	"storefront/internal/eventbus"
)

// Request is a fetch the caller must perform and report back through
// State.Resolve with the same Seq.
type Request struct {
	Seq   uint64
	Query domain.Query
}

// State is the single source of truth for the product listing. It is not
// safe for concurrent use; all calls must come from one goroutine (the UI
// update loop). Remote calls happen outside and are fed back via Resolve.
type State struct {
	pageSize int
	bus      eventbus.EventBus

	text      string             // active query text
	shownText string             // text the shown page was fetched with
	page      *domain.ResultPage // last successfully resolved page
	loading   bool
	err       error

	seq uint64 // sequence number of the latest issued request
}

// New creates an empty state. pageSize must be positive.
func New(pageSize int, bus eventbus.EventBus) *State {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &State{
		pageSize: pageSize,
		bus:      bus,
	}
}

// Load requests the first page of the active text. On a fresh state that
// is the unfiltered catalog.
func (s *State) Load() Request {
	return s.issue(domain.Query{Text: s.text, Page: 1, PageSize: s.pageSize})
}

// Refresh requests the shown page again, or the first page when nothing is
// shown yet
func (s *State) Refresh() Request {
	if s.page == nil {
		return s.Load()
	}
	return s.issue(domain.Query{Text: s.text, Page: s.page.CurrentPage, PageSize: s.pageSize})
}

// SetQuery replaces the active text and requests its first page
func (s *State) SetQuery(text string) Request {
	s.text = text
	return s.issue(domain.Query{Text: text, Page: 1, PageSize: s.pageSize})
}

// GoToPage requests page n of the active text. It is a no-op when no page
// is shown yet, when n is outside [1, TotalPages], or when n is the current
// page.
func (s *State) GoToPage(n int) (Request, bool) {
	if s.page == nil {
		return Request{}, false
	}
	if n < 1 || n > s.page.TotalPages || n == s.page.CurrentPage {
		return Request{}, false
	}
	return s.issue(domain.Query{Text: s.text, Page: n, PageSize: s.pageSize}), true
}

// NextPage requests the page after the current one if there is one
func (s *State) NextPage() (Request, bool) {
	if s.page == nil || !s.page.HasNext {
		return Request{}, false
	}
	return s.GoToPage(s.page.CurrentPage + 1)
}

// PrevPage requests the page before the current one if there is one
func (s *State) PrevPage() (Request, bool) {
	if s.page == nil || !s.page.HasPrev {
		return Request{}, false
	}
	return s.GoToPage(s.page.CurrentPage - 1)
}

// Reset clears the text and requests the unfiltered first page
func (s *State) Reset() Request {
	return s.SetQuery("")
}

// Resolve applies the outcome of request seq. Results of superseded
// requests are dropped and Resolve returns false. On error the shown page
// and its text are kept and the error is exposed through Err.
func (s *State) Resolve(seq uint64, page *domain.ResultPage, err error) bool {
	if seq != s.seq {
		log.Printf("query: discarding stale response %d (latest %d)", seq, s.seq)
		s.publish(eventbus.StaleDiscardedEvent{Seq: seq, Latest: s.seq, Source: "catalog"})
		return false
	}

	s.loading = false

	if err == nil && page == nil {
		err = errNilPage
	}
	if err != nil {
		log.Printf("query: request %d failed: %v", seq, err)
		s.err = err
		s.text = s.shownText
		s.publish(eventbus.FetchFailedEvent{Seq: seq, Source: "catalog", Err: err})
		return true
	}

	s.page = page
	s.shownText = s.text
	s.err = nil
	s.publish(eventbus.PageLoadedEvent{
		Seq:         seq,
		Text:        s.text,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		Items:       len(page.Items),
	})
	return true
}

// Err returns the error of the latest failed fetch until AckError is called
func (s *State) Err() error {
	return s.err
}

// AckError clears the error marker once it has been rendered
func (s *State) AckError() {
	s.err = nil
}

// Loading reports whether the latest request is still outstanding
func (s *State) Loading() bool {
	return s.loading
}

// Text returns the active query text
func (s *State) Text() string {
	return s.text
}

// Page returns the shown page, or nil before the first successful fetch
func (s *State) Page() *domain.ResultPage {
	return s.page
}

// Seq returns the sequence number of the latest issued request
func (s *State) Seq() uint64 {
	return s.seq
}

// PageSize returns the page size used for every request
func (s *State) PageSize() int {
	return s.pageSize
}

func (s *State) issue(q domain.Query) Request {
	s.seq++
	s.loading = true
	s.err = nil
	req := Request{Seq: s.seq, Query: q}
	s.publish(eventbus.QueryIssuedEvent{Seq: req.Seq, Query: q})
	return req
}

func (s *State) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
