// Package suggest turns a keystroke stream into debounced product-name
// lookups whose results are never overwritten by an older lookup.
package suggest

import (
	"context"
	"log"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/eventbus"
)

// DefaultQuietPeriod is the delay after the last keystroke before a lookup
const DefaultQuietPeriod = 300 * time.Millisecond

// lookupPageSize is how many products one lookup asks the catalog for
const lookupPageSize = 20

// Tick is a quiet-period timer the caller must schedule. When it fires the
// caller passes Tag to Debouncer.Elapsed.
type Tick struct {
	Tag   uint64
	Delay time.Duration
}

// Lookup is a remote lookup the caller must perform and report back through
// Debouncer.Resolve with the same Seq.
type Lookup struct {
	Seq  uint64
	Text string
}

// Result is the outcome of an explicit search submission
type Result struct {
	Text     string
	Products []domain.Product
}

// Debouncer coalesces keystrokes into lookups. Like query.State it is driven
// from a single goroutine; timers and remote calls are performed by the
// caller.
type Debouncer struct {
	fetcher catalog.Fetcher
	quiet   time.Duration
	bus     eventbus.EventBus

	text        string
	tag         uint64 // tag of the pending timer, 0 when none
	nextTag     uint64
	seq         uint64 // latest issued lookup
	suggestions []domain.Product
	loading     bool
}

// New creates a debouncer. A non-positive quiet period uses the default.
func New(fetcher catalog.Fetcher, quiet time.Duration, bus eventbus.EventBus) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		fetcher: fetcher,
		quiet:   quiet,
		bus:     bus,
	}
}

// Input records the latest text and restarts the quiet period. Empty input
// cancels any pending timer, clears the suggestions and returns nil.
func (d *Debouncer) Input(text string) *Tick {
	d.text = text

	if strings.TrimSpace(text) == "" {
		d.tag = 0
		d.loading = false
		// Any lookup still in flight is now stale
		d.seq++
		d.setSuggestions(nil)
		return nil
	}

	d.nextTag++
	d.tag = d.nextTag
	return &Tick{Tag: d.tag, Delay: d.quiet}
}

// Elapsed is called when the timer with the given tag fires. Only the most
// recent timer produces a lookup; superseded or cancelled timers are ignored.
func (d *Debouncer) Elapsed(tag uint64) (Lookup, bool) {
	if tag == 0 || tag != d.tag {
		return Lookup{}, false
	}
	d.tag = 0

	text := strings.TrimSpace(d.text)
	if text == "" {
		return Lookup{}, false
	}

	d.seq++
	d.loading = true
	d.publish(eventbus.LookupIssuedEvent{Seq: d.seq, Text: text})
	return Lookup{Seq: d.seq, Text: text}, true
}

// Resolve applies the result of lookup seq. Results of any lookup other than
// the most recently issued one are dropped. A failed lookup clears the
// suggestions.
func (d *Debouncer) Resolve(seq uint64, text string, products []domain.Product, err error) bool {
	if seq != d.seq {
		d.publish(eventbus.StaleDiscardedEvent{Seq: seq, Latest: d.seq, Source: "suggest"})
		return false
	}
	d.loading = false

	if err != nil {
		log.Printf("suggest: lookup %d for %q failed: %v", seq, text, err)
		d.publish(eventbus.FetchFailedEvent{Seq: seq, Source: "suggest", Err: err})
		d.setSuggestions(nil)
		return true
	}

	d.setSuggestions(FilterByName(products, text))
	return true
}

// Fetch performs the remote part of a lookup. It never returns an error that
// callers need to inspect beyond passing it to Resolve.
func (d *Debouncer) Fetch(ctx context.Context, l Lookup) ([]domain.Product, error) {
	page, err := d.fetcher.FetchCatalog(ctx, domain.Query{Text: l.Text, Page: 1, PageSize: lookupPageSize})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Commit performs an immediate lookup for an explicit submission. It does
// not read or change the debounced state. Failures yield an empty result.
func (d *Debouncer) Commit(ctx context.Context, text string) Result {
	text = strings.TrimSpace(text)
	res := Result{Text: text}
	if text == "" {
		return res
	}

	products, err := d.Fetch(ctx, Lookup{Text: text})
	if err != nil {
		log.Printf("suggest: commit lookup for %q failed: %v", text, err)
		return res
	}

	res.Products = FilterByName(products, text)
	d.publish(eventbus.SearchCommittedEvent{Text: text, Matched: len(res.Products)})
	return res
}

// Text returns the latest input text
func (d *Debouncer) Text() string {
	return d.text
}

// Suggestions returns the current suggestion set
func (d *Debouncer) Suggestions() []domain.Product {
	return d.suggestions
}

// HasResults reports whether the "go to results" affordance is enabled
func (d *Debouncer) HasResults() bool {
	return len(d.suggestions) > 0
}

// Pending reports whether a quiet-period timer is running
func (d *Debouncer) Pending() bool {
	return d.tag != 0
}

// Loading reports whether the latest lookup is still outstanding
func (d *Debouncer) Loading() bool {
	return d.loading
}

// Seq returns the sequence number of the latest issued lookup
func (d *Debouncer) Seq() uint64 {
	return d.seq
}

// QuietPeriod returns the debounce delay
func (d *Debouncer) QuietPeriod() time.Duration {
	return d.quiet
}

func (d *Debouncer) setSuggestions(products []domain.Product) {
	d.suggestions = products
	d.publish(eventbus.SuggestionsUpdatedEvent{Text: d.text, Count: len(products)})
}

func (d *Debouncer) publish(event eventbus.DomainEvent) {
	if d.bus != nil {
		d.bus.Publish(event)
	}
}

// FilterByName keeps the products whose name contains text, ignoring case
func FilterByName(products []domain.Product, text string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if catalog.NameMatches(p.Name, text) {
			out = append(out, p)
		}
	}
	return out
}
