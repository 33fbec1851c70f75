package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryIssued       EventType = "QueryIssued"
	EventPageLoaded        EventType = "PageLoaded"
	EventFetchFailed       EventType = "FetchFailed"
	EventStaleDiscarded    EventType = "StaleDiscarded"
	EventLookupIssued      EventType = "LookupIssued"
	EventSuggestionsUpdate EventType = "SuggestionsUpdated"
	EventSearchCommitted   EventType = "SearchCommitted"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryIssuedEvent is emitted when a page fetch is sent to the catalog
type QueryIssuedEvent struct {
	Seq   uint64
	Query Query
}

func (e QueryIssuedEvent) Type() EventType { return EventQueryIssued }

// PageLoadedEvent is emitted when a fetch result becomes the shown page
type PageLoadedEvent struct {
	Seq         uint64
	Text        string
	CurrentPage int
	TotalPages  int
	Items       int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// FetchFailedEvent is emitted when the latest fetch fails
type FetchFailedEvent struct {
	Seq    uint64
	Source string // "catalog" or "suggest"
	Err    error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// StaleDiscardedEvent is emitted when a superseded response arrives
type StaleDiscardedEvent struct {
	Seq    uint64
	Latest uint64
	Source string
}

func (e StaleDiscardedEvent) Type() EventType { return EventStaleDiscarded }

// LookupIssuedEvent is emitted when the debouncer fires a suggestion lookup
type LookupIssuedEvent struct {
	Seq  uint64
	Text string
}

func (e LookupIssuedEvent) Type() EventType { return EventLookupIssued }

// SuggestionsUpdatedEvent is emitted when the suggestion set changes
type SuggestionsUpdatedEvent struct {
	Text  string
	Count int
}

func (e SuggestionsUpdatedEvent) Type() EventType { return EventSuggestionsUpdate }

// SearchCommittedEvent is emitted on explicit search submission
type SearchCommittedEvent struct {
	Text    string
	Matched int
}

func (e SearchCommittedEvent) Type() EventType { return EventSearchCommitted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	APIBaseURL string
	PageSize   int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
