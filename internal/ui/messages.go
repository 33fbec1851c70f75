package ui

import (
	"storefront/internal/domain"
	"storefront/internal/suggest"
)

// pageLoadedMsg carries the outcome of a catalog page request
type pageLoadedMsg struct {
	seq  uint64
	page *domain.ResultPage
	err  error
}

// suggestTickMsg is sent when a quiet-period timer fires
type suggestTickMsg struct {
	tag uint64
}

// lookupDoneMsg carries the outcome of a debounced suggestion lookup
type lookupDoneMsg struct {
	seq      uint64
	text     string
	products []domain.Product
	err      error
}

// commitDoneMsg carries the outcome of an explicit search submission. seq
// is the listing request the submission was issued with.
type commitDoneMsg struct {
	seq    uint64
	result suggest.Result
}

// bannerTickMsg rotates the banner carousel unless a manual change
// restarted the timer after it was scheduled
type bannerTickMsg struct {
	gen uint64
}

// pagerDoneMsg is sent when the ov pager exits
type pagerDoneMsg struct {
	title   string
	content string
	err     error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
