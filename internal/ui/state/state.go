package state

// AppState contains the UI state that is not owned by the query and
// suggestion state machines
type AppState struct {
	// Grid state
	SelectedIndex  int  // highlighted product card
	ShowingResults bool // search results view is open ("Найдено товаров")

	// Search dropdown
	DropdownCursor int // highlighted dropdown row, -1 while on the input

	// Promo chrome
	BannerIndex    int
	BannerCount    int
	CategoryOffset int

	// Filter panel
	FilterCursor int

	// UI state
	StatusMessage string
	StatusIsError bool
	ShowInfo      bool
	InfoContent   string // popup shown when the pager can't run
}

// NewAppState creates a new application state
func NewAppState(bannerCount int) *AppState {
	return &AppState{
		DropdownCursor: -1,
		BannerCount:    bannerCount,
	}
}

// Selection operations

// MoveSelection moves the highlighted card by delta within count cards
func (s *AppState) MoveSelection(delta, count int) {
	s.SelectedIndex += delta
	s.ClampSelection(count)
}

// ClampSelection keeps the highlighted card inside a grid of count cards
func (s *AppState) ClampSelection(count int) {
	if s.SelectedIndex >= count {
		s.SelectedIndex = count - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// Dropdown operations

// MoveDropdown moves the dropdown cursor. Moving up from the first row
// returns to the input (-1).
func (s *AppState) MoveDropdown(delta, rows int) {
	if rows == 0 {
		s.DropdownCursor = -1
		return
	}
	s.DropdownCursor += delta
	if s.DropdownCursor >= rows {
		s.DropdownCursor = rows - 1
	}
	if s.DropdownCursor < -1 {
		s.DropdownCursor = -1
	}
}

// ResetDropdown puts the cursor back on the input
func (s *AppState) ResetDropdown() {
	s.DropdownCursor = -1
}

// Carousel operations

// RotateBanner moves the carousel by delta slides, wrapping around
func (s *AppState) RotateBanner(delta int) {
	if s.BannerCount <= 0 {
		return
	}
	s.BannerIndex = ((s.BannerIndex+delta)%s.BannerCount + s.BannerCount) % s.BannerCount
}

// SelectBanner jumps to slide i
func (s *AppState) SelectBanner(i int) {
	if i >= 0 && i < s.BannerCount {
		s.BannerIndex = i
	}
}

// ScrollCategories moves the category strip by delta within count items
func (s *AppState) ScrollCategories(delta, count int) {
	s.CategoryOffset += delta
	if s.CategoryOffset > count-1 {
		s.CategoryOffset = count - 1
	}
	if s.CategoryOffset < 0 {
		s.CategoryOffset = 0
	}
}

// Filter panel operations

// MoveFilterCursor moves the panel cursor within rows
func (s *AppState) MoveFilterCursor(delta, rows int) {
	s.FilterCursor += delta
	if s.FilterCursor >= rows {
		s.FilterCursor = rows - 1
	}
	if s.FilterCursor < 0 {
		s.FilterCursor = 0
	}
}

// Status operations

// SetStatus shows a message in the status line until the next key press
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
