package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Pagination actions
type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "goto_page" }

type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search dropdown actions
type MoveDropdownAction struct {
	Delta int
}

func (a MoveDropdownAction) Type() string { return "move_dropdown" }

type PickDropdownAction struct {
	Index int
}

func (a PickDropdownAction) Type() string { return "pick_dropdown" }

// CloseResultsAction leaves the search results view and reloads the catalog
type CloseResultsAction struct{}

func (a CloseResultsAction) Type() string { return "close_results" }

// Promo chrome actions
type BannerAction struct {
	Delta int
}

func (a BannerAction) Type() string { return "banner" }

type CategoryScrollAction struct {
	Delta int
}

func (a CategoryScrollAction) Type() string { return "category_scroll" }

// Filter panel actions
type ToggleFilterAction struct{}

func (a ToggleFilterAction) Type() string { return "toggle_filter" }

type ApplyFiltersAction struct{}

func (a ApplyFiltersAction) Type() string { return "apply_filters" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// View actions
type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
