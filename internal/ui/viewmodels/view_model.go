package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"storefront/internal/config"
	"storefront/internal/filter"
	"storefront/internal/query"
	"storefront/internal/suggest"
	"storefront/internal/ui/input/types"
	"storefront/internal/ui/state"
	"storefront/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	helpLine  string
	mode      types.Mode
	textInput textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		textInput: textInput,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelpLine sets the rendered short help shown in the status line
func (vm *ViewModel) SetHelpLine(line string) {
	vm.helpLine = line
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.mode = mode
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// BuildViewState creates a ViewState for rendering. applied is the filter
// in effect on the grid, draft the one being edited in the panel.
func (vm *ViewModel) BuildViewState(q *query.State, d *suggest.Debouncer, applied, draft *filter.State) views.ViewState {
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Mode:            vm.mode.String(),
		ShowingResults:  vm.state.ShowingResults,
		SearchInput:     vm.textInput.View(),
		SearchText:      vm.textInput.Value(),
		Suggestions:     d.Suggestions(),
		SuggestLoading:  d.Pending() || d.Loading(),
		ShowGoButton:    d.HasResults(),
		PopularSearches: vm.config.Search.PopularSearches,
		DropdownCursor:  vm.state.DropdownCursor,
		Banner:          vm.state.BannerIndex,
		Categories:      vm.config.UISettings.Categories,
		CategoryOffset:  vm.state.CategoryOffset,
		SelectedIndex:   vm.state.SelectedIndex,
		Loading:         q.Loading(),
		FiltersActive:   applied.Active(),
		StatusMessage:   vm.state.StatusMessage,
		StatusIsError:   vm.state.StatusIsError,
		HelpLine:        vm.helpLine,
		ShowInfo:        vm.state.ShowInfo,
		InfoContent:     vm.state.InfoContent,
	}

	if page := q.Page(); page != nil {
		vs.Loaded = true
		vs.Products = applied.Apply(page.Items)
		vs.CurrentPage = page.CurrentPage
		vs.TotalPages = page.TotalPages
		vs.TotalCount = page.TotalCount
		if applied.Active() {
			vs.TotalCount = len(vs.Products)
		}
		vs.FilterRows, vs.FilterCursor = FilterRows(filter.Options(page), draft, vm.state.FilterCursor)
	} else {
		vs.FilterRows, vs.FilterCursor = FilterRows(filter.Options(nil), draft, vm.state.FilterCursor)
	}

	return vs
}

// FilterRows turns panel options into rows with section headings and maps
// the option cursor to its row
func FilterRows(options []filter.Option, draft *filter.State, cursor int) ([]views.FilterRow, int) {
	rows := make([]views.FilterRow, 0, len(options)+4)
	rowCursor := -1
	for i, o := range options {
		if i == 0 || options[i-1].Group != o.Group {
			rows = append(rows, views.FilterRow{Header: true, Label: o.Group.Title()})
		}
		if i == cursor {
			rowCursor = len(rows)
		}
		rows = append(rows, views.FilterRow{Label: o.Label, Checked: draft.Checked(o)})
	}
	return rows, rowCursor
}
