package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/ui/input/types"
)

// FiltersMode drives the filter panel
type FiltersMode struct{}

func NewFiltersMode() *FiltersMode {
	return &FiltersMode{}
}

func (m *FiltersMode) Name() string {
	return "filters"
}

func (m *FiltersMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FiltersMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FiltersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true
	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeySpace:
		return []types.Action{types.ToggleFilterAction{}}, true
	case tea.KeyEnter:
		return []types.Action{
			types.ApplyFiltersAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	}

	switch msg.String() {
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "x":
		return []types.Action{types.ToggleFilterAction{}}, true
	case "r":
		return []types.Action{
			types.ResetFiltersAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	case "q", "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}
	return nil, false
}
