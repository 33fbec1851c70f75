package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/ui/input/types"
)

// BrowseMode handles keys while looking at the product grid
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		if ctx.ShowingResults() {
			return []types.Action{types.CloseResultsAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft, tea.KeyPgUp:
		return []types.Action{types.PrevPageAction{}}, true

	case tea.KeyRight, tea.KeyPgDown:
		return []types.Action{types.NextPageAction{}}, true

	case tea.KeyHome:
		return []types.Action{types.GoToPageAction{Page: 1}}, true

	case tea.KeyEnd:
		return []types.Action{types.GoToPageAction{Page: ctx.TotalPages()}}, true

	case tea.KeyEnter:
		return []types.Action{types.OpenDetailsAction{}}, true
	}

	switch key := msg.String(); key {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "h", "p":
		return []types.Action{types.PrevPageAction{}}, true
	case "l", "n":
		return []types.Action{types.NextPageAction{}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilters}}, true
	case "x":
		if ctx.ShowingResults() {
			return []types.Action{types.CloseResultsAction{}}, true
		}
		return nil, false
	case "r":
		return []types.Action{types.RefreshAction{}}, true
	case "[":
		return []types.Action{types.BannerAction{Delta: -1}}, true
	case "]":
		return []types.Action{types.BannerAction{Delta: 1}}, true
	case "<", ",":
		return []types.Action{types.CategoryScrollAction{Delta: -1}}, true
	case ">", ".":
		return []types.Action{types.CategoryScrollAction{Delta: 1}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return []types.Action{types.GoToPageAction{Page: int(key[0] - '0')}}, true
	}

	return nil, false
}
