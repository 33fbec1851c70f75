package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/ui/input/types"
)

// SearchMode edits the search bar. Keys it doesn't consume go to the text
// input, and the handler reports every edit as an UpdateTextAction.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.SetValue(ctx.SearchText())
		m.textInput.CursorEnd()
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		// "Назад": leave typing mode and drop the suggestions
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true

	case tea.KeyDown, tea.KeyCtrlN:
		return []types.Action{types.MoveDropdownAction{Delta: 1}}, true

	case tea.KeyUp, tea.KeyCtrlP:
		return []types.Action{types.MoveDropdownAction{Delta: -1}}, true

	case tea.KeyEnter:
		if cursor := ctx.DropdownCursor(); cursor >= 0 && cursor < ctx.DropdownLen() {
			return []types.Action{
				types.PickDropdownAction{Index: cursor},
				types.ChangeModeAction{Mode: types.ModeBrowse},
			}, true
		}
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: text},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	}

	return nil, false
}
