package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func browseCtx() *ModelContext {
	return &ModelContext{Page: 2, Pages: 3, Cursor: -1}
}

func TestBrowseKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"next page", runes("n"), types.NextPageAction{}},
		{"next page arrow", key(tea.KeyRight), types.NextPageAction{}},
		{"prev page", runes("p"), types.PrevPageAction{}},
		{"page digit", runes("3"), types.GoToPageAction{Page: 3}},
		{"last page", key(tea.KeyEnd), types.GoToPageAction{Page: 3}},
		{"first page", key(tea.KeyHome), types.GoToPageAction{Page: 1}},
		{"down", runes("j"), types.NavigateAction{Direction: "down"}},
		{"details", key(tea.KeyEnter), types.OpenDetailsAction{}},
		{"refresh", runes("r"), types.RefreshAction{}},
		{"banner", runes("]"), types.BannerAction{Delta: 1}},
		{"categories", runes("<"), types.CategoryScrollAction{Delta: -1}},
		{"help", runes("?"), types.ShowHelpAction{}},
		{"quit", runes("q"), types.QuitAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, browseCtx())
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
			assert.Equal(t, types.ModeBrowse, h.CurrentMode())
		})
	}
}

func TestEscClosesResultsOnlyWhenShown(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(key(tea.KeyEsc), browseCtx())
	assert.Empty(t, actions)

	ctx := browseCtx()
	ctx.Results = true
	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.CloseResultsAction{}}, actions)
}

func TestSearchModeTyping(t *testing.T) {
	h := New()
	ctx := browseCtx()
	ctx.Text = "кур"

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Contains(t, actions, types.ChangeModeAction{Mode: types.ModeSearch})
	assert.NotNil(t, cmd, "cursor blink starts")
	assert.Equal(t, "кур", h.TextInput().Value(), "the bar opens with the active query")
	assert.True(t, h.TextInput().Focused())

	actions, _ = h.HandleKey(runes("т"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "курт"}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyBackspace), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "кур"}}, actions)

	// Keys that don't change the text report nothing
	actions, _ = h.HandleKey(key(tea.KeyLeft), ctx)
	assert.Empty(t, actions)
}

func TestSearchModeSubmit(t *testing.T) {
	h := New()
	ctx := browseCtx()
	h.HandleKey(runes("/"), ctx)
	h.SetText("shirt")

	actions, _ := h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{
		types.SubmitTextAction{Text: "shirt"},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}, actions)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())
	assert.False(t, h.TextInput().Focused())
}

func TestSearchModePickAndCancel(t *testing.T) {
	h := New()
	ctx := browseCtx()
	h.HandleKey(runes("/"), ctx)

	ctx.Rows = 3
	actions, _ := h.HandleKey(key(tea.KeyDown), ctx)
	assert.Equal(t, []types.Action{types.MoveDropdownAction{Delta: 1}}, actions)

	ctx.Cursor = 1
	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, types.PickDropdownAction{Index: 1}, actions[0])
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())

	h.HandleKey(runes("/"), ctx)
	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{
		types.CancelTextAction{},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}, actions)
}

func TestFiltersMode(t *testing.T) {
	h := New()
	ctx := browseCtx()
	h.HandleKey(runes("f"), ctx)
	require.Equal(t, types.ModeFilters, h.CurrentMode())

	actions, _ := h.HandleKey(key(tea.KeySpace), ctx)
	assert.Equal(t, []types.Action{types.ToggleFilterAction{}}, actions)

	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{
		types.ApplyFiltersAction{},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}, actions)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())

	h.HandleKey(runes("f"), ctx)
	actions, _ = h.HandleKey(runes("r"), ctx)
	assert.Equal(t, types.ResetFiltersAction{}, actions[0])

	h.HandleKey(runes("f"), ctx)
	actions, _ = h.HandleKey(runes("z"), ctx)
	assert.Empty(t, actions, "unbound keys do nothing outside text mode")
	assert.Equal(t, types.ModeFilters, h.CurrentMode())
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "browse", types.ModeBrowse.String())
	assert.Equal(t, "search", types.ModeSearch.String())
	assert.Equal(t, "filters", types.ModeFilters.String())
}
