package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/eventbus"
	"storefront/internal/filter"
	"storefront/internal/query"
	"storefront/internal/suggest"
	"storefront/internal/ui/input"
	inputtypes "storefront/internal/ui/input/types"
	"storefront/internal/ui/state"
	"storefront/internal/ui/viewmodels"
	"storefront/internal/ui/views"
)

// fetchFailedHint is the only thing the user sees of a failed refresh
const fetchFailedHint = "не удалось обновить"

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // UI-only state
	fetcher catalog.Fetcher
	timeout time.Duration
	sched   Scheduler

	// Coordinator
	query   *query.State
	suggest *suggest.Debouncer
	filters *filter.State // applied to the grid
	draft   *filter.State // edited in the filter panel

	// commitSeq tags the latest search submission; 0 when none is shown
	commitSeq uint64
	// bannerGen identifies the live carousel timer
	bannerGen uint64

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *PagerOps
}

// Option configures a Model
type Option func(*Model)

// WithScheduler replaces tea.Tick as the timer source
func WithScheduler(s Scheduler) Option {
	return func(m *Model) {
		m.sched = s
	}
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, fetcher catalog.Fetcher, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState(len(views.BannerSlides))
	inputHandler := input.New()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		fetcher:      fetcher,
		timeout:      cfg.Catalog.RequestTimeout.Duration,
		sched:        TickScheduler,
		query:        query.New(cfg.Catalog.PageSize, bus),
		suggest:      suggest.New(fetcher, cfg.Search.Debounce.Duration, bus),
		filters:      filter.New(),
		draft:        filter.New(),
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowOldPrice),
		inputHandler: inputHandler,
		pager:        NewPagerOps(),
	}
	if m.timeout <= 0 {
		m.timeout = config.DefaultRequestTimeout
	}
	m.viewModel = viewmodels.NewViewModel(appState, cfg, *inputHandler.TextInput())

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init loads the first catalog page and starts the banner carousel
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchPage(m.query.Load()), m.scheduleBanner())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pageLoadedMsg:
		m.handlePageLoaded(msg)
		return m, nil

	case suggestTickMsg:
		if lookup, ok := m.suggest.Elapsed(msg.tag); ok {
			return m, m.lookup(lookup)
		}
		return m, nil

	case lookupDoneMsg:
		if m.suggest.Resolve(msg.seq, msg.text, msg.products, msg.err) {
			m.state.MoveDropdown(0, m.dropdownRows())
		}
		return m, nil

	case commitDoneMsg:
		m.handleCommitDone(msg)
		return m, nil

	case bannerTickMsg:
		if msg.gen != m.bannerGen {
			return m, nil
		}
		m.state.RotateBanner(1)
		return m, m.scheduleBanner()

	case pagerDoneMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup silently
			log.Printf("Pager for %q failed: %v, falling back to popup", msg.title, msg.err)
			m.state.ShowInfo = true
			m.state.InfoContent = msg.content
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Загрузка..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetHelpLine(m.help.View(m.keys))

	return m.renderer.Render(m.viewModel.BuildViewState(m.query, m.suggest, m.filters, m.draft))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The info popup swallows keys until closed
	if m.state.ShowInfo {
		switch msg.String() {
		case "esc", "q", "enter":
			m.state.ShowInfo = false
			m.state.InfoContent = ""
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	// Status hints last until the next key press
	m.state.ClearStatus()

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{
		Results: m.state.ShowingResults,
		Text:    m.query.Text(),
		Cursor:  m.state.DropdownCursor,
		Rows:    m.dropdownRows(),
	}
	if page := m.query.Page(); page != nil {
		ctx.Page = page.CurrentPage
		ctx.Pages = page.TotalPages
	}
	return ctx
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.GoToPageAction:
		if req, ok := m.query.GoToPage(a.Page); ok {
			return m.requestPage(req)
		}

	case inputtypes.NextPageAction:
		if req, ok := m.query.NextPage(); ok {
			return m.requestPage(req)
		}

	case inputtypes.PrevPageAction:
		if req, ok := m.query.PrevPage(); ok {
			return m.requestPage(req)
		}

	case inputtypes.RefreshAction:
		return m.fetchPage(m.query.Refresh())

	case inputtypes.ChangeModeAction:
		return m.enterMode(a.Mode)

	case inputtypes.UpdateTextAction:
		m.state.ResetDropdown()
		return m.scheduleLookup(m.suggest.Input(a.Text))

	case inputtypes.SubmitTextAction:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			m.clearSearchInput()
			return nil
		}
		return m.submitSearch(text)

	case inputtypes.PickDropdownAction:
		if text, ok := m.dropdownText(a.Index); ok {
			return m.submitSearch(text)
		}

	case inputtypes.MoveDropdownAction:
		m.state.MoveDropdown(a.Delta, m.dropdownRows())

	case inputtypes.CancelTextAction:
		// "Назад" drops what was typed; the grid stays as it is
		m.clearSearchInput()
		m.inputHandler.SetText(m.query.Text())

	case inputtypes.CloseResultsAction:
		m.state.ShowingResults = false
		m.state.SelectedIndex = 0
		m.commitSeq = 0
		m.clearSearchInput()
		return m.fetchPage(m.query.Reset())

	case inputtypes.BannerAction:
		m.state.RotateBanner(a.Delta)
		// A manual change restarts the interval
		m.bannerGen++
		return m.scheduleBanner()

	case inputtypes.CategoryScrollAction:
		m.state.ScrollCategories(a.Delta, len(m.config.UISettings.Categories))

	case inputtypes.ToggleFilterAction:
		options := filter.Options(m.query.Page())
		if c := m.state.FilterCursor; c >= 0 && c < len(options) {
			m.draft.Toggle(options[c])
		}

	case inputtypes.ApplyFiltersAction:
		m.filters = m.draft.Clone()
		m.state.SelectedIndex = 0

	case inputtypes.ResetFiltersAction:
		m.filters.Reset()
		m.draft.Reset()
		m.state.SelectedIndex = 0

	case inputtypes.OpenDetailsAction:
		if p, ok := m.selectedProduct(); ok {
			return m.showInPager(p.Name, m.renderer.RenderDetails(p))
		}

	case inputtypes.ShowHelpAction:
		return m.showInPager("Справка", HelpContent(m.keys))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	if m.inputHandler.CurrentMode() == inputtypes.ModeFilters {
		rows := len(filter.Options(m.query.Page()))
		switch direction {
		case "up":
			m.state.MoveFilterCursor(-1, rows)
		case "down":
			m.state.MoveFilterCursor(1, rows)
		}
		return
	}

	count := len(m.visibleProducts())
	cols := views.GridColumns(m.width)
	switch direction {
	case "up":
		m.state.MoveSelection(-cols, count)
	case "down":
		m.state.MoveSelection(cols, count)
	case "home":
		m.state.SelectedIndex = 0
	case "end":
		m.state.SelectedIndex = count - 1
		m.state.ClampSelection(count)
	}
}

// enterMode runs the setup of the mode the handler just switched to
func (m *Model) enterMode(mode inputtypes.Mode) tea.Cmd {
	switch mode {
	case inputtypes.ModeSearch:
		// Reopening the search bar resumes suggestions for its text
		m.state.ResetDropdown()
		return m.scheduleLookup(m.suggest.Input(m.inputHandler.TextInput().Value()))
	case inputtypes.ModeFilters:
		m.draft = m.filters.Clone()
		m.state.FilterCursor = 0
	}
	return nil
}

// submitSearch shows the results view for text: the grid loads the first
// page of the query while an immediate lookup reports the match count
func (m *Model) submitSearch(text string) tea.Cmd {
	m.clearSearchInput()
	m.inputHandler.SetText(text)
	m.state.ShowingResults = true
	m.state.SelectedIndex = 0

	req := m.query.SetQuery(text)
	m.commitSeq = req.Seq
	return tea.Batch(m.fetchPage(req), m.commit(req.Seq, text))
}

// clearSearchInput cancels the pending quiet period and empties the dropdown
func (m *Model) clearSearchInput() {
	m.suggest.Input("")
	m.state.ResetDropdown()
	m.inputHandler.SetText("")
}

func (m *Model) handlePageLoaded(msg pageLoadedMsg) {
	if !m.query.Resolve(msg.seq, msg.page, msg.err) {
		return
	}
	if err := m.query.Err(); err != nil {
		m.state.SetStatus(fetchFailedHint, true)
		m.query.AckError()
		return
	}
	m.state.ClampSelection(len(m.visibleProducts()))
	if m.state.FilterCursor >= len(filter.Options(m.query.Page())) {
		m.state.FilterCursor = 0
	}
}

func (m *Model) handleCommitDone(msg commitDoneMsg) {
	// Only the latest submission may report its match count
	if msg.seq != m.commitSeq {
		log.Printf("Dropping match count of superseded search %q (#%d)", msg.result.Text, msg.seq)
		return
	}
	result := msg.result
	// A failed refresh of the grid outranks the match count
	if result.Text == "" || m.state.StatusIsError {
		return
	}
	if len(result.Products) == 0 {
		m.state.SetStatus(fmt.Sprintf("По запросу «%s» ничего не найдено", result.Text), false)
		return
	}
	m.state.SetStatus(fmt.Sprintf("По запросу «%s» совпадений: %d", result.Text, len(result.Products)), false)
}

// requestPage starts a page change; the grid selection returns to the top
func (m *Model) requestPage(req query.Request) tea.Cmd {
	m.state.SelectedIndex = 0
	return m.fetchPage(req)
}

// fetchPage returns a command that performs a catalog request
func (m *Model) fetchPage(req query.Request) tea.Cmd {
	fetcher, timeout := m.fetcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		page, err := fetcher.FetchCatalog(ctx, req.Query)
		return pageLoadedMsg{seq: req.Seq, page: page, err: err}
	}
}

// scheduleLookup schedules the quiet-period timer of a keystroke
func (m *Model) scheduleLookup(tick *suggest.Tick) tea.Cmd {
	if tick == nil {
		return nil
	}
	return m.sched(tick.Delay, suggestTickMsg{tag: tick.Tag})
}

// lookup returns a command that performs a debounced suggestion lookup
func (m *Model) lookup(l suggest.Lookup) tea.Cmd {
	debouncer, timeout := m.suggest, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		products, err := debouncer.Fetch(ctx, l)
		return lookupDoneMsg{seq: l.Seq, text: l.Text, products: products, err: err}
	}
}

// commit returns a command that performs an immediate lookup for text
func (m *Model) commit(seq uint64, text string) tea.Cmd {
	debouncer, timeout := m.suggest, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return commitDoneMsg{seq: seq, result: debouncer.Commit(ctx, text)}
	}
}

func (m *Model) scheduleBanner() tea.Cmd {
	interval := m.config.UISettings.BannerInterval.Duration
	if interval <= 0 {
		interval = config.DefaultBannerInterval
	}
	return m.sched(interval, bannerTickMsg{gen: m.bannerGen})
}

// showInPager returns a command that shows content using ov pager. Without
// a program to hand the terminal over, the content opens in a popup.
func (m *Model) showInPager(title, content string) tea.Cmd {
	if !m.pager.Available() {
		m.state.ShowInfo = true
		m.state.InfoContent = content
		return nil
	}

	pager, program := m.pager, m.pager.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(title, content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerDoneMsg{title: title, content: content, err: err}
	}
}

// visibleProducts is the shown page after the applied filters
func (m *Model) visibleProducts() []domain.Product {
	page := m.query.Page()
	if page == nil {
		return nil
	}
	return m.filters.Apply(page.Items)
}

func (m *Model) selectedProduct() (domain.Product, bool) {
	products := m.visibleProducts()
	i := m.state.SelectedIndex
	if i < 0 || i >= len(products) {
		return domain.Product{}, false
	}
	return products[i], true
}

// dropdownRows is the number of pickable rows under the search bar: the
// popular searches for an empty input, the suggestions otherwise
func (m *Model) dropdownRows() int {
	if strings.TrimSpace(m.inputHandler.TextInput().Value()) == "" {
		return len(m.config.Search.PopularSearches)
	}
	return min(len(m.suggest.Suggestions()), views.MaxDropdownRows)
}

func (m *Model) dropdownText(i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	if strings.TrimSpace(m.inputHandler.TextInput().Value()) == "" {
		if i < len(m.config.Search.PopularSearches) {
			return m.config.Search.PopularSearches[i], true
		}
		return "", false
	}
	suggestions := m.suggest.Suggestions()
	if i < len(suggestions) {
		return suggestions[i].Name, true
	}
	return "", false
}

// Query exposes the listing state for tests and diagnostics
func (m *Model) Query() *query.State {
	return m.query
}

// Suggestions exposes the debouncer for tests and diagnostics
func (m *Model) Suggestions() *suggest.Debouncer {
	return m.suggest
}

// AppState exposes the UI state for tests and diagnostics
func (m *Model) AppState() *state.AppState {
	return m.state
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}
