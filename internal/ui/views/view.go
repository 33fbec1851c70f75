package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storefront/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Mode           string // "browse", "search" or "filters"
	ShowingResults bool

	// Search bar
	SearchInput     string // rendered text input
	SearchText      string
	Suggestions     []domain.Product
	SuggestLoading  bool
	ShowGoButton    bool
	PopularSearches []string
	DropdownCursor  int

	// Promo chrome
	Banner         int
	Categories     []string
	CategoryOffset int

	// Product grid
	Products      []domain.Product
	SelectedIndex int
	CurrentPage   int
	TotalPages    int
	TotalCount    int
	Loaded        bool
	Loading       bool
	FiltersActive bool

	// Filter panel
	FilterRows   []FilterRow
	FilterCursor int

	StatusMessage string
	StatusIsError bool
	HelpLine      string

	ShowInfo    bool
	InfoContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
	chromeRender  *ChromeRenderer
	searchRender  *SearchRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showOldPrice bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles, showOldPrice),
		chromeRender:  NewChromeRenderer(styles),
		searchRender:  NewSearchRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	searching := state.Mode == "search"

	var top []string
	top = append(top, r.chromeRender.RenderTopNav(searching, state.ShowingResults, state.Width))
	top = append(top, r.searchRender.RenderBar(state.SearchInput, searching, searching && state.ShowGoButton, state.Width))

	// While typing the dropdown takes the place of the page
	if searching {
		if strings.TrimSpace(state.SearchText) == "" {
			top = append(top, r.searchRender.RenderPopular(state.PopularSearches, state.DropdownCursor))
		} else if dropdown := r.searchRender.RenderDropdown(state.Suggestions, state.SearchText, state.DropdownCursor, state.SuggestLoading, state.Width); dropdown != "" {
			top = append(top, dropdown)
		} else {
			top = append(top, r.styles.Dim.Render("Ничего не найдено"))
		}
		return r.finish(state, strings.Join(top, "\n"), nil)
	}

	if state.ShowingResults {
		top = append(top, r.RenderResultCount(state.TotalCount))
	} else {
		top = append(top, r.chromeRender.RenderBanner(state.Banner, state.Width))
		if cats := r.chromeRender.RenderCategories(state.Categories, state.CategoryOffset, state.Width); cats != "" {
			top = append(top, cats)
		}
	}
	if state.FiltersActive {
		top = append(top, r.styles.Discount.Render("Фильтры применены"))
	}

	var bottom []string
	if bar := r.RenderPagination(state.CurrentPage, state.TotalPages); bar != "" {
		bottom = append(bottom, bar)
	}
	bottom = append(bottom, r.chromeRender.RenderFooter(state.Width))
	bottom = append(bottom, r.chromeRender.RenderBottomNav(state.Width))

	header := strings.Join(top, "\n")
	footer := strings.Join(bottom, "\n")

	var main string
	switch {
	case !state.Loaded && state.Loading:
		main = r.styles.Dim.Render("Загрузка товаров...")
	case len(state.Products) == 0:
		main = r.styles.Dim.Render("Товары не найдены. Попробуйте изменить параметры поиска.")
	default:
		used := lipgloss.Height(header) + lipgloss.Height(footer) + 3
		maxRows := 2
		if state.Height > 0 {
			maxRows = (state.Height - used) / cardHeight
		}
		main = r.productRender.RenderGrid(state.Products, state.SelectedIndex, state.Width, maxRows, state.SearchText)
	}

	page := r.finish(state, header+"\n"+main, bottom)

	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(page, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}
	if state.Mode == "filters" {
		return r.popupRender.RenderPopupOverlay(page, r.RenderFilters(state.FilterRows, state.FilterCursor), state.Height, state.Width, r.styles.FilterBox)
	}
	return page
}

// finish pushes the bottom block and the status/help line to the bottom of
// the screen and applies the main container style
func (r *Renderer) finish(state ViewState, body string, bottom []string) string {
	content := &strings.Builder{}
	content.WriteString(body)

	tail := append([]string{}, bottom...)
	tail = append(tail, r.statusLine(state))
	tailText := strings.Join(tail, "\n")

	currentLines := strings.Count(body, "\n") + 1
	availableLines := state.Height
	if availableLines <= 0 {
		availableLines = 24
	}
	paddingNeeded := availableLines - currentLines - lipgloss.Height(tailText)
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(tailText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) statusLine(state ViewState) string {
	var parts []string
	if state.Loading && state.Loaded {
		parts = append(parts, r.styles.StatusLoading.Render("⟳ обновление"))
	}
	if state.StatusMessage != "" {
		if state.StatusIsError {
			parts = append(parts, r.styles.StatusError.Render(state.StatusMessage))
		} else {
			parts = append(parts, r.styles.Status.Render(state.StatusMessage))
		}
	}
	if state.TotalPages > 1 && state.Mode != "search" {
		parts = append(parts, r.styles.Dim.Render(fmt.Sprintf("стр. %d из %d", state.CurrentPage, state.TotalPages)))
	}
	if state.HelpLine != "" {
		parts = append(parts, state.HelpLine)
	}
	return strings.Join(parts, "  ")
}
