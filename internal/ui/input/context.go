package input

// ModelContext implements the Context interface for the input handler.
// The model fills it in before every key dispatch.
type ModelContext struct {
	Page    int
	Pages   int
	Results bool
	Text    string
	Cursor  int
	Rows    int
}

// CurrentPage returns the page shown in the grid
func (c *ModelContext) CurrentPage() int {
	return c.Page
}

// TotalPages returns the page count of the shown result
func (c *ModelContext) TotalPages() int {
	return c.Pages
}

// ShowingResults reports whether the search results view is open
func (c *ModelContext) ShowingResults() bool {
	return c.Results
}

// SearchText returns the text of the search bar
func (c *ModelContext) SearchText() string {
	return c.Text
}

// DropdownCursor returns the highlighted dropdown row, -1 for none
func (c *ModelContext) DropdownCursor() int {
	return c.Cursor
}

// DropdownLen returns the number of rows in the search dropdown
func (c *ModelContext) DropdownLen() int {
	return c.Rows
}
