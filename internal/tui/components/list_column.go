package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for list columns
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// ListColumn is a scrollable, filterable list of movies or people
type ListColumn struct {
	title     string
	items     []domain.ListItem
	movies    []domain.Movie // set when every item is a movie; enables "/" filtering
	emptyText string

	isFavorite func(id int) bool

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool

	loading bool
	spinner string // current spinner frame, rendered while loading
	footer  string // status line under the items, e.g. "page 2/40"

	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filtered     []search.FilterResult // nil when no filter is applied
	filterFunc   FilterFunc
}

// FilterFunc matches query against the listed movies. Result indexes point
// into movies.
type FilterFunc func(query string, movies []domain.Movie) []search.FilterResult

// NewListColumn creates an empty list with the given title
func NewListColumn(title string) *ListColumn {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ListColumn{
		title:       title,
		emptyText:   "No items",
		filterInput: ti,
		filterFunc:  search.FilterLocal,
	}
}

// SetMovies replaces the items with movies, keeping the cursor where possible
func (c *ListColumn) SetMovies(movies []domain.Movie) {
	c.movies = movies
	c.items = make([]domain.ListItem, len(movies))
	for i, m := range movies {
		c.items[i] = m
	}
	c.afterSetItems()
}

// SetPeople replaces the items with people
func (c *ListColumn) SetPeople(people []domain.Person) {
	c.movies = nil
	c.items = make([]domain.ListItem, len(people))
	for i, p := range people {
		c.items[i] = p
	}
	c.afterSetItems()
}

func (c *ListColumn) afterSetItems() {
	c.loading = false
	if c.filterActive {
		c.applyFilter()
	}
	c.SetSelectedIndex(c.cursor)
}

// Reset clears the items and moves the cursor to the top
func (c *ListColumn) Reset() {
	c.clearFilter()
	c.items = nil
	c.movies = nil
	c.cursor = 0
	c.offset = 0
}

// SetFavoriteFunc sets the predicate used to mark favorite rows
func (c *ListColumn) SetFavoriteFunc(fn func(id int) bool) {
	c.isFavorite = fn
}

// SetFilterFunc replaces the "/" matcher; nil restores the default
func (c *ListColumn) SetFilterFunc(fn FilterFunc) {
	if fn == nil {
		fn = search.FilterLocal
	}
	c.filterFunc = fn
}

// SetEmptyText sets the placeholder shown when there are no items
func (c *ListColumn) SetEmptyText(text string) {
	c.emptyText = text
}

func (c *ListColumn) SetTitle(title string) { c.title = title }

// SetFooter sets the status line under the items ("" hides it)
func (c *ListColumn) SetFooter(footer string) {
	c.footer = footer
	c.recalcMaxVisible()
}

func (c *ListColumn) SetLoading(loading bool) { c.loading = loading }

func (c *ListColumn) IsLoading() bool { return c.loading }

func (c *ListColumn) SetSpinner(frame string) { c.spinner = frame }

func (c *ListColumn) SetFocused(focused bool) { c.focused = focused }

// SetSize sets the outer dimensions including the border
func (c *ListColumn) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

// ItemCount returns the number of visible (filtered) items
func (c *ListColumn) ItemCount() int {
	if c.filtered != nil {
		return len(c.filtered)
	}
	return len(c.items)
}

// TotalCount returns the number of items before filtering
func (c *ListColumn) TotalCount() int {
	return len(c.items)
}

// Selected returns the item under the cursor
func (c *ListColumn) Selected() (domain.ListItem, bool) {
	if c.cursor < 0 || c.cursor >= c.ItemCount() {
		return nil, false
	}
	return c.items[c.mapIndex(c.cursor)], true
}

// SelectedMovie returns the movie under the cursor, if the row is a movie
func (c *ListColumn) SelectedMovie() (domain.Movie, bool) {
	item, ok := c.Selected()
	if !ok {
		return domain.Movie{}, false
	}
	m, ok := item.(domain.Movie)
	return m, ok
}

func (c *ListColumn) SelectedIndex() int { return c.cursor }

// SetSelectedIndex moves the cursor, clamped to the visible items
func (c *ListColumn) SetSelectedIndex(idx int) {
	last := c.ItemCount() - 1
	if last < 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	c.cursor = max(0, min(idx, last))
	c.ensureVisible()
}

// NearBottom reports whether the cursor is within n rows of the last item
func (c *ListColumn) NearBottom(n int) bool {
	return c.filtered == nil && len(c.items) > 0 && c.cursor >= len(c.items)-1-n
}

// MoveUp moves the cursor up by n rows
func (c *ListColumn) MoveUp(n int) { c.SetSelectedIndex(c.cursor - n) }

// MoveDown moves the cursor down by n rows
func (c *ListColumn) MoveDown(n int) { c.SetSelectedIndex(c.cursor + n) }

// HalfPage returns half the visible rows, at least 1
func (c *ListColumn) HalfPage() int { return max(1, c.maxVisible/2) }

// Top moves the cursor to the first item
func (c *ListColumn) Top() { c.SetSelectedIndex(0) }

// Bottom moves the cursor to the last item
func (c *ListColumn) Bottom() { c.SetSelectedIndex(c.ItemCount() - 1) }

// CanFilter reports whether the list holds movies that can be filtered locally
func (c *ListColumn) CanFilter() bool {
	return c.movies != nil
}

// StartFilter activates the filter input
func (c *ListColumn) StartFilter() {
	if !c.CanFilter() {
		return
	}
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering reports whether a filter is applied
func (c *ListColumn) IsFiltering() bool { return c.filterActive }

// IsFilterTyping reports whether the filter input has focus
func (c *ListColumn) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter removes the filter and shows all items
func (c *ListColumn) ClearFilter() { c.clearFilter() }

// Update routes key input to the filter while it is active
func (c *ListColumn) Update(msg tea.Msg) tea.Cmd {
	if !c.filterActive {
		return nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !c.filterInput.Focused() {
		if isKey {
			switch {
			case key.Matches(keyMsg, ListColumnKeys.Escape):
				c.clearFilter()
			case key.Matches(keyMsg, ListColumnKeys.Filter):
				c.filterInput.Focus()
			}
		}
		return nil
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, ListColumnKeys.Escape):
			c.clearFilter()
			return nil
		case key.Matches(keyMsg, ListColumnKeys.Accept):
			// keep the results, hand keys back to navigation
			c.filterInput.Blur()
			return nil
		case keyMsg.Type == tea.KeyBackspace && c.filterInput.Value() == "":
			c.clearFilter()
			return nil
		}
	}

	var cmd tea.Cmd
	c.filterInput, cmd = c.filterInput.Update(msg)
	c.applyFilter()
	return cmd
}

func (c *ListColumn) applyFilter() {
	c.filterQuery = c.filterInput.Value()
	if strings.TrimSpace(c.filterQuery) == "" {
		c.filtered = nil
		return
	}
	c.filtered = c.filterFunc(c.filterQuery, c.movies)
	if c.filtered == nil {
		c.filtered = []search.FilterResult{}
	}
	c.cursor = 0
	c.offset = 0
}

func (c *ListColumn) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filtered = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
}

func (c *ListColumn) mapIndex(i int) int {
	if c.filtered != nil && i < len(c.filtered) {
		return c.filtered[i].Index
	}
	return i
}

func (c *ListColumn) matchedIndexes(i int) []int {
	if c.filtered != nil && i < len(c.filtered) {
		return c.filtered[i].MatchedIndexes
	}
	return nil
}

func (c *ListColumn) recalcMaxVisible() {
	// title line + scroll indicators + optional footer and filter bar
	c.maxVisible = c.height - BorderHeight - ScrollIndicatorLines - 1
	if c.footer != "" {
		c.maxVisible--
	}
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *ListColumn) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

// View renders the bordered list
func (c *ListColumn) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(0, c.width-frameW)).
		Height(max(0, c.height-frameH)).
		Render(c.renderContent())
}

func (c *ListColumn) renderContent() string {
	itemWidth := max(c.width-BorderWidth, 10)
	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	count := c.ItemCount()
	if count == 0 {
		msg := c.emptyText
		switch {
		case c.loading:
			msg = c.spinner + " Loading..."
		case c.filterActive && c.filterQuery != "":
			msg = "No matches"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(msg) + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		item := c.items[c.mapIndex(i)]
		fav := c.isFavorite != nil && item.GetItemType() == "movie" && c.isFavorite(item.GetID())
		lines = append(lines, RenderItemRow(item, fav, c.matchedIndexes(i), i == c.cursor, itemWidth))
	}

	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	switch {
	case end < count:
		footer = styles.DimStyle.Render("↓ more")
	case c.loading:
		footer = styles.DimStyle.Render(c.spinner + " Loading more...")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.footer != "" {
		content += "\n" + styles.DimStyle.Render(styles.Truncate(c.footer, itemWidth))
	}
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *ListColumn) renderFilterBar() string {
	bar := c.filterInput.View()
	if c.filterQuery != "" {
		bar += styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), c.TotalCount()))
	}
	return bar
}
