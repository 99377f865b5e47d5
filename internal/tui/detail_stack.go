package tui

import (
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// DetailPage is one entry of the detail navigation stack.
// Exactly one of Movie and Person is set once the page has loaded.
type DetailPage struct {
	Kind   components.LinkKind
	ID     int
	Movie  *details.MovieView
	Person *details.PersonView
	Err    string // user-facing message when loading failed
	Cursor int // saved link cursor, restored when navigating back
}

// Loaded reports whether the page data has arrived
func (p *DetailPage) Loaded() bool {
	return p.Movie != nil || p.Person != nil
}

// DetailStack manages the pages opened on top of a pane.
//
// Visual representation:
//   Pane:        [Discover list]
//   Movie:       [Discover list] > Alien
//   Cast member: [Discover list] > Alien > Sigourney Weaver
//
// The top page is shown in the inspector; an empty stack shows the pane.
type DetailStack struct {
	pages []*DetailPage
}

// NewDetailStack creates a new empty stack
func NewDetailStack() *DetailStack {
	return &DetailStack{}
}

// Len returns the number of pages in the stack
func (ds *DetailStack) Len() int {
	return len(ds.pages)
}

// Top returns the topmost (visible) page
func (ds *DetailStack) Top() *DetailPage {
	if len(ds.pages) == 0 {
		return nil
	}
	return ds.pages[len(ds.pages)-1]
}

// Push opens a new page, saving the cursor of the page below
func (ds *DetailStack) Push(page *DetailPage, saveCursor int) {
	if top := ds.Top(); top != nil {
		top.Cursor = saveCursor
	}
	ds.pages = append(ds.pages, page)
}

// Pop removes the top page and returns the new top (nil when back at the pane)
func (ds *DetailStack) Pop() *DetailPage {
	if len(ds.pages) == 0 {
		return nil
	}
	ds.pages = ds.pages[:len(ds.pages)-1]
	return ds.Top()
}

// Clear closes all pages
func (ds *DetailStack) Clear() {
	ds.pages = nil
}

// Find returns the page awaiting data for kind/id, if it is on the stack
func (ds *DetailStack) Find(kind components.LinkKind, id int) *DetailPage {
	for i := len(ds.pages) - 1; i >= 0; i-- {
		if p := ds.pages[i]; p.Kind == kind && p.ID == id {
			return p
		}
	}
	return nil
}
