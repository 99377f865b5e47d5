package tui

import (
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg carries the catalog state after a page fetch finished
type CatalogLoadedMsg struct {
	State catalog.State
	Err   error
}

// SearchResultMsg carries the outcome of one remote search
type SearchResultMsg struct {
	Result search.Result
	Err    error
}

// MovieLoadedMsg signals that a movie detail page is ready
type MovieLoadedMsg struct {
	ID   int
	View details.MovieView
	Err  error
}

// PersonLoadedMsg signals that a person detail page is ready
type PersonLoadedMsg struct {
	ID   int
	View details.PersonView
	Err  error
}

// FavoritesChangedMsg carries the full favorites set after a mutation
type FavoritesChangedMsg struct {
	Movies []domain.Movie
}

// FavoriteToggledMsg reports the outcome of a toggle or remove
type FavoriteToggledMsg struct {
	Movie domain.Movie
	Added bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
