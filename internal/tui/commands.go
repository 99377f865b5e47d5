package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/search"
)

// Command factories for async operations

const requestTimeout = 30 * time.Second

// FetchCatalogCmd loads a catalog page (1 replaces the list)
func FetchCatalogCmd(f *catalog.Fetcher, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := f.FetchPage(ctx, page)
		return CatalogLoadedMsg{State: f.State(), Err: err}
	}
}

// NextCatalogPageCmd loads the page after the last merged one
func NextCatalogPageCmd(f *catalog.Fetcher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := f.NextPage(ctx)
		return CatalogLoadedMsg{State: f.State(), Err: err}
	}
}

// SearchCmd runs a remote search; superseded results come back marked Stale
func SearchCmd(svc *search.Service, query string, mode domain.SearchMode) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := svc.Search(ctx, query, mode)
		return SearchResultMsg{Result: res, Err: err}
	}
}

// LoadMovieCmd loads a movie detail page
func LoadMovieCmd(svc *details.Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		view, err := svc.Movie(ctx, id)
		return MovieLoadedMsg{ID: id, View: view, Err: err}
	}
}

// LoadPersonCmd loads a person detail page
func LoadPersonCmd(svc *details.Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		view, err := svc.Person(ctx, id)
		return PersonLoadedMsg{ID: id, View: view, Err: err}
	}
}

// ToggleFavoriteCmd adds or removes a movie from the favorites
func ToggleFavoriteCmd(svc *favorites.Service, movie domain.Movie) tea.Cmd {
	return func() tea.Msg {
		movies, err := svc.Toggle(movie)
		if err != nil {
			return ErrMsg{Err: err, Context: "saving favorites"}
		}
		added := false
		for _, m := range movies {
			if m.ID == movie.ID {
				added = true
				break
			}
		}
		return FavoriteToggledMsg{Movie: movie, Added: added}
	}
}

// RemoveFavoriteCmd removes a movie from the favorites
func RemoveFavoriteCmd(svc *favorites.Service, movie domain.Movie) tea.Cmd {
	return func() tea.Msg {
		if _, err := svc.Remove(movie.ID); err != nil {
			return ErrMsg{Err: err, Context: "saving favorites"}
		}
		return FavoriteToggledMsg{Movie: movie, Added: false}
	}
}

// WaitForFavoritesCmd blocks until the favorites change, then reports the latest set
func WaitForFavoritesCmd(svc *favorites.Service, ch <-chan []domain.Movie) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		// the channel drops sends when full; the snapshot is always current
		return FavoritesChangedMsg{Movies: svc.Snapshot()}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
