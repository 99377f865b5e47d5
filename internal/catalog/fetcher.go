// Package catalog pages through the TMDB movie listings for the Home pane.
//
// A Fetcher owns one accumulated, id-unique list. Page 1 replaces it and later
// pages extend it. Each fetch takes a generation number; a response that comes
// back after a newer fetch, sort or filter change has started is dropped.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

// maxAPIPage is the highest page the discover endpoint will serve
const maxAPIPage = 500

// State is a snapshot of the listing
type State struct {
	Items      []domain.Movie
	Page       int // last page merged; 0 before the first fetch
	TotalPages int
	Loading    bool
	Err        error
	Sort       string
	Filters    Filters
}

// HasMore reports whether another page can be requested
func (s State) HasMore() bool {
	return s.Page == 0 || s.Page < s.TotalPages
}

// Options configures a Fetcher
type Options struct {
	Source  Source
	Policy  FilterPolicy
	Sort    string
	Filters Filters
	Now     func() time.Time
}

// Fetcher loads catalog pages and keeps the merged list
type Fetcher struct {
	repo   domain.CatalogRepository
	logger *slog.Logger
	source Source
	policy FilterPolicy
	now    func() time.Time

	gen atomic.Uint64

	mu    sync.Mutex
	state State
}

// NewFetcher creates a fetcher. An unknown sort key falls back to DefaultSort.
func NewFetcher(repo domain.CatalogRepository, opts Options, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !ValidSort(opts.Sort) {
		if opts.Sort != "" {
			logger.Warn("unknown sort key, using default", "sort", opts.Sort)
		}
		opts.Sort = DefaultSort
	}
	return &Fetcher{
		repo:   repo,
		logger: logger,
		source: opts.Source,
		policy: opts.Policy,
		now:    opts.Now,
		state: State{
			Sort:    opts.Sort,
			Filters: opts.Filters,
		},
	}
}

// Source returns the listing endpoint in use
func (f *Fetcher) Source() Source {
	return f.source
}

// State returns a copy of the current listing state
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Items = slices.Clone(f.state.Items)
	return s
}

// FetchPage loads page and merges it into the list.
// A page beyond the last known total is a no-op. Errors are recorded in
// State.Err and leave the list untouched. A response overtaken by a newer
// fetch or a sort/filter change is dropped and nil is returned.
func (f *Fetcher) FetchPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	f.mu.Lock()
	if page > 1 && page > f.state.TotalPages {
		f.mu.Unlock()
		f.logger.Debug("page beyond total, skipping", "page", page, "totalPages", f.state.TotalPages)
		return nil
	}
	gen := f.gen.Add(1)
	q := domain.DiscoverQuery{
		Page:      page,
		SortBy:    f.state.Sort,
		MinRating: f.state.Filters.MinRating,
		MaxRating: f.state.Filters.MaxRating,
		MinYear:   f.state.Filters.MinYear,
		MaxYear:   f.state.Filters.MaxYear,
	}
	f.state.Loading = true
	f.state.Err = nil
	f.mu.Unlock()

	result, err := f.fetch(ctx, q)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen.Load() {
		f.logger.Debug("discarding stale catalog page", "page", page, "gen", gen)
		return nil
	}
	f.state.Loading = false

	if err != nil {
		f.logger.Error("failed to fetch catalog page", "page", page, "source", f.source.String(), "error", err)
		f.state.Err = err
		return err
	}

	kept := f.policy.Apply(result.Items)
	f.state.Items = Merge(f.state.Items, kept, page == 1)
	f.state.Page = page
	f.state.TotalPages = min(result.TotalPages, maxAPIPage)

	f.logger.Debug("fetched catalog page",
		"page", page,
		"totalPages", f.state.TotalPages,
		"received", len(result.Items),
		"kept", len(kept),
		"total", len(f.state.Items),
	)
	return nil
}

func (f *Fetcher) fetch(ctx context.Context, q domain.DiscoverQuery) (domain.Page[domain.Movie], error) {
	if f.source == SourcePopular {
		return f.repo.Popular(ctx, q.Page)
	}
	return f.repo.Discover(ctx, q)
}

// Refresh reloads page 1, replacing the list
func (f *Fetcher) Refresh(ctx context.Context) error {
	return f.FetchPage(ctx, 1)
}

// NextPage fetches the page after the last merged one.
// It is a no-op while a fetch is in flight or when the last page was reached.
func (f *Fetcher) NextPage(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Loading {
		f.mu.Unlock()
		return nil
	}
	next := f.state.Page + 1
	f.mu.Unlock()

	return f.FetchPage(ctx, next)
}

// SetSort switches the sort key and resets the listing to an empty page 1.
// The caller fetches page 1 afterwards.
func (f *Fetcher) SetSort(key string) error {
	if !ValidSort(key) {
		return fmt.Errorf("unknown sort key %q", key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Sort = key
	f.resetLocked()
	return nil
}

// SetFilters validates and applies the rating/year ranges, resetting the listing
func (f *Fetcher) SetFilters(filters Filters) error {
	if err := filters.Validate(f.now().Year()); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Filters = filters
	f.resetLocked()
	return nil
}

// resetLocked clears the list and invalidates in-flight fetches. Requires f.mu.
func (f *Fetcher) resetLocked() {
	f.gen.Add(1)
	f.state.Items = nil
	f.state.Page = 0
	f.state.TotalPages = 0
	f.state.Loading = false
	f.state.Err = nil
}
