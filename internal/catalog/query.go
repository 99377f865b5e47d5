package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Source selects the listing endpoint
type Source int

const (
	SourceDiscover Source = iota // sortable, filterable
	SourcePopular                // fixed popular list; sort and filters ignored
)

func (s Source) String() string {
	if s == SourcePopular {
		return "popular"
	}
	return "discover"
}

// ParseSource parses "discover" or "popular"
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "discover":
		return SourceDiscover, nil
	case "popular":
		return SourcePopular, nil
	}
	return SourceDiscover, fmt.Errorf("unknown catalog source %q", s)
}

// DefaultSort is the sort key used when none is configured
const DefaultSort = "popularity.desc"

// SortOption is a selectable sort key with its display label
type SortOption struct {
	Key   string
	Label string
}

// SortOptions lists the supported discover sort keys in menu order
var SortOptions = []SortOption{
	{Key: "popularity.desc", Label: "Most popular"},
	{Key: "vote_average.desc", Label: "Highest rated"},
	{Key: "vote_average.asc", Label: "Lowest rated"},
	{Key: "release_date.desc", Label: "Newest"},
	{Key: "original_title.asc", Label: "Title (A-Z)"},
}

// ValidSort reports whether key is one of SortOptions
func ValidSort(key string) bool {
	for _, o := range SortOptions {
		if o.Key == key {
			return true
		}
	}
	return false
}

// SortLabel returns the display label of key, or the key itself if unknown
func SortLabel(key string) string {
	for _, o := range SortOptions {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

// Bounds of the filter form
const (
	MinRatingBound = 0.0
	MaxRatingBound = 10.0
	MinYearBound   = 1950
)

// ErrInvalidFilters is returned by Filters.Validate
var ErrInvalidFilters = errors.New("invalid filters")

// Filters are the rating and release-year ranges of a discover listing
type Filters struct {
	MinRating float64
	MaxRating float64
	MinYear   int
	MaxYear   int
}

// Validate checks both ranges against the form bounds; maxYear is the current year.
// A zero maximum rating is rejected: the discover query reads zero as "no bound".
func (f Filters) Validate(maxYear int) error {
	switch {
	case f.MinRating < MinRatingBound || f.MaxRating > MaxRatingBound:
		return fmt.Errorf("%w: rating must be within %.0f-%.0f", ErrInvalidFilters, MinRatingBound, MaxRatingBound)
	case f.MaxRating <= MinRatingBound:
		return fmt.Errorf("%w: maximum rating must be above %.0f", ErrInvalidFilters, MinRatingBound)
	case f.MinRating > f.MaxRating:
		return fmt.Errorf("%w: minimum rating %.1f is above maximum %.1f", ErrInvalidFilters, f.MinRating, f.MaxRating)
	case f.MinYear < MinYearBound || f.MaxYear > maxYear:
		return fmt.Errorf("%w: year must be within %d-%d", ErrInvalidFilters, MinYearBound, maxYear)
	case f.MinYear > f.MaxYear:
		return fmt.Errorf("%w: start year %d is after end year %d", ErrInvalidFilters, f.MinYear, f.MaxYear)
	}
	return nil
}

// String renders the filters for the status line, e.g. "★ 6.0-10.0 · 2000-2026"
func (f Filters) String() string {
	return fmt.Sprintf("★ %.1f-%.1f · %d-%d", f.MinRating, f.MaxRating, f.MinYear, f.MaxYear)
}
