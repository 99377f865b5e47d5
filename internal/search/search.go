package search

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	defaultMinQueryLen    = 2
	defaultPersonTarget   = 20
	defaultPersonMaxPages = 6
)

// Options tunes remote search. Zero values use the defaults.
type Options struct {
	MinQueryLen    int // queries shorter than this (in runes, trimmed) are not sent
	PersonTarget   int // stop paging once this many people with a profile image are found
	PersonMaxPages int // never request more pages than this
}

// Result is the outcome of one Search call
type Result struct {
	Query  string
	Mode   domain.SearchMode
	Movies []domain.Movie
	People []domain.Person

	// Skipped is set when the query was too short to send
	Skipped bool
	// Stale is set when a newer Search started before this one finished.
	// Callers must not apply a stale result.
	Stale bool
}

// Service runs movie and person searches against the catalog API
type Service struct {
	repo   domain.SearchRepository
	opts   Options
	logger *slog.Logger
	gen    atomic.Uint64
}

// NewService creates a new search service
func NewService(repo domain.SearchRepository, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MinQueryLen <= 0 {
		opts.MinQueryLen = defaultMinQueryLen
	}
	if opts.PersonTarget <= 0 {
		opts.PersonTarget = defaultPersonTarget
	}
	if opts.PersonMaxPages <= 0 {
		opts.PersonMaxPages = defaultPersonMaxPages
	}
	return &Service{
		repo:   repo,
		opts:   opts,
		logger: logger,
	}
}

// Search runs query in the given mode.
// Every call supersedes earlier ones, including calls that are skipped for
// being too short; a superseded call returns a Result with Stale set and no error.
func (s *Service) Search(ctx context.Context, query string, mode domain.SearchMode) (Result, error) {
	gen := s.gen.Add(1)
	query = strings.TrimSpace(query)
	res := Result{Query: query, Mode: mode}

	if utf8.RuneCountInString(query) < s.opts.MinQueryLen {
		res.Skipped = true
		return res, nil
	}

	s.logger.Debug("searching", "query", query, "mode", mode.String())

	var err error
	switch mode {
	case domain.SearchPeople:
		res.People, err = s.searchPeople(ctx, query)
	default:
		res.Movies, err = s.searchMovies(ctx, query)
	}

	if gen != s.gen.Load() {
		s.logger.Debug("discarding stale search", "query", query)
		return Result{Query: query, Mode: mode, Stale: true}, nil
	}
	if err != nil {
		s.logger.Error("search failed", "query", query, "mode", mode.String(), "error", err)
		return res, err
	}

	s.logger.Debug("search complete", "query", query, "movies", len(res.Movies), "people", len(res.People))
	return res, nil
}

// searchMovies fetches the first result page and drops movies without a poster
func (s *Service) searchMovies(ctx context.Context, query string) ([]domain.Movie, error) {
	page, err := s.repo.SearchMovies(ctx, query, 1)
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(page.Items))
	for _, m := range page.Items {
		if m.HasPoster() {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// searchPeople pages through person results keeping people with a profile
// image until PersonTarget are collected, PersonMaxPages were read or the
// API runs out of pages.
func (s *Service) searchPeople(ctx context.Context, query string) ([]domain.Person, error) {
	people := make([]domain.Person, 0, s.opts.PersonTarget)
	seen := make(map[int]struct{})

	for page := 1; page <= s.opts.PersonMaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := s.repo.SearchPeople(ctx, query, page)
		if err != nil {
			return nil, err
		}

		for _, p := range result.Items {
			if !p.HasProfile() {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			people = append(people, p)
		}

		if len(people) >= s.opts.PersonTarget || page >= result.TotalPages {
			break
		}
	}
	return people, nil
}
