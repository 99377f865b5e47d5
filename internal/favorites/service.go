// Package favorites owns the user's saved movies.
//
// The whole set lives under one storage key as a JSON array and is rewritten on
// every mutation. All read-modify-write cycles run under a single mutex, so two
// panes toggling different movies can never lose each other's update.
package favorites

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/marquee/internal/domain"
)

// StorageKey is the key holding the serialized favorites array
const StorageKey = "favorites"

// Listener receives the full set after every successful mutation
type Listener func(movies []domain.Movie)

// Service is the single owned favorites store.
type Service struct {
	store  domain.Store
	logger *slog.Logger

	writeMu sync.Mutex // serializes read-modify-write against the store

	mu       sync.RWMutex // protects snapshot and ids
	snapshot []domain.Movie
	ids      map[int]struct{}

	subMu     sync.Mutex
	listeners map[int]Listener
	nextSub   int
}

// NewService creates a favorites service over store.
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     store,
		logger:    logger,
		ids:       make(map[int]struct{}),
		listeners: make(map[int]Listener),
	}
}

// Load reads the persisted set. A missing or unreadable blob yields an empty
// set; the failure is logged and never returned.
func (s *Service) Load() []domain.Movie {
	s.writeMu.Lock()
	movies := s.read()
	s.setSnapshot(movies)
	s.writeMu.Unlock()

	return cloneMovies(movies)
}

// IsFavorite reports membership in the most recently loaded or written set
func (s *Service) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Snapshot returns the most recently loaded or written set without touching storage
func (s *Service) Snapshot() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMovies(s.snapshot)
}

// Toggle removes movie if its id is saved, otherwise appends a copy of it.
// The full set is persisted before it is returned.
func (s *Service) Toggle(movie domain.Movie) ([]domain.Movie, error) {
	return s.mutate("toggle", movie.ID, func(movies []domain.Movie) []domain.Movie {
		if idx := indexOf(movies, movie.ID); idx >= 0 {
			return append(movies[:idx], movies[idx+1:]...)
		}
		return append(movies, cloneMovie(movie))
	})
}

// Remove deletes id from the set; removing an absent id still rewrites the set
func (s *Service) Remove(id int) ([]domain.Movie, error) {
	return s.mutate("remove", id, func(movies []domain.Movie) []domain.Movie {
		if idx := indexOf(movies, id); idx >= 0 {
			return append(movies[:idx], movies[idx+1:]...)
		}
		return movies
	})
}

// Subscribe registers fn for change notifications. The returned func unsubscribes.
func (s *Service) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.listeners, id)
		s.subMu.Unlock()
	}
}

// Find returns saved movies whose title fuzzily matches query, best match first.
// An empty query returns the whole snapshot.
func (s *Service) Find(query string) []domain.Movie {
	movies := s.Snapshot()
	query = strings.TrimSpace(query)
	if query == "" {
		return movies
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	results := make([]domain.Movie, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, movies[r.OriginalIndex])
	}
	return results
}

func (s *Service) mutate(op string, id int, apply func([]domain.Movie) []domain.Movie) ([]domain.Movie, error) {
	s.writeMu.Lock()

	movies := apply(s.read())

	data, err := json.Marshal(movies)
	if err != nil {
		s.writeMu.Unlock()
		return nil, domain.NewError(domain.KindStorageCorrupt, op, err)
	}
	if err := s.store.Put(StorageKey, data); err != nil {
		s.writeMu.Unlock()
		s.logger.Error("failed to save favorites", "error", err, "op", op, "movieID", id)
		return nil, domain.NewError(domain.KindStorageCorrupt, op, err)
	}

	s.setSnapshot(movies)
	s.writeMu.Unlock()

	s.logger.Debug("favorites updated", "op", op, "movieID", id, "count", len(movies))
	s.notify(movies)

	return cloneMovies(movies), nil
}

// read decodes the stored set, dropping duplicate ids (first seen wins)
func (s *Service) read() []domain.Movie {
	data, ok := s.store.Get(StorageKey)
	if !ok || len(data) == 0 {
		return []domain.Movie{}
	}

	var movies []domain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		s.logger.Warn("stored favorites unreadable, treating as empty",
			"error", domain.NewError(domain.KindStorageCorrupt, "load", err))
		return []domain.Movie{}
	}

	seen := make(map[int]struct{}, len(movies))
	out := movies[:0]
	for _, m := range movies {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (s *Service) setSnapshot(movies []domain.Movie) {
	ids := make(map[int]struct{}, len(movies))
	for _, m := range movies {
		ids[m.ID] = struct{}{}
	}

	s.mu.Lock()
	s.snapshot = cloneMovies(movies)
	s.ids = ids
	s.mu.Unlock()
}

func (s *Service) notify(movies []domain.Movie) {
	s.subMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(cloneMovies(movies))
	}
}

func indexOf(movies []domain.Movie, id int) int {
	for i, m := range movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func cloneMovie(m domain.Movie) domain.Movie {
	if m.GenreIDs != nil {
		m.GenreIDs = append([]int(nil), m.GenreIDs...)
	}
	return m
}

func cloneMovies(movies []domain.Movie) []domain.Movie {
	out := make([]domain.Movie, len(movies))
	for i, m := range movies {
		out[i] = cloneMovie(m)
	}
	return out
}
