// Package details assembles the movie and person detail views.
package details

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/mmcdole/marquee/internal/domain"
)

// Section sizes of the movie view
const (
	MaxCast            = 10
	MaxReviews         = 5
	MaxRecommendations = 5
)

// MovieView is everything shown on a movie detail page
type MovieView struct {
	Movie           domain.MovieDetail
	Cast            []domain.CastMember
	Reviews         []domain.Review
	Recommendations []domain.Movie
}

// PersonView is everything shown on a person detail page
type PersonView struct {
	Person  domain.PersonDetail
	Credits []domain.Movie // most popular first
}

// Service loads detail views
type Service struct {
	repo   domain.MetadataRepository
	logger *slog.Logger
}

// NewService creates a new details service
func NewService(repo domain.MetadataRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Movie loads the movie record, then its cast, reviews and recommendations.
// Only a failure of the movie record itself is returned; the other sections
// come back empty when their request fails.
func (s *Service) Movie(ctx context.Context, id int) (MovieView, error) {
	detail, err := s.repo.GetMovie(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch movie", "id", id, "error", err)
		return MovieView{}, err
	}

	view := MovieView{Movie: *detail}

	if cast, err := s.repo.GetMovieCredits(ctx, id); err != nil {
		s.logger.Warn("failed to fetch credits", "id", id, "error", err)
	} else {
		slices.SortStableFunc(cast, func(a, b domain.CastMember) int {
			return cmp.Compare(a.Order, b.Order)
		})
		view.Cast = head(cast, MaxCast)
	}

	if reviews, err := s.repo.GetMovieReviews(ctx, id); err != nil {
		s.logger.Warn("failed to fetch reviews", "id", id, "error", err)
	} else {
		view.Reviews = head(reviews, MaxReviews)
	}

	if recs, err := s.repo.GetRecommendations(ctx, id); err != nil {
		s.logger.Warn("failed to fetch recommendations", "id", id, "error", err)
	} else {
		view.Recommendations = head(recs, MaxRecommendations)
	}

	s.logger.Debug("loaded movie view",
		"id", id,
		"cast", len(view.Cast),
		"reviews", len(view.Reviews),
		"recommendations", len(view.Recommendations),
	)
	return view, nil
}

// Person loads the person record and their movie credits
func (s *Service) Person(ctx context.Context, id int) (PersonView, error) {
	person, err := s.repo.GetPerson(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch person", "id", id, "error", err)
		return PersonView{}, err
	}

	view := PersonView{Person: *person}

	credits, err := s.repo.GetPersonMovieCredits(ctx, id)
	if err != nil {
		s.logger.Warn("failed to fetch person credits", "id", id, "error", err)
		return view, nil
	}

	// A person can be credited twice on one movie (several roles)
	seen := make(map[int]struct{}, len(credits))
	unique := credits[:0:0]
	for _, m := range credits {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		unique = append(unique, m)
	}
	slices.SortStableFunc(unique, func(a, b domain.Movie) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	view.Credits = unique

	return view, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
