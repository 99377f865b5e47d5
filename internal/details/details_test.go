package details

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *mocks.MockMetadataRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetadataRepository(ctrl)
	return NewService(repo, nil), repo
}

func TestMovie_AssemblesSections(t *testing.T) {
	s, repo := newService(t)
	ctx := context.Background()

	cast := make([]domain.CastMember, 15)
	for i := range cast {
		cast[i] = domain.CastMember{ID: i + 1, Order: 14 - i}
	}
	reviews := make([]domain.Review, 8)
	recs := make([]domain.Movie, 20)

	repo.EXPECT().GetMovie(ctx, 550).Return(&domain.MovieDetail{Movie: domain.Movie{ID: 550, Title: "Fight Club"}}, nil)
	repo.EXPECT().GetMovieCredits(ctx, 550).Return(cast, nil)
	repo.EXPECT().GetMovieReviews(ctx, 550).Return(reviews, nil)
	repo.EXPECT().GetRecommendations(ctx, 550).Return(recs, nil)

	view, err := s.Movie(ctx, 550)
	require.NoError(t, err)

	assert.Equal(t, "Fight Club", view.Movie.Title)
	require.Len(t, view.Cast, MaxCast)
	assert.Equal(t, 0, view.Cast[0].Order)
	assert.Equal(t, 15, view.Cast[0].ID)
	assert.Len(t, view.Reviews, MaxReviews)
	assert.Len(t, view.Recommendations, MaxRecommendations)
}

func TestMovie_NotFound(t *testing.T) {
	s, repo := newService(t)
	ctx := context.Background()

	repo.EXPECT().GetMovie(ctx, 1).Return(nil, domain.Errorf(domain.KindNotFound, "movie 1", "not found"))

	_, err := s.Movie(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Not found", domain.UserMessage(err, "Failed to load movie"))
}

func TestMovie_SecondaryFailuresDegrade(t *testing.T) {
	s, repo := newService(t)
	ctx := context.Background()
	netErr := domain.Errorf(domain.KindNetwork, "op", "down")

	repo.EXPECT().GetMovie(ctx, 2).Return(&domain.MovieDetail{Movie: domain.Movie{ID: 2}}, nil)
	repo.EXPECT().GetMovieCredits(ctx, 2).Return(nil, netErr)
	repo.EXPECT().GetMovieReviews(ctx, 2).Return(nil, netErr)
	repo.EXPECT().GetRecommendations(ctx, 2).Return([]domain.Movie{{ID: 3}}, nil)

	view, err := s.Movie(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, view.Cast)
	assert.Empty(t, view.Reviews)
	assert.Len(t, view.Recommendations, 1)
}

func TestPerson_CreditsSortedAndUnique(t *testing.T) {
	s, repo := newService(t)
	ctx := context.Background()

	repo.EXPECT().GetPerson(ctx, 10).Return(&domain.PersonDetail{ID: 10, Name: "Sigourney Weaver"}, nil)
	repo.EXPECT().GetPersonMovieCredits(ctx, 10).Return([]domain.Movie{
		{ID: 1, Popularity: 5},
		{ID: 2, Popularity: 50},
		{ID: 1, Popularity: 5},
		{ID: 3, Popularity: 20},
	}, nil)

	view, err := s.Person(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Sigourney Weaver", view.Person.Name)

	got := make([]int, len(view.Credits))
	for i, m := range view.Credits {
		got[i] = m.ID
	}
	assert.Equal(t, []int{2, 3, 1}, got)
}

func TestPerson_Errors(t *testing.T) {
	s, repo := newService(t)
	ctx := context.Background()

	repo.EXPECT().GetPerson(ctx, 1).Return(nil, domain.Errorf(domain.KindAuth, "person 1", "401"))
	_, err := s.Person(ctx, 1)
	assert.Equal(t, domain.KindAuth, domain.KindOf(err))

	repo.EXPECT().GetPerson(ctx, 2).Return(&domain.PersonDetail{ID: 2}, nil)
	repo.EXPECT().GetPersonMovieCredits(ctx, 2).Return(nil, domain.Errorf(domain.KindNetwork, "credits", "down"))
	view, err := s.Person(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, view.Credits)
}
