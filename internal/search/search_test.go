package search

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *mocks.MockSearchRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSearchRepository(ctrl)
	return NewService(repo, Options{}, nil), repo
}

// peoplePage builds a page of n people; every other one has a profile image
func peoplePage(page, total, n int) domain.Page[domain.Person] {
	items := make([]domain.Person, n)
	for i := range items {
		id := page*100 + i
		items[i] = domain.Person{ID: id, Name: fmt.Sprintf("Person %d", id)}
		if i%2 == 0 {
			items[i].ProfilePath = "/p.jpg"
		}
	}
	return domain.Page[domain.Person]{Items: items, Page: page, TotalPages: total}
}

func TestSearch_ShortQuerySkipped(t *testing.T) {
	s, _ := newService(t) // no expectations: any call fails the test

	for _, q := range []string{"", "a", "  b  ", "é"} {
		res, err := s.Search(context.Background(), q, domain.SearchMovies)
		require.NoError(t, err)
		assert.True(t, res.Skipped, q)
		assert.Empty(t, res.Movies)
	}
}

func TestSearch_MoviesDropsPosterless(t *testing.T) {
	s, repo := newService(t)

	repo.EXPECT().SearchMovies(gomock.Any(), "alien", 1).Return(domain.Page[domain.Movie]{
		Items: []domain.Movie{
			{ID: 1, Title: "Alien", PosterPath: "/a.jpg"},
			{ID: 2, Title: "Alien Obscure"},
		},
		Page: 1, TotalPages: 3,
	}, nil)

	res, err := s.Search(context.Background(), "  alien ", domain.SearchMovies)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.False(t, res.Stale)
	assert.Equal(t, "alien", res.Query)
	require.Len(t, res.Movies, 1)
	assert.Equal(t, 1, res.Movies[0].ID)
}

func TestSearch_TwoRunesIsEnough(t *testing.T) {
	s, repo := newService(t)

	repo.EXPECT().SearchMovies(gomock.Any(), "éa", 1).Return(domain.Page[domain.Movie]{Items: []domain.Movie{}}, nil)

	res, err := s.Search(context.Background(), "éa", domain.SearchMovies)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
}

func TestSearch_PeopleStopsAtTarget(t *testing.T) {
	s, repo := newService(t)

	// 20 results per page, 10 with profiles: two pages reach the target of 20
	repo.EXPECT().SearchPeople(gomock.Any(), "smith", 1).Return(peoplePage(1, 50, 20), nil)
	repo.EXPECT().SearchPeople(gomock.Any(), "smith", 2).Return(peoplePage(2, 50, 20), nil)

	res, err := s.Search(context.Background(), "smith", domain.SearchPeople)
	require.NoError(t, err)
	assert.Len(t, res.People, 20)
	for _, p := range res.People {
		assert.True(t, p.HasProfile())
	}
}

func TestSearch_PeopleStopsAtPageCeiling(t *testing.T) {
	s, repo := newService(t)

	// 2 profiled people per page never reach 20; paging stops after 6 pages
	for p := 1; p <= 6; p++ {
		repo.EXPECT().SearchPeople(gomock.Any(), "zz", p).Return(peoplePage(p, 100, 4), nil)
	}

	res, err := s.Search(context.Background(), "zz", domain.SearchPeople)
	require.NoError(t, err)
	assert.Len(t, res.People, 12)
}

func TestSearch_PeopleStopsAtLastPage(t *testing.T) {
	s, repo := newService(t)

	repo.EXPECT().SearchPeople(gomock.Any(), "rare", 1).Return(peoplePage(1, 2, 4), nil)
	repo.EXPECT().SearchPeople(gomock.Any(), "rare", 2).Return(peoplePage(2, 2, 4), nil)

	res, err := s.Search(context.Background(), "rare", domain.SearchPeople)
	require.NoError(t, err)
	assert.Len(t, res.People, 4)
}

func TestSearch_PeopleDedupAcrossPages(t *testing.T) {
	s, repo := newService(t)

	same := domain.Page[domain.Person]{
		Items:      []domain.Person{{ID: 7, Name: "Seven", ProfilePath: "/7.jpg"}},
		TotalPages: 2,
	}
	repo.EXPECT().SearchPeople(gomock.Any(), "seven", 1).Return(same, nil)
	repo.EXPECT().SearchPeople(gomock.Any(), "seven", 2).Return(same, nil)

	res, err := s.Search(context.Background(), "seven", domain.SearchPeople)
	require.NoError(t, err)
	assert.Len(t, res.People, 1)
}

func TestSearch_ErrorReturned(t *testing.T) {
	s, repo := newService(t)

	repo.EXPECT().SearchPeople(gomock.Any(), "err", 1).Return(peoplePage(1, 5, 2), nil)
	repo.EXPECT().SearchPeople(gomock.Any(), "err", 2).
		Return(domain.Page[domain.Person]{}, domain.Errorf(domain.KindNetwork, "search person", "timeout"))

	_, err := s.Search(context.Background(), "err", domain.SearchPeople)
	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
	assert.Equal(t, "Failed to fetch search results", domain.UserMessage(err, "Failed to fetch search results"))
}

func TestSearch_StaleResultFlagged(t *testing.T) {
	s, repo := newService(t)

	repo.EXPECT().SearchMovies(gomock.Any(), "old query", 1).DoAndReturn(
		func(ctx context.Context, query string, page int) (domain.Page[domain.Movie], error) {
			// the user keeps typing while the first request is in flight
			res, err := s.Search(ctx, "o", domain.SearchMovies)
			require.NoError(t, err)
			require.True(t, res.Skipped)
			return domain.Page[domain.Movie]{Items: []domain.Movie{{ID: 1, PosterPath: "/x.jpg"}}}, nil
		})

	res, err := s.Search(context.Background(), "old query", domain.SearchMovies)
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Empty(t, res.Movies)
}

func TestFilterLocal(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "The Matrix"},
		{ID: 2, Title: "Alien"},
		{ID: 3, Title: "The Matrix Reloaded"},
	}

	results := FilterLocal("matrix", movies)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Movie.ID)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, results[0].MatchedIndexes)
	assert.Equal(t, 3, results[1].Movie.ID)
	assert.Equal(t, 2, results[1].Index)

	assert.Nil(t, FilterLocal("  ", movies))
	assert.Empty(t, FilterLocal("zzzz", movies))
}
