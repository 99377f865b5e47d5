package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movie(id int) domain.Movie {
	return domain.Movie{
		ID:          id,
		Title:       "Movie",
		PosterPath:  "/p.jpg",
		VoteAverage: 7,
		ReleaseDate: "2020-01-01",
		GenreIDs:    []int{18},
		Overview:    "Overview",
	}
}

func page(n, total int, ids ...int) domain.Page[domain.Movie] {
	items := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		items = append(items, movie(id))
	}
	return domain.Page[domain.Movie]{Items: items, Page: n, TotalPages: total}
}

func ids(movies []domain.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func fixedNow() time.Time {
	return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newFetcher(t *testing.T, opts Options) (*Fetcher, *mocks.MockCatalogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepository(ctrl)
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return NewFetcher(repo, opts, nil), repo
}

func TestFetchPage_DedupAcrossPages(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 5, 1, 2), nil),
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(2, 5, 2, 3), nil),
	)

	require.NoError(t, f.FetchPage(ctx, 1))
	require.NoError(t, f.FetchPage(ctx, 2))

	s := f.State()
	assert.Equal(t, []int{1, 2, 3}, ids(s.Items))
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, 5, s.TotalPages)
	assert.False(t, s.Loading)
	assert.NoError(t, s.Err)
}

func TestFetchPage_PageOneReplaces(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 3, 1, 2), nil),
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(2, 3, 3), nil),
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 3, 9, 8), nil),
	)

	require.NoError(t, f.FetchPage(ctx, 1))
	require.NoError(t, f.FetchPage(ctx, 2))
	require.NoError(t, f.Refresh(ctx))

	assert.Equal(t, []int{9, 8}, ids(f.State().Items))
}

func TestFetchPage_DedupWithinResponse(t *testing.T) {
	f, repo := newFetcher(t, Options{})

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 1, 4, 4, 5), nil)

	require.NoError(t, f.FetchPage(context.Background(), 1))
	assert.Equal(t, []int{4, 5}, ids(f.State().Items))
}

func TestFetchPage_BeyondTotalIsNoop(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 1, 1), nil).Times(1)

	require.NoError(t, f.FetchPage(ctx, 1))
	before := f.State()

	require.NoError(t, f.FetchPage(ctx, 2))
	require.NoError(t, f.NextPage(ctx))

	assert.Equal(t, before, f.State())
	assert.False(t, f.State().HasMore())
}

func TestFetchPage_ErrorKeepsList(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()
	netErr := domain.Errorf(domain.KindNetwork, "discover", "connection refused")

	gomock.InOrder(
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 4, 1, 2), nil),
		repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(domain.Page[domain.Movie]{}, netErr),
	)

	require.NoError(t, f.FetchPage(ctx, 1))
	err := f.FetchPage(ctx, 2)
	require.ErrorIs(t, err, domain.ErrNetwork)

	s := f.State()
	assert.Equal(t, []int{1, 2}, ids(s.Items))
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(s.Err))
	assert.False(t, s.Loading)
}

func TestFetchPage_StaleResponseDiscarded(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q domain.DiscoverQuery) (domain.Page[domain.Movie], error) {
			// sort changes while the request is in flight
			require.NoError(t, f.SetSort("vote_average.desc"))
			return page(1, 5, 1, 2), nil
		})

	require.NoError(t, f.FetchPage(ctx, 1))

	s := f.State()
	assert.Empty(t, s.Items)
	assert.Equal(t, 0, s.Page)
	assert.Equal(t, "vote_average.desc", s.Sort)
}

func TestFetchPage_SendsSortAndFilters(t *testing.T) {
	f, repo := newFetcher(t, Options{
		Sort:    "release_date.desc",
		Filters: Filters{MinRating: 6, MaxRating: 9, MinYear: 1990, MaxYear: 1999},
	})

	repo.EXPECT().Discover(gomock.Any(), domain.DiscoverQuery{
		Page: 1, SortBy: "release_date.desc", MinRating: 6, MaxRating: 9, MinYear: 1990, MaxYear: 1999,
	}).Return(page(1, 1), nil)

	require.NoError(t, f.FetchPage(context.Background(), 0))
}

func TestSetSort_ResetsAndValidates(t *testing.T) {
	f, repo := newFetcher(t, Options{})
	ctx := context.Background()

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 5, 1, 2), nil)
	require.NoError(t, f.FetchPage(ctx, 1))

	require.Error(t, f.SetSort("budget.desc"))
	assert.Len(t, f.State().Items, 2)

	require.NoError(t, f.SetSort("original_title.asc"))
	s := f.State()
	assert.Empty(t, s.Items)
	assert.Equal(t, 0, s.TotalPages)
	assert.True(t, s.HasMore())
}

func TestSetFilters_Validation(t *testing.T) {
	f, _ := newFetcher(t, Options{})

	cases := []Filters{
		{MinRating: -1, MaxRating: 10, MinYear: 2000, MaxYear: 2020},
		{MinRating: 8, MaxRating: 7, MinYear: 2000, MaxYear: 2020},
		{MinRating: 0, MaxRating: 10, MinYear: 1949, MaxYear: 2020},
		{MinRating: 0, MaxRating: 10, MinYear: 2000, MaxYear: 2027},
		{MinRating: 0, MaxRating: 10, MinYear: 2010, MaxYear: 2000},
		{MinRating: 0, MaxRating: 0, MinYear: 2000, MaxYear: 2020},
	}
	for _, c := range cases {
		assert.ErrorIs(t, f.SetFilters(c), ErrInvalidFilters, c.String())
	}

	ok := Filters{MinRating: 5.5, MaxRating: 10, MinYear: 1950, MaxYear: 2026}
	require.NoError(t, f.SetFilters(ok))
	assert.Equal(t, ok, f.State().Filters)
}

func TestPopularSourceIgnoresQuery(t *testing.T) {
	f, repo := newFetcher(t, Options{Source: SourcePopular, Sort: "vote_average.asc"})

	repo.EXPECT().Popular(gomock.Any(), 1).Return(page(1, 2, 7), nil)

	require.NoError(t, f.FetchPage(context.Background(), 1))
	assert.Equal(t, []int{7}, ids(f.State().Items))
	assert.Equal(t, SourcePopular, f.Source())
}

func TestPolicyAppliedOnFetch(t *testing.T) {
	f, repo := newFetcher(t, Options{Policy: PolicyStrict})

	noPoster := movie(2)
	noPoster.PosterPath = ""
	noOverview := movie(3)
	noOverview.Overview = ""

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(domain.Page[domain.Movie]{
		Items:      []domain.Movie{movie(1), noPoster, noOverview},
		Page:       1,
		TotalPages: 1,
	}, nil)

	require.NoError(t, f.FetchPage(context.Background(), 1))
	assert.Equal(t, []int{1}, ids(f.State().Items))
}

func TestTotalPagesCapped(t *testing.T) {
	f, repo := newFetcher(t, Options{})

	repo.EXPECT().Discover(gomock.Any(), gomock.Any()).Return(page(1, 43000, 1), nil)

	require.NoError(t, f.FetchPage(context.Background(), 1))
	assert.Equal(t, maxAPIPage, f.State().TotalPages)
}

func TestNewFetcher_UnknownSortFallsBack(t *testing.T) {
	f, _ := newFetcher(t, Options{Sort: "nope"})
	assert.Equal(t, DefaultSort, f.State().Sort)
}
