package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/mocks"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	catalog  *mocks.MockCatalogRepository
	search   *mocks.MockSearchRepository
	metadata *mocks.MockMetadataRepository
}

func newTestModel(t *testing.T) (Model, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		catalog:  mocks.NewMockCatalogRepository(ctrl),
		search:   mocks.NewMockSearchRepository(ctrl),
		metadata: mocks.NewMockMetadataRepository(ctrl),
	}

	favs := favorites.NewService(store.NewMemoryStore(), nil)
	favs.Load()

	m := NewModel(
		catalog.NewFetcher(deps.catalog, catalog.Options{}, nil),
		search.NewService(deps.search, search.Options{}, nil),
		details.NewService(deps.metadata, nil),
		favs,
		nil,
	)
	t.Cleanup(m.Close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), deps
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(ids ...int) CatalogLoadedMsg {
	items := make([]domain.Movie, len(ids))
	for i, id := range ids {
		items[i] = domain.Movie{ID: id, Title: "Movie", PosterPath: "/p.jpg"}
	}
	return CatalogLoadedMsg{State: catalog.State{
		Items:      items,
		Page:       1,
		TotalPages: 1,
		Sort:       catalog.DefaultSort,
	}}
}

func TestCatalogLoaded_FillsList(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, loaded(1, 2, 3))
	assert.Nil(t, cmd, "last page reached")
	assert.Equal(t, 3, m.CatalogList.ItemCount())
	assert.False(t, m.catalogBusy)
}

func TestCatalogLoaded_PrefetchesNearBottom(t *testing.T) {
	m, _ := newTestModel(t)

	msg := loaded(1, 2, 3)
	msg.State.TotalPages = 5
	m, cmd := update(t, m, msg)

	assert.NotNil(t, cmd, "short list asks for page 2")
	assert.True(t, m.catalogBusy)
	assert.True(t, m.CatalogList.IsLoading())
}

func TestCatalogLoaded_ErrorMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, CatalogLoadedMsg{Err: domain.NewError(domain.KindNetwork, "discover", errors.New("dial tcp"))})
	assert.Equal(t, "Failed to load movies", m.StatusMsg)
	assert.True(t, m.StatusIsErr)

	m, _ = update(t, m, CatalogLoadedMsg{Err: domain.NewError(domain.KindAuth, "discover", nil)})
	assert.Equal(t, "Invalid TMDB API key", m.StatusMsg)
}

func TestSearchResult_StaleIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	stale := search.Result{Query: "al", Movies: []domain.Movie{{ID: 1, Title: "Alien"}}, Stale: true}
	m, _ = update(t, m, SearchResultMsg{Result: stale})
	assert.Equal(t, 0, m.SearchList.ItemCount())

	fresh := search.Result{Query: "alien", Movies: []domain.Movie{{ID: 1, Title: "Alien"}, {ID: 2, Title: "Aliens"}}}
	m, _ = update(t, m, SearchResultMsg{Result: fresh})
	assert.Equal(t, 2, m.SearchList.ItemCount())
}

func TestSearchResult_PeopleAndErrors(t *testing.T) {
	m, _ := newTestModel(t)

	people := search.Result{Query: "weaver", Mode: domain.SearchPeople, People: []domain.Person{{ID: 9, Name: "Sigourney Weaver"}}}
	m, _ = update(t, m, SearchResultMsg{Result: people})
	item, ok := m.SearchList.Selected()
	require.True(t, ok)
	assert.Equal(t, "person", item.GetItemType())

	m, _ = update(t, m, SearchResultMsg{Err: domain.NewError(domain.KindNetwork, "search movie", nil)})
	assert.Equal(t, "Failed to fetch search results", m.StatusMsg)
	assert.Equal(t, 0, m.SearchList.ItemCount())
}

func TestTypingInSearchPaneRunsSearch(t *testing.T) {
	m, deps := newTestModel(t)

	m, _ = update(t, m, keyPress("2"))
	require.Equal(t, PaneSearch, m.Pane)
	require.True(t, m.SearchBar.Focused())

	deps.search.EXPECT().SearchMovies(gomock.Any(), "al", 1).Return(domain.Page[domain.Movie]{
		Items: []domain.Movie{{ID: 1, Title: "Alien", PosterPath: "/a.jpg"}},
		Page:  1, TotalPages: 1,
	}, nil)

	m, cmd := update(t, m, keyPress("al"))
	require.NotNil(t, cmd)
	assert.True(t, m.searching)

	// the batch holds the blink and the search; run the search directly
	res := SearchCmd(m.SearchSvc, m.SearchBar.Query(), m.SearchBar.Mode())().(SearchResultMsg)
	m, _ = update(t, m, res)
	assert.Equal(t, 1, m.SearchList.ItemCount())
	assert.False(t, m.searching)
}

func TestToggleFavoriteFromCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, loaded(42))

	_, cmd := update(t, m, keyPress("f"))
	require.NotNil(t, cmd)

	msg := cmd()
	toggled, ok := msg.(FavoriteToggledMsg)
	require.True(t, ok)
	assert.True(t, toggled.Added)
	assert.True(t, m.Favorites.IsFavorite(42))

	changed := WaitForFavoritesCmd(m.Favorites, m.observer.Chan())()
	m, next := update(t, m, changed)
	assert.NotNil(t, next, "keeps listening")
	assert.Equal(t, 1, m.FavoritesList.TotalCount())
}

func TestFavoritesPaneRemove(t *testing.T) {
	m, _ := newTestModel(t)
	_, err := m.Favorites.Toggle(domain.Movie{ID: 7, Title: "Heat"})
	require.NoError(t, err)

	m, _ = update(t, m, keyPress("3"))
	require.Equal(t, PaneFavorites, m.Pane)
	assert.Equal(t, 1, m.FavoritesList.ItemCount(), "re-read on focus")

	_, cmd := update(t, m, keyPress("x"))
	require.NotNil(t, cmd)
	msg := cmd().(FavoriteToggledMsg)
	assert.False(t, msg.Added)
	assert.False(t, m.Favorites.IsFavorite(7))
}

func TestFavoritesPaneFilterUsesRankedTitleSearch(t *testing.T) {
	m, _ := newTestModel(t)
	for _, movie := range []domain.Movie{
		{ID: 1, Title: "Heathers"},
		{ID: 2, Title: "Alien"},
		{ID: 3, Title: "Heat"},
	} {
		_, err := m.Favorites.Toggle(movie)
		require.NoError(t, err)
	}

	m, _ = update(t, m, keyPress("3"))
	m, _ = update(t, m, keyPress("/"))
	require.True(t, m.FavoritesList.IsFilterTyping())
	for _, r := range "hea" {
		m, _ = update(t, m, keyPress(string(r)))
	}

	require.Equal(t, 2, m.FavoritesList.ItemCount())
	first, ok := m.FavoritesList.SelectedMovie()
	require.True(t, ok)
	assert.Equal(t, 3, first.ID, "closest title first")

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, 3, m.FavoritesList.ItemCount())
}

func TestFavoritesFilterSkipsUnlistedMovies(t *testing.T) {
	favs := favorites.NewService(store.NewMemoryStore(), nil)
	favs.Load()
	_, err := favs.Toggle(domain.Movie{ID: 1, Title: "Alien"})
	require.NoError(t, err)
	_, err = favs.Toggle(domain.Movie{ID: 2, Title: "Aliens"})
	require.NoError(t, err)

	listed := []domain.Movie{{ID: 2, Title: "Aliens"}}
	results := favoritesFilter(favs)("alien", listed)

	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 2, results[0].Movie.ID)
}

func TestEnterOpensMovieDetail(t *testing.T) {
	m, deps := newTestModel(t)
	m, _ = update(t, m, loaded(348))

	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.Details.Len())

	deps.metadata.EXPECT().GetMovie(gomock.Any(), 348).Return(&domain.MovieDetail{Movie: domain.Movie{ID: 348, Title: "Alien"}}, nil)
	deps.metadata.EXPECT().GetMovieCredits(gomock.Any(), 348).Return([]domain.CastMember{{ID: 10205, Name: "Sigourney Weaver"}}, nil)
	deps.metadata.EXPECT().GetMovieReviews(gomock.Any(), 348).Return(nil, nil)
	deps.metadata.EXPECT().GetRecommendations(gomock.Any(), 348).Return(nil, nil)

	m, _ = update(t, m, cmd())
	movie, ok := m.Inspector.Movie()
	require.True(t, ok)
	assert.Equal(t, "Alien", movie.Title)

	// open the cast member, then come back
	m, cmd = update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.Details.Len())
	assert.Equal(t, components.LinkPerson, m.Details.Top().Kind)

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, 1, m.Details.Len())
	_, ok = m.Inspector.Movie()
	assert.True(t, ok, "movie page restored")

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, 0, m.Details.Len())
}

func TestLateDetailIgnoredAfterBack(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, loaded(348))

	m, _ = update(t, m, keyPress("enter"))
	m, _ = update(t, m, keyPress("esc"))

	m, _ = update(t, m, MovieLoadedMsg{ID: 348, View: details.MovieView{}})
	assert.Equal(t, 0, m.Details.Len())
}

func TestSortModalResetsCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, loaded(1, 2))

	m, _ = update(t, m, keyPress("s"))
	require.True(t, m.SortModal.IsVisible())

	m, _ = update(t, m, keyPress("j"))
	m, cmd := update(t, m, keyPress("enter"))
	require.NotNil(t, cmd)

	assert.False(t, m.SortModal.IsVisible())
	assert.Equal(t, "vote_average.desc", m.catalogState.Sort)
	assert.Equal(t, 0, m.CatalogList.ItemCount(), "list cleared until page 1 arrives")
	assert.True(t, m.catalogBusy)
}

func TestDetailStack(t *testing.T) {
	ds := NewDetailStack()
	assert.Nil(t, ds.Top())
	assert.Nil(t, ds.Pop())

	ds.Push(&DetailPage{Kind: components.LinkMovie, ID: 1}, 0)
	ds.Push(&DetailPage{Kind: components.LinkPerson, ID: 2}, 3)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 3, ds.Find(components.LinkMovie, 1).Cursor, "cursor saved on the page below")
	assert.Nil(t, ds.Find(components.LinkMovie, 2))

	top := ds.Pop()
	require.NotNil(t, top)
	assert.Equal(t, 1, top.ID)

	ds.Clear()
	assert.Equal(t, 0, ds.Len())
}
