package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Pane is one of the top-level tabs
type Pane int

const (
	PaneCatalog Pane = iota
	PaneSearch
	PaneFavorites
	paneCount
)

// String returns the tab label
func (p Pane) String() string {
	switch p {
	case PaneSearch:
		return "Search"
	case PaneFavorites:
		return "Favorites"
	default:
		return "Discover"
	}
}

const (
	// Vertical layout: tab bar and footer line
	ChromeHeight = 2

	// Search pane: query line above the results
	SearchBarHeight = 1

	// Rows from the bottom at which the next catalog page is requested
	prefetchRows = 5

	// Pages fetched without user input while the filtered list is still empty
	maxEmptyPages = 5

	statusTimeout = 3 * time.Second
)

// Status messages shown for failed or empty loads
const (
	msgCatalogFailed = "Failed to load movies"
	msgCatalogEmpty  = "No movies found"
	msgSearchFailed  = "Failed to fetch search results"
	msgMovieFailed   = "Failed to load movie"
	msgPersonFailed  = "Failed to load person"
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool
	Pane  Pane

	// Services
	Catalog   *catalog.Fetcher
	SearchSvc *search.Service
	DetailSvc *details.Service
	Favorites *favorites.Service

	// UI Components
	CatalogList   *components.ListColumn
	SearchList    *components.ListColumn
	FavoritesList *components.ListColumn
	SearchBar     components.SearchBar
	Inspector     components.Inspector
	SortModal     components.SortModal
	FilterModal   components.FilterModal
	Spinner       spinner.Model

	// Detail pages opened on top of the current pane
	Details *DetailStack

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	catalogState catalog.State
	catalogBusy  bool // a catalog command is in flight
	searching    bool

	observer    *ChannelObserver
	unsubscribe func()
	logger      *slog.Logger
}

// NewModel creates a new application model.
// The favorites service must already be loaded.
func NewModel(
	fetcher *catalog.Fetcher,
	searchSvc *search.Service,
	detailSvc *details.Service,
	favoritesSvc *favorites.Service,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := Model{
		State:         StateBrowsing,
		Pane:          PaneCatalog,
		Catalog:       fetcher,
		SearchSvc:     searchSvc,
		DetailSvc:     detailSvc,
		Favorites:     favoritesSvc,
		CatalogList:   components.NewListColumn(catalogTitle(fetcher.Source(), fetcher.State())),
		SearchList:    components.NewListColumn("Results"),
		FavoritesList: components.NewListColumn("Favorites"),
		SearchBar:     components.NewSearchBar(),
		Inspector:     components.NewInspector(),
		SortModal:     components.NewSortModal(),
		FilterModal:   components.NewFilterModal(),
		Spinner:       sp,
		Details:       NewDetailStack(),
		catalogState:  fetcher.State(),
		catalogBusy:   true,
		observer:      NewChannelObserver(8),
		logger:        logger,
	}
	m.unsubscribe = m.observer.Attach(favoritesSvc)

	for _, list := range []*components.ListColumn{m.CatalogList, m.SearchList, m.FavoritesList} {
		list.SetFavoriteFunc(favoritesSvc.IsFavorite)
	}
	m.CatalogList.SetLoading(true)
	m.CatalogList.SetFocused(true)
	m.SearchList.SetEmptyText("Type at least 2 characters")
	m.FavoritesList.SetEmptyText("No favorites yet, press f on a movie")
	m.FavoritesList.SetMovies(favoritesSvc.Snapshot())
	m.FavoritesList.SetFilterFunc(favoritesFilter(favoritesSvc))
	m.SearchBar.Blur()

	return m
}

// Close detaches the model from the favorites service
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchCatalogCmd(m.Catalog, 1),
		WaitForFavoritesCmd(m.Favorites, m.observer.Chan()),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		frame := m.Spinner.View()
		m.CatalogList.SetSpinner(frame)
		m.SearchList.SetSpinner(frame)
		m.SearchBar.SetSpinner(frame)
		m.Inspector.SetSpinner(frame)
		return m, cmd

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case SearchResultMsg:
		return m.handleSearchResult(msg)

	case MovieLoadedMsg:
		page := m.Details.Find(components.LinkMovie, msg.ID)
		if page == nil {
			// navigated away before it arrived
			return m, nil
		}
		if msg.Err != nil {
			page.Err = domain.UserMessage(msg.Err, msgMovieFailed)
			if page == m.Details.Top() {
				m.Inspector.SetError(page.Err)
			}
			return m, nil
		}
		page.Movie = &msg.View
		if page == m.Details.Top() {
			m.Inspector.SetMovie(msg.View)
		}
		return m, nil

	case PersonLoadedMsg:
		page := m.Details.Find(components.LinkPerson, msg.ID)
		if page == nil {
			return m, nil
		}
		if msg.Err != nil {
			page.Err = domain.UserMessage(msg.Err, msgPersonFailed)
			if page == m.Details.Top() {
				m.Inspector.SetError(page.Err)
			}
			return m, nil
		}
		page.Person = &msg.View
		if page == m.Details.Top() {
			m.Inspector.SetPerson(msg.View)
		}
		return m, nil

	case FavoritesChangedMsg:
		m.FavoritesList.SetMovies(msg.Movies)
		return m, WaitForFavoritesCmd(m.Favorites, m.observer.Chan())

	case FavoriteToggledMsg:
		verb := "Removed %q from favorites"
		if msg.Added {
			verb = "Added %q to favorites"
		}
		return m.setStatus(fmt.Sprintf(verb, msg.Movie.Title), false)

	case ErrMsg:
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(domain.UserMessage(msg.Err, "Error "+msg.Context), true)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Forward anything else (cursor blink) to focused inputs
	var cmds []tea.Cmd
	if m.SearchBar.Focused() {
		var cmd tea.Cmd
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.FilterModal.IsVisible() {
		var cmd tea.Cmd
		m.FilterModal, cmd, _ = m.FilterModal.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleCatalogLoaded applies the fetcher state after a page load
func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.catalogBusy = false
	m.catalogState = msg.State
	state := msg.State

	m.CatalogList.SetMovies(state.Items)
	m.CatalogList.SetLoading(state.Loading)
	m.CatalogList.SetTitle(catalogTitle(m.Catalog.Source(), state))
	m.CatalogList.SetFooter(catalogFooter(m.Catalog.Source(), state))

	if msg.Err != nil {
		m.CatalogList.SetEmptyText(domain.UserMessage(msg.Err, msgCatalogFailed))
		return m.setStatus(domain.UserMessage(msg.Err, msgCatalogFailed), true)
	}
	m.CatalogList.SetEmptyText(msgCatalogEmpty)

	cmd := m.maybeNextPage()
	return m, cmd
}

// maybeNextPage requests the next catalog page when the cursor nears the end,
// or when filtering left the list empty and more pages exist
func (m *Model) maybeNextPage() tea.Cmd {
	state := m.catalogState
	if m.catalogBusy || state.Loading || state.Err != nil || !state.HasMore() || state.Page == 0 {
		return nil
	}
	empty := len(state.Items) == 0 && state.Page < maxEmptyPages
	if !empty && !m.CatalogList.NearBottom(prefetchRows) {
		return nil
	}
	m.catalogBusy = true
	m.CatalogList.SetLoading(true)
	return NextCatalogPageCmd(m.Catalog)
}

// reloadCatalog clears the list and fetches page 1 again
func (m *Model) reloadCatalog() tea.Cmd {
	m.CatalogList.Reset()
	m.CatalogList.SetLoading(true)
	m.catalogState = m.Catalog.State()
	m.CatalogList.SetTitle(catalogTitle(m.Catalog.Source(), m.catalogState))
	m.CatalogList.SetFooter("")
	m.catalogBusy = true
	return FetchCatalogCmd(m.Catalog, 1)
}

// handleSearchResult shows the latest search outcome; superseded results are dropped
func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	if res.Stale {
		m.logger.Debug("dropping stale search result", "query", res.Query)
		return m, nil
	}
	m.searching = false
	m.SearchBar.SetSearching(false)
	m.SearchList.SetLoading(false)

	switch {
	case msg.Err != nil:
		m.SearchList.Reset()
		m.SearchList.SetEmptyText(domain.UserMessage(msg.Err, msgSearchFailed))
		return m.setStatus(domain.UserMessage(msg.Err, msgSearchFailed), true)
	case res.Skipped:
		m.SearchList.Reset()
		m.SearchList.SetEmptyText("Type at least 2 characters")
		m.SearchList.SetFooter("")
		return m, nil
	}

	m.SearchList.SetEmptyText("No results")
	if res.Mode == domain.SearchPeople {
		m.SearchList.SetPeople(res.People)
		m.SearchList.SetFooter(fmt.Sprintf("%d people", len(res.People)))
	} else {
		m.SearchList.SetMovies(res.Movies)
		m.SearchList.SetFooter(fmt.Sprintf("%d movies", len(res.Movies)))
	}
	m.SearchList.SetSelectedIndex(0)
	return m, nil
}

// runSearch issues a search for the current query and mode
func (m *Model) runSearch() tea.Cmd {
	m.searching = true
	m.SearchBar.SetSearching(true)
	return SearchCmd(m.SearchSvc, m.SearchBar.Query(), m.SearchBar.Mode())
}

// setStatus shows a temporary status message
func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusTimeout)
}

// activeList returns the list of the current pane
func (m Model) activeList() *components.ListColumn {
	switch m.Pane {
	case PaneSearch:
		return m.SearchList
	case PaneFavorites:
		return m.FavoritesList
	default:
		return m.CatalogList
	}
}

// switchPane closes any detail pages and focuses another tab.
// The favorites tab re-reads the store on focus.
func (m *Model) switchPane(p Pane) tea.Cmd {
	m.Details.Clear()
	m.activeList().SetFocused(false)
	m.Pane = p
	m.activeList().SetFocused(true)

	switch p {
	case PaneFavorites:
		m.FavoritesList.SetMovies(m.Favorites.Snapshot())
	case PaneSearch:
		if m.SearchBar.Query() == "" {
			return m.SearchBar.Focus()
		}
	}
	return nil
}

// openDetail pushes a movie or person page and starts loading it
func (m *Model) openDetail(kind components.LinkKind, id int) tea.Cmd {
	m.Details.Push(&DetailPage{Kind: kind, ID: id}, m.Inspector.Cursor())
	m.Inspector.SetLoading(true)
	if kind == components.LinkPerson {
		return LoadPersonCmd(m.DetailSvc, id)
	}
	return LoadMovieCmd(m.DetailSvc, id)
}

// closeDetail pops the top page, restoring the one below if any
func (m *Model) closeDetail() {
	page := m.Details.Pop()
	if page == nil {
		return
	}
	switch {
	case page.Movie != nil:
		m.Inspector.SetMovie(*page.Movie)
	case page.Person != nil:
		m.Inspector.SetPerson(*page.Person)
	case page.Err != "":
		m.Inspector.SetError(page.Err)
		return
	default:
		m.Inspector.SetLoading(true)
		return
	}
	m.Inspector.SetCursor(page.Cursor)
}

func catalogTitle(src catalog.Source, s catalog.State) string {
	if src == catalog.SourcePopular {
		return "Popular"
	}
	return "Discover · " + catalog.SortLabel(s.Sort)
}

func catalogFooter(src catalog.Source, s catalog.State) string {
	if s.TotalPages == 0 {
		return ""
	}
	if src == catalog.SourcePopular {
		return fmt.Sprintf("page %d/%d", s.Page, s.TotalPages)
	}
	return fmt.Sprintf("page %d/%d · %s", s.Page, s.TotalPages, s.Filters)
}
