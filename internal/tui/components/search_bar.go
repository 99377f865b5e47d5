package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SearchBar is the query input of the search pane with a movie/person mode switch
type SearchBar struct {
	input     textinput.Model
	mode      domain.SearchMode
	searching bool
	spinner   string
	width     int
	prevQuery string
}

// NewSearchBar creates a focused, empty search bar in movie mode
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return SearchBar{input: ti}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	s.input.Focus()
	return textinput.Blink
}

// Blur hands keyboard focus back to the result list
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has keyboard focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Query returns the current search query
func (s SearchBar) Query() string {
	return s.input.Value()
}

// Mode returns the active search mode
func (s SearchBar) Mode() domain.SearchMode {
	return s.mode
}

// ToggleMode switches between movie and person search
func (s *SearchBar) ToggleMode() {
	if s.mode == domain.SearchMovies {
		s.mode = domain.SearchPeople
	} else {
		s.mode = domain.SearchMovies
	}
}

// SetSearching shows or hides the in-flight indicator
func (s *SearchBar) SetSearching(searching bool) {
	s.searching = searching
}

func (s *SearchBar) SetSpinner(frame string) { s.spinner = frame }

// SetSize updates the component width
func (s *SearchBar) SetSize(width int) {
	s.width = width
	s.input.Width = max(10, width-30)
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (s *SearchBar) QueryChanged() bool {
	current := s.input.Value()
	if current != s.prevQuery {
		s.prevQuery = current
		return true
	}
	return false
}

// Update handles input while focused, returns (bar, cmd, search needed).
// A search is needed whenever the query text or the mode changed.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.input.Focused() {
		return s, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, SearchBarKeys.ToggleMode):
			s.ToggleMode()
			return s, nil, true
		case key.Matches(keyMsg, SearchBarKeys.Done):
			s.input.Blur()
			return s, nil, false
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.QueryChanged()
}

// View renders the input line with the mode tabs
func (s SearchBar) View() string {
	movies := styles.TabStyle.Render("Movies")
	people := styles.TabStyle.Render("People")
	if s.mode == domain.SearchMovies {
		movies = styles.ActiveTabStyle.Render("Movies")
	} else {
		people = styles.ActiveTabStyle.Render("People")
	}

	status := ""
	if s.searching {
		status = " " + styles.SpinnerStyle.Render(s.spinner)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, s.input.View(), status, "  ", movies, " ", people)
	return lipgloss.NewStyle().Width(s.width).Render(line)
}
