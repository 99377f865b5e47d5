package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var content string
	switch {
	case m.Details.Len() > 0:
		content = m.Inspector.View()
	case m.Pane == PaneSearch:
		content = lipgloss.JoinVertical(lipgloss.Left, m.SearchBar.View(), m.SearchList.View())
	default:
		content = m.activeList().View()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		content,
		m.renderFooter(),
	)

	// Overlay sort modal if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	// Overlay filter modal if visible
	if m.FilterModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.FilterModal.View())
	}

	return view
}

// renderTabs renders the pane tabs with the favorites count
func (m Model) renderTabs() string {
	tabs := make([]string, 0, paneCount)
	for p := Pane(0); p < paneCount; p++ {
		label := p.String()
		if p == PaneFavorites {
			if n := m.FavoritesList.TotalCount(); n > 0 {
				label += " " + styles.FavoriteChar + " " + strconv.Itoa(n)
			}
		}
		label = strconv.Itoa(int(p)+1) + " " + label
		if p == m.Pane {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	title := styles.TitleStyle.Render("marquee")
	gap := max(0, m.Width-lipgloss.Width(bar)-lipgloss.Width(title))
	return bar + strings.Repeat(" ", gap) + title
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: spinner + status when loading or status message active
	var left string
	switch {
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	case m.searching && m.Pane == PaneSearch:
		left = m.Spinner.View() + " " + styles.DimStyle.Render("Searching...")
	case m.catalogBusy && m.Pane == PaneCatalog:
		left = m.Spinner.View() + " " + styles.DimStyle.Render("Loading...")
	}

	// Center section: context-specific hints
	var center string
	switch {
	case m.Details.Len() > 0:
		center = hint("esc", "back") + "  " + hint("enter", "open") + "  " + hint("f", "favorite")
	case m.Pane == PaneCatalog:
		center = hint("s", "sort") + "  " + hint("F", "filters") + "  " + hint("f", "favorite")
	case m.Pane == PaneSearch:
		center = hint("/", "edit query") + "  " + hint("C-t", "movies/people")
	case m.Pane == PaneFavorites:
		center = hint("x", "remove") + "  " + hint("/", "filter")
	}

	// Right side: "? help" hint
	right := hint("?", "help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(0, m.Width-leftWidth-rightWidth)
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func hint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      FAVORITES
  j/k        Up/down               f/Space  Toggle favorite
  g/G        First/last item       x        Remove (favorites tab)
  Ctrl+u/d   Scroll half page
  Enter      Open details       DISCOVER
  Esc/h      Back                  s        Sort
  1 2 3/Tab  Switch tab            F        Rating/year filters
                                   r        Refresh
SEARCH
  /          Edit query / filter   q        Quit
  Ctrl+t     Movies or people      ?        This help

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
