package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle state-specific keys
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal or input if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	if m.Details.Len() > 0 {
		return m.handleDetailKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Catalog):
		cmd := m.switchPane(PaneCatalog)
		return m, cmd
	case key.Matches(msg, Keys.Search):
		cmd := m.switchPane(PaneSearch)
		return m, cmd
	case key.Matches(msg, Keys.Favorites):
		cmd := m.switchPane(PaneFavorites)
		return m, cmd
	case key.Matches(msg, Keys.NextPane):
		cmd := m.switchPane((m.Pane + 1) % paneCount)
		return m, cmd

	case key.Matches(msg, Keys.Escape):
		if list := m.activeList(); list.IsFiltering() {
			list.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		if m.Pane == PaneSearch {
			cmd := m.SearchBar.Focus()
			return m, cmd
		}
		m.activeList().StartFilter()
		return m, nil

	case key.Matches(msg, Keys.Sort):
		if m.Pane != PaneCatalog {
			return m, nil
		}
		if m.Catalog.Source() != catalog.SourceDiscover {
			return m.setStatus("Sorting needs the discover source", true)
		}
		m.SortModal.Show(m.catalogState.Sort)
		return m, nil

	case key.Matches(msg, Keys.RangeFilters):
		if m.Pane != PaneCatalog {
			return m, nil
		}
		if m.Catalog.Source() != catalog.SourceDiscover {
			return m.setStatus("Filters need the discover source", true)
		}
		m.FilterModal.Show(m.catalogState.Filters)
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		switch m.Pane {
		case PaneCatalog:
			cmd := m.reloadCatalog()
			return m, cmd
		case PaneSearch:
			cmd := m.runSearch()
			return m, cmd
		case PaneFavorites:
			m.FavoritesList.SetMovies(m.Favorites.Load())
		}
		return m, nil

	case key.Matches(msg, Keys.SearchMode):
		if m.Pane != PaneSearch {
			return m, nil
		}
		m.SearchBar.ToggleMode()
		cmd := m.runSearch()
		return m, cmd

	case key.Matches(msg, Keys.ToggleFavorite):
		if movie, ok := m.activeList().SelectedMovie(); ok {
			return m, ToggleFavoriteCmd(m.Favorites, movie)
		}
		return m, nil

	case key.Matches(msg, Keys.Remove):
		if m.Pane != PaneFavorites {
			return m, nil
		}
		if movie, ok := m.FavoritesList.SelectedMovie(); ok {
			return m, RemoveFavoriteCmd(m.Favorites, movie)
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		item, ok := m.activeList().Selected()
		if !ok {
			return m, nil
		}
		kind := components.LinkMovie
		if item.GetItemType() == "person" {
			kind = components.LinkPerson
		}
		cmd := m.openDetail(kind, item.GetID())
		return m, cmd
	}

	return m.handleListMove(msg)
}

// handleListMove moves the cursor of the active list and pages the catalog
func (m Model) handleListMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()
	switch {
	case key.Matches(msg, Keys.Up):
		list.MoveUp(1)
	case key.Matches(msg, Keys.Down):
		list.MoveDown(1)
	case key.Matches(msg, Keys.HalfUp):
		list.MoveUp(list.HalfPage())
	case key.Matches(msg, Keys.HalfDown):
		list.MoveDown(list.HalfPage())
	case key.Matches(msg, Keys.Home):
		list.Top()
	case key.Matches(msg, Keys.End):
		list.Bottom()
	default:
		return m, nil
	}

	if m.Pane == PaneCatalog {
		cmd := m.maybeNextPage()
		return m, cmd
	}
	return m, nil
}

// handleDetailKey handles keys while a detail page is open
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
	case key.Matches(msg, Keys.Escape, Keys.Back):
		m.closeDetail()
	case key.Matches(msg, Keys.Catalog):
		cmd := m.switchPane(PaneCatalog)
		return m, cmd
	case key.Matches(msg, Keys.Search):
		cmd := m.switchPane(PaneSearch)
		return m, cmd
	case key.Matches(msg, Keys.Favorites):
		cmd := m.switchPane(PaneFavorites)
		return m, cmd
	case key.Matches(msg, Keys.Up):
		m.Inspector.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.Inspector.MoveDown()
	case key.Matches(msg, Keys.ToggleFavorite):
		if movie, ok := m.Inspector.Movie(); ok {
			return m, ToggleFavoriteCmd(m.Favorites, movie)
		}
	case key.Matches(msg, Keys.Enter):
		if link, ok := m.Inspector.SelectedLink(); ok {
			cmd := m.openDetail(link.Kind, link.ID)
			return m, cmd
		}
	}
	return m, nil
}

// routeToModal sends keys to whichever modal or text input owns the keyboard
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.SortModal.IsVisible() {
		handled, selected := m.SortModal.HandleKey(msg.String())
		if selected == "" {
			return handled, m, nil
		}
		if err := m.Catalog.SetSort(selected); err != nil {
			mm, cmd := m.setStatus(err.Error(), true)
			return true, mm, cmd
		}
		reload := m.reloadCatalog()
		mm, status := m.setStatus(fmt.Sprintf("Sorted by %s", catalog.SortLabel(selected)), false)
		return true, mm, tea.Batch(reload, status)
	}

	if m.FilterModal.IsVisible() {
		var cmd tea.Cmd
		var submitted *catalog.Filters
		m.FilterModal, cmd, submitted = m.FilterModal.Update(msg)
		if submitted == nil {
			return true, m, cmd
		}
		if err := m.Catalog.SetFilters(*submitted); err != nil {
			m.FilterModal.SetError(err)
			return true, m, nil
		}
		m.FilterModal.Hide()
		reload := m.reloadCatalog()
		mm, status := m.setStatus("Filters: "+submitted.String(), false)
		return true, mm, tea.Batch(reload, status)
	}

	if m.Details.Len() > 0 {
		return false, m, nil
	}

	if m.Pane == PaneSearch && m.SearchBar.Focused() {
		var cmd tea.Cmd
		var changed bool
		m.SearchBar, cmd, changed = m.SearchBar.Update(msg)
		if !changed {
			return true, m, cmd
		}
		search := m.runSearch()
		return true, m, tea.Batch(cmd, search)
	}

	if list := m.activeList(); list.IsFilterTyping() {
		return true, m, list.Update(msg)
	}
	// a blurred filter still owns esc and "/"
	if list := m.activeList(); list.IsFiltering() && key.Matches(msg, Keys.Escape, Keys.Filter) {
		return true, m, list.Update(msg)
	}

	return false, m, nil
}
