package tui

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 3)

	m.CatalogList.SetSize(m.Width, contentHeight)
	m.FavoritesList.SetSize(m.Width, contentHeight)

	m.SearchBar.SetSize(m.Width)
	m.SearchList.SetSize(m.Width, max(contentHeight-SearchBarHeight, 3))

	m.Inspector.SetSize(m.Width, contentHeight)
}
