package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// SortModal is a small popup for choosing the catalog sort key
type SortModal struct {
	visible bool
	options []catalog.SortOption
	cursor  int
	active  string
}

// NewSortModal creates a new sort modal over the catalog sort options
func NewSortModal() SortModal {
	return SortModal{options: catalog.SortOptions}
}

// Show displays the modal with the cursor on the active key
func (m *SortModal) Show(active string) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt.Key == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selected key).
// A non-empty key means the user confirmed a different sort.
func (m *SortModal) HandleKey(key string) (handled bool, selected string) {
	if !m.visible {
		return false, ""
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		m.visible = false
		chosen := m.options[m.cursor].Key
		if chosen == m.active {
			return true, ""
		}
		return true, chosen
	case "esc", "s", "q":
		m.visible = false
	}

	return true, "" // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	const width = 22
	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		prefix := "  "
		if opt.Key == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.Label, width)

		style := lipgloss.NewStyle().Foreground(styles.LightGray)
		switch {
		case i == m.cursor:
			style = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		case opt.Key == m.active:
			style = lipgloss.NewStyle().Foreground(styles.Accent)
		}
		lines = append(lines, style.Render(text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
