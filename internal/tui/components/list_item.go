package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// RenderItemRow renders one movie or person row.
// Movies show a favorite marker, the title and "year · ★ rating";
// people show the name and their department.
func RenderItemRow(item domain.ListItem, favorite bool, matched []int, selected bool, width int) string {
	marker := " "
	markerFg := styles.DimGray
	if favorite {
		marker = styles.FavoriteChar
		markerFg = styles.Red
	}

	desc := item.GetDescription()
	descFg := styles.DimGray
	if item.GetItemType() == "movie" {
		descFg = styles.Gold
	}

	// marker(1) + space(1) + margins(2) + gap before the description
	available := width - 4
	if desc != "" {
		available -= lipgloss.Width(desc) + 2
	}
	if available < 5 {
		available = 5
		desc = ""
	}

	title := styles.Truncate(item.GetTitle(), available)
	if len(matched) > 0 && title == item.GetTitle() {
		title = styles.RenderHighlighted(title, matched, selected)
	}

	parts := []styles.RowPart{
		{Text: marker, Foreground: &markerFg},
		{Text: " " + title},
	}
	if desc != "" {
		parts = append(parts, styles.RowPart{Text: "  " + desc, Foreground: &descFg})
	}
	return styles.RenderListRow(parts, selected, width)
}
