package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Filter form fields in tab order
const (
	fieldMinRating = iota
	fieldMaxRating
	fieldMinYear
	fieldMaxYear
	fieldCount
)

var filterLabels = [fieldCount]string{
	"Min rating",
	"Max rating",
	"From year",
	"To year",
}

// FilterModal is a form for the catalog rating and year ranges
type FilterModal struct {
	visible bool
	inputs  [fieldCount]textinput.Model
	focus   int
	err     string
}

// NewFilterModal creates a new filter modal
func NewFilterModal() FilterModal {
	var m FilterModal
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 4
		ti.Width = 6
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		m.inputs[i] = ti
	}
	m.inputs[fieldMinRating].Placeholder = "0"
	m.inputs[fieldMaxRating].Placeholder = "10"
	m.inputs[fieldMinYear].Placeholder = strconv.Itoa(catalog.MinYearBound)
	return m
}

// Show displays the form prefilled with the current filters
func (m *FilterModal) Show(f catalog.Filters) {
	m.visible = true
	m.err = ""
	m.inputs[fieldMinRating].SetValue(strconv.FormatFloat(f.MinRating, 'f', 1, 64))
	m.inputs[fieldMaxRating].SetValue(strconv.FormatFloat(f.MaxRating, 'f', 1, 64))
	m.inputs[fieldMinYear].SetValue(strconv.Itoa(f.MinYear))
	m.inputs[fieldMaxYear].SetValue(strconv.Itoa(f.MaxYear))
	m.setFocus(fieldMinRating)
}

// Hide dismisses the modal
func (m *FilterModal) Hide() {
	m.visible = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// IsVisible returns whether the modal is shown
func (m FilterModal) IsVisible() bool {
	return m.visible
}

// SetError shows a validation message under the form
func (m *FilterModal) SetError(err error) {
	if err == nil {
		m.err = ""
		return
	}
	m.err = err.Error()
}

func (m *FilterModal) setFocus(i int) {
	m.focus = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Update handles input events, returns (modal, cmd, submitted filters).
// The returned filters are parsed but not range-checked.
func (m FilterModal) Update(msg tea.Msg) (FilterModal, tea.Cmd, *catalog.Filters) {
	if !m.visible {
		return m, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Hide()
			return m, nil, nil
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil, nil
		case "enter":
			f, err := ParseFilters(
				m.inputs[fieldMinRating].Value(),
				m.inputs[fieldMaxRating].Value(),
				m.inputs[fieldMinYear].Value(),
				m.inputs[fieldMaxYear].Value(),
			)
			if err != nil {
				m.err = err.Error()
				return m, nil, nil
			}
			return m, nil, &f
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, nil
}

// ParseFilters parses the four form fields.
// Ratings accept one decimal ("7" or "7.5"); years must be whole numbers.
func ParseFilters(minRating, maxRating, minYear, maxYear string) (catalog.Filters, error) {
	var f catalog.Filters
	var err error

	if f.MinRating, err = parseRating("min rating", minRating); err != nil {
		return f, err
	}
	if f.MaxRating, err = parseRating("max rating", maxRating); err != nil {
		return f, err
	}
	if f.MinYear, err = parseYear("from year", minYear); err != nil {
		return f, err
	}
	if f.MaxYear, err = parseYear("to year", maxYear); err != nil {
		return f, err
	}
	return f, nil
}

func parseRating(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	// one decimal, like the API's vote_average
	return math.Round(v*10) / 10, nil
}

func parseYear(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a year", name, s)
	}
	return v, nil
}

// View renders the filter form
func (m FilterModal) View() string {
	if !m.visible {
		return ""
	}

	const labelWidth = 12
	rows := make([]string, 0, fieldCount+2)
	for i, in := range m.inputs {
		label := styles.Pad(filterLabels[i], labelWidth)
		labelStyle := styles.DimStyle
		if i == m.focus {
			labelStyle = styles.AccentStyle
		}
		rows = append(rows, labelStyle.Render(label)+in.View())
	}

	if m.err != "" {
		rows = append(rows, "", styles.ErrorStyle.Render(styles.Truncate(m.err, 40)))
	}
	rows = append(rows, "", styles.DimStyle.Render("tab next · enter apply · esc cancel"))

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Filters") + "\n" + strings.Join(rows, "\n"),
	)
}
