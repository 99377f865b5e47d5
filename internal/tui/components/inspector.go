package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// LinkKind says what a selectable inspector row opens
type LinkKind int

const (
	LinkMovie LinkKind = iota
	LinkPerson
)

// Link is a selectable row of the inspector (a cast member, a recommendation, a credit)
type Link struct {
	Kind  LinkKind
	ID    int
	Movie domain.Movie // set for LinkMovie rows
}

// Inspector displays a movie or person detail page with selectable links
type Inspector struct {
	movie  *details.MovieView
	person *details.PersonView

	loading bool
	spinner string
	err     string

	links  []Link
	cursor int

	imageBase string

	width  int
	height int
}

// NewInspector creates an empty inspector
func NewInspector() Inspector {
	return Inspector{}
}

// SetImageBase sets the CDN root used for poster and profile links
func (i *Inspector) SetImageBase(base string) { i.imageBase = base }

// SetLoading clears the page and shows a spinner
func (i *Inspector) SetLoading(loading bool) {
	i.loading = loading
	if loading {
		i.err = ""
	}
}

func (i *Inspector) SetSpinner(frame string) { i.spinner = frame }

// SetError replaces the page with an error message
func (i *Inspector) SetError(msg string) {
	i.loading = false
	i.err = msg
	i.movie = nil
	i.person = nil
	i.links = nil
}

// SetMovie shows a movie page; links are the cast then the recommendations
func (i *Inspector) SetMovie(v details.MovieView) {
	i.loading = false
	i.err = ""
	i.movie = &v
	i.person = nil
	i.cursor = 0

	i.links = i.links[:0]
	for _, c := range v.Cast {
		i.links = append(i.links, Link{Kind: LinkPerson, ID: c.ID})
	}
	for _, m := range v.Recommendations {
		i.links = append(i.links, Link{Kind: LinkMovie, ID: m.ID, Movie: m})
	}
}

// SetPerson shows a person page; links are their movie credits
func (i *Inspector) SetPerson(v details.PersonView) {
	i.loading = false
	i.err = ""
	i.person = &v
	i.movie = nil
	i.cursor = 0

	i.links = i.links[:0]
	for _, m := range v.Credits {
		i.links = append(i.links, Link{Kind: LinkMovie, ID: m.ID, Movie: m})
	}
}

// Movie returns the movie on display, if any
func (i Inspector) Movie() (domain.Movie, bool) {
	if i.movie == nil {
		return domain.Movie{}, false
	}
	return i.movie.Movie.Movie, true
}

// SelectedLink returns the link under the cursor
func (i Inspector) SelectedLink() (Link, bool) {
	if i.cursor < 0 || i.cursor >= len(i.links) {
		return Link{}, false
	}
	return i.links[i.cursor], true
}

// Cursor returns the index of the selected link
func (i Inspector) Cursor() int { return i.cursor }

// SetCursor selects a link, clamped to the available links
func (i *Inspector) SetCursor(n int) {
	i.cursor = max(0, min(n, len(i.links)-1))
}

// MoveUp moves the link cursor up
func (i *Inspector) MoveUp() {
	if i.cursor > 0 {
		i.cursor--
	}
}

// MoveDown moves the link cursor down
func (i *Inspector) MoveDown() {
	if i.cursor < len(i.links)-1 {
		i.cursor++
	}
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// View renders the component
func (i Inspector) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()

	// leave one column of margin inside the border
	contentWidth := max(i.width-frameW-1, 10)
	maxVisible := max(i.height-InspectorBorderHeight-InspectorScrollIndicators, 1)

	lines, cursorLine := i.render(contentWidth)

	// keep the selected link on screen
	offset := 0
	if cursorLine >= maxVisible {
		offset = cursorLine - maxVisible/2
	}
	offset = max(0, min(offset, len(lines)-maxVisible))
	end := min(offset+maxVisible, len(lines))

	header := " "
	if offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < len(lines) {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := header + "\n" + strings.Join(lines[offset:end], "\n") + "\n" + footer
	return style.
		Width(max(0, i.width-frameW)).
		Height(max(0, i.height-frameH)).
		Render(content)
}

// render lays out the page and returns its lines and the line of the selected link
func (i Inspector) render(width int) ([]string, int) {
	switch {
	case i.loading:
		return []string{styles.DimStyle.Render(i.spinner + " Loading...")}, 0
	case i.err != "":
		return []string{styles.ErrorStyle.Render(i.err)}, 0
	case i.movie != nil:
		return i.renderMovie(width)
	case i.person != nil:
		return i.renderPerson(width)
	}
	return []string{styles.DimStyle.Render("Nothing selected")}, 0
}

func (i Inspector) renderMovie(width int) ([]string, int) {
	v := i.movie
	m := v.Movie
	var lines []string
	cursorLine := 0

	lines = append(lines, styles.TitleStyle.Render(styles.Truncate(m.Title, width)))
	if m.Tagline != "" {
		lines = append(lines, splitLines(styles.SubtitleStyle.Render(styles.Wrap(m.Tagline, width)))...)
	}

	var facts []string
	if y := m.Year(); y > 0 {
		facts = append(facts, fmt.Sprint(y))
	}
	if rt := m.FormattedRuntime(); rt != "" {
		facts = append(facts, rt)
	}
	if m.VoteAverage > 0 {
		facts = append(facts, styles.RatingStyle.Render("★ "+m.FormattedRating()))
	}
	if len(facts) > 0 {
		lines = append(lines, strings.Join(facts, " · "))
	}
	if genres := m.GenreNames(); len(genres) > 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(strings.Join(genres, ", "), width)))
	}
	if poster := domain.ImageURL(i.imageBase, "w500", m.PosterPath); poster != "" {
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(poster, width)))
	}
	if m.Overview != "" {
		lines = append(lines, "")
		lines = append(lines, splitLines(styles.Wrap(m.Overview, width))...)
	}

	link := 0
	if len(v.Cast) > 0 {
		lines = append(lines, "", styles.SectionStyle.Render("Cast"))
		for _, c := range v.Cast {
			text := c.Name
			if c.Character != "" {
				text += styles.DimStyle.Render(" as " + c.Character)
			}
			if link == i.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, i.linkRow(text, link == i.cursor, width))
			link++
		}
	}

	if len(v.Reviews) > 0 {
		lines = append(lines, "", styles.SectionStyle.Render("Reviews"))
		for _, r := range v.Reviews {
			lines = append(lines, styles.AccentStyle.Render(r.Author))
			lines = append(lines, splitLines(styles.Wrap(styles.Truncate(r.Content, 300), width))...)
		}
	}

	if len(v.Recommendations) > 0 {
		lines = append(lines, "", styles.SectionStyle.Render("Recommended"))
		for _, r := range v.Recommendations {
			if link == i.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, i.linkRow(r.Title+styles.DimStyle.Render("  "+r.Description()), link == i.cursor, width))
			link++
		}
	}

	return lines, cursorLine
}

func (i Inspector) renderPerson(width int) ([]string, int) {
	p := i.person.Person
	var lines []string
	cursorLine := 0

	lines = append(lines, styles.TitleStyle.Render(styles.Truncate(p.Name, width)))
	var facts []string
	if p.Birthday != "" {
		facts = append(facts, "Born "+p.Birthday)
	}
	if p.PlaceOfBirth != "" {
		facts = append(facts, p.PlaceOfBirth)
	}
	if len(facts) > 0 {
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(strings.Join(facts, " · "), width)))
	}
	if photo := domain.ImageURL(i.imageBase, "w185", p.ProfilePath); photo != "" {
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(photo, width)))
	}
	if p.Biography != "" {
		lines = append(lines, "")
		lines = append(lines, splitLines(styles.Wrap(p.Biography, width))...)
	}

	if len(i.person.Credits) > 0 {
		lines = append(lines, "", styles.SectionStyle.Render("Movies"))
		for n, m := range i.person.Credits {
			if n == i.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, i.linkRow(m.Title+styles.DimStyle.Render("  "+m.Description()), n == i.cursor, width))
		}
	}

	return lines, cursorLine
}

func (i Inspector) linkRow(text string, selected bool, width int) string {
	if selected {
		return styles.AccentStyle.Render("› ") + styles.Truncate(text, width)
	}
	return "  " + text
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
