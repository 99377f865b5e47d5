package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultImageBaseURL is the TMDB image CDN root; sizes are appended ("w500", "w185").
const DefaultImageBaseURL = "https://image.tmdb.org/t/p/"

// Movie is a catalog entry as returned by list and search endpoints.
// The JSON shape matches TMDB so the favorites blob stays readable by other clients.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date,omitempty"` // YYYY-MM-DD
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
}

// Year returns the release year (0 if the date is missing or malformed)
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// HasPoster reports whether the movie has a poster image
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// IsComplete reports whether every descriptive field is present
func (m Movie) IsComplete() bool {
	return m.Overview != "" &&
		len(m.GenreIDs) > 0 &&
		m.VoteAverage > 0 &&
		m.ReleaseDate != ""
}

// FormattedRating returns the rating as "7.4"
func (m Movie) FormattedRating() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// Description returns secondary info for list rows, e.g. "2019 · ★ 7.4"
func (m Movie) Description() string {
	var parts []string
	if y := m.Year(); y > 0 {
		parts = append(parts, strconv.Itoa(y))
	}
	if m.VoteAverage > 0 {
		parts = append(parts, "★ "+m.FormattedRating())
	}
	return strings.Join(parts, " · ")
}

// PosterURL returns the poster URL at the given size, or "" when there is no poster
func (m Movie) PosterURL(size string) string {
	return ImageURL(DefaultImageBaseURL, size, m.PosterPath)
}

// Genre is a TMDB genre tag
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetail is the full record returned by the movie detail endpoint
type MovieDetail struct {
	Movie
	Tagline  string  `json:"tagline,omitempty"`
	Runtime  int     `json:"runtime,omitempty"` // minutes
	Homepage string  `json:"homepage,omitempty"`
	Status   string  `json:"status,omitempty"`
	Genres   []Genre `json:"genres,omitempty"`
}

// FormattedRuntime returns the runtime in a human-readable format
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	mins := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// GenreNames returns the genre names in API order
func (d MovieDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// Person is a cast member as returned by person search
type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        string  `json:"profile_path,omitempty"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	Popularity         float64 `json:"popularity,omitempty"`
}

// HasProfile reports whether the person has a profile image
func (p Person) HasProfile() bool {
	return p.ProfilePath != ""
}

// ProfileURL returns the profile image URL at the given size
func (p Person) ProfileURL(size string) string {
	return ImageURL(DefaultImageBaseURL, size, p.ProfilePath)
}

// PersonDetail is the full record returned by the person detail endpoint
type PersonDetail struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Birthday     string `json:"birthday,omitempty"`
	PlaceOfBirth string `json:"place_of_birth,omitempty"`
	Biography    string `json:"biography,omitempty"`
	ProfilePath  string `json:"profile_path,omitempty"`
}

// CastMember is one credited actor of a movie
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// Review is a user review of a movie
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

// Page is one page of a paginated listing
type Page[T any] struct {
	Items        []T
	Page         int
	TotalPages   int
	TotalResults int
}

// ImageURL joins an image base, a size segment and a file path.
// Returns "" when path is empty.
func ImageURL(base, size, path string) string {
	if path == "" {
		return ""
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}
