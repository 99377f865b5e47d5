package domain

// SearchMode selects which index a text search runs against.
// The two modes are never mixed in one response.
type SearchMode int

const (
	SearchMovies SearchMode = iota
	SearchPeople
)

// String returns the mode name
func (m SearchMode) String() string {
	if m == SearchPeople {
		return "person"
	}
	return "movie"
}
