package tmdb

// pagedResponse is the envelope of every listing endpoint.
// Results is nil when the key is absent, empty when the API returned [].
type pagedResponse[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// statusResponse is the error envelope ({"success":false,"status_message":...})
type statusResponse struct {
	Success       *bool  `json:"success,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	StatusMessage string `json:"status_message,omitempty"`
}

// MovieResult is a movie as it appears in discover, search and recommendation listings
type MovieResult struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	ReleaseDate *string  `json:"release_date"`
	GenreIDs    []int    `json:"genre_ids"`
	Overview    *string  `json:"overview"`
	Popularity  float64  `json:"popularity"`
}

// GenreDTO is a genre tag on the detail endpoint
type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetailResult is the /movie/{id} payload
type MovieDetailResult struct {
	MovieResult
	Tagline  *string    `json:"tagline"`
	Runtime  *int       `json:"runtime"`
	Homepage *string    `json:"homepage"`
	Status   string     `json:"status"`
	Genres   []GenreDTO `json:"genres"`
}

// PersonResult is a person as it appears in search listings
type PersonResult struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        *string `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// PersonDetailResult is the /person/{id} payload
type PersonDetailResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Birthday     *string `json:"birthday"`
	PlaceOfBirth *string `json:"place_of_birth"`
	Biography    *string `json:"biography"`
	ProfilePath  *string `json:"profile_path"`
}

// CastResult is one entry of /movie/{id}/credits
type CastResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// creditsResponse is the /movie/{id}/credits and /person/{id}/movie_credits envelope
type creditsResponse[T any] struct {
	ID   int `json:"id"`
	Cast []T `json:"cast"`
}

// ReviewResult is one entry of /movie/{id}/reviews
type ReviewResult struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
