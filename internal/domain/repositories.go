package domain

//go:generate mockgen -source=repositories.go -destination=../mocks/repositories.go -package=mocks

import "context"

// DiscoverQuery holds the sort and filter parameters of a catalog listing.
// Zero values mean "unbounded".
type DiscoverQuery struct {
	Page      int
	SortBy    string  // e.g. "popularity.desc"
	MinRating float64 // vote_average.gte
	MaxRating float64 // vote_average.lte
	MinYear   int     // primary_release_date.gte = MinYear-01-01
	MaxYear   int     // primary_release_date.lte = MaxYear-12-31
}

// CatalogRepository lists movies page by page
type CatalogRepository interface {
	// Discover returns one page of the sortable, filterable catalog
	Discover(ctx context.Context, q DiscoverQuery) (Page[Movie], error)

	// Popular returns one page of the popular listing
	Popular(ctx context.Context, page int) (Page[Movie], error)
}

// SearchRepository searches the catalog by text
type SearchRepository interface {
	SearchMovies(ctx context.Context, query string, page int) (Page[Movie], error)
	SearchPeople(ctx context.Context, query string, page int) (Page[Person], error)
}

// MetadataRepository provides detail records for movies and people
type MetadataRepository interface {
	GetMovie(ctx context.Context, id int) (*MovieDetail, error)
	GetMovieCredits(ctx context.Context, id int) ([]CastMember, error)
	GetMovieReviews(ctx context.Context, id int) ([]Review, error)
	GetRecommendations(ctx context.Context, id int) ([]Movie, error)
	GetPerson(ctx context.Context, id int) (*PersonDetail, error)
	GetPersonMovieCredits(ctx context.Context, id int) ([]Movie, error)
}
