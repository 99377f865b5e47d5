package tmdb

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mmcdole/marquee/internal/domain"
)

// DiscoverParams translates a catalog query into /discover/movie parameters.
// Ratings use one decimal ("7.0"); years become full-year date bounds.
// Zero fields are left out, so callers cannot ask for a zero upper bound.
func DiscoverParams(q domain.DiscoverQuery) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(q.Page, 1)))

	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}

	if q.MinRating > 0 {
		params.Set("vote_average.gte", fmt.Sprintf("%.1f", q.MinRating))
	}
	if q.MaxRating > 0 {
		params.Set("vote_average.lte", fmt.Sprintf("%.1f", q.MaxRating))
	}

	if q.MinYear > 0 {
		params.Set("primary_release_date.gte", fmt.Sprintf("%04d-01-01", q.MinYear))
	}
	if q.MaxYear > 0 {
		params.Set("primary_release_date.lte", fmt.Sprintf("%04d-12-31", q.MaxYear))
	}

	return params
}

// searchParams builds the parameters of /search/movie and /search/person
func searchParams(query string, page int) url.Values {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(max(page, 1)))
	params.Set("include_adult", "false")
	return params
}
