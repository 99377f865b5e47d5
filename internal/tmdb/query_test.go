package tmdb

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDiscoverParams_FullQuery(t *testing.T) {
	p := DiscoverParams(domain.DiscoverQuery{
		Page:      3,
		SortBy:    "release_date.desc",
		MinRating: 5.5,
		MaxRating: 10,
		MinYear:   2000,
		MaxYear:   2026,
	})

	assert.Equal(t, "3", p.Get("page"))
	assert.Equal(t, "release_date.desc", p.Get("sort_by"))
	assert.Equal(t, "5.5", p.Get("vote_average.gte"))
	assert.Equal(t, "10.0", p.Get("vote_average.lte"))
	assert.Equal(t, "2000-01-01", p.Get("primary_release_date.gte"))
	assert.Equal(t, "2026-12-31", p.Get("primary_release_date.lte"))
}

func TestDiscoverParams_ZeroValuesOmitted(t *testing.T) {
	p := DiscoverParams(domain.DiscoverQuery{})

	assert.Equal(t, "1", p.Get("page"))
	for _, key := range []string{"sort_by", "vote_average.gte", "vote_average.lte",
		"primary_release_date.gte", "primary_release_date.lte"} {
		assert.False(t, p.Has(key), key)
	}
}
