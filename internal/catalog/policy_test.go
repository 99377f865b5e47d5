package catalog

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]FilterPolicy{
		"":        PolicyNone,
		"none":    PolicyNone,
		"Poster":  PolicyPoster,
		" strict": PolicyStrict,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("loose")
	assert.Error(t, err)
}

func TestPolicyKeep(t *testing.T) {
	full := movie(1)
	bare := domain.Movie{ID: 2, Title: "Bare", PosterPath: "/b.jpg"}
	noPoster := domain.Movie{ID: 3, Title: "Nothing"}

	assert.True(t, PolicyNone.Keep(noPoster))

	assert.True(t, PolicyPoster.Keep(bare))
	assert.False(t, PolicyPoster.Keep(noPoster))

	assert.True(t, PolicyStrict.Keep(full))
	assert.False(t, PolicyStrict.Keep(bare))
	assert.False(t, PolicyStrict.Keep(noPoster))
}

func TestMerge(t *testing.T) {
	existing := []domain.Movie{movie(1), movie(2)}

	appended := Merge(existing, []domain.Movie{movie(2), movie(3), movie(3)}, false)
	assert.Equal(t, []int{1, 2, 3}, ids(appended))

	replaced := Merge(existing, []domain.Movie{movie(5), movie(5), movie(1)}, true)
	assert.Equal(t, []int{5, 1}, ids(replaced))

	// existing is not modified
	assert.Equal(t, []int{1, 2}, ids(existing))
}

func TestMergeFirstSeenWins(t *testing.T) {
	first := movie(1)
	first.Title = "first"
	second := movie(1)
	second.Title = "second"

	merged := Merge([]domain.Movie{first}, []domain.Movie{second}, false)
	require.Len(t, merged, 1)
	assert.Equal(t, "first", merged[0].Title)
}

func TestParseSourceAndSortLabels(t *testing.T) {
	s, err := ParseSource("Popular")
	require.NoError(t, err)
	assert.Equal(t, SourcePopular, s)

	_, err = ParseSource("trending")
	assert.Error(t, err)

	assert.Equal(t, "Highest rated", SortLabel("vote_average.desc"))
	assert.Equal(t, "weird.asc", SortLabel("weird.asc"))
	assert.True(t, ValidSort("original_title.asc"))
	assert.False(t, ValidSort(""))
}
