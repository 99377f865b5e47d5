package search

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// FilterResult is a movie matching a local filter, with the title
// character positions that matched for highlighting
type FilterResult struct {
	Movie          domain.Movie
	Index          int // position in the filtered slice
	MatchedIndexes []int
	Score          int // higher is better
}

// titleIndex implements fuzzy.Source over pre-lowered titles
type titleIndex struct {
	lowerTitles []string
}

func (idx titleIndex) String(i int) string { return idx.lowerTitles[i] }

func (idx titleIndex) Len() int { return len(idx.lowerTitles) }

// FilterLocal fuzzy-filters already loaded movies by title, best match first.
// An empty query matches nothing.
func FilterLocal(query string, movies []domain.Movie) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(movies) == 0 {
		return nil
	}

	idx := titleIndex{lowerTitles: make([]string, len(movies))}
	for i, m := range movies {
		idx.lowerTitles[i] = strings.ToLower(m.Title)
	}

	matches := fuzzy.FindFrom(query, idx)

	results := make([]FilterResult, len(matches))
	for i, match := range matches {
		results[i] = FilterResult{
			Movie:          movies[match.Index],
			Index:          match.Index,
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return results
}
