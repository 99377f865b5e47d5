package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/components"
)

// favoritesFilter matches through the favorites service's ranked title search
// and maps each hit back to its row in the listed movies.
func favoritesFilter(svc *favorites.Service) components.FilterFunc {
	return func(query string, movies []domain.Movie) []search.FilterResult {
		rows := make(map[int]int, len(movies))
		for i, m := range movies {
			rows[m.ID] = i
		}

		found := svc.Find(query)
		results := make([]search.FilterResult, 0, len(found))
		for _, m := range found {
			// the list may lag the service until the next change message
			i, ok := rows[m.ID]
			if !ok {
				continue
			}
			results = append(results, search.FilterResult{Movie: movies[i], Index: i})
		}
		return results
	}
}
