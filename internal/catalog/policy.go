package catalog

import (
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// FilterPolicy decides which fetched movies make it into the listing
type FilterPolicy int

const (
	// PolicyNone keeps every movie the API returns
	PolicyNone FilterPolicy = iota
	// PolicyPoster drops movies without a poster
	PolicyPoster
	// PolicyStrict drops movies without a poster or with any descriptive field missing
	PolicyStrict
)

func (p FilterPolicy) String() string {
	switch p {
	case PolicyPoster:
		return "poster"
	case PolicyStrict:
		return "strict"
	default:
		return "none"
	}
}

// ParsePolicy parses "none", "poster" or "strict" (case-insensitive)
func ParsePolicy(s string) (FilterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PolicyNone, nil
	case "poster":
		return PolicyPoster, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyNone, fmt.Errorf("unknown filter policy %q", s)
}

// Keep reports whether m passes the policy
func (p FilterPolicy) Keep(m domain.Movie) bool {
	switch p {
	case PolicyPoster:
		return m.HasPoster()
	case PolicyStrict:
		return m.HasPoster() && m.IsComplete()
	default:
		return true
	}
}

// Apply returns the movies that pass the policy, in order
func (p FilterPolicy) Apply(movies []domain.Movie) []domain.Movie {
	if p == PolicyNone {
		return movies
	}
	kept := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if p.Keep(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// Merge folds a fetched page into the accumulated list.
// Page 1 replaces the list; later pages append only ids not yet present.
// Duplicates inside incoming are dropped too; the first occurrence wins.
func Merge(existing, incoming []domain.Movie, replace bool) []domain.Movie {
	var merged []domain.Movie
	seen := make(map[int]struct{}, len(existing)+len(incoming))

	if !replace {
		merged = make([]domain.Movie, 0, len(existing)+len(incoming))
		for _, m := range existing {
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	} else {
		merged = make([]domain.Movie, 0, len(incoming))
	}

	for _, m := range incoming {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	return merged
}
