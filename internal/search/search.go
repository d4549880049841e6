// Package search orders and filters movie titles for display.
package search

import (
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/cartelera/internal/domain"
)

// Match is a movie that matched a filter query
type Match struct {
	Movie          domain.Movie
	Distance       int   // Levenshtein distance between query and title (lower = better)
	MatchedIndexes []int // Byte positions in the lowercased title that matched (for highlighting)
}

// titleIndex implements sahilm/fuzzy.Source over pre-lowercased titles
type titleIndex []string

func (idx titleIndex) String(i int) string { return idx[i] }
func (idx titleIndex) Len() int            { return len(idx) }

// Filter returns the movies whose title fuzzily contains query, best match
// first. Matching ignores case and diacritics. An empty query returns nil.
func Filter(query string, movies []domain.Movie) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(movies) == 0 {
		return nil
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}

	ranks := fuzzysearch.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	lowerQuery := strings.ToLower(query)
	matches := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, Match{
			Movie:          movies[r.OriginalIndex],
			Distance:       r.Distance,
			MatchedIndexes: highlight(lowerQuery, r.Target),
		})
	}
	return matches
}

// highlight returns the positions in title matched by query, or nil when the
// match only exists after accent folding
func highlight(lowerQuery, title string) []int {
	found := fuzzy.FindFrom(lowerQuery, titleIndex{strings.ToLower(title)})
	if len(found) == 0 {
		return nil
	}
	return found[0].MatchedIndexes
}

// Dedupe drops later movies whose ID already appeared, keeping order
func Dedupe(movies []domain.Movie) []domain.Movie {
	seen := make(map[int]bool, len(movies))
	out := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}
