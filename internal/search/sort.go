package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmcdole/cartelera/internal/domain"
)

// TitleLanguage is the collation locale used for title ordering
var TitleLanguage = language.Spanish

// newTitleCollator returns a base-strength collator: case, accents and width
// do not affect order. Collators are not safe for concurrent use.
func newTitleCollator() *collate.Collator {
	return collate.New(TitleLanguage, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
}

// CompareTitles compares two titles with locale-aware, base-strength collation
func CompareTitles(a, b string) int {
	return newTitleCollator().CompareString(a, b)
}

// SortByTitle returns a copy of movies stably sorted by title.
// Titles that collate equal keep their original relative order.
func SortByTitle(movies []domain.Movie) []domain.Movie {
	sorted := make([]domain.Movie, len(movies))
	copy(sorted, movies)

	c := newTitleCollator()
	var buf collate.Buffer
	keys := make([][]byte, len(sorted))
	for i, m := range sorted {
		keys[i] = append([]byte(nil), c.KeyFromString(&buf, m.Title)...)
		buf.Reset()
	}

	idx := make([]int, len(sorted))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return string(keys[idx[i]]) < string(keys[idx[j]])
	})

	out := make([]domain.Movie, len(sorted))
	for i, k := range idx {
		out[i] = sorted[k]
	}
	return out
}
