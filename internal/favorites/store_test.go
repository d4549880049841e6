package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/cartelera/internal/domain"
)

var _ domain.Favorites = (*Store)(nil)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewStore()
	dune := domain.Movie{ID: 1, Title: "Dune"}

	assert.True(t, s.Toggle(dune))
	assert.True(t, s.IsFavorite(1))
	assert.Equal(t, 1, s.Len())

	assert.False(t, s.Toggle(dune))
	assert.False(t, s.IsFavorite(1))
	assert.Empty(t, s.List())
}

func TestToggleIsKeyedByID(t *testing.T) {
	s := NewStore()
	s.Toggle(domain.Movie{ID: 1, Title: "Dune"})

	// Same ID with a different title removes the existing entry
	assert.False(t, s.Toggle(domain.Movie{ID: 1, Title: "Dune (2021)"}))
	assert.Equal(t, 0, s.Len())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Toggle(domain.Movie{ID: 3, Title: "Zulu"})
	s.Toggle(domain.Movie{ID: 1, Title: "Alpha"})
	s.Toggle(domain.Movie{ID: 2, Title: "Bravo"})
	s.Toggle(domain.Movie{ID: 1, Title: "Alpha"})

	list := s.List()
	assert.Equal(t, []int{3, 2}, []int{list[0].ID, list[1].ID})
}

func TestRemovalDoesNotAliasPreviousList(t *testing.T) {
	s := NewStore()
	s.Toggle(domain.Movie{ID: 1, Title: "A"})
	s.Toggle(domain.Movie{ID: 2, Title: "B"})
	before := s.List()

	s.Toggle(domain.Movie{ID: 1, Title: "A"})

	assert.Equal(t, 1, before[0].ID)
	assert.Equal(t, []domain.Movie{{ID: 2, Title: "B"}}, s.List())
}

func TestSortedOrdersByTitle(t *testing.T) {
	s := NewStore()
	s.Toggle(domain.Movie{ID: 3, Title: "zulu"})
	s.Toggle(domain.Movie{ID: 1, Title: "Álamo"})
	s.Toggle(domain.Movie{ID: 2, Title: "Bravo"})

	sorted := s.Sorted()
	assert.Equal(t, []string{"Álamo", "Bravo", "zulu"}, []string{sorted[0].Title, sorted[1].Title, sorted[2].Title})
}

func TestFilter(t *testing.T) {
	s := NewStore()
	s.Toggle(domain.Movie{ID: 1, Title: "El Padrino"})
	s.Toggle(domain.Movie{ID: 2, Title: "Dune"})

	matches := s.Filter("padrino")
	if assert.Len(t, matches, 1) {
		assert.Equal(t, 1, matches[0].Movie.ID)
	}
}
