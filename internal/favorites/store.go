// Package favorites keeps the in-memory favorites list.
package favorites

import (
	"sync"

	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/search"
)

// Store implements domain.Favorites. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []domain.Movie
}

// NewStore creates an empty favorites store
func NewStore() *Store {
	return &Store{}
}

// List returns a copy of the favorites in insertion order
func (s *Store) List() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Movie, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the favorites ordered by title
func (s *Store) Sorted() []domain.Movie {
	return search.SortByTitle(s.List())
}

// Toggle adds or removes movie, keyed by ID
func (s *Store) Toggle(movie domain.Movie) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.items {
		if m.ID == movie.ID {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, movie)
	return true
}

// IsFavorite reports whether id is in the list
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.items {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of favorites
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Filter fuzzy-matches favorites by title
func (s *Store) Filter(query string) []search.Match {
	return search.Filter(query, s.List())
}
