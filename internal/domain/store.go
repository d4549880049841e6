package domain

// Favorites is the user's favorites list, held in memory only.
// Entries are unique by movie ID and kept in insertion order.
type Favorites interface {
	// List returns the favorites in insertion order
	List() []Movie

	// Toggle adds the movie if absent, removes it otherwise.
	// Returns true when the movie is a favorite after the call.
	Toggle(movie Movie) bool

	// IsFavorite reports whether a movie ID is in the list
	IsFavorite(id int) bool
}
