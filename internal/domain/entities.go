package domain

import "fmt"

// Movie is a catalog entry as shown in lists and carousels
type Movie struct {
	ID           int     // TMDb movie ID (stable external key)
	Title        string  // Display title
	Overview     string  // Plot synopsis
	PosterPath   *string // Relative poster image path (nil if none)
	BackdropPath *string // Relative backdrop image path (nil if none)
	ReleaseDate  string  // ISO date, empty if unknown
	VoteAverage  float64 // Audience score, 0-10
	GenreIDs     []int
}

// ReleaseYear returns the year part of ReleaseDate, or "" if unknown
func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// FormattedVote returns the vote average with one decimal (e.g., "7.5")
func (m Movie) FormattedVote() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// Genre is a named genre attached to a movie detail
type Genre struct {
	ID   int
	Name string
}

// MovieDetail is the full record for a single movie.
// GenreIDs on the embedded Movie mirrors Genres in order.
type MovieDetail struct {
	Movie

	Runtime  *int    // Minutes (nil if unknown)
	Genres   []Genre // Ordered as returned by the API
	Tagline  *string
	Homepage *string
	Status   string // e.g., "Released"
}

// FormattedRuntime returns the runtime in a human-readable format
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime == nil || *d.Runtime <= 0 {
		return ""
	}
	h := *d.Runtime / 60
	mins := *d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// GenreNames returns the genre names in API order
func (d MovieDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// Actor is a cast member credited on a movie
type Actor struct {
	ID          int
	Name        string
	Character   string  // Role name, empty if unknown
	ProfilePath *string // Relative profile image path (nil if none)
}
