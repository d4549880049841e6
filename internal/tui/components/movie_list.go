package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/search"
	"github.com/mmcdole/cartelera/internal/tui/styles"
)

// MovieList is a scrollable list of movies, optionally showing filter matches
type MovieList struct {
	title      string
	movies     []domain.Movie
	matches    []search.Match // non-nil while a filter is applied
	isFavorite func(id int) bool

	cursor     int
	offset     int
	width      int
	height     int
	maxVisible int
	keys       MovieListKeyMap
}

// NewMovieList creates an empty list
func NewMovieList(title string) MovieList {
	return MovieList{
		title:      title,
		maxVisible: 10,
		keys:       DefaultMovieListKeyMap(),
	}
}

// SetTitle changes the list heading
func (l *MovieList) SetTitle(title string) {
	l.title = title
}

// SetMovies replaces the movies and clears any filter. The cursor is kept
// when it still fits.
func (l *MovieList) SetMovies(movies []domain.Movie) {
	l.movies = movies
	l.matches = nil
	l.clampCursor()
}

// SetMatches shows filter matches instead of the full list
func (l *MovieList) SetMatches(matches []search.Match) {
	if matches == nil {
		matches = []search.Match{}
	}
	l.matches = matches
	l.cursor = 0
	l.offset = 0
}

// ClearMatches returns to the full list
func (l *MovieList) ClearMatches() {
	l.matches = nil
	l.clampCursor()
}

// Filtering reports whether filter matches are shown
func (l MovieList) Filtering() bool {
	return l.matches != nil
}

// SetFavoriteCheck sets the function used to mark favorites
func (l *MovieList) SetFavoriteCheck(fn func(id int) bool) {
	l.isFavorite = fn
}

// SetSize updates the component dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	// title, blank line, more-above and more-below indicators
	l.maxVisible = max(height-4, 1)
	l.ensureVisible()
}

// Len returns the number of rows shown
func (l MovieList) Len() int {
	if l.matches != nil {
		return len(l.matches)
	}
	return len(l.movies)
}

// Cursor returns the selected row index
func (l MovieList) Cursor() int {
	return l.cursor
}

// Selected returns the movie under the cursor
func (l MovieList) Selected() (domain.Movie, bool) {
	if l.cursor < 0 || l.cursor >= l.Len() {
		return domain.Movie{}, false
	}
	if l.matches != nil {
		return l.matches[l.cursor].Movie, true
	}
	return l.movies[l.cursor], true
}

// Update handles navigation keys
func (l MovieList) Update(msg tea.Msg) (MovieList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(keyMsg, l.keys.Up):
		l.move(-1)
	case key.Matches(keyMsg, l.keys.Down):
		l.move(1)
	case key.Matches(keyMsg, l.keys.Home):
		l.cursor = 0
		l.ensureVisible()
	case key.Matches(keyMsg, l.keys.End):
		l.cursor = max(l.Len()-1, 0)
		l.ensureVisible()
	case key.Matches(keyMsg, l.keys.HalfUp):
		l.move(-l.maxVisible / 2)
	case key.Matches(keyMsg, l.keys.HalfDown):
		l.move(l.maxVisible / 2)
	}
	return l, nil
}

func (l *MovieList) move(delta int) {
	if l.Len() == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), l.Len()-1)
	l.ensureVisible()
}

func (l *MovieList) clampCursor() {
	if l.cursor >= l.Len() {
		l.cursor = max(l.Len()-1, 0)
	}
	l.ensureVisible()
}

func (l *MovieList) ensureVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list
func (l MovieList) View() string {
	itemWidth := max(l.width, 20)
	titleLine := styles.AccentStyle.Render(styles.Truncate(l.title, itemWidth))

	count := l.Len()
	if count == 0 {
		emptyMsg := "Sin peliculas"
		if l.Filtering() {
			emptyMsg = "Sin coincidencias"
		}
		return titleLine + "\n \n" + styles.DimStyle.Render(emptyMsg)
	}

	end := min(l.offset+l.maxVisible, count)
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(i, itemWidth))
	}

	// Reserve indicator lines to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ mas")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ mas")
	}

	return titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (l MovieList) renderRow(i, width int) string {
	var movie domain.Movie
	var matched []int
	if l.matches != nil {
		movie = l.matches[i].Movie
		matched = l.matches[i].MatchedIndexes
	} else {
		movie = l.movies[i]
	}

	marker := "  "
	markerFg := styles.Pink
	if l.isFavorite != nil && l.isFavorite(movie.ID) {
		marker = styles.FavoriteChar + " "
	}

	suffix := ""
	if year := movie.ReleaseYear(); year != "" {
		suffix = fmt.Sprintf(" (%s)", year)
	}
	vote := fmt.Sprintf("  %s %s", styles.StarChar, movie.FormattedVote())
	voteFg := styles.Amber

	title := movie.Title
	available := width - lipgloss.Width(marker) - lipgloss.Width(suffix) - lipgloss.Width(vote) - 2
	if lipgloss.Width(title) > available {
		title = styles.Truncate(title, max(available, 5))
		matched = nil
	}

	parts := []styles.RowPart{{Text: marker, Foreground: &markerFg}}
	parts = append(parts, styles.HighlightParts(title, matched)...)
	parts = append(parts,
		styles.RowPart{Text: suffix},
		styles.RowPart{Text: vote, Foreground: &voteFg},
	)
	return styles.RenderListRow(parts, i == l.cursor, width)
}
