package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/tui/styles"
	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// maxCastShown limits the cast lines in the inspector
const maxCastShown = 6

// Inspector displays a movie's detail state: metadata, cast, rating
// feedback and a navigable recommendations list
type Inspector struct {
	state      viewmodel.DetailState
	recs       MovieList
	imageURL   func(path *string) string
	isFavorite func(id int) bool
	width      int
	height     int
}

// NewInspector creates an empty inspector
func NewInspector(imageURL func(path *string) string) Inspector {
	return Inspector{
		recs:     NewMovieList("Recomendadas"),
		imageURL: imageURL,
	}
}

// SetState replaces the displayed detail state
func (i *Inspector) SetState(state viewmodel.DetailState) {
	i.state = state
	i.recs.SetMovies(state.Recommendations)
}

// SetFavoriteCheck sets the function used to mark favorites
func (i *Inspector) SetFavoriteCheck(fn func(id int) bool) {
	i.isFavorite = fn
	i.recs.SetFavoriteCheck(fn)
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	i.recs.SetSize(width, max(height/3, 5))
}

// SelectedRecommendation returns the recommendation under the cursor
func (i Inspector) SelectedRecommendation() (domain.Movie, bool) {
	return i.recs.Selected()
}

// Update forwards navigation keys to the recommendations list
func (i Inspector) Update(msg tea.Msg) (Inspector, tea.Cmd) {
	var cmd tea.Cmd
	i.recs, cmd = i.recs.Update(msg)
	return i, cmd
}

// View renders the component
func (i Inspector) View(spinner string) string {
	width := max(i.width, 20)
	s := i.state

	if s.Loading {
		return styles.DimStyle.Render(spinner + " Cargando pelicula...")
	}
	if s.Error != nil {
		return styles.ErrorStyle.Render(*s.Error) + "\n\n" + styles.DimStyle.Render("esc para volver")
	}
	if s.Movie == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(i.renderHeader(s.Movie, width))
	b.WriteString("\n\n")

	if s.Movie.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Render(s.Movie.Overview))
		b.WriteString("\n\n")
	}

	if len(s.Cast) > 0 {
		b.WriteString(styles.AccentStyle.Render("Reparto"))
		b.WriteString("\n")
		for _, actor := range s.Cast[:min(len(s.Cast), maxCastShown)] {
			line := "  " + styles.Truncate(actor.Name, width-2)
			if actor.Character != "" {
				line += styles.DimStyle.Render(" como " + actor.Character)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(i.renderRating())
	b.WriteString("\n\n")
	b.WriteString(i.recs.View())
	return b.String()
}

func (i Inspector) renderHeader(movie *domain.MovieDetail, width int) string {
	title := movie.Title
	if i.isFavorite != nil && i.isFavorite(movie.ID) {
		title = lipgloss.NewStyle().Foreground(styles.Pink).Render(styles.FavoriteChar) + " " + title
	}
	lines := []string{styles.TitleStyle.Render(title)}

	if movie.Tagline != nil && *movie.Tagline != "" {
		lines = append(lines, styles.SubtitleStyle.Render(*movie.Tagline))
	}

	var facts []string
	if year := movie.ReleaseYear(); year != "" {
		facts = append(facts, year)
	}
	if rt := movie.FormattedRuntime(); rt != "" {
		facts = append(facts, rt)
	}
	facts = append(facts, fmt.Sprintf("%s %s", styles.StarChar, movie.FormattedVote()))
	if genres := movie.GenreNames(); len(genres) > 0 {
		facts = append(facts, strings.Join(genres, ", "))
	}
	lines = append(lines, styles.DimStyle.Render(styles.Truncate(strings.Join(facts, " · "), width)))

	if i.imageURL != nil {
		if poster := i.imageURL(movie.PosterPath); poster != "" {
			lines = append(lines, styles.DimStyle.Render(styles.Truncate(poster, width)))
		}
	}
	return strings.Join(lines, "\n")
}

func (i Inspector) renderRating() string {
	s := i.state
	switch {
	case s.RatingSubmitting:
		return styles.DimStyle.Render("Enviando calificacion...")
	case s.RatingSuccess != nil:
		return styles.SuccessStyle.Render(*s.RatingSuccess)
	case s.RatingError != nil:
		return styles.ErrorStyle.Render(*s.RatingError)
	default:
		return styles.DimStyle.Render("Califica con 1-9 (0 = 10)")
	}
}
