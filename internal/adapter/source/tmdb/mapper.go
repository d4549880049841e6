package tmdb

import (
	"strings"

	"github.com/mmcdole/cartelera/internal/domain"
)

// untitled is shown when a list entry carries neither title nor name
const untitled = "Sin titulo"

// MapMovies converts list results to domain movies
func MapMovies(results []MovieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, mapMovie(r))
	}
	return movies
}

// mapMovie converts a single list result to a domain movie
func mapMovie(r MovieResult) domain.Movie {
	return domain.Movie{
		ID:           r.ID,
		Title:        firstPresent(untitled, r.Title, r.Name),
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  firstPresent("", r.ReleaseDate, r.FirstAirDate),
		VoteAverage:  r.VoteAverage,
		GenreIDs:     nonNilInts(r.GenreIDs),
	}
}

// MapMovieDetail converts a detail response to a domain movie detail
func MapMovieDetail(r MovieDetailResponse) *domain.MovieDetail {
	genres := make([]domain.Genre, 0, len(r.Genres))
	genreIDs := make([]int, 0, len(r.Genres))
	for _, g := range r.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
		genreIDs = append(genreIDs, g.ID)
	}

	return &domain.MovieDetail{
		Movie: domain.Movie{
			ID:           r.ID,
			Title:        r.Title,
			Overview:     r.Overview,
			PosterPath:   r.PosterPath,
			BackdropPath: r.BackdropPath,
			ReleaseDate:  r.ReleaseDate,
			VoteAverage:  r.VoteAverage,
			GenreIDs:     genreIDs,
		},
		Runtime:  r.Runtime,
		Genres:   genres,
		Tagline:  r.Tagline,
		Homepage: r.Homepage,
		Status:   r.Status,
	}
}

// MapCast converts credits cast entries to domain actors
func MapCast(cast []CastMember) []domain.Actor {
	actors := make([]domain.Actor, 0, len(cast))
	for _, c := range cast {
		actors = append(actors, domain.Actor{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
		})
	}
	return actors
}

// ImageURL joins the image base URL with a relative image path.
// Returns "" when path is nil or empty.
func ImageURL(base string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(*path, "/")
}

// firstPresent returns the first non-nil candidate, or fallback.
// A present-but-empty string wins over later candidates.
func firstPresent(fallback string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

func nonNilInts(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
