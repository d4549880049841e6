package usecase

import "github.com/mmcdole/cartelera/internal/domain"

// Set bundles every use case built over one repository
type Set struct {
	GetPopularMovies        *GetPopularMovies
	GetTopRatedMovies       *GetTopRatedMovies
	GetUpcomingMovies       *GetUpcomingMovies
	GetNowPlayingMovies     *GetNowPlayingMovies
	GetMovieDetail          *GetMovieDetail
	GetMovieCredits         *GetMovieCredits
	GetMovieRecommendations *GetMovieRecommendations
	RateMovie               *RateMovie
}

// NewSet builds all use cases over repo
func NewSet(repo domain.MovieRepository) *Set {
	return &Set{
		GetPopularMovies:        NewGetPopularMovies(repo),
		GetTopRatedMovies:       NewGetTopRatedMovies(repo),
		GetUpcomingMovies:       NewGetUpcomingMovies(repo),
		GetNowPlayingMovies:     NewGetNowPlayingMovies(repo),
		GetMovieDetail:          NewGetMovieDetail(repo),
		GetMovieCredits:         NewGetMovieCredits(repo),
		GetMovieRecommendations: NewGetMovieRecommendations(repo),
		RateMovie:               NewRateMovie(repo),
	}
}
