// Package usecase holds one type per application operation. Each delegates to
// domain.MovieRepository and propagates its errors unchanged.
package usecase

import (
	"context"

	"github.com/mmcdole/cartelera/internal/domain"
)

// GetPopularMovies lists popular movies
type GetPopularMovies struct {
	repo domain.MovieRepository
}

func NewGetPopularMovies(repo domain.MovieRepository) *GetPopularMovies {
	return &GetPopularMovies{repo: repo}
}

func (u *GetPopularMovies) Execute(ctx context.Context) ([]domain.Movie, error) {
	return u.repo.GetPopular(ctx)
}

// GetTopRatedMovies lists the best rated movies
type GetTopRatedMovies struct {
	repo domain.MovieRepository
}

func NewGetTopRatedMovies(repo domain.MovieRepository) *GetTopRatedMovies {
	return &GetTopRatedMovies{repo: repo}
}

func (u *GetTopRatedMovies) Execute(ctx context.Context) ([]domain.Movie, error) {
	return u.repo.GetTopRated(ctx)
}

// GetUpcomingMovies lists movies about to be released
type GetUpcomingMovies struct {
	repo domain.MovieRepository
}

func NewGetUpcomingMovies(repo domain.MovieRepository) *GetUpcomingMovies {
	return &GetUpcomingMovies{repo: repo}
}

func (u *GetUpcomingMovies) Execute(ctx context.Context) ([]domain.Movie, error) {
	return u.repo.GetUpcoming(ctx)
}

// GetNowPlayingMovies lists movies currently in theaters
type GetNowPlayingMovies struct {
	repo domain.MovieRepository
}

func NewGetNowPlayingMovies(repo domain.MovieRepository) *GetNowPlayingMovies {
	return &GetNowPlayingMovies{repo: repo}
}

func (u *GetNowPlayingMovies) Execute(ctx context.Context) ([]domain.Movie, error) {
	return u.repo.GetNowPlaying(ctx)
}

// GetMovieDetail loads the detail record for one movie
type GetMovieDetail struct {
	repo domain.MovieRepository
}

func NewGetMovieDetail(repo domain.MovieRepository) *GetMovieDetail {
	return &GetMovieDetail{repo: repo}
}

func (u *GetMovieDetail) Execute(ctx context.Context, id int) (*domain.MovieDetail, error) {
	return u.repo.GetMovieByID(ctx, id)
}

// GetMovieCredits loads the cast of one movie
type GetMovieCredits struct {
	repo domain.MovieRepository
}

func NewGetMovieCredits(repo domain.MovieRepository) *GetMovieCredits {
	return &GetMovieCredits{repo: repo}
}

func (u *GetMovieCredits) Execute(ctx context.Context, movieID int) ([]domain.Actor, error) {
	return u.repo.GetCreditsByMovieID(ctx, movieID)
}

// GetMovieRecommendations loads movies recommended from one movie
type GetMovieRecommendations struct {
	repo domain.MovieRepository
}

func NewGetMovieRecommendations(repo domain.MovieRepository) *GetMovieRecommendations {
	return &GetMovieRecommendations{repo: repo}
}

func (u *GetMovieRecommendations) Execute(ctx context.Context, movieID int) ([]domain.Movie, error) {
	return u.repo.GetRecommendationsByMovieID(ctx, movieID)
}
