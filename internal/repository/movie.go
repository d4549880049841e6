// Package repository adapts a remote data source to domain.MovieRepository.
// It is the single place where failures are translated into *domain.AppError.
package repository

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mmcdole/cartelera/internal/domain"
)

// User-facing failure messages, one per operation
const (
	MsgPopular         = "No pudimos obtener las peliculas populares."
	MsgTopRated        = "No pudimos obtener las peliculas mejor valoradas."
	MsgUpcoming        = "No pudimos obtener los proximos estrenos."
	MsgNowPlaying      = "No pudimos obtener las peliculas en cartelera."
	MsgDetail          = "No pudimos cargar el detalle de la pelicula."
	MsgCredits         = "No pudimos obtener el reparto de la pelicula."
	MsgRecommendations = "No pudimos obtener las recomendaciones."
	MsgRate            = "No pudimos registrar tu calificacion."
)

const guestSessionKey = "guest-session"

// MovieRepository implements domain.MovieRepository over a domain.MovieDataSource.
// It owns the guest session used for rating; construct one per process.
type MovieRepository struct {
	api    domain.MovieDataSource
	logger *slog.Logger

	sessionMu sync.Mutex
	sessionID string
	sessions  singleflight.Group
}

// NewMovieRepository creates a repository backed by the given data source
func NewMovieRepository(api domain.MovieDataSource, logger *slog.Logger) *MovieRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieRepository{
		api:    api,
		logger: logger,
	}
}

// fail logs the original error and wraps it with the operation's message
func (r *MovieRepository) fail(op string, err error, message string) error {
	r.logger.Warn("repository operation failed", "op", op, "error", err)
	return domain.WrapAppError(err, message)
}

// GetPopular returns popular movies
func (r *MovieRepository) GetPopular(ctx context.Context) ([]domain.Movie, error) {
	movies, err := r.api.GetPopular(ctx)
	if err != nil {
		return nil, r.fail("popular", err, MsgPopular)
	}
	return movies, nil
}

// GetTopRated returns top rated movies
func (r *MovieRepository) GetTopRated(ctx context.Context) ([]domain.Movie, error) {
	movies, err := r.api.GetTopRated(ctx)
	if err != nil {
		return nil, r.fail("top_rated", err, MsgTopRated)
	}
	return movies, nil
}

// GetUpcoming returns upcoming movies
func (r *MovieRepository) GetUpcoming(ctx context.Context) ([]domain.Movie, error) {
	movies, err := r.api.GetUpcoming(ctx)
	if err != nil {
		return nil, r.fail("upcoming", err, MsgUpcoming)
	}
	return movies, nil
}

// GetNowPlaying returns movies currently in theaters
func (r *MovieRepository) GetNowPlaying(ctx context.Context) ([]domain.Movie, error) {
	movies, err := r.api.GetNowPlaying(ctx)
	if err != nil {
		return nil, r.fail("now_playing", err, MsgNowPlaying)
	}
	return movies, nil
}

// GetMovieByID returns the detail record for a movie
func (r *MovieRepository) GetMovieByID(ctx context.Context, id int) (*domain.MovieDetail, error) {
	detail, err := r.api.GetMovieByID(ctx, id)
	if err != nil {
		return nil, r.fail("detail", err, MsgDetail)
	}
	return detail, nil
}

// GetCreditsByMovieID returns the cast of a movie
func (r *MovieRepository) GetCreditsByMovieID(ctx context.Context, id int) ([]domain.Actor, error) {
	cast, err := r.api.GetCreditsByMovieID(ctx, id)
	if err != nil {
		return nil, r.fail("credits", err, MsgCredits)
	}
	return cast, nil
}

// GetRecommendationsByMovieID returns movies recommended from a movie
func (r *MovieRepository) GetRecommendationsByMovieID(ctx context.Context, id int) ([]domain.Movie, error) {
	movies, err := r.api.GetRecommendationsByMovieID(ctx, id)
	if err != nil {
		return nil, r.fail("recommendations", err, MsgRecommendations)
	}
	return movies, nil
}

// RateMovie records a rating, opening a guest session on first use
func (r *MovieRepository) RateMovie(ctx context.Context, id int, rating float64) error {
	sessionID, err := r.ensureSession(ctx)
	if err != nil {
		return r.fail("rate", err, MsgRate)
	}
	if err := r.api.RateMovie(ctx, id, rating, sessionID); err != nil {
		return r.fail("rate", err, MsgRate)
	}
	r.logger.Info("movie rated", "movieID", id, "rating", rating)
	return nil
}

// ensureSession returns the cached guest session, creating it if needed.
// Concurrent first callers share a single creation request. The request is
// detached from any one caller's cancellation; each caller stops waiting when
// its own ctx is done.
func (r *MovieRepository) ensureSession(ctx context.Context) (string, error) {
	r.sessionMu.Lock()
	cached := r.sessionID
	r.sessionMu.Unlock()
	if cached != "" {
		return cached, nil
	}

	ch := r.sessions.DoChan(guestSessionKey, func() (interface{}, error) {
		r.sessionMu.Lock()
		if r.sessionID != "" {
			id := r.sessionID
			r.sessionMu.Unlock()
			return id, nil
		}
		r.sessionMu.Unlock()

		id, err := r.api.CreateGuestSession(context.WithoutCancel(ctx))
		if err != nil {
			return "", err
		}

		r.sessionMu.Lock()
		r.sessionID = id
		r.sessionMu.Unlock()
		r.logger.Debug("guest session cached")
		return id, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
