package domain

import (
	"context"
)

// MovieCatalog lists the curated movie collections
type MovieCatalog interface {
	// GetPopular returns the current popular movies
	GetPopular(ctx context.Context) ([]Movie, error)

	// GetTopRated returns the best rated movies
	GetTopRated(ctx context.Context) ([]Movie, error)

	// GetUpcoming returns movies about to be released
	GetUpcoming(ctx context.Context) ([]Movie, error)

	// GetNowPlaying returns movies currently in theaters
	GetNowPlaying(ctx context.Context) ([]Movie, error)
}

// MovieMetadata provides per-movie lookups
type MovieMetadata interface {
	// GetMovieByID returns the full detail record for a movie
	GetMovieByID(ctx context.Context, id int) (*MovieDetail, error)

	// GetCreditsByMovieID returns the cast of a movie
	GetCreditsByMovieID(ctx context.Context, id int) ([]Actor, error)

	// GetRecommendationsByMovieID returns movies recommended from a movie
	GetRecommendationsByMovieID(ctx context.Context, id int) ([]Movie, error)
}

// MovieRepository is the domain-facing contract consumed by use cases.
// Every error it returns is an *AppError.
type MovieRepository interface {
	MovieCatalog
	MovieMetadata

	// RateMovie records a rating for a movie, acquiring an anonymous
	// session first if none is cached
	RateMovie(ctx context.Context, id int, rating float64) error
}

// MovieDataSource is the raw remote API. Implementations issue exactly one
// request per call and return errors untranslated.
type MovieDataSource interface {
	MovieCatalog
	MovieMetadata

	// CreateGuestSession opens an anonymous session usable for rating
	CreateGuestSession(ctx context.Context) (string, error)

	// RateMovie submits a rating under the given session
	RateMovie(ctx context.Context, id int, rating float64, sessionID string) error
}
