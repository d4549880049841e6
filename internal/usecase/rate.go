package usecase

import (
	"context"
	"math"

	"github.com/mmcdole/cartelera/internal/domain"
)

// Bounds accepted by the rating endpoint
const (
	MinRating = 0.5
	MaxRating = 10.0
)

// NormalizeRating snaps r to the nearest half point (halves round up) and
// clamps it into [MinRating, MaxRating]. NaN maps to MinRating.
func NormalizeRating(r float64) float64 {
	if math.IsNaN(r) {
		return MinRating
	}
	snapped := math.Floor(r*2+0.5) / 2
	return math.Min(math.Max(snapped, MinRating), MaxRating)
}

// RateMovie submits a user rating after normalizing it
type RateMovie struct {
	repo domain.MovieRepository
}

func NewRateMovie(repo domain.MovieRepository) *RateMovie {
	return &RateMovie{repo: repo}
}

// Execute normalizes rating and records it for movieID
func (u *RateMovie) Execute(ctx context.Context, movieID int, rating float64) error {
	return u.repo.RateMovie(ctx, movieID, NormalizeRating(rating))
}
