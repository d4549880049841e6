package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/mmcdole/cartelera/internal/domain"
)

const (
	// MsgDetailUnexpected is shown when a detail load fails with a non-application error
	MsgDetailUnexpected = "No pudimos cargar la pelicula."
	// MsgRatingSuccess confirms a submitted rating
	MsgRatingSuccess = "Calificacion registrada. Gracias por tu voto."
	// MsgRatingUnexpected is shown when a rating fails with a non-application error
	MsgRatingUnexpected = "No pudimos registrar tu calificacion."
)

// DetailFetcher loads a movie's full record
type DetailFetcher interface {
	Execute(ctx context.Context, id int) (*domain.MovieDetail, error)
}

// CreditsFetcher loads a movie's cast
type CreditsFetcher interface {
	Execute(ctx context.Context, movieID int) ([]domain.Actor, error)
}

// RecommendationsFetcher loads movies related to a movie
type RecommendationsFetcher interface {
	Execute(ctx context.Context, movieID int) ([]domain.Movie, error)
}

// Rater submits a rating for a movie
type Rater interface {
	Execute(ctx context.Context, movieID int, rating float64) error
}

// DetailUseCases are the operations behind the detail screen
type DetailUseCases struct {
	Detail          DetailFetcher
	Credits         CreditsFetcher
	Recommendations RecommendationsFetcher
	Rate            Rater
}

// DetailState is a snapshot of the detail screen
type DetailState struct {
	MovieID         int
	Movie           *domain.MovieDetail
	Cast            []domain.Actor
	Recommendations []domain.Movie
	Loading         bool
	Error           *string

	RatingSubmitting bool
	RatingSuccess    *string
	RatingError      *string
}

func initialDetailState(id int) DetailState {
	return DetailState{
		MovieID:         id,
		Cast:            []domain.Actor{},
		Recommendations: []domain.Movie{},
		Loading:         true,
	}
}

// Detail loads one movie with its cast and recommendations, and submits
// ratings for it
type Detail struct {
	uc     DetailUseCases
	logger *slog.Logger
	subs   *observers[DetailState]

	mu       sync.Mutex
	state    DetailState
	activeID int
	active   bool
	cancel   context.CancelFunc
	closed   bool
}

// NewDetail creates a detail view model. Nothing is fetched until Activate.
func NewDetail(uc DetailUseCases, logger *slog.Logger) *Detail {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detail{
		uc:     uc,
		logger: logger,
		subs:   newObservers[DetailState](),
		state:  initialDetailState(0),
	}
}

// State returns the current snapshot
func (vm *Detail) State() DetailState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Subscribe registers fn for every state transition
func (vm *Detail) Subscribe(fn func(DetailState)) (unsubscribe func()) {
	return vm.subs.subscribe(fn)
}

// Activate loads movie id and blocks until the load resolves. Activating the
// id that is already active is a no-op. A different id cancels the previous
// load and resets the state, including rating feedback.
func (vm *Detail) Activate(ctx context.Context, id int) {
	vm.mu.Lock()
	if vm.closed || (vm.active && vm.activeID == id) {
		vm.mu.Unlock()
		return
	}
	if vm.cancel != nil {
		vm.cancel()
	}
	actx, cancel := context.WithCancel(ctx)
	defer cancel()
	vm.cancel = cancel
	vm.active = true
	vm.activeID = id
	vm.state = initialDetailState(id)
	snap := vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)

	activation := uuid.NewString()
	log := vm.logger.With("activation", activation, "movie", id)
	log.Debug("detail activation started")

	var (
		movie *domain.MovieDetail
		cast  []domain.Actor
		recs  []domain.Movie
	)
	p := pool.New().WithContext(actx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		movie, err = vm.uc.Detail.Execute(ctx, id)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		cast, err = vm.uc.Credits.Execute(ctx, id)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		recs, err = vm.uc.Recommendations.Execute(ctx, id)
		return err
	})
	err := p.Wait()

	vm.mu.Lock()
	if actx.Err() != nil {
		vm.mu.Unlock()
		log.Debug("detail activation discarded")
		return
	}
	vm.state.Loading = false
	if err != nil {
		vm.state.Error = strPtr(domain.Message(err, MsgDetailUnexpected))
		log.Warn("detail load failed", "error", err)
	} else {
		vm.state.Movie = movie
		vm.state.Cast = nonNil(cast)
		vm.state.Recommendations = nonNil(recs)
		log.Info("detail loaded", "cast", len(cast), "recommendations", len(recs))
	}
	snap = vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)
}

// RateMovie submits value for the active movie and records the outcome in
// the rating sub-state. It blocks until the submission resolves.
func (vm *Detail) RateMovie(ctx context.Context, value float64) {
	vm.mu.Lock()
	if vm.closed || !vm.active {
		vm.mu.Unlock()
		return
	}
	id := vm.activeID
	vm.state.RatingSubmitting = true
	vm.state.RatingSuccess = nil
	vm.state.RatingError = nil
	snap := vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)

	log := vm.logger.With("submission", uuid.NewString(), "movie", id, "value", value)
	err := vm.uc.Rate.Execute(ctx, id, value)

	vm.mu.Lock()
	vm.state.RatingSubmitting = false
	if err != nil {
		vm.state.RatingError = strPtr(domain.Message(err, MsgRatingUnexpected))
		log.Warn("rating failed", "error", err)
	} else {
		vm.state.RatingSuccess = strPtr(MsgRatingSuccess)
		log.Info("rating submitted")
	}
	snap = vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)
}

// ClearRatingFeedback resets the rating success and error messages
func (vm *Detail) ClearRatingFeedback() {
	vm.mu.Lock()
	vm.state.RatingSuccess = nil
	vm.state.RatingError = nil
	snap := vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)
}

// Deactivate ends the current detail view: the in-flight load is cancelled
// and its result ignored, and the state returns to its initial value. The
// next Activate fetches again, even for the same id.
func (vm *Detail) Deactivate() {
	vm.mu.Lock()
	if vm.closed || !vm.active {
		vm.mu.Unlock()
		return
	}
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
	vm.active = false
	vm.activeID = 0
	vm.state = initialDetailState(0)
	snap := vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)
}

// Close tears the view model down; in-flight loads are ignored
func (vm *Detail) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.closed = true
	if vm.cancel != nil {
		vm.cancel()
	}
}
