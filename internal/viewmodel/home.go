package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/search"
)

// MsgHomeUnexpected is shown when a home load fails with a non-application error
const MsgHomeUnexpected = "Ocurrio un error inesperado."

// MovieLister is a use case returning a list of movies
type MovieLister interface {
	Execute(ctx context.Context) ([]domain.Movie, error)
}

// HomeUseCases are the four catalog lists shown on the home screen
type HomeUseCases struct {
	Popular    MovieLister
	TopRated   MovieLister
	Upcoming   MovieLister
	NowPlaying MovieLister
}

// HomeState is a snapshot of the home screen. Slices are shared between
// snapshots and must be treated as read-only.
type HomeState struct {
	Popular    []domain.Movie
	TopRated   []domain.Movie
	Upcoming   []domain.Movie
	NowPlaying []domain.Movie // Sorted by title
	Loading    bool
	Error      *string
}

func initialHomeState() HomeState {
	return HomeState{
		Popular:    []domain.Movie{},
		TopRated:   []domain.Movie{},
		Upcoming:   []domain.Movie{},
		NowPlaying: []domain.Movie{},
		Loading:    true,
	}
}

// Home loads the four home lists in one joined fetch
type Home struct {
	uc     HomeUseCases
	logger *slog.Logger
	subs   *observers[HomeState]

	mu     sync.Mutex
	state  HomeState
	cancel context.CancelFunc
	closed bool
}

// NewHome creates a home view model in its initial loading state
func NewHome(uc HomeUseCases, logger *slog.Logger) *Home {
	if logger == nil {
		logger = slog.Default()
	}
	return &Home{
		uc:     uc,
		logger: logger,
		subs:   newObservers[HomeState](),
		state:  initialHomeState(),
	}
}

// State returns the current snapshot
func (vm *Home) State() HomeState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Subscribe registers fn for every state transition
func (vm *Home) Subscribe(fn func(HomeState)) (unsubscribe func()) {
	return vm.subs.subscribe(fn)
}

// Activate runs one fetch cycle and blocks until it resolves. A previous
// cycle still in flight is cancelled and its result discarded. Cancelling
// ctx or calling Close has the same effect on this cycle.
func (vm *Home) Activate(ctx context.Context) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	if vm.cancel != nil {
		vm.cancel()
	}
	actx, cancel := context.WithCancel(ctx)
	defer cancel()
	vm.cancel = cancel
	vm.state.Loading = true
	vm.state.Error = nil
	snap := vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)

	activation := uuid.NewString()
	vm.logger.Debug("home activation started", "activation", activation)

	var popular, topRated, upcoming, nowPlaying []domain.Movie
	p := pool.New().WithContext(actx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		popular, err = vm.uc.Popular.Execute(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		topRated, err = vm.uc.TopRated.Execute(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		upcoming, err = vm.uc.Upcoming.Execute(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		nowPlaying, err = vm.uc.NowPlaying.Execute(ctx)
		return err
	})
	err := p.Wait()

	vm.mu.Lock()
	if actx.Err() != nil {
		vm.mu.Unlock()
		vm.logger.Debug("home activation discarded", "activation", activation)
		return
	}
	if err != nil {
		vm.state.Loading = false
		vm.state.Error = strPtr(domain.Message(err, MsgHomeUnexpected))
		vm.logger.Warn("home load failed", "activation", activation, "error", err)
	} else {
		vm.state = HomeState{
			Popular:    nonNil(popular),
			TopRated:   nonNil(topRated),
			Upcoming:   nonNil(upcoming),
			NowPlaying: search.SortByTitle(nowPlaying),
			Loading:    false,
		}
		vm.logger.Info("home loaded", "activation", activation,
			"popular", len(popular), "topRated", len(topRated),
			"upcoming", len(upcoming), "nowPlaying", len(nowPlaying))
	}
	snap = vm.state
	vm.mu.Unlock()
	vm.subs.notify(snap)
}

// Close tears the view model down; in-flight results are ignored
func (vm *Home) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.closed = true
	if vm.cancel != nil {
		vm.cancel()
	}
}

// Filter fuzzy-matches titles across all loaded lists, one entry per movie
func (vm *Home) Filter(query string) []search.Match {
	s := vm.State()
	all := make([]domain.Movie, 0, len(s.Popular)+len(s.TopRated)+len(s.Upcoming)+len(s.NowPlaying))
	all = append(all, s.Popular...)
	all = append(all, s.TopRated...)
	all = append(all, s.Upcoming...)
	all = append(all, s.NowPlaying...)
	return search.Filter(query, search.Dedupe(all))
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
