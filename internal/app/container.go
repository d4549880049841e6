// Package app is the composition root. It builds the object graph once from
// configuration and hands out view models.
package app

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/cartelera/internal/adapter"
	"github.com/mmcdole/cartelera/internal/adapter/source"
	"github.com/mmcdole/cartelera/internal/adapter/source/tmdb"
	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/favorites"
	"github.com/mmcdole/cartelera/internal/repository"
	"github.com/mmcdole/cartelera/internal/usecase"
	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// Container holds the long-lived collaborators
type Container struct {
	Config    *adapter.Config
	Logger    *slog.Logger
	Repo      domain.MovieRepository
	UseCases  *usecase.Set
	Favorites *favorites.Store
	Launcher  *adapter.Launcher
}

// New builds the container from validated configuration
func New(cfg *adapter.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie source: %w", err)
	}

	return NewWithSource(cfg, client, logger), nil
}

// NewWithSource builds the container around an existing data source
func NewWithSource(cfg *adapter.Config, api domain.MovieDataSource, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}

	repo := repository.NewMovieRepository(api, logger)
	return &Container{
		Config:    cfg,
		Logger:    logger,
		Repo:      repo,
		UseCases:  usecase.NewSet(repo),
		Favorites: favorites.NewStore(),
		Launcher:  adapter.NewLauncher(cfg.Browser.Command, cfg.Browser.Args, logger),
	}
}

// NewHome creates a fresh home view model
func (c *Container) NewHome() *viewmodel.Home {
	return viewmodel.NewHome(viewmodel.HomeUseCases{
		Popular:    c.UseCases.GetPopularMovies,
		TopRated:   c.UseCases.GetTopRatedMovies,
		Upcoming:   c.UseCases.GetUpcomingMovies,
		NowPlaying: c.UseCases.GetNowPlayingMovies,
	}, c.Logger.With("component", "home"))
}

// NewDetail creates a fresh detail view model
func (c *Container) NewDetail() *viewmodel.Detail {
	return viewmodel.NewDetail(viewmodel.DetailUseCases{
		Detail:          c.UseCases.GetMovieDetail,
		Credits:         c.UseCases.GetMovieCredits,
		Recommendations: c.UseCases.GetMovieRecommendations,
		Rate:            c.UseCases.RateMovie,
	}, c.Logger.With("component", "detail"))
}

// ImageURL resolves a poster or backdrop path against the configured image base
func (c *Container) ImageURL(path *string) string {
	return tmdb.ImageURL(c.Config.TMDB.ImageBaseURL, path)
}
