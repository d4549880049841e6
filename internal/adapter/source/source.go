package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/cartelera/internal/adapter"
	"github.com/mmcdole/cartelera/internal/adapter/source/tmdb"
	"github.com/mmcdole/cartelera/internal/domain"
)

// SourceConfig contains the configuration needed to create a movie data source
type SourceConfig struct {
	BaseURL  string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// NewClient creates the movie data source.
// The returned client talks to TMDb; callers only see domain.MovieDataSource.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.MovieDataSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return tmdb.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Language, cfg.Timeout, logger), nil
}

// NewClientFromConfig creates the movie data source from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.MovieDataSource, error) {
	return NewClient(&SourceConfig{
		BaseURL:  cfg.TMDB.BaseURL,
		APIKey:   cfg.TMDB.APIKey,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.Timeout,
	}, logger)
}
