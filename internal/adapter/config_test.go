package adapter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARTELERA_TMDB_API_KEY", "TMDB_API_KEY",
		"CARTELERA_TMDB_BASE_URL", "TMDB_BASE_URL",
		"CARTELERA_TMDB_IMAGE_BASE_URL", "IMAGE_BASE_URL",
		"CARTELERA_TMDB_LANGUAGE", "CARTELERA_LOGGING_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "es-ES", cfg.TMDB.Language)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
	assert.Empty(t, cfg.TMDB.APIKey)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yaml := `
tmdb:
  api_key: file-key
  language: en-US
  timeout: 5s
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("IMAGE_BASE_URL", "https://img.example.com/w300")
	t.Setenv("CARTELERA_TMDB_LANGUAGE", "pt-BR")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "https://img.example.com/w300", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
}

func TestLoadConfigPrefixedKeyWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARTELERA_TMDB_API_KEY", "prefixed")
	t.Setenv("TMDB_API_KEY", "plain")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.TMDB.APIKey)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tmdb: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey: is required")

	cfg.TMDB.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.TMDB.BaseURL = "not a url"
	cfg.TMDB.ImageBaseURL = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL: must be a valid URL")
	assert.Contains(t, err.Error(), "ImageBaseURL: is required")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cartelera.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "WARN", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "movie", 42)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(42), entry["movie"])
}
