package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/cartelera/internal/adapter"
	"github.com/mmcdole/cartelera/internal/app"
	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/tui"
	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("cartelera %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting cartelera", "version", Version)

	container, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printSummary(ctx, os.Stdout, container.NewHome())
	}

	model := tui.NewModel(ctx, tui.Services{
		Home:      container.NewHome(),
		Detail:    container.NewDetail(),
		Favorites: container.Favorites,
		Opener:    container.Launcher,
		ImageURL:  container.ImageURL,
		Logger:    logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// printSummary loads the home lists once and writes them as plain text
func printSummary(ctx context.Context, w io.Writer, home *viewmodel.Home) error {
	defer home.Close()

	home.Activate(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	s := home.State()
	if s.Error != nil {
		return errors.New(*s.Error)
	}

	sections := []struct {
		title  string
		movies []domain.Movie
	}{
		{"Populares", s.Popular},
		{"Mejor valoradas", s.TopRated},
		{"Proximamente", s.Upcoming},
		{"En cartelera", s.NowPlaying},
	}
	for _, sec := range sections {
		fmt.Fprintf(w, "== %s ==\n", sec.title)
		for _, m := range sec.movies {
			year := m.ReleaseYear()
			if year == "" {
				year = "----"
			}
			fmt.Fprintf(w, "%s  %s  %s\n", year, m.FormattedVote(), m.Title)
		}
		fmt.Fprintln(w)
	}
	return nil
}
