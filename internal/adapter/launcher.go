package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Launcher opens web pages (movie homepages, TMDb pages) in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// start runs a command without waiting for it
	start func(name string, args ...string) error
}

// NewLauncher creates a Launcher. An empty command uses the system default handler.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		logger:  logger,
		start:   startCommand,
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens url in the configured browser or system default
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}

	name, args := l.commandFor(url)
	l.logger.Info("opening url", "command", name, "args", args)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// commandFor returns the command line that opens url
func (l *Launcher) commandFor(url string) (string, []string) {
	if l.command != "" {
		args := append(append([]string{}, l.args...), url)
		return l.command, args
	}
	return defaultOpener(runtime.GOOS, url)
}

// defaultOpener returns the system default handler for goos
func defaultOpener(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{url}
	}
}

// MoviePageURL returns the public TMDb page for a movie
func MoviePageURL(id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", id)
}
