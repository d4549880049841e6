package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// statusTTL is how long footer status messages stay visible
const statusTTL = 3 * time.Second

// Command factories for async operations

// ActivateHomeCmd runs one home fetch cycle
func ActivateHomeCmd(ctx context.Context, home *viewmodel.Home) tea.Cmd {
	return func() tea.Msg {
		home.Activate(ctx)
		return HomeChangedMsg{}
	}
}

// ActivateDetailCmd loads movie id into the detail view model
func ActivateDetailCmd(ctx context.Context, detail *viewmodel.Detail, id int) tea.Cmd {
	return func() tea.Msg {
		detail.Activate(ctx, id)
		return DetailChangedMsg{}
	}
}

// RateMovieCmd submits a rating for the active detail movie
func RateMovieCmd(ctx context.Context, detail *viewmodel.Detail, value float64) tea.Cmd {
	return func() tea.Msg {
		detail.RateMovie(ctx, value)
		return DetailChangedMsg{}
	}
}

// OpenURLCmd opens url in the browser
func OpenURLCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Text: "No se pudo abrir el navegador", IsErr: true}
		}
		return StatusMsg{Text: "Abriendo " + url}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
