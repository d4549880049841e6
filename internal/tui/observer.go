package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// observerBuffer is the channel capacity for view model notifications.
// Dropped notifications are harmless: handlers re-read the latest state.
const observerBuffer = 16

// subscribeHome routes home state changes into a channel for Bubble Tea
func subscribeHome(home *viewmodel.Home) chan viewmodel.HomeState {
	ch := make(chan viewmodel.HomeState, observerBuffer)
	home.Subscribe(viewmodel.NewChannelObserver[viewmodel.HomeState](ch).OnState)
	return ch
}

// subscribeDetail routes detail state changes into a channel for Bubble Tea
func subscribeDetail(detail *viewmodel.Detail) chan viewmodel.DetailState {
	ch := make(chan viewmodel.DetailState, observerBuffer)
	detail.Subscribe(viewmodel.NewChannelObserver[viewmodel.DetailState](ch).OnState)
	return ch
}

// WaitForHomeCmd waits for the next home notification
func WaitForHomeCmd(ch <-chan viewmodel.HomeState) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return HomeChangedMsg{Observed: true}
	}
}

// WaitForDetailCmd waits for the next detail notification
func WaitForDetailCmd(ch <-chan viewmodel.DetailState) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return DetailChangedMsg{Observed: true}
	}
}
