package tui

// Message types for the TUI

// HomeChangedMsg signals that the home view model has a new state.
// Observed is set when the message came from the subscription channel,
// which must then be re-armed.
type HomeChangedMsg struct {
	Observed bool
}

// DetailChangedMsg signals that the detail view model has a new state
type DetailChangedMsg struct {
	Observed bool
}

// StatusMsg shows a transient message in the footer
type StatusMsg struct {
	Text  string
	IsErr bool
}

// ClearStatusMsg clears the footer status
type ClearStatusMsg struct{}
