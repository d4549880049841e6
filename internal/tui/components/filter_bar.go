package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cartelera/internal/tui/styles"
)

// FilterBar is the title filter input
type FilterBar struct {
	input     textinput.Model
	visible   bool
	prevQuery string // Track query changes for real-time filtering
}

// NewFilterBar creates a hidden filter bar
func NewFilterBar() FilterBar {
	ti := textinput.New()
	ti.Placeholder = "Buscar por titulo..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return FilterBar{input: ti}
}

// Show makes the bar visible and focuses the input
func (f *FilterBar) Show() tea.Cmd {
	f.visible = true
	f.input.SetValue("")
	f.prevQuery = ""
	return f.input.Focus()
}

// Hide hides the bar
func (f *FilterBar) Hide() {
	f.visible = false
	f.input.Blur()
}

// IsVisible reports whether the bar is shown
func (f FilterBar) IsVisible() bool {
	return f.visible
}

// Query returns the current input
func (f FilterBar) Query() string {
	return f.input.Value()
}

// SetWidth updates the input width
func (f *FilterBar) SetWidth(width int) {
	f.input.Width = max(width-4, 10)
}

// Update forwards input messages. changed reports whether the query changed.
func (f FilterBar) Update(msg tea.Msg) (FilterBar, tea.Cmd, bool) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	query := f.input.Value()
	changed := query != f.prevQuery
	f.prevQuery = query
	return f, cmd, changed
}

// View renders the bar
func (f FilterBar) View() string {
	if !f.visible {
		return ""
	}
	return f.input.View()
}
