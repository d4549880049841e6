package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cartelera/internal/adapter"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateHelp:
		m.State = m.prevState
		return m, nil
	case StateDetail:
		return m.handleDetailKey(msg)
	}

	if m.Filter.IsVisible() {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m.shutdown()

	case key.Matches(msg, Keys.Help):
		m.prevState = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.NextSection):
		m.Section = (m.Section + 1) % sectionCount
		m.refreshList()
		return m, nil

	case key.Matches(msg, Keys.PrevSection):
		m.Section = (m.Section + sectionCount - 1) % sectionCount
		m.refreshList()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if movie, ok := m.List.Selected(); ok {
			return m.openDetail(movie)
		}
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if movie, ok := m.List.Selected(); ok {
			return m.toggleFavorite(movie)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		cmd := m.Filter.Show()
		m.updateLayout()
		return m, cmd

	case key.Matches(msg, Keys.Refresh):
		return m, ActivateHomeCmd(m.ctx, m.home)

	case key.Matches(msg, Keys.OpenPage):
		if movie, ok := m.List.Selected(); ok && m.opener != nil {
			return m, OpenURLCmd(m.opener, adapter.MoviePageURL(movie.ID))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// handleFilterKey routes keys while the filter input has focus
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.Filter.Hide()
		m.List.ClearMatches()
		m.List.SetMovies(m.sectionMovies())
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if movie, ok := m.List.Selected(); ok {
			return m.openDetail(movie)
		}
		return m, nil

	case key.Matches(msg, Keys.Up, Keys.Down):
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd

	case msg.Type == tea.KeyCtrlC:
		return m.shutdown()
	}

	var cmd tea.Cmd
	var changed bool
	m.Filter, cmd, changed = m.Filter.Update(msg)
	if changed {
		m.applyFilter()
	}
	return m, cmd
}

// handleDetailKey routes keys on the detail screen
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m.shutdown()

	case key.Matches(msg, Keys.Help):
		m.prevState = m.State
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Back):
		m.detail.Deactivate()
		m.DetailState = m.detail.State()
		m.Inspector.SetState(m.DetailState)
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, Keys.Rate):
		if m.DetailState.RatingSubmitting {
			return m, nil
		}
		value, ok := ratingForKey(msg.String())
		if !ok {
			return m, nil
		}
		return m, RateMovieCmd(m.ctx, m.detail, value)

	case key.Matches(msg, Keys.ClearFeedback):
		m.detail.ClearRatingFeedback()
		m.DetailState = m.detail.State()
		m.Inspector.SetState(m.DetailState)
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if movie := m.DetailState.Movie; movie != nil {
			return m.toggleFavorite(movie.Movie)
		}
		return m, nil

	case key.Matches(msg, Keys.OpenPage):
		if m.opener == nil {
			return m, nil
		}
		url := adapter.MoviePageURL(m.DetailState.MovieID)
		if movie := m.DetailState.Movie; movie != nil && movie.Homepage != nil && *movie.Homepage != "" {
			url = *movie.Homepage
		}
		return m, OpenURLCmd(m.opener, url)

	case key.Matches(msg, Keys.Enter):
		if rec, ok := m.Inspector.SelectedRecommendation(); ok {
			return m.openDetail(rec)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Inspector, cmd = m.Inspector.Update(msg)
	return m, cmd
}
