package components

import "github.com/charmbracelet/bubbles/key"

// MovieListKeyMap holds cursor bindings shared by the movie list and the
// recommendations pane of the inspector
type MovieListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
}

func DefaultMovieListKeyMap() MovieListKeyMap {
	return MovieListKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "arriba")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "abajo")),
		Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "inicio")),
		End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "final")),
		HalfUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("C-u", "media pagina arriba")),
		HalfDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("C-d", "media pagina abajo")),
	}
}
