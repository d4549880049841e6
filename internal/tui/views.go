package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/cartelera/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return m.Spinner.View() + " Iniciando..."
	}
	if m.State == StateHelp {
		return m.renderHelp()
	}

	var header, body string
	switch m.State {
	case StateDetail:
		header = styles.DimStyle.Render("‹ esc volver")
		body = m.Inspector.View(m.Spinner.View())
	default:
		header = m.renderTabs()
		body = m.renderHome()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	content = lipgloss.NewStyle().
		Height(max(m.Height-1, 1)).
		MaxHeight(max(m.Height-1, 1)).
		Render(content)
	return content + "\n" + m.renderFooter()
}

// renderTabs renders the section tabs
func (m Model) renderTabs() string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		style := styles.InactiveTabStyle
		if s == m.Section {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderHome renders the list area of the home screen
func (m Model) renderHome() string {
	if m.Section != SectionFavorites {
		if m.HomeState.Error != nil {
			return styles.ErrorStyle.Render(*m.HomeState.Error) + "\n\n" +
				styles.DimStyle.Render("r para reintentar")
		}
		if m.HomeState.Loading && m.List.Len() == 0 {
			return m.Spinner.View() + styles.DimStyle.Render(" Cargando peliculas...")
		}
	}

	view := m.List.View()
	if m.Filter.IsVisible() {
		view += "\n" + m.Filter.View()
	}
	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	case m.HomeState.Loading && m.State == StateBrowsing:
		left = m.Spinner.View() + styles.DimStyle.Render(" Cargando...")
	}

	right := hint("?", "ayuda")
	if m.State == StateDetail {
		right = hint("1-9", "calificar") + "  " + hint("f", "favorita") + "  " + right
	} else {
		right = hint("/", "filtrar") + "  " + hint("f", "favorita") + "  " + right
	}

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func hint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVEGACION                      ACCIONES
  j/k        Arriba/abajo          f      Favorita on/off
  g/G        Inicio/final          o      Abrir pagina web
  tab/S-tab  Cambiar seccion       r      Recargar
  Enter      Ver detalle           /      Filtrar por titulo
  Esc        Volver                q      Salir

DETALLE
  1-9        Calificar (0 = 10)
  x          Descartar mensaje
  Enter      Abrir recomendada

Pulsa cualquier tecla para volver...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
