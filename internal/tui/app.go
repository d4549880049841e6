package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cartelera/internal/domain"
	"github.com/mmcdole/cartelera/internal/favorites"
	"github.com/mmcdole/cartelera/internal/tui/components"
	"github.com/mmcdole/cartelera/internal/tui/styles"
	"github.com/mmcdole/cartelera/internal/viewmodel"
)

// ApplicationState represents the current screen
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateDetail
	StateHelp
)

// Section is one of the home lists
type Section int

const (
	SectionPopular Section = iota
	SectionTopRated
	SectionUpcoming
	SectionNowPlaying
	SectionFavorites
	sectionCount
)

// Title returns the tab label
func (s Section) Title() string {
	switch s {
	case SectionPopular:
		return "Populares"
	case SectionTopRated:
		return "Mejor valoradas"
	case SectionUpcoming:
		return "Proximamente"
	case SectionNowPlaying:
		return "En cartelera"
	case SectionFavorites:
		return "Favoritas"
	default:
		return ""
	}
}

// Vertical chrome: tabs line, blank line, footer
const ChromeHeight = 3

// Opener opens web pages
type Opener interface {
	Open(url string) error
}

// Services are the collaborators the TUI drives
type Services struct {
	Home      *viewmodel.Home
	Detail    *viewmodel.Detail
	Favorites *favorites.Store
	Opener    Opener
	ImageURL  func(path *string) string
	Logger    *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State     ApplicationState
	prevState ApplicationState
	Ready     bool
	Section   Section

	ctx       context.Context
	home      *viewmodel.Home
	detail    *viewmodel.Detail
	favorites *favorites.Store
	opener    Opener
	logger    *slog.Logger

	homeCh   chan viewmodel.HomeState
	detailCh chan viewmodel.DetailState

	// Latest view model snapshots
	HomeState   viewmodel.HomeState
	DetailState viewmodel.DetailState

	// UI Components
	List      components.MovieList
	Inspector components.Inspector
	Filter    components.FilterBar
	Spinner   spinner.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model. ctx bounds every fetch the
// model starts.
func NewModel(ctx context.Context, svc Services) Model {
	logger := svc.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	list := components.NewMovieList(SectionPopular.Title())
	list.SetFavoriteCheck(svc.Favorites.IsFavorite)
	inspector := components.NewInspector(svc.ImageURL)
	inspector.SetFavoriteCheck(svc.Favorites.IsFavorite)

	return Model{
		State:       StateBrowsing,
		Section:     SectionPopular,
		ctx:         ctx,
		home:        svc.Home,
		detail:      svc.Detail,
		favorites:   svc.Favorites,
		opener:      svc.Opener,
		logger:      logger,
		homeCh:      subscribeHome(svc.Home),
		detailCh:    subscribeDetail(svc.Detail),
		HomeState:   svc.Home.State(),
		DetailState: svc.Detail.State(),
		List:        list,
		Inspector:   inspector,
		Filter:      components.NewFilterBar(),
		Spinner:     sp,
	}
}

// Init starts the home load and the view model listeners
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ActivateHomeCmd(m.ctx, m.home),
		WaitForHomeCmd(m.homeCh),
		WaitForDetailCmd(m.detailCh),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case HomeChangedMsg:
		m.HomeState = m.home.State()
		m.refreshList()
		if msg.Observed {
			return m, WaitForHomeCmd(m.homeCh)
		}
		return m, nil

	case DetailChangedMsg:
		m.DetailState = m.detail.State()
		m.Inspector.SetState(m.DetailState)
		if msg.Observed {
			return m, WaitForDetailCmd(m.detailCh)
		}
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Text
		m.StatusIsErr = msg.IsErr
		return m, ClearStatusCmd(statusTTL)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// sectionMovies returns the unfiltered movies for the current section
func (m Model) sectionMovies() []domain.Movie {
	switch m.Section {
	case SectionPopular:
		return m.HomeState.Popular
	case SectionTopRated:
		return m.HomeState.TopRated
	case SectionUpcoming:
		return m.HomeState.Upcoming
	case SectionNowPlaying:
		return m.HomeState.NowPlaying
	case SectionFavorites:
		return m.favorites.Sorted()
	default:
		return nil
	}
}

// refreshList pushes the current section (or filter matches) into the list
func (m *Model) refreshList() {
	m.List.SetTitle(m.Section.Title())
	if m.Filter.IsVisible() && m.Filter.Query() != "" {
		m.applyFilter()
		return
	}
	m.List.SetMovies(m.sectionMovies())
}

// applyFilter matches the filter query. Favorites filter their own list;
// other sections search every loaded home list.
func (m *Model) applyFilter() {
	query := m.Filter.Query()
	if query == "" {
		m.List.SetMovies(m.sectionMovies())
		return
	}
	if m.Section == SectionFavorites {
		m.List.SetMatches(m.favorites.Filter(query))
		return
	}
	m.List.SetMatches(m.home.Filter(query))
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	contentWidth := max(m.Width-4, 20)
	contentHeight := max(m.Height-ChromeHeight, 5)
	if m.Filter.IsVisible() {
		contentHeight--
	}
	m.List.SetSize(contentWidth, contentHeight)
	m.Inspector.SetSize(contentWidth, contentHeight)
	m.Filter.SetWidth(contentWidth)
}

// openDetail switches to the detail screen for movie
func (m Model) openDetail(movie domain.Movie) (tea.Model, tea.Cmd) {
	m.State = StateDetail
	m.logger.Debug("opening detail", "movie", movie.ID)
	return m, ActivateDetailCmd(m.ctx, m.detail, movie.ID)
}

// toggleFavorite flips movie in the favorites list and reports it
func (m Model) toggleFavorite(movie domain.Movie) (tea.Model, tea.Cmd) {
	text := "Quitada de favoritas: " + movie.Title
	if m.favorites.Toggle(movie) {
		text = "Agregada a favoritas: " + movie.Title
	}
	if m.Section == SectionFavorites {
		m.refreshList()
	}
	return m, func() tea.Msg { return StatusMsg{Text: text} }
}

// shutdown tears down the view models before quitting
func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.home.Close()
	m.detail.Close()
	return m, tea.Quit
}
