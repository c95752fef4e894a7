// Package detail implements the user detail screen.
package detail

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/tui/model"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
	"github.com/cristianoliveira/userdeck/internal/tui/render"
	"github.com/cristianoliveira/userdeck/internal/tui/state"
)

// Model shows one user. It looks the user up again on every store change,
// so a removal made elsewhere is reflected.
type Model struct {
	id       int
	user     domain.User
	found    bool
	favorite bool
	width    int

	provider  model.DataProvider
	favorites model.FavoriteRegistry
	navigator model.Navigator
}

// NewModel creates the detail screen for the user with id.
func NewModel(id int, provider model.DataProvider, favorites model.FavoriteRegistry, navigator model.Navigator) *Model {
	m := &Model{
		id:        id,
		provider:  provider,
		favorites: favorites,
		navigator: navigator,
	}
	m.refresh()
	return m
}

// Factory returns a nav.Factory building detail screens.
func Factory(provider model.DataProvider, favorites model.FavoriteRegistry, navigator model.Navigator) nav.Factory {
	return func(params nav.Params) tea.Model {
		return NewModel(params.ID, provider, favorites, navigator)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case state.StoreChangedMsg:
		m.refresh()
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "esc", "backspace", "h", "left":
		return m.navigator.Pop()
	case "f":
		if !m.found {
			return nil
		}
		if m.favorites.IsFavorite(m.id) {
			m.favorites.RemoveFavorite(m.id)
		} else {
			m.favorites.SetFavorite(m.id)
		}
		m.refresh()
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(render.Detail(render.DetailState{
		ID:       m.id,
		User:     m.user,
		Found:    m.found,
		Favorite: m.favorite,
	}))
	b.WriteString("\n\n")
	b.WriteString(render.DetailFooter())
	return b.String()
}

// User returns the displayed user and whether it still exists.
func (m *Model) User() (domain.User, bool) {
	return m.user, m.found
}

func (m *Model) refresh() {
	m.user, m.found = m.provider.UserByID(m.id)
	m.favorite = m.found && m.favorites.IsFavorite(m.id)
}
