package detail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
	"github.com/cristianoliveira/userdeck/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users     map[int]domain.User
	favorites map[int]bool
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users: map[int]domain.User{
			1: {ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "leanne@example.com", City: "Gwenborough"},
		},
		favorites: map[int]bool{},
	}
}

func (f *fakeUsers) FetchPage(domain.PageRequest) domain.Page { return domain.Page{} }

func (f *fakeUsers) UserByID(id int) (domain.User, bool) {
	u, ok := f.users[id]
	return u, ok
}

func (f *fakeUsers) IsFavorite(id int) bool { return f.favorites[id] }
func (f *fakeUsers) SetFavorite(id int)     { f.favorites[id] = true }
func (f *fakeUsers) RemoveFavorite(id int)  { delete(f.favorites, id) }

type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) Push(screen string, params nav.Params) tea.Cmd {
	m.Called(screen, params)
	return nil
}

func (m *MockNavigator) Pop() tea.Cmd {
	m.Called()
	return func() tea.Msg { return nav.PopMsg{} }
}

func TestViewShowsUserFields(t *testing.T) {
	users := newFakeUsers()
	m := NewModel(1, users, users, new(MockNavigator))

	view := m.View()

	assert.Contains(t, view, "Leanne Graham (@Bret)")
	assert.Contains(t, view, "leanne@example.com")
	assert.Contains(t, view, "Gwenborough")
	assert.Contains(t, view, "ESC: back")
}

func TestViewForMissingUser(t *testing.T) {
	users := newFakeUsers()
	m := NewModel(9, users, users, new(MockNavigator))

	assert.Contains(t, m.View(), "User #9")
	assert.Contains(t, m.View(), "no longer exists")
}

func TestFavoriteKeyToggles(t *testing.T) {
	users := newFakeUsers()
	m := NewModel(1, users, users, new(MockNavigator))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.True(t, users.favorites[1])

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.False(t, users.favorites[1])
}

func TestFavoriteKeyIgnoredForMissingUser(t *testing.T) {
	users := newFakeUsers()
	m := NewModel(9, users, users, new(MockNavigator))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})

	assert.Empty(t, users.favorites)
}

func TestEscPops(t *testing.T) {
	users := newFakeUsers()
	navigator := new(MockNavigator)
	navigator.On("Pop").Once()
	m := NewModel(1, users, users, navigator)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, nav.PopMsg{}, cmd())
	navigator.AssertExpectations(t)
}

func TestStoreChangeRefreshesUser(t *testing.T) {
	users := newFakeUsers()
	m := NewModel(1, users, users, new(MockNavigator))

	delete(users.users, 1)
	m.Update(state.StoreChangedMsg{})

	_, found := m.User()
	assert.False(t, found)
	assert.Contains(t, m.View(), "no longer exists")
}

func TestFactoryBuildsScreenForID(t *testing.T) {
	users := newFakeUsers()
	factory := Factory(users, users, new(MockNavigator))

	screen, ok := factory(nav.Params{ID: 1}).(*Model)
	require.True(t, ok)
	u, found := screen.User()
	assert.True(t, found)
	assert.Equal(t, 1, u.ID)
}
