package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/store"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
)

// SetFilter replaces the filter text. The current page is kept, so a
// narrower filter can leave the list past its last page.
func (m *Model) SetFilter(text string) {
	m.uiState.SetFilter(text)
	m.uiState.SetCursor(0)
	m.refresh()
}

// SetPage replaces the current page. Pages below 1 are ignored. When the
// cursor moves, the list scrolls back to the top.
func (m *Model) SetPage(page int) {
	if page < 1 {
		return
	}
	previous := domain.CursorFor(m.uiState.GetCurrentPage(), m.pageSize)
	m.uiState.SetCurrentPage(page)
	if domain.CursorFor(page, m.pageSize) != previous {
		m.uiState.ResetScroll()
	}
	m.refresh()
}

// SetFavoritesOnly restricts the list to favorites and returns to the
// first page.
func (m *Model) SetFavoritesOnly(enabled bool) {
	m.uiState.SetFavoritesOnly(enabled)
	m.SetPage(1)
}

// SelectUser opens the detail screen for user.
func (m *Model) SelectUser(user domain.User) tea.Cmd {
	return m.navigator.Push(nav.ScreenUserDetail, nav.Params{ID: user.ID})
}

// RemoveUser dispatches the removal of id and of its favorite flag.
func (m *Model) RemoveUser(id int) {
	m.dispatcher.Dispatch(store.RemoveUser(id))
	m.dispatcher.Dispatch(store.RemoveFavorite(id))
}

// ToggleFavorite flips the favorite flag of id.
func (m *Model) ToggleFavorite(id int) {
	if m.favorites.IsFavorite(id) {
		m.dispatcher.Dispatch(store.RemoveFavorite(id))
		return
	}
	m.dispatcher.Dispatch(store.SetFavorite(id))
}

// Reload dispatches a new fetch of the whole data set.
func (m *Model) Reload() tea.Cmd {
	m.dispatcher.Dispatch(store.FetchAll())
	m.refresh()
	return tea.Batch(m.startSpinner(), m.setStatus(infoType, "Reloading users"))
}

// selectedUser returns the user under the row cursor.
func (m *Model) selectedUser() (domain.User, bool) {
	if m.page.Status.IsLoading() {
		return domain.User{}, false
	}
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(m.page.Items) {
		return domain.User{}, false
	}
	return m.page.Items[cursor], true
}

func (m *Model) totalPages() int {
	return domain.TotalPages(m.page.TotalCount, m.pageSize)
}

func (m *Model) nextPage() {
	if m.uiState.GetCurrentPage() < m.totalPages() {
		m.SetPage(m.uiState.GetCurrentPage() + 1)
	}
}

func (m *Model) previousPage() {
	current := m.uiState.GetCurrentPage()
	if current <= 1 {
		return
	}
	// Past the last page after a filter change, step back into range.
	if last := m.totalPages(); current > last {
		m.SetPage(last)
		return
	}
	m.SetPage(current - 1)
}

func (m *Model) requestRemoval() tea.Cmd {
	user, ok := m.selectedUser()
	if !ok {
		return nil
	}
	m.uiState.RequestConfirmation(user.ID)
	return m.setStatus(warningType, fmt.Sprintf("Remove %s? (y/n)", user.DisplayName()))
}

func (m *Model) confirmRemoval() tea.Cmd {
	id := m.uiState.GetPendingID()
	m.uiState.ClearConfirmation()
	if id <= 0 {
		return nil
	}
	m.RemoveUser(id)
	return m.setStatus(successType, fmt.Sprintf("Removed user %d", id))
}

func (m *Model) cancelRemoval() tea.Cmd {
	m.uiState.ClearConfirmation()
	return m.setStatus(infoType, "Removal cancelled")
}

func (m *Model) toggleSelectedFavorite() tea.Cmd {
	user, ok := m.selectedUser()
	if !ok {
		return nil
	}
	wasFavorite := m.favorites.IsFavorite(user.ID)
	m.ToggleFavorite(user.ID)
	if wasFavorite {
		return m.setStatus(infoType, fmt.Sprintf("Removed %s from favorites", user.Name))
	}
	return m.setStatus(successType, fmt.Sprintf("Added %s to favorites", user.Name))
}
