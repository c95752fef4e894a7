package state

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the list screen.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.uiState.IsConfirmationMode() {
		return m, m.handleConfirmation(msg)
	}
	if m.uiState.IsSearchMode() {
		return m, m.handleSearchInput(msg)
	}
	return m.handleKeyBinding(msg.String())
}

// handleConfirmation handles key input while a removal awaits confirmation.
func (m *Model) handleConfirmation(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.confirmRemoval()
	case "n", "N", "esc":
		return m.cancelRemoval()
	}
	return nil
}

// handleSearchInput feeds keys to the search box and applies the filter
// as it is typed.
func (m *Model) handleSearchInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitSearch()
		m.SetFilter("")
		return nil
	case tea.KeyEnter:
		m.exitSearch()
		return nil
	case tea.KeyUp, tea.KeyCtrlK:
		m.moveUp()
		return nil
	case tea.KeyDown, tea.KeyCtrlJ:
		m.moveDown()
		return nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if value := m.searchInput.Value(); value != m.uiState.GetFilter() {
		m.SetFilter(value)
	}
	return cmd
}

// handleKeyBinding handles the normal-mode key bindings.
func (m *Model) handleKeyBinding(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "j", "down":
		m.moveDown()
	case "k", "up":
		m.moveUp()
	case "/":
		return m, m.enterSearch()
	case "esc":
		if m.uiState.GetFilter() != "" {
			m.SetFilter("")
		}
	case "enter":
		if user, ok := m.selectedUser(); ok {
			return m, m.SelectUser(user)
		}
	case "f":
		return m, m.toggleSelectedFavorite()
	case "F":
		m.SetFavoritesOnly(!m.uiState.IsFavoritesOnly())
	case "d":
		return m, m.requestRemoval()
	case "n", "right", "l", "pgdown":
		m.nextPage()
	case "p", "left", "h", "pgup":
		m.previousPage()
	case "g", "home":
		m.SetPage(1)
	case "G", "end":
		m.SetPage(m.totalPages())
	case "r":
		return m, m.Reload()
	}
	return m, nil
}

func (m *Model) enterSearch() tea.Cmd {
	m.uiState.SetSearchMode(true)
	m.searchInput.SetValue(m.uiState.GetFilter())
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

func (m *Model) exitSearch() {
	m.uiState.SetSearchMode(false)
	m.searchInput.Blur()
}

func (m *Model) moveDown() {
	m.uiState.MoveCursorDown(len(m.page.Items))
	m.uiState.EnsureCursorVisible(len(m.page.Items))
	m.updateViewportContent()
}

func (m *Model) moveUp() {
	m.uiState.MoveCursorUp()
	m.uiState.EnsureCursorVisible(len(m.page.Items))
	m.updateViewportContent()
}

// handleWindowSizeMsg resizes the viewport and redraws the rows.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.searchInput.Width = msg.Width - len(m.searchInput.Prompt) - 1
	m.updateViewportContent()
	m.uiState.EnsureCursorVisible(len(m.page.Items))
	return m, nil
}
