package state

import (
	"strings"

	"github.com/cristianoliveira/userdeck/internal/tui/render"
)

// View renders the list screen.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.SearchBox(render.SearchState{
		InputView: m.searchInput.View(),
		Focused:   m.uiState.IsSearchMode(),
		Filter:    m.uiState.GetFilter(),
	}))
	s.WriteString("\n")
	s.WriteString(render.Header(m.uiState.GetWidth()))
	s.WriteString("\n")

	if m.page.Status.IsLoading() {
		s.WriteString(render.Loader(m.spinner.View()))
	} else {
		s.WriteString(m.uiState.GetViewport().View())
	}

	s.WriteString("\n")
	s.WriteString(render.Pagination(render.PaginationState{
		Page:       m.uiState.GetCurrentPage(),
		PageSize:   m.pageSize,
		TotalCount: m.page.TotalCount,
	}))
	s.WriteString("\n")
	if m.hasStatusMessage {
		s.WriteString(render.StatusLine(render.StatusState{
			Text:  m.statusMessage,
			Level: m.statusMessageType.String(),
		}))
	}
	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		SearchMode:    m.uiState.IsSearchMode(),
		ConfirmMode:   m.uiState.IsConfirmationMode(),
		FavoritesOnly: m.uiState.IsFavoritesOnly(),
	}))

	return s.String()
}

// updateViewportContent renders the rows of the current page into the viewport.
func (m *Model) updateViewportContent() {
	m.uiState.GetViewport().SetContent(m.renderRows())
}

func (m *Model) renderRows() string {
	if len(m.page.Items) == 0 {
		return render.Empty(m.uiState.GetFilter(), m.uiState.IsFavoritesOnly())
	}

	width := m.uiState.GetWidth()
	cursor := m.uiState.GetCursor()
	rows := make([]string, 0, len(m.page.Items))
	for i, user := range m.page.Items {
		rows = append(rows, render.Row(render.RowState{
			User:     user,
			Favorite: m.favorites.IsFavorite(user.ID),
			Selected: i == cursor,
			Width:    width,
		}))
	}
	return strings.Join(rows, "\n")
}
