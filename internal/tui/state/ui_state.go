package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState manages all UI-specific state for the list screen.
// This includes viewport management, the row cursor, the current page,
// the filter and the input modes.
type UIState struct {
	// Viewport management
	viewport    viewport.Model
	width       int
	height      int
	scrollEpoch int

	// Row cursor within the current page
	cursor int

	// Pagination and filter
	currentPage   int
	filter        string
	favoritesOnly bool

	// Input modes
	searchMode  bool
	confirmMode bool
	pendingID   int
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport:    viewport.New(defaultViewportWidth, defaultViewportHeight-chromeLines),
		width:       defaultViewportWidth,
		height:      defaultViewportHeight,
		currentPage: 1,
	}
}

// GetViewport returns the current viewport model.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the viewport to the space left by the chrome
// lines. The scroll offset is kept.
func (u *UIState) UpdateViewportSize() {
	viewportHeight := u.height - chromeLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	u.viewport.Width = u.width
	u.viewport.Height = viewportHeight
}

// ResetScroll moves the viewport and the row cursor back to the top.
func (u *UIState) ResetScroll() {
	u.viewport.GotoTop()
	u.cursor = 0
	u.scrollEpoch++
}

// ScrollEpoch counts scroll resets.
func (u *UIState) ScrollEpoch() int {
	return u.scrollEpoch
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// MoveCursorUp moves the cursor up one position if possible.
func (u *UIState) MoveCursorUp() {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorDown moves the cursor down one position if possible.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// EnsureCursorVisible adjusts the viewport to ensure the cursor is visible.
func (u *UIState) EnsureCursorVisible(listLen int) {
	if listLen == 0 {
		return
	}

	lineOffset := u.viewport.YOffset
	viewportHeight := u.viewport.Height

	if u.cursor < lineOffset {
		u.viewport.SetYOffset(u.cursor)
	}
	if u.cursor >= lineOffset+viewportHeight {
		u.viewport.SetYOffset(u.cursor - viewportHeight + 1)
	}
}

// AdjustCursorBounds ensures the cursor is within valid bounds.
func (u *UIState) AdjustCursorBounds(listLen int) {
	if listLen == 0 {
		u.cursor = 0
		return
	}
	if u.cursor >= listLen {
		u.cursor = listLen - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// GetCurrentPage returns the 1-based page number.
func (u *UIState) GetCurrentPage() int {
	return u.currentPage
}

// SetCurrentPage replaces the page number. Values below 1 are ignored.
func (u *UIState) SetCurrentPage(page int) {
	if page < 1 {
		return
	}
	u.currentPage = page
}

// GetFilter returns the filter text.
func (u *UIState) GetFilter() string {
	return u.filter
}

// SetFilter replaces the filter text.
func (u *UIState) SetFilter(filter string) {
	u.filter = filter
}

// IsFavoritesOnly returns whether only favorites are listed.
func (u *UIState) IsFavoritesOnly() bool {
	return u.favoritesOnly
}

// SetFavoritesOnly restricts the list to favorites.
func (u *UIState) SetFavoritesOnly(enabled bool) {
	u.favoritesOnly = enabled
}

// IsSearchMode returns whether search mode is active.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode activates or deactivates search mode.
func (u *UIState) SetSearchMode(active bool) {
	u.searchMode = active
}

// IsConfirmationMode returns whether a removal awaits confirmation.
func (u *UIState) IsConfirmationMode() bool {
	return u.confirmMode
}

// RequestConfirmation enters confirmation mode for removing id.
func (u *UIState) RequestConfirmation(id int) {
	u.confirmMode = true
	u.pendingID = id
}

// ClearConfirmation leaves confirmation mode.
func (u *UIState) ClearConfirmation() {
	u.confirmMode = false
	u.pendingID = 0
}

// GetPendingID returns the user awaiting removal confirmation.
func (u *UIState) GetPendingID() int {
	return u.pendingID
}
