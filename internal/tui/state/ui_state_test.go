package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUIStateDefaults(t *testing.T) {
	u := NewUIState()

	assert.Equal(t, 1, u.GetCurrentPage())
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())
	assert.Equal(t, 0, u.GetCursor())
	assert.False(t, u.IsSearchMode())
	assert.False(t, u.IsConfirmationMode())
}

func TestSetCurrentPageIgnoresInvalid(t *testing.T) {
	u := NewUIState()
	u.SetCurrentPage(4)
	u.SetCurrentPage(0)

	assert.Equal(t, 4, u.GetCurrentPage())
}

func TestCursorBounds(t *testing.T) {
	u := NewUIState()

	u.MoveCursorUp()
	assert.Equal(t, 0, u.GetCursor())

	u.MoveCursorDown(2)
	u.MoveCursorDown(2)
	assert.Equal(t, 1, u.GetCursor())

	u.SetCursor(10)
	u.AdjustCursorBounds(3)
	assert.Equal(t, 2, u.GetCursor())

	u.AdjustCursorBounds(0)
	assert.Equal(t, 0, u.GetCursor())

	u.SetCursor(-1)
	assert.Equal(t, 0, u.GetCursor())
}

func TestResetScrollMovesToTop(t *testing.T) {
	u := NewUIState()
	u.SetHeight(10)
	u.UpdateViewportSize()
	u.GetViewport().SetContent(strings.Repeat("row\n", 40))
	u.SetCursor(30)
	u.EnsureCursorVisible(40)
	assert.Greater(t, u.GetViewport().YOffset, 0)

	u.ResetScroll()

	assert.Equal(t, 0, u.GetViewport().YOffset)
	assert.Equal(t, 0, u.GetCursor())
	assert.Equal(t, 1, u.ScrollEpoch())
}

func TestEnsureCursorVisibleScrollsBack(t *testing.T) {
	u := NewUIState()
	u.SetHeight(10)
	u.UpdateViewportSize()
	u.GetViewport().SetContent(strings.Repeat("row\n", 40))

	u.SetCursor(20)
	u.EnsureCursorVisible(40)
	assert.Equal(t, 20-(10-chromeLines)+1, u.GetViewport().YOffset)

	u.SetCursor(2)
	u.EnsureCursorVisible(40)
	assert.Equal(t, 2, u.GetViewport().YOffset)
}

func TestUpdateViewportSizeKeepsMinimumHeight(t *testing.T) {
	u := NewUIState()
	u.SetHeight(2)
	u.UpdateViewportSize()

	assert.Equal(t, 1, u.GetViewport().Height)
}

func TestConfirmation(t *testing.T) {
	u := NewUIState()

	u.RequestConfirmation(7)
	assert.True(t, u.IsConfirmationMode())
	assert.Equal(t, 7, u.GetPendingID())

	u.ClearConfirmation()
	assert.False(t, u.IsConfirmationMode())
	assert.Equal(t, 0, u.GetPendingID())
}
