package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/store"
)

// StoreChangedMsg is sent when the store reports a change. The router
// delivers it to every screen on the stack.
type StoreChangedMsg struct {
	Change store.Change
}

// Broadcast implements nav.Broadcast.
func (StoreChangedMsg) Broadcast() {}

// statusClearMsg clears the status line if no newer message replaced it.
type statusClearMsg struct {
	seq int
}

// statusClearAfter returns a command that clears status message seq after d.
func statusClearAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// WaitForChange returns a command that blocks until the next change on ch.
func WaitForChange(ch <-chan store.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Change: change}
	}
}
