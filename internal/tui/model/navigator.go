package model

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
)

// Navigator opens and closes screens. The returned commands are consumed
// by the router.
type Navigator interface {
	Push(screen string, params nav.Params) tea.Cmd
	Pop() tea.Cmd
}

var _ Navigator = (*nav.Router)(nil)
