// Package nav provides a stack-based screen router for bubbletea programs.
package nav

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen names registered by the application.
const (
	ScreenUserList   = "UserList"
	ScreenUserDetail = "UserDetail"
)

// Params are passed to the factory of a pushed screen.
type Params struct {
	ID int
}

// Factory builds the model for a screen.
type Factory func(params Params) tea.Model

// PushMsg asks the router to open a screen on top of the stack.
type PushMsg struct {
	Screen string
	Params Params
}

// PopMsg asks the router to close the top screen.
type PopMsg struct{}

// ResumedMsg is sent to a screen when it becomes the top again after a pop.
type ResumedMsg struct{}

// Broadcast marks messages the router delivers to every screen on the
// stack instead of only the top one.
type Broadcast interface {
	Broadcast()
}

// Router is the root model. It forwards messages to the top screen.
type Router struct {
	factories map[string]Factory
	stack     []tea.Model
	size      tea.WindowSizeMsg
	hasSize   bool
}

// NewRouter creates a router with root at the bottom of the stack.
func NewRouter(root tea.Model) *Router {
	return &Router{
		factories: make(map[string]Factory),
		stack:     []tea.Model{root},
	}
}

// SetRoot replaces the bottom screen.
func (r *Router) SetRoot(root tea.Model) {
	r.stack[0] = root
}

// Register associates a screen name with its factory.
func (r *Router) Register(screen string, factory Factory) {
	r.factories[screen] = factory
}

// Push returns a command that opens screen with params.
func (r *Router) Push(screen string, params Params) tea.Cmd {
	return func() tea.Msg {
		return PushMsg{Screen: screen, Params: params}
	}
}

// Pop returns a command that closes the top screen.
func (r *Router) Pop() tea.Cmd {
	return func() tea.Msg {
		return PopMsg{}
	}
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Top returns the screen currently shown.
func (r *Router) Top() tea.Model {
	return r.stack[len(r.stack)-1]
}

// Init initializes the root screen.
func (r *Router) Init() tea.Cmd {
	return r.Top().Init()
}

// Update handles navigation messages and forwards the rest.
func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PushMsg:
		return r, r.push(msg)
	case PopMsg:
		return r, r.pop()
	case tea.WindowSizeMsg:
		r.size = msg
		r.hasSize = true
	case Broadcast:
		cmds := make([]tea.Cmd, 0, len(r.stack))
		for i := range r.stack {
			var cmd tea.Cmd
			r.stack[i], cmd = r.stack[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}
	return r, r.updateTop(msg)
}

// View renders the top screen.
func (r *Router) View() string {
	return r.Top().View()
}

func (r *Router) updateTop(msg tea.Msg) tea.Cmd {
	top := len(r.stack) - 1
	var cmd tea.Cmd
	r.stack[top], cmd = r.stack[top].Update(msg)
	return cmd
}

func (r *Router) push(msg PushMsg) tea.Cmd {
	factory, ok := r.factories[msg.Screen]
	if !ok {
		return nil
	}
	screen := factory(msg.Params)
	r.stack = append(r.stack, screen)

	cmds := []tea.Cmd{screen.Init()}
	if r.hasSize {
		cmds = append(cmds, r.updateTop(r.size))
	}
	return tea.Batch(cmds...)
}

func (r *Router) pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]

	cmds := []tea.Cmd{r.updateTop(ResumedMsg{})}
	if r.hasSize {
		cmds = append(cmds, r.updateTop(r.size))
	}
	return tea.Batch(cmds...)
}
