// Package state implements the user list screen: a paginated, filterable
// list with favorites, removal and navigation to the detail screen.
package state

import (
	stderrors "errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/errors"
	"github.com/cristianoliveira/userdeck/internal/settings"
	"github.com/cristianoliveira/userdeck/internal/store"
	"github.com/cristianoliveira/userdeck/internal/tui/model"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
)

const (
	infoType              = errors.MessageTypeInfo
	warningType           = errors.MessageTypeWarning
	successType           = errors.MessageTypeSuccess
	chromeLines           = 5
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	defaultStatusClear    = 5 * time.Second
)

// ErrMissingDependency is returned by NewModel when a collaborator is nil.
var ErrMissingDependency = stderrors.New("list model: missing dependency")

// Options wires the list screen to its collaborators.
type Options struct {
	Provider   model.DataProvider
	Favorites  model.FavoriteRegistry
	Dispatcher model.Dispatcher
	Navigator  model.Navigator
	// Changes is optional; without it the screen refreshes only on input.
	Changes model.ChangeSource

	PageSize            int
	StatusClearDuration time.Duration
	// Preferences restores the filter and tab of a previous session.
	Preferences settings.TUIState
}

// Model represents the list screen for bubbletea.
type Model struct {
	// Core state
	uiState           *UIState
	page              domain.Page
	pageSize          int
	fetched           bool
	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool
	statusSeq         int
	statusClear       time.Duration

	// Widgets
	spinner     spinner.Model
	spinning    bool
	searchInput textinput.Model

	// Collaborators
	provider   model.DataProvider
	favorites  model.FavoriteRegistry
	dispatcher model.Dispatcher
	navigator  model.Navigator
	changes    <-chan store.Change
}

// NewModel creates the list screen.
func NewModel(opts Options) (*Model, error) {
	if opts.Provider == nil || opts.Favorites == nil || opts.Dispatcher == nil || opts.Navigator == nil {
		return nil, ErrMissingDependency
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	statusClear := opts.StatusClearDuration
	if statusClear <= 0 {
		statusClear = defaultStatusClear
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "name, username, email, company or city"

	m := &Model{
		uiState:     NewUIState(),
		pageSize:    pageSize,
		statusClear: statusClear,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		searchInput: input,
		provider:    opts.Provider,
		favorites:   opts.Favorites,
		dispatcher:  opts.Dispatcher,
		navigator:   opts.Navigator,
	}
	if opts.Changes != nil {
		m.changes = opts.Changes.Subscribe()
	}
	m.uiState.SetFilter(opts.Preferences.Filter)
	m.uiState.SetFavoritesOnly(opts.Preferences.FavoritesOnly)

	// Route status messages to the status line
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	m.refresh()
	return m, nil
}

// Init dispatches the initial fetch on first activation.
func (m *Model) Init() tea.Cmd {
	if !m.fetched {
		m.fetched = true
		m.dispatcher.Dispatch(store.FetchAll())
	}
	m.refresh()
	return tea.Batch(m.startSpinner(), WaitForChange(m.changes))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case StoreChangedMsg:
		m.refresh()
		return m, tea.Batch(m.startSpinner(), WaitForChange(m.changes))
	case nav.ResumedMsg:
		// Ticks were delivered to the screen on top while covered.
		m.spinning = false
		m.refresh()
		return m, m.startSpinner()
	case spinner.TickMsg:
		return m, m.handleSpinnerTick(msg)
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.hasStatusMessage = false
		}
		return m, nil
	}
	return m, nil
}

// CurrentPage returns the 1-based page number.
func (m *Model) CurrentPage() int {
	return m.uiState.GetCurrentPage()
}

// Filter returns the filter text.
func (m *Model) Filter() string {
	return m.uiState.GetFilter()
}

// Page returns the page computed by the last refresh.
func (m *Model) Page() domain.Page {
	return m.page
}

// PageRequest returns the window the current page and filter select.
func (m *Model) PageRequest() domain.PageRequest {
	return domain.PageRequest{
		Cursor:        domain.CursorFor(m.uiState.GetCurrentPage(), m.pageSize),
		Limit:         m.pageSize,
		Filter:        m.uiState.GetFilter(),
		FavoritesOnly: m.uiState.IsFavoritesOnly(),
	}
}

// Preferences returns the state worth keeping for the next session.
func (m *Model) Preferences() settings.TUIState {
	return settings.TUIState{
		FavoritesOnly: m.uiState.IsFavoritesOnly(),
		Filter:        m.uiState.GetFilter(),
	}
}

// ScrollEpoch counts scroll resets caused by page changes.
func (m *Model) ScrollEpoch() int {
	return m.uiState.ScrollEpoch()
}

// refresh recomputes the visible page from the page and the filter.
func (m *Model) refresh() {
	m.page = m.provider.FetchPage(m.PageRequest())
	m.uiState.AdjustCursorBounds(len(m.page.Items))
	m.updateViewportContent()
	// The cursor may have moved above or below the visible rows.
	m.uiState.EnsureCursorVisible(len(m.page.Items))
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.page.Status.IsLoading() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) tea.Cmd {
	if !m.page.Status.IsLoading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// setStatus shows text on the status line and schedules its removal.
func (m *Model) setStatus(msgType errors.MessageType, text string) tea.Cmd {
	switch msgType {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(text)
	default:
		m.errorHandler.Info(text)
	}
	m.statusSeq++
	return statusClearAfter(m.statusSeq, m.statusClear)
}
