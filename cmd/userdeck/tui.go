package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/settings"
	"github.com/cristianoliveira/userdeck/internal/store"
	"github.com/cristianoliveira/userdeck/internal/tui/detail"
	"github.com/cristianoliveira/userdeck/internal/tui/nav"
	"github.com/cristianoliveira/userdeck/internal/tui/state"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const tuiCommandLong = `Open the interactive user list.

KEYS:
    j/k, up/down     Move the selection
    n/p, right/left  Next or previous page
    g/G              First or last page
    /                Search by name, username, email, company or city
    enter            Open the selected user
    f                Toggle favorite
    F                Show favorites only
    d                Remove the selected user (asks for confirmation)
    r                Reload users
    q, ctrl+c        Quit`

// screenOptions configures the screens built by newRouter.
type screenOptions struct {
	PageSize    int
	StatusClear time.Duration
	Preferences settings.TUIState
}

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive user list",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			stor, err := openStorage(c.Context())
			if err != nil {
				return err
			}
			defer stor.Close()

			prefs, err := settings.Load()
			if err != nil {
				colors.Warning(fmt.Sprintf("ignoring TUI settings: %v", err))
				prefs = settings.DefaultSettings()
			}

			return runTUI(c.Context(), newStore(stor), screenOptions{
				PageSize:    pageSize(),
				StatusClear: statusClearDuration(),
				Preferences: settings.FromSettings(prefs),
			}, config.GetBool("alt_screen", true))
		},
	}
}

// runTUI runs the store loop and the program until the program exits.
func runTUI(ctx context.Context, s *store.Store, opts screenOptions, altScreen bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	router, list, err := newRouter(s, opts)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(router, programOpts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logging.Info("tui closed", "error", err)

	if saveErr := settings.Save(list.Preferences().ToSettings()); saveErr != nil {
		colors.Warning(fmt.Sprintf("unable to save TUI settings: %v", saveErr))
	}
	return err
}

// newRouter builds the screen stack with the list screen at the bottom.
func newRouter(s *store.Store, opts screenOptions) (*nav.Router, *state.Model, error) {
	router := nav.NewRouter(nil)

	list, err := state.NewModel(state.Options{
		Provider:            s,
		Favorites:           s,
		Dispatcher:          s,
		Navigator:           router,
		Changes:             s,
		PageSize:            opts.PageSize,
		StatusClearDuration: opts.StatusClear,
		Preferences:         opts.Preferences,
	})
	if err != nil {
		return nil, nil, err
	}

	router.SetRoot(list)
	router.Register(nav.ScreenUserDetail, detail.Factory(s, s, router))
	return router, list, nil
}

func init() {
	cmd.RootCmd.AddCommand(NewTUICmd())
}
