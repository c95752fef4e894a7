// Package store holds the in-memory user snapshot and the favorite set,
// and applies commands to them and to the repository from a single
// writer goroutine.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/search"
)

// ErrUnknownCommand is returned by Apply for a Command with an unknown Kind.
var ErrUnknownCommand = errors.New("unknown command")

// Repository is the persistence the store reads from and writes through.
type Repository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	RemoveUser(ctx context.Context, id int) error
	ListFavorites(ctx context.Context) ([]int, error)
	SetFavorite(ctx context.Context, id int) error
	RemoveFavorite(ctx context.Context, id int) error
}

// Change tells subscribers the snapshot or status moved. It is a hint;
// read the current state through the store.
type Change struct {
	Command Command
	Status  domain.Status
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for command outcomes.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSearchProvider sets the provider used to filter pages.
func WithSearchProvider(p search.Provider) Option {
	return func(s *Store) {
		if p != nil {
			s.search = p
		}
	}
}

// Store implements the data provider, favorite registry and dispatcher
// used by the TUI.
type Store struct {
	repo   Repository
	logger logging.Logger
	search search.Provider

	mu        sync.RWMutex
	users     []domain.User
	favorites map[int]struct{}
	status    domain.Status

	queueMu sync.Mutex
	pending []Command
	wake    chan struct{}

	subsMu sync.Mutex
	subs   []chan Change
}

// New creates a Store on top of repo. The snapshot is empty and idle until
// a FetchAll command is applied.
func New(repo Repository, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		logger:    logging.Nop(),
		search:    search.New("substring", search.WithCaseInsensitive(true)),
		favorites: make(map[int]struct{}),
		status:    domain.StatusIdle,
		wake:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch queues cmd for Run and returns immediately. A FetchAll marks
// the store as loading right away.
func (s *Store) Dispatch(cmd Command) {
	if cmd.Kind == KindFetchAll {
		s.setStatus(cmd, domain.StatusLoading)
	}

	s.queueMu.Lock()
	s.pending = append(s.pending, cmd)
	s.queueMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	s.logger.Debug("command dispatched", "command_id", cmd.ID, "command", cmd.String())
}

// Run applies dispatched commands in order until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	for {
		for _, cmd := range s.drain() {
			if ctx.Err() != nil {
				return nil
			}
			// Apply logs and records failures itself.
			_ = s.Apply(ctx, cmd)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
		}
	}
}

func (s *Store) drain() []Command {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()
	cmds := s.pending
	s.pending = nil
	return cmds
}

// Apply runs cmd against the repository and updates the snapshot. A
// failure is logged, sets the status to failed and is returned.
func (s *Store) Apply(ctx context.Context, cmd Command) error {
	log := s.logger.With("command_id", cmd.ID, "command", string(cmd.Kind))

	var err error
	switch cmd.Kind {
	case KindFetchAll:
		err = s.fetchAll(ctx, cmd)
	case KindRemoveUser:
		err = s.removeUser(ctx, cmd)
	case KindSetFavorite:
		err = s.setFavorite(ctx, cmd)
	case KindRemoveFavorite:
		err = s.removeFavorite(ctx, cmd)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	if err != nil {
		log.Error("command failed", "user_id", cmd.UserID, "error", err.Error())
		s.setStatus(cmd, domain.StatusFailed)
		return err
	}
	log.Debug("command applied", "user_id", cmd.UserID)
	return nil
}

func (s *Store) fetchAll(ctx context.Context, cmd Command) error {
	s.setStatus(cmd, domain.StatusLoading)

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	ids, err := s.repo.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("fetch favorites: %w", err)
	}

	favorites := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		favorites[id] = struct{}{}
	}

	s.mu.Lock()
	s.users = users
	s.favorites = favorites
	s.mu.Unlock()

	s.logger.Info("users loaded", "command_id", cmd.ID, "count", len(users), "favorites", len(ids))
	s.setStatus(cmd, domain.StatusIdle)
	return nil
}

func (s *Store) removeUser(ctx context.Context, cmd Command) error {
	err := s.repo.RemoveUser(ctx, cmd.UserID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("remove user %d: %w", cmd.UserID, err)
	}

	s.mu.Lock()
	kept := s.users[:0:0]
	for _, u := range s.users {
		if u.ID != cmd.UserID {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()

	s.notify(cmd)
	return nil
}

func (s *Store) setFavorite(ctx context.Context, cmd Command) error {
	if err := s.repo.SetFavorite(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("set favorite %d: %w", cmd.UserID, err)
	}
	s.mu.Lock()
	s.favorites[cmd.UserID] = struct{}{}
	s.mu.Unlock()

	s.notify(cmd)
	return nil
}

func (s *Store) removeFavorite(ctx context.Context, cmd Command) error {
	if err := s.repo.RemoveFavorite(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("remove favorite %d: %w", cmd.UserID, err)
	}
	s.mu.Lock()
	delete(s.favorites, cmd.UserID)
	s.mu.Unlock()

	s.notify(cmd)
	return nil
}

func (s *Store) setStatus(cmd Command, status domain.Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.notify(cmd)
}

// Subscribe returns a channel that receives a Change after every state
// update. Changes coalesce while the receiver is busy.
func (s *Store) Subscribe() <-chan Change {
	ch := make(chan Change, 1)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *Store) notify(cmd Command) {
	change := Change{Command: cmd, Status: s.Status()}
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

// Status returns the status of the last FetchAll or failed command.
func (s *Store) Status() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// FetchPage filters the snapshot and returns the requested window.
func (s *Store) FetchPage(req domain.PageRequest) domain.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.TrimSpace(req.Filter)
	matched := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if req.FavoritesOnly {
			if _, ok := s.favorites[u.ID]; !ok {
				continue
			}
		}
		if query != "" && !s.search.Match(u, query) {
			continue
		}
		matched = append(matched, u)
	}

	return domain.Page{
		Items:      domain.Window(matched, req.Cursor, req.Limit),
		TotalCount: len(matched),
		Status:     s.status,
	}
}

// UserByID looks a user up in the snapshot.
func (s *Store) UserByID(id int) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// IsFavorite reports whether id is in the favorite set.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[id]
	return ok
}

// SetFavorite dispatches a SetFavorite command.
func (s *Store) SetFavorite(id int) {
	s.Dispatch(SetFavorite(id))
}

// RemoveFavorite dispatches a RemoveFavorite command.
func (s *Store) RemoveFavorite(id int) {
	s.Dispatch(RemoveFavorite(id))
}
