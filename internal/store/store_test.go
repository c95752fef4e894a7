package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/search"
	"github.com/cristianoliveira/userdeck/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockRepository) RemoveUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListFavorites(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]int)
	return ids, args.Error(1)
}

func (m *MockRepository) SetFavorite(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) RemoveFavorite(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func testUsers(n int) []domain.User {
	names := []string{"Leanne Graham", "Ervin Howell", "Clementine Bauch", "Patricia Lebsack", "Chelsey Dietrich"}
	users := make([]domain.User, n)
	for i := range users {
		users[i] = domain.User{ID: i + 1, Name: names[i%len(names)], Username: "user" + string(rune('a'+i%26))}
	}
	return users
}

func newSQLiteStore(t *testing.T, users []domain.User) (*Store, *sqlite.SQLiteStorage) {
	t.Helper()
	repo, err := sqlite.NewSQLiteStorage(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, repo.Close()) })
	if len(users) > 0 {
		_, err = repo.UpsertUsers(context.Background(), users)
		require.NoError(t, err)
	}
	s := New(repo)
	require.NoError(t, s.Apply(context.Background(), FetchAll()))
	return s, repo
}

func TestCommandConstructors(t *testing.T) {
	a, b := FetchAll(), FetchAll()
	assert.Equal(t, KindFetchAll, a.Kind)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	assert.Equal(t, KindRemoveUser, RemoveUser(7).Kind)
	assert.Equal(t, 7, SetFavorite(7).UserID)
	assert.Equal(t, KindRemoveFavorite, RemoveFavorite(7).Kind)

	assert.Equal(t, "fetch_all", a.String())
	assert.Equal(t, "remove_user(7)", RemoveUser(7).String())
}

func TestNewStoreIsIdleAndEmpty(t *testing.T) {
	s := New(new(MockRepository))

	assert.Equal(t, domain.StatusIdle, s.Status())
	page := s.FetchPage(domain.PageRequest{Limit: 20})
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
}

func TestFetchAllMovesLoadingToIdle(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListUsers", mock.Anything).Return(testUsers(3), nil)
	repo.On("ListFavorites", mock.Anything).Return([]int{2}, nil)
	s := New(repo)
	changes := s.Subscribe()

	s.Dispatch(FetchAll())
	assert.Equal(t, domain.StatusLoading, s.Status())
	<-changes

	require.NoError(t, s.Apply(context.Background(), FetchAll()))

	assert.Equal(t, domain.StatusIdle, s.Status())
	assert.True(t, s.IsFavorite(2))
	assert.False(t, s.IsFavorite(1))
	assert.Equal(t, 3, s.FetchPage(domain.PageRequest{}).TotalCount)
	assert.Len(t, changes, 1)
}

func TestFetchAllFailureSetsFailedAndLogs(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("database is locked")
	repo := new(MockRepository)
	repo.On("ListUsers", mock.Anything).Return(nil, boom)
	s := New(repo, WithLogger(logging.New(&buf, "debug")))

	err := s.Apply(context.Background(), FetchAll())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StatusFailed, s.Status())
	assert.False(t, s.FetchPage(domain.PageRequest{}).Status.IsLoading())
	assert.Contains(t, buf.String(), "command failed")
	assert.Contains(t, buf.String(), "database is locked")
	repo.AssertNotCalled(t, "ListFavorites", mock.Anything)
}

func TestFetchAllFavoritesFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListUsers", mock.Anything).Return(testUsers(2), nil)
	repo.On("ListFavorites", mock.Anything).Return(nil, errors.New("no table"))
	s := New(repo)

	require.Error(t, s.Apply(context.Background(), FetchAll()))
	assert.Equal(t, domain.StatusFailed, s.Status())
	assert.Zero(t, s.FetchPage(domain.PageRequest{}).TotalCount)
}

func TestApplyUnknownCommand(t *testing.T) {
	s := New(new(MockRepository))

	err := s.Apply(context.Background(), Command{Kind: "rename"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, domain.StatusFailed, s.Status())
}

func TestFetchPageWindowsAndCounts(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(45))

	page := s.FetchPage(domain.PageRequest{Cursor: domain.CursorFor(3, 20), Limit: 20})

	assert.Equal(t, 45, page.TotalCount)
	require.Len(t, page.Items, 5)
	assert.Equal(t, 41, page.Items[0].ID)
	assert.Equal(t, domain.StatusIdle, page.Status)
}

func TestFetchPageFiltersBeforeWindowing(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(10))

	page := s.FetchPage(domain.PageRequest{Limit: 1, Filter: "  ERVIN "})

	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].ID)

	page = s.FetchPage(domain.PageRequest{Cursor: 40, Limit: 20, Filter: "ervin"})
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalCount)
}

func TestFetchPageFavoritesOnly(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(6))
	ctx := context.Background()
	require.NoError(t, s.Apply(ctx, SetFavorite(5)))
	require.NoError(t, s.Apply(ctx, SetFavorite(1)))

	page := s.FetchPage(domain.PageRequest{Limit: 20, FavoritesOnly: true})

	require.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Items[0].ID)
	assert.Equal(t, 5, page.Items[1].ID)
	assert.Equal(t, 2, page.TotalCount)
}

func TestFetchPageUsesSearchProvider(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListUsers", mock.Anything).Return(testUsers(5), nil)
	repo.On("ListFavorites", mock.Anything).Return([]int{}, nil)
	s := New(repo, WithSearchProvider(search.New("token", search.WithCaseInsensitive(true))))
	require.NoError(t, s.Apply(context.Background(), FetchAll()))

	page := s.FetchPage(domain.PageRequest{Filter: "graham leanne"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ID)
}

func TestRemoveUserUpdatesSnapshotAndRepository(t *testing.T) {
	s, repo := newSQLiteStore(t, testUsers(3))
	ctx := context.Background()

	require.NoError(t, s.Apply(ctx, RemoveUser(2)))

	_, ok := s.UserByID(2)
	assert.False(t, ok)
	assert.Equal(t, 2, s.FetchPage(domain.PageRequest{}).TotalCount)
	stored, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, []int{1, 3}, []int{stored[0].ID, stored[1].ID})
}

func TestRemoveMissingUserIsNotAFailure(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(1))

	require.NoError(t, s.Apply(context.Background(), RemoveUser(99)))
	assert.Equal(t, domain.StatusIdle, s.Status())
}

func TestRemoveUserRepositoryFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("RemoveUser", mock.Anything, 4).Return(errors.New("readonly"))
	s := New(repo)

	require.Error(t, s.Apply(context.Background(), RemoveUser(4)))
	assert.Equal(t, domain.StatusFailed, s.Status())
}

func TestFavoritesPersistAcrossFetch(t *testing.T) {
	s, repo := newSQLiteStore(t, testUsers(3))
	ctx := context.Background()

	require.NoError(t, s.Apply(ctx, SetFavorite(3)))
	require.NoError(t, s.Apply(ctx, SetFavorite(3)))
	assert.True(t, s.IsFavorite(3))

	reloaded := New(repo)
	require.NoError(t, reloaded.Apply(ctx, FetchAll()))
	assert.True(t, reloaded.IsFavorite(3))

	require.NoError(t, reloaded.Apply(ctx, RemoveFavorite(3)))
	assert.False(t, reloaded.IsFavorite(3))
	ids, err := repo.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSetFavoriteFailureKeepsSet(t *testing.T) {
	repo := new(MockRepository)
	repo.On("SetFavorite", mock.Anything, 1).Return(errors.New("full"))
	s := New(repo)

	require.Error(t, s.Apply(context.Background(), SetFavorite(1)))
	assert.False(t, s.IsFavorite(1))
}

func TestUserByID(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(3))

	u, ok := s.UserByID(3)
	require.True(t, ok)
	assert.Equal(t, "Clementine Bauch", u.Name)

	_, ok = s.UserByID(7)
	assert.False(t, ok)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}

func TestRunAppliesDispatchedCommandsInOrder(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(3))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	s.Dispatch(RemoveUser(1))
	s.Dispatch(RemoveFavorite(1))
	s.SetFavorite(2)
	s.RemoveFavorite(2)
	s.SetFavorite(3)

	waitFor(t, func() bool { return s.IsFavorite(3) })
	assert.False(t, s.IsFavorite(2))
	_, ok := s.UserByID(1)
	assert.False(t, ok)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDispatchDoesNotBlockWithoutRun(t *testing.T) {
	s := New(new(MockRepository))
	for i := 0; i < 500; i++ {
		s.Dispatch(SetFavorite(i + 1))
	}
	assert.Len(t, s.drain(), 500)
}

func TestRunProcessesCommandsQueuedBeforeStart(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(2))
	s.Dispatch(SetFavorite(1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	waitFor(t, func() bool { return s.IsFavorite(1) })
}

func TestSubscribeCoalescesChanges(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(3))
	ctx := context.Background()
	changes := s.Subscribe()

	require.NoError(t, s.Apply(ctx, SetFavorite(1)))
	require.NoError(t, s.Apply(ctx, SetFavorite(2)))

	change := <-changes
	assert.Equal(t, KindSetFavorite, change.Command.Kind)
	select {
	case <-changes:
		t.Fatal("expected a single coalesced change")
	default:
	}
}

func TestConcurrentReadsDuringRun(t *testing.T) {
	s, _ := newSQLiteStore(t, testUsers(20))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.FetchPage(domain.PageRequest{Limit: 5, Filter: "a"})
				s.IsFavorite(j)
			}
		}()
	}
	for id := 1; id <= 20; id++ {
		s.SetFavorite(id)
	}
	wg.Wait()

	waitFor(t, func() bool {
		return s.FetchPage(domain.PageRequest{Limit: 5, FavoritesOnly: true}).TotalCount == 20
	})
}
