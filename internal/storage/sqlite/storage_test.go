package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "users.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func seed(t *testing.T, s *SQLiteStorage, users ...domain.User) {
	t.Helper()
	n, err := s.UpsertUsers(context.Background(), users)
	require.NoError(t, err)
	require.Equal(t, len(users), n)
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyDBPath)
}

func TestUpsertAndListUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	seed(t, s,
		domain.User{ID: 2, Name: "Bret", Email: "bret@example.com"},
		domain.User{ID: 1, Name: "Ann", City: "Gwenborough"},
	)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, 1, users[0].ID)
	require.Equal(t, "Gwenborough", users[0].City)
	require.Equal(t, "bret@example.com", users[1].Email)

	seed(t, s, domain.User{ID: 1, Name: "Ann B"})
	users, err = s.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ann B", users[0].Name)
	require.Empty(t, users[0].City)

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestUpsertUsersValidatesBeforeWriting(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UpsertUsers(context.Background(), []domain.User{
		{ID: 1, Name: "Ann"},
		{ID: 0, Name: "broken"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidUserID)

	count, err := s.CountUsers(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRemoveUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	seed(t, s, domain.User{ID: 1, Name: "Ann"})
	require.NoError(t, s.SetFavorite(ctx, 1))

	require.NoError(t, s.RemoveUser(ctx, 1))
	require.ErrorIs(t, s.RemoveUser(ctx, 1), domain.ErrUserNotFound)

	ids, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids, "removing a user does not touch favorites")
}

func TestFavorites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SetFavorite(ctx, 3))
	require.NoError(t, s.SetFavorite(ctx, 3))
	require.NoError(t, s.SetFavorite(ctx, 1))

	ids, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ids)

	require.NoError(t, s.RemoveFavorite(ctx, 3))
	require.NoError(t, s.RemoveFavorite(ctx, 3))

	ids, err = s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids)

	require.ErrorIs(t, s.SetFavorite(ctx, -1), domain.ErrInvalidUserID)
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "users.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	seed(t, s, domain.User{ID: 5, Name: "Eve"})
	require.NoError(t, s.SetFavorite(context.Background(), 5))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer s.Close()

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	ids, err := s.ListFavorites(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{5}, ids)
}
