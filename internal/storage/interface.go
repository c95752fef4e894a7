// Package storage selects and prepares the userdeck storage backend.
package storage

import (
	"context"

	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/storage/sqlite"
)

// Storage defines the user and favorite persistence operations.
type Storage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpsertUsers(ctx context.Context, users []domain.User) (int, error)
	RemoveUser(ctx context.Context, id int) error
	CountUsers(ctx context.Context) (int, error)

	ListFavorites(ctx context.Context) ([]int, error)
	SetFavorite(ctx context.Context, id int) error
	RemoveFavorite(ctx context.Context, id int) error

	Close() error
}

// UserWriter is the subset of Storage needed to import users.
type UserWriter interface {
	UpsertUsers(ctx context.Context, users []domain.User) (int, error)
}

var _ Storage = (*sqlite.SQLiteStorage)(nil)
