// Package sqlite provides a SQLite-backed user and favorite storage.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/userdeck/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStorage stores users and the favorite set in a single SQLite file.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a SQLite-backed storage at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, ErrEmptyDBPath
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// ListUsers returns every stored user ordered by ID.
func (s *SQLiteStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, listUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Website, &u.Company, &u.City); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list users: %w", err)
	}
	return users, nil
}

// UpsertUsers inserts or replaces users inside a single transaction and
// returns how many rows were written.
func (s *SQLiteStorage) UpsertUsers(ctx context.Context, users []domain.User) (int, error) {
	for _, u := range users {
		if err := u.Validate(); err != nil {
			return 0, fmt.Errorf("sqlite storage: upsert users: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertUserSQL)
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := utcNow()
	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.ID, u.Name, u.Username, u.Email, u.Phone, u.Website, u.Company, u.City, now); err != nil {
			return 0, fmt.Errorf("sqlite storage: upsert user %d: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite storage: commit upsert: %w", err)
	}
	return len(users), nil
}

// RemoveUser deletes a user. The favorite flag is left alone.
func (s *SQLiteStorage) RemoveUser(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: remove user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite storage: remove user: %w: id %d", domain.ErrUserNotFound, id)
	}
	return nil
}

// CountUsers returns the number of stored users.
func (s *SQLiteStorage) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, countUsersSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("sqlite storage: count users: %w", err)
	}
	return count, nil
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
