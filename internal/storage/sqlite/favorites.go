package sqlite

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// ListFavorites returns the IDs of all favorite users in ascending order.
func (s *SQLiteStorage) ListFavorites(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, listFavoritesSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list favorites: %w", err)
	}
	return ids, nil
}

// SetFavorite marks a user as favorite. Setting an existing favorite is a no-op.
func (s *SQLiteStorage) SetFavorite(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("sqlite storage: set favorite: %w: %d", domain.ErrInvalidUserID, id)
	}
	if _, err := s.db.ExecContext(ctx, insertFavoriteSQL, id, utcNow()); err != nil {
		return fmt.Errorf("sqlite storage: set favorite: %w", err)
	}
	return nil
}

// RemoveFavorite clears the favorite flag. Removing a missing favorite is a no-op.
func (s *SQLiteStorage) RemoveFavorite(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, deleteFavoriteSQL, id); err != nil {
		return fmt.Errorf("sqlite storage: remove favorite: %w", err)
	}
	return nil
}
