// Package model provides interface contracts for TUI components.
// These interfaces define the contracts between the screens and the store.
package model

import (
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/store"
)

// DataProvider returns windows of the filtered user set.
type DataProvider interface {
	// FetchPage returns the users selected by req, the number of users
	// matching its filter, and the current load status.
	FetchPage(req domain.PageRequest) domain.Page

	// UserByID looks a single user up.
	UserByID(id int) (domain.User, bool)
}

// FavoriteRegistry tracks which users are favorites.
type FavoriteRegistry interface {
	IsFavorite(id int) bool
	// SetFavorite and RemoveFavorite are fire-and-forget.
	SetFavorite(id int)
	RemoveFavorite(id int)
}

// Dispatcher accepts store commands without waiting for them.
type Dispatcher interface {
	Dispatch(cmd store.Command)
}

// ChangeSource notifies screens when the store state moves.
type ChangeSource interface {
	Subscribe() <-chan store.Change
}

// Store bundles every store-facing contract.
type Store interface {
	DataProvider
	FavoriteRegistry
	Dispatcher
	ChangeSource
}

var _ Store = (*store.Store)(nil)
