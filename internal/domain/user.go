// Package domain provides the domain layer for users.
// It contains the user record, paging value objects and the errors
// shared by storage, the store and the TUI.
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when the user ID is invalid.
	ErrInvalidUserID = errors.New("invalid user ID")
)

// User is a single user record. ID is unique and stable; the remaining
// fields are display-only.
type User struct {
	ID       int    `json:"id" toml:"id" yaml:"id"`
	Name     string `json:"name" toml:"name" yaml:"name"`
	Username string `json:"username" toml:"username" yaml:"username"`
	Email    string `json:"email" toml:"email" yaml:"email"`
	Phone    string `json:"phone,omitempty" toml:"phone" yaml:"phone"`
	Website  string `json:"website,omitempty" toml:"website" yaml:"website"`
	Company  string `json:"company,omitempty" toml:"company" yaml:"company"`
	City     string `json:"city,omitempty" toml:"city" yaml:"city"`
}

// Validate checks the fields required to store a user.
func (u User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUserID, u.ID)
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("user %d: name cannot be empty", u.ID)
	}
	return nil
}

// DisplayName returns the name followed by the username when one is set.
func (u User) DisplayName() string {
	if u.Username == "" {
		return u.Name
	}
	return fmt.Sprintf("%s (@%s)", u.Name, u.Username)
}

// ParseUserID parses a positive user ID from its string form.
func ParseUserID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidUserID)
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}
