package sqlite

import "errors"

// ErrEmptyDBPath indicates that no database path was configured.
var ErrEmptyDBPath = errors.New("sqlite storage: db path cannot be empty")
