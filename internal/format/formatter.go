// Package format provides output formatting functionality for CLI commands.
// It renders one page of users in the styles accepted by list --format.
package format

import (
	"io"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// Entry is one listed user with its favorite flag.
type Entry struct {
	domain.User
	Favorite bool `json:"favorite"`
}

// Listing is a page of users plus what is needed to describe the page.
type Listing struct {
	Page          int
	PageSize      int
	TotalCount    int
	Filter        string
	FavoritesOnly bool
	Entries       []Entry
}

// TotalPages returns the number of pages of the filtered set.
func (l Listing) TotalPages() int {
	return domain.TotalPages(l.TotalCount, l.PageSize)
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatListing formats a page of users and writes to the writer.
	FormatListing(listing Listing, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypePlain displays one tab-aligned line per user.
	FormatterTypePlain FormatterType = "plain"

	// FormatterTypeTable displays users in a table with headers and a page summary.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeCompact displays only usernames, one per line.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON displays the page in JSON format.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType validates a --format value.
func ParseFormatterType(value string) (FormatterType, bool) {
	switch t := FormatterType(value); t {
	case FormatterTypePlain, FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON:
		return t, true
	}
	return "", false
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeCompact:
		return NewCompactFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to plain formatter for unknown types
		return NewPlainFormatter()
	}
}
