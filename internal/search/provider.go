// Package search provides a unified search abstraction for filtering users.
// It supports multiple strategies (substring, token-based) through a common
// Provider interface shared by the store, the CLI and the TUI.
package search

import (
	"strconv"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// Field names accepted by WithFields.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldWebsite  = "website"
	FieldCompany  = "company"
	FieldCity     = "city"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the user matches the search query.
	Match(user domain.User, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: false,
		Fields:          []string{FieldName, FieldUsername, FieldEmail, FieldCompany, FieldCity},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in. Unknown names are ignored at match time.
func WithFields(fields []string) Option {
	return func(o *Options) {
		if len(fields) > 0 {
			o.Fields = fields
		}
	}
}

// New returns the provider registered under name, falling back to substring.
func New(name string, opts ...Option) Provider {
	switch name {
	case "token":
		return NewTokenProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValue returns the value of a named field of user.
func fieldValue(user domain.User, field string) string {
	switch field {
	case FieldID:
		return strconv.Itoa(user.ID)
	case FieldName:
		return user.Name
	case FieldUsername:
		return user.Username
	case FieldEmail:
		return user.Email
	case FieldPhone:
		return user.Phone
	case FieldWebsite:
		return user.Website
	case FieldCompany:
		return user.Company
	case FieldCity:
		return user.City
	}
	return ""
}
