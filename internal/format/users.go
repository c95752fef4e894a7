package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// PlainFormatter writes one tab-aligned line per user: a favorite marker,
// the id, the name, the username and the email.
type PlainFormatter struct{}

// NewPlainFormatter creates a new PlainFormatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// FormatListing formats users in plain format.
func (f *PlainFormatter) FormatListing(listing Listing, writer io.Writer) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	for _, e := range listing.Entries {
		mark := " "
		if e.Favorite {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", mark, e.ID, e.Name, e.Username, e.Email); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// CompactFormatter writes only usernames, falling back to the name.
type CompactFormatter struct{}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

// FormatListing formats users in compact format.
func (f *CompactFormatter) FormatListing(listing Listing, writer io.Writer) error {
	for _, e := range listing.Entries {
		name := e.Username
		if name == "" {
			name = e.Name
		}
		if _, err := fmt.Fprintln(writer, name); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter writes the page as an indented JSON document.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Document is the JSON shape written by JSONFormatter.
type Document struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	TotalCount int     `json:"total_count"`
	Filter     string  `json:"filter,omitempty"`
	Users      []Entry `json:"users"`
}

// FormatListing formats users in JSON format.
func (f *JSONFormatter) FormatListing(listing Listing, writer io.Writer) error {
	doc := Document{
		Page:       listing.Page,
		TotalPages: listing.TotalPages(),
		TotalCount: listing.TotalCount,
		Filter:     listing.Filter,
		Users:      listing.Entries,
	}
	if doc.Users == nil {
		doc.Users = []Entry{}
	}
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
