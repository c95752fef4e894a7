package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/userdeck/internal/colors"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ShowSummary appends a "Page x of y" line after the rows.
	ShowSummary bool
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ShowSummary: true,
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from an entry.
	Extractor func(Entry) string
}

// TableFormatter formats users in a table with headers.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a new TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		config: DefaultTableConfig(),
		columns: []TableColumn{
			{Name: "FAV", Width: 3, Alignment: "center", Extractor: func(e Entry) string {
				if e.Favorite {
					return "*"
				}
				return ""
			}},
			{Name: "ID", Width: 5, Alignment: "right", Extractor: func(e Entry) string {
				return fmt.Sprintf("%d", e.ID)
			}},
			{Name: "NAME", Width: 24, Extractor: func(e Entry) string { return e.Name }},
			{Name: "USERNAME", Width: 16, Extractor: func(e Entry) string { return e.Username }},
			{Name: "EMAIL", Width: 28, Extractor: func(e Entry) string { return e.Email }},
			{Name: "COMPANY", Width: 20, Extractor: func(e Entry) string { return e.Company }},
		},
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatListing formats users in table format.
func (f *TableFormatter) FormatListing(listing Listing, writer io.Writer) error {
	if f.config.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
		if err := f.writeSeparator(writer); err != nil {
			return err
		}
	}

	if len(listing.Entries) == 0 {
		if _, err := fmt.Fprintln(writer, emptyMessage(listing)); err != nil {
			return err
		}
	}
	for _, e := range listing.Entries {
		if err := f.writeRow(e, writer); err != nil {
			return err
		}
	}

	if !f.config.ShowSummary {
		return nil
	}
	_, err := fmt.Fprintf(writer, "\nPage %d of %d  %d users\n", listing.Page, listing.TotalPages(), listing.TotalCount)
	return err
}

func emptyMessage(listing Listing) string {
	switch {
	case listing.Filter != "":
		return fmt.Sprintf("No users match %q", listing.Filter)
	case listing.FavoritesOnly:
		return "No favorite users"
	default:
		return "No users found"
	}
}

// writeHeader writes the table header.
func (f *TableFormatter) writeHeader(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(col.Name, col.Width, "left"))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

// writeSeparator writes the table separator.
func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, makeSeparator(col.Width))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

// writeRow writes a single table row.
func (f *TableFormatter) writeRow(e Entry, writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(truncateString(col.Extractor(e), col.Width), col.Width, col.Alignment))
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

// Helper functions

// formatString pads s to width runes with the given alignment.
func formatString(s string, width int, alignment string) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}

	pad := width - len(runes)
	switch alignment {
	case "right":
		return strings.Repeat(" ", pad) + s
	case "center":
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default: // left
		return s + strings.Repeat(" ", pad)
	}
}

// truncateString shortens s to width runes, ending in "..." when cut.
func truncateString(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
