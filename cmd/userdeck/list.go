package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/format"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const listCommandLong = `List one page of users.

USAGE:
    userdeck list [OPTIONS]

OPTIONS:
    --page <n>           Page to show, starting at 1 (default 1)
    --filter <text>      Keep users whose name, username, email, company or city contains text
    --favorites          Show favorite users only
    --format=<format>    Output format: table (default on a terminal), plain, compact, json
    --template <tpl>     Print each user with a {{variable}} template or a preset
                         (contact, handle, csv, card); overrides --format
    -h, --help           Show this help`

// ListOptions selects the page printed by PrintList.
type ListOptions struct {
	Page          int
	Filter        string
	FavoritesOnly bool
	Format        format.FormatterType
	// Template, when set, is a line template or preset name and wins over Format.
	Template string
	PageSize int
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open clientOpener) *cobra.Command {
	if open == nil {
		panic("NewListCmd: open dependency cannot be nil")
	}

	var opts ListOptions
	var formatFlag string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of users",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if opts.Page < 1 {
				return fmt.Errorf("invalid page %d: pages start at 1", opts.Page)
			}
			ftype, err := resolveFormat(formatFlag, c.OutOrStdout())
			if err != nil {
				return err
			}
			opts.Format = ftype
			opts.PageSize = pageSize()
			if opts.Template != "" {
				if _, err := format.NewTemplateFormatter(opts.Template); err != nil {
					return err
				}
			}

			client, err := open(c.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			return PrintList(c.OutOrStdout(), client, opts)
		},
	}

	listCmd.Flags().IntVar(&opts.Page, "page", 1, "Page to show, starting at 1")
	listCmd.Flags().StringVar(&opts.Filter, "filter", "", "Filter users by text")
	listCmd.Flags().BoolVar(&opts.FavoritesOnly, "favorites", false, "Show favorite users only")
	listCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: table, plain, compact, json")
	listCmd.Flags().StringVar(&opts.Template, "template", "", "Line template or preset name")

	return listCmd
}

// resolveFormat validates format, picking table on a terminal and plain
// otherwise when it is empty.
func resolveFormat(value string, out io.Writer) (format.FormatterType, error) {
	if value == "" {
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return format.FormatterTypeTable, nil
		}
		return format.FormatterTypePlain, nil
	}
	ftype, ok := format.ParseFormatterType(strings.ToLower(value))
	if !ok {
		return "", fmt.Errorf("invalid format %q: expected table, plain, compact or json", value)
	}
	return ftype, nil
}

// PrintList writes the page of users selected by opts to w.
func PrintList(w io.Writer, client userClient, opts ListOptions) error {
	size := opts.PageSize
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	page := client.FetchPage(domain.PageRequest{
		Cursor:        domain.CursorFor(opts.Page, size),
		Limit:         size,
		Filter:        opts.Filter,
		FavoritesOnly: opts.FavoritesOnly,
	})

	listing := format.Listing{
		Page:          opts.Page,
		PageSize:      size,
		TotalCount:    page.TotalCount,
		Filter:        opts.Filter,
		FavoritesOnly: opts.FavoritesOnly,
		Entries:       make([]format.Entry, 0, len(page.Items)),
	}
	for _, u := range page.Items {
		listing.Entries = append(listing.Entries, format.Entry{User: u, Favorite: client.IsFavorite(u.ID)})
	}
	var f format.Formatter = format.NewFormatter(opts.Format)
	if opts.Template != "" {
		tf, err := format.NewTemplateFormatter(opts.Template)
		if err != nil {
			return err
		}
		f = tf
	}
	return f.FormatListing(listing, w)
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(defaultOpener))
}
