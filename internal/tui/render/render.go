// Package render draws the userdeck screens from plain state structs.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/domain"
)

const (
	favoriteWidth        = 3
	idWidth              = 5
	nameWidth            = 24
	usernameWidth        = 16
	companyWidth         = 20
	spacesBetweenColumns = 10
	defaultEmailWidth    = 28
	minEmailWidth        = 10
	maxDotPages          = 10

	favoriteSymbol    = "★"
	notFavoriteSymbol = "☆"
)

var mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RowState defines the inputs needed to render a user row.
type RowState struct {
	User     domain.User
	Favorite bool
	Selected bool
	Width    int
}

// SearchState defines the inputs needed to render the search box.
type SearchState struct {
	// InputView is the rendered text input, used while Focused.
	InputView string
	Focused   bool
	Filter    string
}

// PaginationState defines the inputs needed to render the pagination strip.
type PaginationState struct {
	Page       int
	PageSize   int
	TotalCount int
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode    bool
	ConfirmMode   bool
	FavoritesOnly bool
}

// StatusState defines the inputs needed to render the status line.
type StatusState struct {
	Text  string
	Level string
}

// Header renders the column titles.
func Header(width int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s",
		favoriteWidth, "FAV",
		idWidth, "ID",
		nameWidth, "NAME",
		usernameWidth, "USERNAME",
		emailWidth(width), "EMAIL",
		companyWidth, "COMPANY",
	)
	return headerStyle.Render(header)
}

// Row renders a single user row.
func Row(state RowState) string {
	rowStyle := lipgloss.NewStyle()
	if state.Selected {
		rowStyle = rowStyle.Background(lipgloss.Color(ansiColorNumber(colors.Blue))).Foreground(lipgloss.Color("0"))
	}

	u := state.User
	width := emailWidth(state.Width)
	row := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s",
		favoriteWidth, FavoriteMark(state.Favorite),
		idWidth, fmt.Sprintf("%d", u.ID),
		nameWidth, truncate(u.Name, nameWidth),
		usernameWidth, truncate(u.Username, usernameWidth),
		width, truncate(u.Email, width),
		companyWidth, truncate(u.Company, companyWidth),
	)
	return rowStyle.Render(row)
}

// FavoriteMark returns the star shown for a favorite flag.
func FavoriteMark(favorite bool) string {
	if favorite {
		return favoriteSymbol
	}
	return notFavoriteSymbol
}

// SearchBox renders the filter input line.
func SearchBox(state SearchState) string {
	if state.Focused {
		return state.InputView
	}
	if state.Filter == "" {
		return mutedStyle.Render("/ search users")
	}
	return fmt.Sprintf("Filter: %s", state.Filter)
}

// Loader renders the loading indicator in place of the rows.
func Loader(spinnerView string) string {
	return fmt.Sprintf("%s Loading users...", spinnerView)
}

// Empty renders the placeholder for a page without rows.
func Empty(filter string, favoritesOnly bool) string {
	switch {
	case filter != "":
		return mutedStyle.Render(fmt.Sprintf("No users match %q", filter))
	case favoritesOnly:
		return mutedStyle.Render("No favorite users")
	default:
		return mutedStyle.Render("No users found")
	}
}

// Pagination renders the page indicator and a summary of the filtered set.
func Pagination(state PaginationState) string {
	perPage := state.PageSize
	if perPage <= 0 {
		perPage = domain.DefaultPageSize
	}
	p := paginator.New(paginator.WithPerPage(perPage))
	p.SetTotalPages(state.TotalCount)
	p.Page = state.Page - 1
	if p.TotalPages > maxDotPages {
		p.Type = paginator.Arabic
	} else {
		p.Type = paginator.Dots
		p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))).Render("•")
		p.InactiveDot = mutedStyle.Render("•")
	}

	summary := fmt.Sprintf("Page %d of %d  %d users", state.Page, p.TotalPages, state.TotalCount)
	if state.Page > p.TotalPages {
		summary += "  (past last page, p to go back)"
	}
	return fmt.Sprintf("%s  %s", p.View(), mutedStyle.Render(summary))
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	var help []string
	switch {
	case state.ConfirmMode:
		help = append(help, "y: confirm", "n/ESC: cancel")
	case state.SearchMode:
		help = append(help, "type to filter", "Enter: apply", "ESC: exit search")
	default:
		help = append(help, "j/k: move", "/: search", "n/p: page", "f: favorite")
		if state.FavoritesOnly {
			help = append(help, "F: all users")
		} else {
			help = append(help, "F: favorites")
		}
		help = append(help, "d: remove", "Enter: details", "r: reload", "q: quit")
	}
	return mutedStyle.Render(strings.Join(help, "  |  "))
}

// StatusLine renders a transient message.
func StatusLine(state StatusState) string {
	if state.Text == "" {
		return ""
	}
	var color string
	prefix := ""
	switch state.Level {
	case "error":
		color, prefix = colors.Red, "Error: "
	case "warning":
		color, prefix = colors.Yellow, "Warning: "
	case "success":
		color = colors.Green
	default:
		color = colors.Cyan
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(color)))
	return style.Render(prefix + state.Text)
}

func emailWidth(width int) int {
	if width <= 0 {
		return defaultEmailWidth
	}
	fixed := favoriteWidth + idWidth + nameWidth + usernameWidth + companyWidth
	w := width - fixed - spacesBetweenColumns
	if w < minEmailWidth {
		return minEmailWidth
	}
	return w
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
