package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/domain"
)

const detailLabelWidth = 10

// DetailState defines the inputs needed to render the user detail screen.
type DetailState struct {
	ID       int
	User     domain.User
	Found    bool
	Favorite bool
}

// Detail renders every field of a user.
func Detail(state DetailState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	if !state.Found {
		return titleStyle.Render(fmt.Sprintf("User #%d", state.ID)) + "\n\n" +
			mutedStyle.Render("This user no longer exists.")
	}

	u := state.User
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", FavoriteMark(state.Favorite), u.DisplayName())))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", u.ID)},
		{"Name", u.Name},
		{"Username", u.Username},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Website", u.Website},
		{"Company", u.Company},
		{"City", u.City},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = mutedStyle.Render("-")
		}
		fmt.Fprintf(&b, "%-*s %s\n", detailLabelWidth, f.label+":", value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// DetailFooter renders the help line of the detail screen.
func DetailFooter() string {
	return mutedStyle.Render(strings.Join([]string{"f: favorite", "ESC: back", "q: quit"}, "  |  "))
}
