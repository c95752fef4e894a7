package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// VariableContext contains all data needed for template variable resolution.
type VariableContext struct {
	User     domain.User
	Favorite bool
	// Position is the 1-based index of the user in the whole filtered list.
	Position int
}

// Variables lists every name Resolve accepts.
var Variables = []string{
	"id", "name", "username", "display-name", "email", "phone",
	"website", "company", "city", "favorite", "star", "position",
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	// Resolve returns the string value for a given variable name and context.
	Resolve(varName string, ctx VariableContext) (string, error)
}

// variableResolver implements VariableResolver interface.
type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Resolve returns the string value for a variable from the context.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	u := ctx.User
	switch varName {
	case "id":
		return strconv.Itoa(u.ID), nil
	case "name":
		return u.Name, nil
	case "username":
		return u.Username, nil
	case "display-name":
		return u.DisplayName(), nil
	case "email":
		return u.Email, nil
	case "phone":
		return u.Phone, nil
	case "website":
		return u.Website, nil
	case "company":
		return u.Company, nil
	case "city":
		return u.City, nil
	case "favorite":
		return strconv.FormatBool(ctx.Favorite), nil
	case "star":
		if ctx.Favorite {
			return "*", nil
		}
		return " ", nil
	case "position":
		return strconv.Itoa(ctx.Position), nil
	default:
		return "", fmt.Errorf("unknown variable: %s (available: %s)", varName, strings.Join(Variables, ", "))
	}
}
