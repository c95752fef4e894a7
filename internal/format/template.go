package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/formatter"
)

// TemplateFormatter writes one line per user rendered from a
// {{variable}} template or a named preset.
type TemplateFormatter struct {
	template string
	engine   formatter.TemplateEngine
}

// NewTemplateFormatter resolves value against the default presets and
// validates the resulting template.
func NewTemplateFormatter(value string) (*TemplateFormatter, error) {
	tpl := formatter.ResolveTemplate(formatter.NewPresetRegistry(), value)
	engine := formatter.NewTemplateEngine()
	if err := engine.Validate(tpl); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &TemplateFormatter{template: tpl, engine: engine}, nil
}

// FormatListing formats users with the template.
func (f *TemplateFormatter) FormatListing(listing Listing, writer io.Writer) error {
	first := startOffset(listing)
	for i, e := range listing.Entries {
		line, err := f.engine.Substitute(f.template, formatter.VariableContext{
			User:     e.User,
			Favorite: e.Favorite,
			Position: first + i + 1,
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

func startOffset(listing Listing) int {
	if listing.Page < 1 || listing.PageSize < 1 {
		return 0
	}
	return domain.CursorFor(listing.Page, listing.PageSize)
}
