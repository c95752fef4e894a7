package search

import (
	"strings"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens and each token must
// match at least one field (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if every token matches at least one field.
func (p *TokenProvider) Match(user domain.User, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	for _, token := range tokens {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		if !p.tokenMatches(user, token) {
			return false
		}
	}
	return true
}

func (p *TokenProvider) tokenMatches(user domain.User, token string) bool {
	for _, field := range p.opts.Fields {
		value := fieldValue(user, field)
		if value == "" {
			continue
		}
		if p.opts.CaseInsensitive {
			value = strings.ToLower(value)
		}
		if strings.Contains(value, token) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
