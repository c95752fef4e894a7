// Package dedup provides helpers for building deduplication keys.
package dedup

import (
	"strconv"
	"strings"

	"github.com/cristianoliveira/userdeck/internal/domain"
)

// Criteria defines how duplicate users are detected.
type Criteria string

const (
	CriteriaID       Criteria = "id"
	CriteriaEmail    Criteria = "email"
	CriteriaUsername Criteria = "username"
	CriteriaExact    Criteria = "exact"
)

// Names lists the accepted criteria values.
var Names = []string{string(CriteriaID), string(CriteriaEmail), string(CriteriaUsername), string(CriteriaExact)}

// ParseCriteria converts user-provided strings into a Criteria value.
// Unknown values fall back to CriteriaID.
func ParseCriteria(value string) Criteria {
	switch Criteria(strings.ToLower(strings.TrimSpace(value))) {
	case CriteriaEmail:
		return CriteriaEmail
	case CriteriaUsername:
		return CriteriaUsername
	case CriteriaExact:
		return CriteriaExact
	default:
		return CriteriaID
	}
}

// String returns the string value for Criteria.
func (c Criteria) String() string {
	return string(c)
}

// BuildKeys returns a deduplication key for each user.
// The output slice has the same order and length as the input slice.
// Users missing the field a criteria compares fall back to their id, so
// they never collapse into each other.
func BuildKeys(users []domain.User, criteria Criteria) []string {
	if criteria == "" {
		criteria = CriteriaID
	}
	keys := make([]string, len(users))
	for i := range users {
		keys[i] = buildKey(users[i], criteria)
	}
	return keys
}

func buildKey(u domain.User, criteria Criteria) string {
	idKey := "id\x00" + strconv.Itoa(u.ID)
	switch criteria {
	case CriteriaEmail:
		if v := normalize(u.Email); v != "" {
			return "email\x00" + v
		}
		return idKey
	case CriteriaUsername:
		if v := normalize(u.Username); v != "" {
			return "username\x00" + v
		}
		return idKey
	case CriteriaExact:
		return joinParts(strconv.Itoa(u.ID), u.Name, u.Username, u.Email, u.Phone, u.Website, u.Company, u.City)
	default:
		return idKey
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func joinParts(parts ...string) string {
	return strings.Join(parts, "\x00")
}
