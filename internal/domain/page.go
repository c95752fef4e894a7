package domain

// Status is the coarse loading indicator reported by the data provider.
type Status string

const (
	// StatusIdle means the data set is loaded (or was never requested).
	StatusIdle Status = "idle"
	// StatusLoading means a fetch is in flight.
	StatusLoading Status = "loading"
	// StatusFailed means the last fetch failed. Views treat it like idle.
	StatusFailed Status = "failed"
)

// IsLoading reports whether the status is loading.
func (s Status) IsLoading() bool {
	return s == StatusLoading
}

// DefaultPageSize is the number of users per page when none is configured.
const DefaultPageSize = 20

// PageRequest selects a window of the filtered user set.
type PageRequest struct {
	Cursor int
	Limit  int
	Filter string
	// FavoritesOnly drops users that are not favorites before windowing.
	FavoritesOnly bool
}

// Page is the result of a PageRequest.
type Page struct {
	Items      []User
	TotalCount int
	Status     Status
}

// CursorFor returns the zero-based offset of a 1-based page.
func CursorFor(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TotalPages returns the number of pages needed for total items.
// An empty set still has one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Window returns items[cursor:cursor+limit] clamped to the slice bounds.
// A non-positive limit means no upper bound.
func Window(items []User, cursor, limit int) []User {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		return []User{}
	}
	end := len(items)
	if limit > 0 && cursor+limit < end {
		end = cursor + limit
	}
	out := make([]User, end-cursor)
	copy(out, items[cursor:end])
	return out
}
