package settings

import "strings"

// Tab identifies which users the list screen shows.
type Tab string

const (
	// TabAll shows every user.
	TabAll Tab = "all"

	// TabFavorites shows favorite users only.
	TabFavorites Tab = "favorites"
)

// IsValid returns whether the tab is one of the supported values.
func (t Tab) IsValid() bool {
	switch t {
	case TabAll, TabFavorites:
		return true
	default:
		return false
	}
}

// DefaultTab returns the default tab used when value is missing or invalid.
func DefaultTab() Tab {
	return TabAll
}

// NormalizeTab converts arbitrary persisted input to a valid tab value.
// Missing or invalid values always resolve to the default tab.
func NormalizeTab(raw string) Tab {
	tab := Tab(strings.ToLower(strings.TrimSpace(raw)))
	if tab.IsValid() {
		return tab
	}

	return DefaultTab()
}
