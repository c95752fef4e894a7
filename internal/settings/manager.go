package settings

// TUIState represents the list screen state that can be persisted.
// This DTO keeps internal/settings independent of the TUI packages.
type TUIState struct {
	FavoritesOnly bool
	Filter        string
}

// FromSettings converts Settings to TUIState.
func FromSettings(s *Settings) TUIState {
	if s == nil {
		return TUIState{}
	}
	return TUIState{
		FavoritesOnly: s.ActiveTab == TabFavorites,
		Filter:        s.Filter,
	}
}

// ToSettings converts TUIState to Settings.
func (t TUIState) ToSettings() *Settings {
	tab := TabAll
	if t.FavoritesOnly {
		tab = TabFavorites
	}
	filter := t.Filter
	if len(filter) > MaxFilterLength {
		filter = filter[:MaxFilterLength]
	}
	return &Settings{ActiveTab: tab, Filter: filter}
}

// IsEmpty returns true if the state matches the defaults.
func (t TUIState) IsEmpty() bool {
	return !t.FavoritesOnly && t.Filter == ""
}
