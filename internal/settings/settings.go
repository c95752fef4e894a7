package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds list screen preferences persisted between sessions.
//
//	active_tab = "favorites"
//	filter = "gwen"
//
// Settings are stored at {config_dir}/tui.toml
type Settings struct {
	// ActiveTab selects all users or favorites only.
	ActiveTab Tab `toml:"active_tab"`

	// Filter is the last search text. Empty means no filter.
	Filter string `toml:"filter"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		ActiveTab: DefaultTab(),
	}
}

// Load reads settings from the settings file. A missing file yields the
// defaults. Call config.Load first so config_dir is resolved.
func Load() (*Settings, error) {
	return LoadFrom(getSettingsPath())
}

// LoadFrom reads settings from path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	settings.ActiveTab = NormalizeTab(string(settings.ActiveTab))

	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// Save writes settings to the settings file, creating its directory.
func Save(settings *Settings) error {
	return SaveTo(getSettingsPath(), settings)
}

// SaveTo writes settings to path.
func SaveTo(path string, settings *Settings) error {
	if err := Validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if path == "" {
		return fmt.Errorf("settings path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks that settings values are valid.
func Validate(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if !settings.ActiveTab.IsValid() {
		return fmt.Errorf("invalid active_tab value: %s", settings.ActiveTab)
	}
	if len(settings.Filter) > MaxFilterLength {
		return fmt.Errorf("filter longer than %d bytes", MaxFilterLength)
	}
	if strings.ContainsAny(settings.Filter, "\r\n") {
		return fmt.Errorf("filter cannot span lines")
	}
	return nil
}
