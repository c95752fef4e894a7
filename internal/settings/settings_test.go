package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsTest(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "userdeck")
	t.Setenv("USERDECK_CONFIG_DIR", configDir)
	t.Setenv("USERDECK_STATE_DIR", filepath.Join(tmpDir, "state"))
	config.Load()

	return configDir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setupSettingsTest(t)

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveAndLoad(t *testing.T) {
	configDir := setupSettingsTest(t)

	require.NoError(t, Save(&Settings{ActiveTab: TabFavorites, Filter: "gwen"}))
	assert.FileExists(t, filepath.Join(configDir, "tui.toml"))

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TabFavorites, settings.ActiveTab)
	assert.Equal(t, "gwen", settings.Filter)
}

func TestSettingsPathOverride(t *testing.T) {
	setupSettingsTest(t)
	override := filepath.Join(t.TempDir(), "custom", "prefs.toml")
	t.Setenv("USERDECK_TUI_SETTINGS_PATH", override)
	config.Load()

	require.NoError(t, Save(DefaultSettings()))
	assert.FileExists(t, override)
}

func TestLoadNormalizesUnknownTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.toml")
	require.NoError(t, os.WriteFile(path, []byte("active_tab = \"Recent\"\nfilter = \"x\"\n"), FileModeFile))

	settings, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, TabAll, settings.ActiveTab)
	assert.Equal(t, "x", settings.Filter)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.toml")
	require.NoError(t, os.WriteFile(path, []byte("active_tab = [\n"), FileModeFile))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
		wantErr  bool
	}{
		{"nil", nil, true},
		{"defaults", DefaultSettings(), false},
		{"bad tab", &Settings{ActiveTab: "recents"}, true},
		{"multiline filter", &Settings{ActiveTab: TabAll, Filter: "a\nb"}, true},
		{"long filter", &Settings{ActiveTab: TabAll, Filter: strings.Repeat("a", MaxFilterLength+1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.toml")

	err := SaveTo(path, &Settings{ActiveTab: "bogus"})
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestNormalizeTab(t *testing.T) {
	assert.Equal(t, TabFavorites, NormalizeTab(" Favorites "))
	assert.Equal(t, TabAll, NormalizeTab(""))
	assert.Equal(t, TabAll, NormalizeTab("recents"))
}

func TestTUIStateConversion(t *testing.T) {
	state := FromSettings(&Settings{ActiveTab: TabFavorites, Filter: "bret"})
	assert.Equal(t, TUIState{FavoritesOnly: true, Filter: "bret"}, state)
	assert.False(t, state.IsEmpty())

	back := state.ToSettings()
	assert.Equal(t, TabFavorites, back.ActiveTab)
	assert.Equal(t, "bret", back.Filter)

	assert.True(t, FromSettings(nil).IsEmpty())
	assert.Equal(t, TabAll, TUIState{}.ToSettings().ActiveTab)

	long := TUIState{Filter: strings.Repeat("z", MaxFilterLength+10)}
	assert.Len(t, long.ToSettings().Filter, MaxFilterLength)
}
