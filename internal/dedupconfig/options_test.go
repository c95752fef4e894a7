package dedupconfig

import (
	"testing"

	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/dedup"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	config.Load()
	require.Equal(t, dedup.CriteriaID, Load())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERDECK_IMPORT_DEDUP", "email")
	config.Load()
	require.Equal(t, dedup.CriteriaEmail, Load())
}

func TestLoadInvalidValueFallsBackToDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERDECK_IMPORT_DEDUP", "phone")
	config.Load()
	require.Equal(t, dedup.CriteriaID, Load())
}
