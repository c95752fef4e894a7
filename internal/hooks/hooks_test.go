package hooks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookEnv struct {
	dir     string
	out     string
	console *bytes.Buffer
	scripts *bytes.Buffer
}

func setupHooks(t *testing.T, mode string) hookEnv {
	t.Helper()
	base := t.TempDir()
	t.Setenv("USERDECK_CONFIG_DIR", filepath.Join(base, "config"))
	t.Setenv("USERDECK_STATE_DIR", filepath.Join(base, "state"))
	t.Setenv("USERDECK_HOOKS_FAILURE_MODE", mode)
	t.Setenv("USERDECK_HOOKS_TIMEOUT_SECONDS", "1")
	config.Load()

	console := &bytes.Buffer{}
	colors.SetOutput(console, console)
	scripts := &bytes.Buffer{}
	prev := stderr
	stderr = scripts
	t.Cleanup(func() {
		colors.SetOutput(nil, nil)
		stderr = prev
	})

	return hookEnv{
		dir:     Dir(),
		out:     filepath.Join(base, "hook.out"),
		console: console,
		scripts: scripts,
	}
}

func writeScript(t *testing.T, dir, hookPoint, name, body string, mode os.FileMode) {
	t.Helper()
	pointDir := filepath.Join(dir, hookPoint)
	require.NoError(t, os.MkdirAll(pointDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pointDir, name), []byte("#!/bin/sh\n"+body+"\n"), mode))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestDirDerivedFromConfigDir(t *testing.T) {
	env := setupHooks(t, FailureWarn)
	assert.Equal(t, filepath.Join(config.Get("config_dir", ""), "hooks"), env.dir)
}

func TestRunWithoutScriptsIsNoop(t *testing.T) {
	env := setupHooks(t, FailureAbort)
	assert.NoError(t, Run(context.Background(), PostRemove))
	assert.Empty(t, collect(filepath.Join(env.dir, PostRemove)))
}

func TestRunPassesEnvironment(t *testing.T) {
	env := setupHooks(t, FailureAbort)
	writeScript(t, env.dir, PostFavorite, "10-record.sh", `echo "$HOOK_POINT $USER_ID" >> "$OUT"`, 0o755)

	err := Run(context.Background(), PostFavorite, "USER_ID=7", "OUT="+env.out, "ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"post-favorite 7"}, readLines(t, env.out))
}

func TestRunOrdersScriptsAndSkipsNonExecutable(t *testing.T) {
	env := setupHooks(t, FailureAbort)
	writeScript(t, env.dir, PostImport, "20-second.sh", `echo second >> "$OUT"`, 0o755)
	writeScript(t, env.dir, PostImport, "10-first.sh", `echo first >> "$OUT"`, 0o755)
	writeScript(t, env.dir, PostImport, "15-disabled.sh", `echo disabled >> "$OUT"`, 0o644)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dir, PostImport, "subdir"), 0o755))

	assert.Equal(t, []string{"10-first.sh", "20-second.sh"}, scriptNames(collect(filepath.Join(env.dir, PostImport))))
	require.NoError(t, Run(context.Background(), PostImport, "OUT="+env.out))
	assert.Equal(t, []string{"first", "second"}, readLines(t, env.out))
}

func TestRunForwardsScriptOutput(t *testing.T) {
	env := setupHooks(t, FailureAbort)
	writeScript(t, env.dir, PostRemove, "echo.sh", `echo "removed $USER_ID"`, 0o755)

	require.NoError(t, Run(context.Background(), PostRemove, "USER_ID=3"))
	assert.Equal(t, "removed 3\n", env.scripts.String())
}

func TestFailureModes(t *testing.T) {
	tests := []struct {
		mode        string
		wantErr     bool
		wantWarning bool
		wantSecond  bool
	}{
		{FailureAbort, true, false, false},
		{FailureWarn, false, true, true},
		{FailureIgnore, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			env := setupHooks(t, tt.mode)
			writeScript(t, env.dir, PreRemove, "10-fail.sh", "exit 3", 0o755)
			writeScript(t, env.dir, PreRemove, "20-after.sh", `echo ran >> "$OUT"`, 0o755)

			err := Run(context.Background(), PreRemove, "OUT="+env.out)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "10-fail.sh")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantWarning, strings.Contains(env.console.String(), "10-fail.sh"))
			_, statErr := os.Stat(env.out)
			assert.Equal(t, tt.wantSecond, statErr == nil)
		})
	}
}

func TestUnknownFailureModeFallsBackToWarn(t *testing.T) {
	env := setupHooks(t, "explode")
	writeScript(t, env.dir, PreRemove, "fail.sh", "exit 1", 0o755)

	assert.NoError(t, Run(context.Background(), PreRemove))
	assert.Contains(t, env.console.String(), "fail.sh")
}

func TestRunTimesOut(t *testing.T) {
	env := setupHooks(t, FailureAbort)
	writeScript(t, env.dir, PreRemove, "slow.sh", "exec sleep 5", 0o755)

	err := Run(context.Background(), PreRemove)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
