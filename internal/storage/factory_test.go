package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
)

const tomlSeed = `
[[users]]
id = 1
name = "Leanne Graham"
username = "Bret"
email = "Sincere@april.biz"
city = "Gwenborough"

[[users]]
id = 2
name = "Ervin Howell"
username = "Antonette"
email = "Shanna@melissa.tv"
company = "Deckow-Crist"
`

func quietColors(t *testing.T) {
	t.Helper()
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func openForTest(t *testing.T, dbPath, seedPath string) Storage {
	t.Helper()
	stor, err := Open(context.Background(), dbPath, seedPath)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, stor.Close()) })
	return stor
}

func TestNewFromConfigUsesDBPath(t *testing.T) {
	quietColors(t)
	stateDir := t.TempDir()
	t.Setenv("USERDECK_CONFIG_DIR", t.TempDir())
	t.Setenv("USERDECK_STATE_DIR", stateDir)
	config.Load()

	stor, err := NewFromConfig(context.Background())
	require.NoError(t, err)
	require.IsType(t, &sqlite.SQLiteStorage{}, stor)
	require.NoError(t, stor.Close())

	require.FileExists(t, filepath.Join(stateDir, "users.db"))
}

func TestOpenSeedsNewDatabase(t *testing.T) {
	quietColors(t)
	dir := t.TempDir()
	seedPath := writeFile(t, dir, "users.toml", tomlSeed)

	stor := openForTest(t, filepath.Join(dir, "users.db"), seedPath)

	users, err := stor.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Bret", users[0].Username)
	require.Equal(t, "Deckow-Crist", users[1].Company)
}

func TestOpenSkipsSeedWhenDBExists(t *testing.T) {
	quietColors(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "users.db")

	existing, err := sqlite.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	_, err = existing.UpsertUsers(context.Background(), []domain.User{{ID: 42, Name: "Existing"}})
	require.NoError(t, err)
	require.NoError(t, existing.Close())

	seedPath := writeFile(t, dir, "users.toml", tomlSeed)
	stor := openForTest(t, dbPath, seedPath)

	users, err := stor.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, 42, users[0].ID)
}

func TestOpenWithBrokenSeedStartsEmpty(t *testing.T) {
	quietColors(t)
	dir := t.TempDir()
	seedPath := writeFile(t, dir, "users.toml", "[[users]\nid = ")

	stor := openForTest(t, filepath.Join(dir, "users.db"), seedPath)

	count, err := stor.CountUsers(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestOpenWithMissingSeedStartsEmpty(t *testing.T) {
	quietColors(t)
	dir := t.TempDir()

	stor := openForTest(t, filepath.Join(dir, "users.db"), filepath.Join(dir, "absent.toml"))

	count, err := stor.CountUsers(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestOpenLogsUserCount(t *testing.T) {
	quietColors(t)
	dir := t.TempDir()
	t.Setenv("USERDECK_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("USERDECK_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("USERDECK_LOGGING_ENABLED", "true")
	config.Load()
	require.NoError(t, logging.InitGlobal())
	t.Cleanup(func() { _ = logging.ShutdownGlobal() })
	logPath := logging.CurrentLogFile()
	require.NotEmpty(t, logPath)

	seedPath := writeFile(t, dir, "users.toml", tomlSeed)
	openForTest(t, filepath.Join(dir, "users.db"), seedPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"database opened"`)
	require.Contains(t, string(data), `"created":true`)
	require.Contains(t, string(data), `"users":2`)
}

func TestOpenRejectsEmptyDBPath(t *testing.T) {
	_, err := Open(context.Background(), "", "")
	require.ErrorIs(t, err, sqlite.ErrEmptyDBPath)
}
