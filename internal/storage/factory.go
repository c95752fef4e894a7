package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/storage/sqlite"
)

// NewFromConfig opens the database at db_path. On first run, when the
// database does not exist yet and seed_path names a file, that file is
// imported.
func NewFromConfig(ctx context.Context) (Storage, error) {
	return Open(ctx, config.Get("db_path", ""), config.Get("seed_path", ""))
}

// Open opens the SQLite database at dbPath, seeding it from seedPath when
// the database is created by this call.
func Open(ctx context.Context, dbPath, seedPath string) (Storage, error) {
	dbExists, err := pathExists(dbPath)
	if err != nil {
		return nil, fmt.Errorf("check database path: %w", err)
	}

	stor, err := sqlite.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if !dbExists {
		if err := maybeSeed(ctx, stor, seedPath); err != nil {
			colors.Warning(fmt.Sprintf("seeding %s failed, starting empty: %v", dbPath, err))
		}
	}

	count, err := stor.CountUsers(ctx)
	if err != nil {
		_ = stor.Close()
		return nil, err
	}
	logging.Info("database opened", "path", dbPath, "created", !dbExists, "users", count)
	return stor, nil
}

func maybeSeed(ctx context.Context, w UserWriter, seedPath string) error {
	if seedPath == "" {
		return nil
	}
	hasData, err := fileHasContent(seedPath)
	if err != nil {
		return fmt.Errorf("check seed file: %w", err)
	}
	if !hasData {
		return nil
	}

	colors.Debug("Seeding database from", seedPath)
	stats, err := Import(ctx, w, ImportOptions{Path: seedPath})
	if err != nil {
		return err
	}
	logging.Info("seed imported", "path", seedPath, "imported", stats.ImportedRows, "skipped", stats.SkippedRows)
	return nil
}

func pathExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func fileHasContent(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("expected file but found directory: %s", path)
	}
	return info.Size() > 0, nil
}
