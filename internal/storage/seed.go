package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cristianoliveira/userdeck/internal/dedup"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedSeedFormat is returned for seed files that are neither TOML nor YAML.
var ErrUnsupportedSeedFormat = errors.New("unsupported seed format")

// ImportOptions configures a seed import.
type ImportOptions struct {
	Path   string
	DryRun bool
	// Dedup decides which rows count as the same user. Empty means by id.
	Dedup dedup.Criteria
}

// ImportStats summarizes an import run.
type ImportStats struct {
	TotalRows     int
	ImportedRows  int
	SkippedRows   int
	DuplicateRows int
	Warnings      []string
}

// seedFile is the document layout shared by the TOML and YAML formats:
//
//	[[users]]
//	id = 1
//	name = "Leanne Graham"
type seedFile struct {
	Users []domain.User `toml:"users" yaml:"users"`
}

// LoadSeed reads the users listed in a .toml, .yaml or .yml file.
func LoadSeed(path string) ([]domain.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var doc seedFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSeedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return doc.Users, nil
}

// Import loads opts.Path and upserts its users. Invalid rows are skipped
// with a warning. When two rows share a dedup key, or an id, the later row
// replaces the earlier one.
func Import(ctx context.Context, w UserWriter, opts ImportOptions) (ImportStats, error) {
	var stats ImportStats

	users, err := LoadSeed(opts.Path)
	if err != nil {
		return stats, err
	}
	stats.TotalRows = len(users)

	valid := make([]domain.User, 0, len(users))
	for i, u := range users {
		if err := u.Validate(); err != nil {
			stats.SkippedRows++
			stats.Warnings = append(stats.Warnings, fmt.Sprintf("row %d skipped: %v", i+1, err))
			continue
		}
		valid = append(valid, u)
	}

	keys := dedup.BuildKeys(valid, opts.Dedup)
	byKey := make(map[string]int, len(valid))
	kept := make([]domain.User, 0, len(valid))
	for i, u := range valid {
		if idx, seen := byKey[keys[i]]; seen {
			stats.DuplicateRows++
			kept[idx] = u
			continue
		}
		byKey[keys[i]] = len(kept)
		kept = append(kept, u)
	}

	byID := make(map[int]domain.User, len(kept))
	for _, u := range kept {
		if _, seen := byID[u.ID]; seen {
			stats.DuplicateRows++
		}
		byID[u.ID] = u
	}

	rows := make([]domain.User, 0, len(byID))
	for _, u := range byID {
		rows = append(rows, u)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	if opts.DryRun {
		stats.ImportedRows = len(rows)
		return stats, nil
	}

	n, err := w.UpsertUsers(ctx, rows)
	if err != nil {
		return stats, fmt.Errorf("import users: %w", err)
	}
	stats.ImportedRows = n
	return stats, nil
}
