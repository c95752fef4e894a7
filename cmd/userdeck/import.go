package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/userdeck/cmd"
	"github.com/cristianoliveira/userdeck/internal/colors"
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/dedup"
	"github.com/cristianoliveira/userdeck/internal/dedupconfig"
	"github.com/cristianoliveira/userdeck/internal/hooks"
	"github.com/cristianoliveira/userdeck/internal/storage"
	"github.com/spf13/cobra"
)

const importCommandLong = `Import users from a TOML or YAML file.

Rows are upserted by id, so importing the same file twice is harmless.
Favorites are not touched.

USAGE:
    userdeck import <file> [OPTIONS]

OPTIONS:
    --dry-run          Validate the file and report what would be imported
    --dedup <key>      Treat rows as the same user by id, email, username or exact
                       (default from import_dedup, id)
    -h, --help         Show this help`

// importer opens the storage the import command writes to.
type importer func(ctx context.Context) (storage.Storage, error)

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(open importer) *cobra.Command {
	if open == nil {
		panic("NewImportCmd: open dependency cannot be nil")
	}

	var dryRun bool
	var dedupFlag string

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import users from a TOML or YAML file",
		Long:  importCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			criteria := dedupconfig.Load()
			if dedupFlag != "" {
				criteria = dedup.ParseCriteria(dedupFlag)
				if criteria.String() != strings.ToLower(strings.TrimSpace(dedupFlag)) {
					return fmt.Errorf("invalid dedup %q: expected one of %s", dedupFlag, strings.Join(dedup.Names, ", "))
				}
			}

			stor, err := open(c.Context())
			if err != nil {
				return err
			}
			defer stor.Close()

			stats, err := storage.Import(c.Context(), stor, storage.ImportOptions{
				Path:   args[0],
				DryRun: dryRun,
				Dedup:  criteria,
			})
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			for _, w := range stats.Warnings {
				colors.Warning(w)
			}

			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			colors.Success(fmt.Sprintf("%s %d of %d users (%d skipped, %d duplicates)",
				verb, stats.ImportedRows, stats.TotalRows, stats.SkippedRows, stats.DuplicateRows))
			if dryRun {
				return nil
			}
			return hooks.Run(c.Context(), hooks.PostImport,
				"IMPORT_FILE="+args[0],
				"IMPORTED_COUNT="+strconv.Itoa(stats.ImportedRows),
			)
		},
	}

	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without writing")
	importCmd.Flags().StringVar(&dedupFlag, "dedup", "", "Duplicate key: id, email, username, exact")
	return importCmd
}

func defaultImporter(ctx context.Context) (storage.Storage, error) {
	return storage.Open(ctx, config.Get("db_path", ""), "")
}

func init() {
	cmd.RootCmd.AddCommand(NewImportCmd(defaultImporter))
}
