// Package dedupconfig exposes helpers to read deduplication settings from config.
package dedupconfig

import (
	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/dedup"
)

// Load returns the import deduplication criteria from current configuration values.
func Load() dedup.Criteria {
	return dedup.ParseCriteria(config.Get("import_dedup", string(dedup.CriteriaID)))
}
