package preflight

import (
	"path/filepath"

	"grocer/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckReadableFile("Input file", cfg.Paths.InputFile),
		CheckDirectoryAccess("Backup directory", filepath.Dir(cfg.Paths.BackupFile)),
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
	}
	if cfg.History.Enabled {
		results = append(results, CheckDirectoryAccess("History directory", filepath.Dir(cfg.History.Path)))
	}
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
