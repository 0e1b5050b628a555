package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"montage/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	for _, status := range CheckBinaries(EngineRequirements(cfg)) {
		results = append(results, status.Result())
	}

	// The library directory is created on first save, so a missing
	// directory on a fresh install is not a failure.
	dir := filepath.Dir(cfg.Library.Path)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		results = append(results, CheckDirectoryAccess("Library directory", dir))
		results = append(results, CheckFreeSpace("Library disk", dir, defaultFreeSpaceFloor))
	} else {
		results = append(results, Result{
			Name:   "Library directory",
			Passed: true,
			Detail: fmt.Sprintf("%s (created on first save)", dir),
		})
	}

	return results
}
