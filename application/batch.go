package application

import (
	"context"

	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// BatchResult tallies the outcome of restoring a list of bundles.
type BatchResult struct {
	Succeeded int
	Failed    int
	Failures  map[string]error // failing bundle path -> classified error
}

// RestoreAll restores each bundle in turn. Every failure stays local to its
// bundle: the batch always runs to completion. The Finder refresh fires at
// most once, after the loop, and only when something actually changed on
// disk — the restart is disruptive and must not repeat per bundle.
func (e *Engine) RestoreAll(ctx context.Context, bundlePaths []string) BatchResult {
	result := BatchResult{Failures: make(map[string]error)}

	for _, path := range bundlePaths {
		if err := e.Restore(ctx, path); err != nil {
			logger.Warn("restore failed for %s: %v", path, err)
			result.Failed++
			result.Failures[path] = err
			continue
		}
		result.Succeeded++
	}

	if result.Succeeded > 0 && e.refresh != nil {
		e.refresh(ctx)
	}
	return result
}
