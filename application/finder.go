// Package application: this file nudges the Finder into dropping its icon
// cache. The on-disk state is already correct after a restore; the restart
// only makes the change visible immediately, so every failure here is
// swallowed.
package application

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/FlyfishO25/IconRestore/utilities/fileManagement"
	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// RefreshFinder quits and relaunches the Finder so restored icons show up
// without waiting for the cache to expire. Best-effort: errors are logged at
// debug level and otherwise ignored.
func RefreshFinder(ctx context.Context) {
	osascript, err := fileManagement.FindProgramPath("osascript")
	if err != nil {
		logger.Debug("finder refresh skipped: %v", err)
		return
	}

	cmd := exec.CommandContext(ctx, osascript, "-e", `tell application "Finder" to quit`)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		logger.Debug("finder quit failed: %v: %s", err, stderr.String())
		return
	}

	// The Finder normally relaunches on its own; open makes sure of it.
	if open, err := fileManagement.FindProgramPath("open"); err == nil {
		if err := exec.CommandContext(ctx, open, "-a", "Finder").Run(); err != nil {
			logger.Debug("finder relaunch failed: %v", err)
		}
	}
}
