// Package application: this file renders a bundle's declared icon as a PNG
// preview for listing purposes. The preview is decoration only — the restore
// engine never looks at it — so every failure path returns nil.
package application

import (
	"context"
	"os"
	"path/filepath"

	"github.com/FlyfishO25/IconRestore/utilities/fileManagement"
	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// LoadPreview converts the bundle's declared .icns into PNG bytes via sips.
// Returns nil when the manifest, the icon file, or the converter is missing.
func LoadPreview(bundlePath string) []byte {
	m, err := readManifest(manifestPath(bundlePath))
	if err != nil || m.IconFile == "" {
		return nil
	}

	icon := iconPath(bundlePath, normalizeIconName(m.IconFile))
	if !fileManagement.Exists(icon) {
		return nil
	}

	scratch, err := os.MkdirTemp("", "iconpreview-")
	if err != nil {
		return nil
	}
	defer os.RemoveAll(scratch)

	out := filepath.Join(scratch, "preview.png")
	err = NewExecRunner(nil).Run(context.Background(), Step{
		Tool: "sips",
		Args: []string{"-s", "format", "png", icon, "--out", out},
	})
	if err != nil {
		logger.Debug("icon preview failed for %s: %v", bundlePath, err)
		return nil
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil
	}
	return data
}
