// Package application: this file reads and interprets the bundle manifest
// (Info.plist). The manifest carries the metadata macOS uses to present the
// bundle, most importantly CFBundleIconFile, the name of the icon the vendor
// shipped with the application.
package application

import (
	"os"
	"strings"

	"howett.net/plist"
)

// iconExtension is the extension of the packaged multi-resolution icon format.
const iconExtension = ".icns"

// bundleManifest maps the Info.plist keys this tool cares about.
// Bundles declare many more keys; everything else is ignored on decode.
type bundleManifest struct {
	Name         string `plist:"CFBundleName"`
	DisplayName  string `plist:"CFBundleDisplayName"`
	Identifier   string `plist:"CFBundleIdentifier"`
	Version      string `plist:"CFBundleVersion"`
	ShortVersion string `plist:"CFBundleShortVersionString"`
	IconFile     string `plist:"CFBundleIconFile"`
}

// readManifest parses the Info.plist at the given path. Both XML and binary
// property lists occur in the wild; the decoder handles either.
func readManifest(path string) (*bundleManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m bundleManifest
	if _, err := plist.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// normalizeIconName appends the .icns extension to a declared icon name
// unless it already carries it. CFBundleIconFile is declared both ways in
// real bundles ("AppIcon" and "AppIcon.icns").
func normalizeIconName(name string) string {
	if strings.HasSuffix(name, iconExtension) {
		return name
	}
	return name + iconExtension
}
