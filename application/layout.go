// Package application contains the core logic for restoring the default icon
// of a macOS application bundle. A bundle that had a custom icon applied to it
// carries an icon-override marker file at its root plus a Finder metadata bit;
// this package rewrites that mechanism with the bundle's own declared icon so
// the Finder goes back to showing the vendor artwork.
package application

import "path/filepath"

// BundleExtension is the filename extension of a macOS application bundle.
const BundleExtension = ".app"

// markerName is the historical name of the per-file icon-override carrier:
// the four characters "Icon" followed by a carriage return. The Finder only
// recognizes this exact name, carriage return included.
const markerName = "Icon\r"

// contentsPath returns the Contents directory of a bundle.
func contentsPath(bundlePath string) string {
	return filepath.Join(bundlePath, "Contents")
}

// manifestPath returns the Info.plist location inside a bundle.
func manifestPath(bundlePath string) string {
	return filepath.Join(contentsPath(bundlePath), "Info.plist")
}

// iconPath returns the location of a named icon file inside the bundle's
// Resources directory.
func iconPath(bundlePath, iconName string) string {
	return filepath.Join(contentsPath(bundlePath), "Resources", iconName)
}

// markerPath returns the icon-override marker location at the bundle root.
func markerPath(bundlePath string) string {
	return filepath.Join(bundlePath, markerName)
}
