// Package application: this file discovers application bundles and describes
// them for display. Inspection is a pure read: it never mutates the bundle,
// and a bundle with an unreadable manifest still yields a descriptor (just
// without version and identifier).
package application

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// BundleDescriptor describes one application bundle for listing purposes.
// BundlePath uniquely identifies the bundle; two descriptors are the same
// bundle iff their paths are equal.
type BundleDescriptor struct {
	DisplayName      string // filesystem name with the .app extension stripped
	BundlePath       string // absolute path of the bundle root (identity key)
	Version          string // CFBundleShortVersionString, empty if unreadable
	BundleIdentifier string // CFBundleIdentifier, empty if unreadable
	Icon             []byte // PNG preview of the bundle icon, nil if unresolvable
}

// Inspect builds a descriptor for the given path, or returns nil when the
// path does not carry the application-bundle extension. The extension is the
// sole admission filter; everything beyond it is best-effort metadata.
func Inspect(path string) *BundleDescriptor {
	if filepath.Ext(path) != BundleExtension {
		return nil
	}

	descriptor := &BundleDescriptor{
		DisplayName: strings.TrimSuffix(filepath.Base(path), BundleExtension),
		BundlePath:  path,
	}

	// Manifest metadata is decorative here. A missing or malformed
	// Info.plist leaves the fields empty rather than rejecting the bundle.
	if m, err := readManifest(manifestPath(path)); err == nil {
		descriptor.Version = m.ShortVersion
		descriptor.BundleIdentifier = m.Identifier
	} else {
		logger.Debug("manifest unreadable for %s: %v", path, err)
	}

	descriptor.Icon = LoadPreview(path)

	return descriptor
}

// Scan enumerates the immediate entries of a directory and inspects each one.
// Hidden entries and entries without the bundle extension are skipped, and an
// entry that fails inspection is dropped silently rather than failing the
// whole scan. An unreadable directory is the only error surfaced.
func Scan(dir string) ([]BundleDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var bundles []BundleDescriptor
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != BundleExtension {
			continue
		}
		if d := Inspect(filepath.Join(dir, name)); d != nil {
			bundles = append(bundles, *d)
		}
	}
	return bundles, nil
}

// Merge appends manually-picked descriptors to a scanned list, dropping any
// whose bundle path is already present.
func Merge(list []BundleDescriptor, extra ...BundleDescriptor) []BundleDescriptor {
	seen := make(map[string]bool, len(list))
	for _, d := range list {
		seen[d.BundlePath] = true
	}
	for _, d := range extra {
		if seen[d.BundlePath] {
			continue
		}
		seen[d.BundlePath] = true
		list = append(list, d)
	}
	return list
}
