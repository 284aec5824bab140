// Package application: this file implements the icon restore itself. The
// restore rewrites the legacy per-file icon-override mechanism with the
// bundle's own declared icon: the .icns is repaired, converted into a typed
// resource blob, appended to the resource fork of the "Icon\r" marker at the
// bundle root, and the Finder custom-icon and invisibility bits are set. Once
// the stale override is gone the Finder renders the vendor icon again.
package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FlyfishO25/IconRestore/utilities/fileManagement"
	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// Failure classes of a restore. Every error returned by Restore wraps
// exactly one of these; callers classify with errors.Is.
var (
	// ErrBundleNotFound: the path has no Contents directory.
	ErrBundleNotFound = errors.New("bundle not found")

	// ErrManifestNotFound: Info.plist is missing, undecodable, or does not
	// declare CFBundleIconFile. One class, because the effect on the caller
	// is identical in all three cases: the restore cannot proceed.
	ErrManifestNotFound = errors.New("bundle manifest not found or unusable")

	// ErrIconFileNotFound: the declared icon file is absent from Resources.
	ErrIconFileNotFound = errors.New("bundle icon file not found")

	// ErrRestoreFailed: the conversion/attribute pipeline failed partway.
	ErrRestoreFailed = errors.New("icon restore operation failed")
)

// Engine performs icon restores. It is synchronous and holds no internal
// concurrency; callers must not invoke Restore concurrently for the same
// bundle path (the marker file is shared state on disk).
type Engine struct {
	run        Runner
	flags      Flagger
	refresh    func(context.Context)
	scratchDir string // parent for per-call scratch dirs; "" means os.TempDir
}

// Option configures an Engine.
type Option func(*Engine)

// WithRunner replaces the external-utility pipeline runner.
func WithRunner(r Runner) Option {
	return func(e *Engine) { e.run = r }
}

// WithFlagger replaces the Finder metadata-bit writer.
func WithFlagger(f Flagger) Option {
	return func(e *Engine) { e.flags = f }
}

// WithRefresher replaces the Finder refresh hook used after a batch.
func WithRefresher(fn func(context.Context)) Option {
	return func(e *Engine) { e.refresh = fn }
}

// WithScratchDir sets the parent directory for per-call scratch space.
func WithScratchDir(dir string) Option {
	return func(e *Engine) { e.scratchDir = dir }
}

// NewEngine returns an Engine with production defaults: the os/exec pipeline
// runner, the xattr-backed flagger, and the Finder quit/relaunch refresher.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		run:     NewExecRunner(nil),
		flags:   NewFlagger(),
		refresh: RefreshFinder,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore rewrites the icon-override marker of the bundle at bundlePath with
// the bundle's own declared icon. Each precondition failure is reported
// before anything is written; once writing starts there is no rollback — a
// failed run leaves at worst a marker without a fork payload, which the next
// successful run removes first.
func (e *Engine) Restore(ctx context.Context, bundlePath string) error {
	// Step 1: the bundle structure must exist.
	if info, err := os.Stat(contentsPath(bundlePath)); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrBundleNotFound, bundlePath)
	}
	manifest := manifestPath(bundlePath)
	if !fileManagement.Exists(manifest) {
		return fmt.Errorf("%w: %s", ErrManifestNotFound, manifest)
	}

	// Step 2: the manifest must name the vendor icon.
	m, err := readManifest(manifest)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrManifestNotFound, manifest, err)
	}
	if m.IconFile == "" {
		return fmt.Errorf("%w: %s declares no CFBundleIconFile", ErrManifestNotFound, manifest)
	}

	// Steps 3-4: resolve the icon file under Resources.
	icon := iconPath(bundlePath, normalizeIconName(m.IconFile))
	if !fileManagement.Exists(icon) {
		return fmt.Errorf("%w: %s", ErrIconFileNotFound, icon)
	}

	// Per-call scratch space, removed on every exit path.
	scratch, err := os.MkdirTemp(e.scratchDir, "iconrestore-")
	if err != nil {
		return fmt.Errorf("%w: scratch dir: %v", ErrRestoreFailed, err)
	}
	defer os.RemoveAll(scratch)

	scratchIcon := filepath.Join(scratch, "icon"+iconExtension)
	scratchBlob := filepath.Join(scratch, "icon.rsrc")

	// Step 5: copy the icon out of the bundle, repair it, and extract the
	// typed icns resource. Icons pulled out of bundles are not always
	// standalone-valid, which is what the sips pass fixes.
	if err := fileManagement.Copy(icon, scratchIcon); err != nil {
		return fmt.Errorf("%w: copy icon to scratch: %v", ErrRestoreFailed, err)
	}
	err = e.run.Run(ctx,
		Step{Tool: "sips", Args: []string{"-i", scratchIcon}},
		Step{Tool: "DeRez", Args: []string{"-only", "icns", scratchIcon}, StdoutFile: scratchBlob},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}

	// Step 6: a stale override must not linger under the fresh one.
	marker := markerPath(bundlePath)
	if err := fileManagement.RemoveIfExists(marker); err != nil {
		return fmt.Errorf("%w: remove stale marker: %v", ErrRestoreFailed, err)
	}

	// Step 7: the custom-icon bit goes on the bundle before the marker is
	// finalized, or the Finder may not associate the two.
	if err := e.flags.SetCustomIcon(bundlePath); err != nil {
		return fmt.Errorf("%w: set custom-icon bit: %v", ErrRestoreFailed, err)
	}

	// Step 8: create the marker file itself.
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: create marker: %v", ErrRestoreFailed, err)
	}
	f.Close()

	// Step 9: append the resource blob into the marker's resource fork.
	err = e.run.Run(ctx, Step{Tool: "Rez", Args: []string{"-append", scratchBlob, "-o", marker}})
	if err != nil {
		logger.Warn("marker created but fork append failed for %s", bundlePath)
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}

	// Step 10: hide the marker so it does not clutter listings.
	if err := e.flags.SetInvisible(marker); err != nil {
		return fmt.Errorf("%w: set invisible bit: %v", ErrRestoreFailed, err)
	}

	logger.Debug("restored default icon for %s", bundlePath)
	return nil
}
