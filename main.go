// Package main is the entry point for IconRestore.
// The tool restores the default (vendor-supplied) icon of macOS application
// bundles (.app) after a custom icon has been applied to them: it rewrites
// the legacy per-file icon-override marker with the bundle's own declared
// icon and fixes up the Finder metadata bits.
//
// Usage:
//
//	IconRestore -list                    list bundles in the applications directory
//	IconRestore <bundle.app> ...         restore the default icon of each bundle
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/FlyfishO25/IconRestore/application"
	"github.com/FlyfishO25/IconRestore/utilities/config"
	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

var (
	// dirFlag: Override the applications directory used by -list.
	dirFlag = flag.String("dir", "", "Applications directory to scan (default from configuration)")

	// listFlag: Scan the applications directory and print the bundles found.
	listFlag = flag.Bool("list", false, "List application bundles in the scan directory")

	// noRefreshFlag: Skip the Finder restart after a batch of restores.
	noRefreshFlag = flag.Bool("no-refresh", false, "Do not restart the Finder after restoring")

	// configFlag: Path to a specific YAML configuration file.
	configFlag = flag.String("config", "", "Configuration file")

	// silentFlag: Suppress informational output (warnings and errors still print).
	silentFlag = flag.Bool("silent", false, "Silent mode")

	// logDirFlag: Directory for log files. If set, enables file logging.
	logDirFlag = flag.String("logdir", "", "Directory for log files (enables file logging)")
)

func main() {
	flag.Parse()

	if *silentFlag {
		logger.SetSilent(true)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		errorExit(err)
	}

	if *logDirFlag != "" {
		if err := logger.SetLogFile("IconRestore", *logDirFlag); err != nil {
			logger.Debug("failed to set up file logging: %v", err)
		} else {
			logger.Info("Logging to file: %s", logger.GetLogFilePath())
		}
	}

	if *listFlag {
		dir := settings.Paths.Applications
		if *dirFlag != "" {
			dir = *dirFlag
		}
		if err := listBundles(dir); err != nil {
			errorExit(err)
		}
		return
	}

	bundles := flag.Args()
	if len(bundles) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []application.Option{
		application.WithRunner(application.NewExecRunner(settings.ToolPaths())),
		application.WithScratchDir(settings.Paths.Scratch),
	}
	if *noRefreshFlag || !settings.Finder.Refresh {
		opts = append(opts, application.WithRefresher(func(context.Context) {}))
	}
	engine := application.NewEngine(opts...)

	result := engine.RestoreAll(context.Background(), bundles)

	if result.Failed == 0 {
		logger.Info("Restored %d bundle(s)", result.Succeeded)
		return
	}

	logger.Warn("Restored %d bundle(s), %d failed", result.Succeeded, result.Failed)
	os.Exit(1)
}

// listBundles scans the applications directory and prints one line per
// bundle found. Bundles with unreadable manifests still list, just without
// version and identifier.
func listBundles(dir string) error {
	bundles, err := application.Scan(dir)
	if err != nil {
		return err
	}

	for _, b := range bundles {
		line := b.DisplayName
		if b.Version != "" {
			line += " " + b.Version
		}
		if b.BundleIdentifier != "" {
			line += " (" + b.BundleIdentifier + ")"
		}
		fmt.Printf("%s\t%s\n", line, b.BundlePath)
	}

	logger.Info("%d bundle(s) found in %s", len(bundles), dir)
	return nil
}

// errorExit logs the error and stops the program.
func errorExit(err error) {
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
