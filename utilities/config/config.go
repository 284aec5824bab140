// Package config loads IconRestore's settings from YAML files. Settings are
// layered: hardcoded defaults first, then a system-wide file under /etc, then
// an explicitly named file (or the default name in the working directory),
// then a file next to the executable. Later layers override earlier ones;
// any missing layer is skipped.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FlyfishO25/IconRestore/utilities/logger"
)

// Settings holds every tunable of the tool.
type Settings struct {
	Paths struct {
		// Applications is the directory scanned for bundles.
		Applications string `yaml:"applications"`
		// Scratch is the parent directory for per-restore scratch space.
		// Empty means the system temporary directory.
		Scratch string `yaml:"scratch"`
	} `yaml:"paths"`

	Tools struct {
		// Per-tool path overrides; empty entries fall back to PATH lookup.
		Sips      string `yaml:"sips"`
		DeRez     string `yaml:"derez"`
		Rez       string `yaml:"rez"`
		Osascript string `yaml:"osascript"`
	} `yaml:"tools"`

	Finder struct {
		// Refresh controls whether the Finder is restarted after a batch.
		Refresh bool `yaml:"refresh"`
	} `yaml:"finder"`
}

// defaults returns the hardcoded base layer.
func defaults() *Settings {
	var s Settings
	s.Paths.Applications = "/Applications"
	s.Finder.Refresh = true
	return &s
}

// Load assembles the layered settings. explicitFile names a specific
// configuration file; when empty, <executable>.config.yaml in the working
// directory is tried in its place.
func Load(explicitFile string) (*Settings, error) {
	settings := defaults()
	executable := filepath.Base(os.Args[0])

	// Layer 2: system-wide configuration.
	mergeIfPresent(settings, filepath.Join("/etc", executable+".d", "config.yaml"))

	// Layer 3: explicitly named file, or the conventional local name.
	if explicitFile == "" {
		explicitFile = executable + ".config.yaml"
	}
	mergeIfPresent(settings, explicitFile)

	// Layer 4: configuration shipped next to the binary.
	if exePath, err := os.Executable(); err == nil {
		mergeIfPresent(settings, filepath.Join(filepath.Dir(exePath), "config", executable+".yaml"))
	}

	return settings, nil
}

// mergeIfPresent unmarshals the file over the current settings. Absent files
// are skipped quietly; a malformed file is reported but does not abort the
// program, the prior layers stay in effect.
func mergeIfPresent(settings *Settings, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("config layer %s not loaded: %v", path, err)
		return
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		logger.Warn("config layer %s is malformed: %v", path, err)
	}
}

// ToolPaths returns the configured tool overrides keyed by tool name, ready
// for the pipeline runner. Empty overrides are omitted.
func (s *Settings) ToolPaths() map[string]string {
	paths := make(map[string]string)
	for tool, path := range map[string]string{
		"sips":      s.Tools.Sips,
		"DeRez":     s.Tools.DeRez,
		"Rez":       s.Tools.Rez,
		"osascript": s.Tools.Osascript,
	} {
		if path != "" {
			paths[tool] = path
		}
	}
	return paths
}
