// Package config loads tool defaults from an optional compdb-vs.toml in
// the working directory. Command line flags override anything set here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional per-project configuration file.
const FileName = "compdb-vs.toml"

type Config struct {
	// Configuration is the build configuration to collect logs for.
	Configuration string `toml:"config"`
	// BuildDir is the build tree root, relative to the working directory
	// unless absolute.
	BuildDir string `toml:"build_dir"`
	// SkipHeaders disables the header closure pass.
	SkipHeaders bool `toml:"skip_headers"`
	// Output overrides the database location; empty means
	// <build-dir>/compile_commands.json.
	Output string `toml:"output"`
}

// Load returns the configuration for a project rooted at dir: defaults,
// overlaid with compdb-vs.toml when present.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		Configuration: "Debug",
		BuildDir:      "build",
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, nil
}
