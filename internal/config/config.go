// Package config holds runtime configuration: defaults, validation, and the
// small path helpers shared by the CLI and the pipeline. Values are filled
// in by [DefaultConfig] and then overridden by the cobra flags in
// cmd/tifconvert.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is passed by pointer to the packages
// that need it; nothing mutates it once the run has started.
type Config struct {
	// Paths (set from positional args). OutputDir defaults to InputDir.
	InputDir  string
	OutputDir string

	// Behavior flags.
	SkipExisting bool // Default: true. Cleared by --force.
	DryRun       bool
	AnalyzeOnly  bool // Print a TIFF inventory and exit.
	CheckOnly    bool // Run encoder self-tests and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional JSON log file path.

	// RunID tags every line written to LogFile. Set by the CLI.
	RunID string
}

// DefaultConfig returns a Config with the defaults used when no flags are
// passed.
func DefaultConfig() Config {
	return Config{
		SkipExisting: true,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// SetPaths assigns the positional arguments. A missing output directory
// means outputs are written next to the input tree.
func (c *Config) SetPaths(args []string) {
	if len(args) > 0 {
		c.InputDir = NormalizeDirArg(args[0])
	}
	c.OutputDir = c.InputDir
	if len(args) > 1 && args[1] != "" {
		c.OutputDir = NormalizeDirArg(args[1])
	}
}

// Validate checks enum fields and, unless only the encoder self-test was
// requested, that an input directory was given.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	return nil
}
