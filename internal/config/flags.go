package config

// This file registers CLI flags on a pflag.FlagSet owned by the cobra root
// command. Negated flags (e.g. --force, --no-color) are applied after
// parsing so Config defaults hold unless the user sets them.

import (
	"github.com/spf13/pflag"
)

// Flags holds boolean flags that are applied to Config after parsing.
// These either invert a default (force -> SkipExisting=false) or pick the
// color mode.
type Flags struct {
	force      bool
	forceColor bool
	noColor    bool
}

// BindFlags registers every tifconvert flag on fs, writing straight into cfg
// where the flag maps one-to-one onto a field.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	n := &Flags{}
	defineBehaviorFlags(fs, cfg, n)
	defineDisplayFlags(fs, cfg, n)
	return n
}

// defineBehaviorFlags registers --force, --dry-run, --analyze, --check.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config, n *Flags) {
	fs.BoolVarP(&n.force, "force", "f", false, "Re-encode outputs that already exist")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Show what would be written; encode nothing")
	fs.BoolVarP(&cfg.AnalyzeOnly, "analyze", "a", false, "List TIFF dimensions and color models, then exit")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Test every encoder on a small image and exit")
}

// defineDisplayFlags registers --color, --no-color, --verbose, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *Flags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append JSON log lines to file")
}

// Apply copies negated and override flag values into cfg.
func (n *Flags) Apply(cfg *Config) {
	if n.force {
		cfg.SkipExisting = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}
