package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/scans/archive", "/scans/archive"},
		{"single trailing slash", "/scans/archive/", "/scans/archive"},
		{"multiple trailing slashes", "/scans/archive///", "/scans/archive"},
		{"root path", "/", "/"},
		{"relative path", "out", "out"},
		{"relative with slash", "out/", "out"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetPaths(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantInput  string
		wantOutput string
	}{
		{"input only defaults output", []string{"scans/"}, "scans", "scans"},
		{"explicit output", []string{"scans", "out/"}, "scans", "out"},
		{"empty output falls back", []string{"scans", ""}, "scans", "scans"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SetPaths(tt.args)
			if cfg.InputDir != tt.wantInput || cfg.OutputDir != tt.wantOutput {
				t.Errorf("SetPaths(%v) = (%q, %q), want (%q, %q)",
					tt.args, cfg.InputDir, cfg.OutputDir, tt.wantInput, tt.wantOutput)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInput(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with no input directory should fail")
	}

	cfg.InputDir = "scans"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if cfg.OutputDir != "scans" {
		t.Errorf("OutputDir = %q, want input directory", cfg.OutputDir)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.SkipExisting {
		t.Error("SkipExisting should default to true")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}

func TestBindFlags_Apply(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSkip bool
		wantMode ColorMode
		wantDry  bool
	}{
		{"defaults", nil, true, ColorAuto, false},
		{"force clears skip", []string{"--force"}, false, ColorAuto, false},
		{"short force", []string{"-f"}, false, ColorAuto, false},
		{"color forced", []string{"--color"}, true, ColorAlways, false},
		{"no-color wins over color", []string{"--color", "--no-color"}, true, ColorNever, false},
		{"dry run", []string{"-d"}, true, ColorAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			fs := pflag.NewFlagSet("tifconvert", pflag.ContinueOnError)
			n := BindFlags(fs, &cfg)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			n.Apply(&cfg)
			if cfg.SkipExisting != tt.wantSkip {
				t.Errorf("SkipExisting = %v, want %v", cfg.SkipExisting, tt.wantSkip)
			}
			if cfg.ColorMode != tt.wantMode {
				t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, tt.wantMode)
			}
			if cfg.DryRun != tt.wantDry {
				t.Errorf("DryRun = %v, want %v", cfg.DryRun, tt.wantDry)
			}
		})
	}
}
