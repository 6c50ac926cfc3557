// Package convert turns one source TIFF into every output format of the
// registry. Failures are local: a source that cannot be decoded fails all of
// its formats, and a format that cannot be encoded fails only itself.
package convert

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"

	"github.com/backmassage/tifconvert/internal/config"
	"github.com/backmassage/tifconvert/internal/display"
	"github.com/backmassage/tifconvert/internal/encoder"
	"github.com/backmassage/tifconvert/internal/formats"
	"github.com/backmassage/tifconvert/internal/imaging"
	"github.com/backmassage/tifconvert/internal/planner"
	"github.com/backmassage/tifconvert/internal/probe"
)

// Logger is the minimal logging interface needed by the converter.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// WriteFunc encodes img with opts into path.
type WriteFunc func(path string, img image.Image, opts formats.Options) error

// Result maps each format to whether its output exists after the run.
type Result map[formats.Key]bool

// AllOK reports whether every format in r succeeded. An empty result is not
// OK.
func (r Result) AllOK() bool {
	if len(r) == 0 {
		return false
	}
	for _, ok := range r {
		if !ok {
			return false
		}
	}
	return true
}

// Outcome is the per-file report returned by Convert.
type Outcome struct {
	Results     Result
	Encoded     int   // Formats written in this run.
	Skipped     int   // Formats that already existed.
	OutputBytes int64 // Size of the files written in this run.
}

// Converter holds the settings shared by every file of a run.
type Converter struct {
	Formats      []formats.Spec
	SkipExisting bool
	DryRun       bool
	Verbose      bool
	Log          Logger
	Write        WriteFunc
}

// New returns a Converter for cfg over the full format registry.
func New(cfg *config.Config, log Logger) *Converter {
	return &Converter{
		Formats:      formats.All(),
		SkipExisting: cfg.SkipExisting,
		DryRun:       cfg.DryRun,
		Verbose:      cfg.Verbose,
		Log:          log,
		Write:        encoder.WriteFile,
	}
}

// Convert decodes job.SourcePath, normalizes it for the lossy formats, and
// writes each planned output. It never returns an error: every problem is
// logged and reflected in the Result.
func (c *Converter) Convert(job planner.ConversionJob) Outcome {
	plan := planner.BuildPlan(job, c.Formats, c.SkipExisting)
	out := Outcome{Results: make(Result, len(plan.Targets))}

	src, err := decode(job.SourcePath)
	if err != nil {
		c.Log.Error("  Failed to open: %v", err)
		for _, t := range plan.Targets {
			out.Results[t.Format.Key] = false
		}
		return out
	}
	c.Log.Debug(c.Verbose, "  Decoded %dx%d %s", src.Bounds().Dx(), src.Bounds().Dy(), imaging.ModelName(src.ColorModel()))

	var rgb image.Image
	for _, t := range plan.Targets {
		key := t.Format.Key

		if t.Action == planner.ActionSkip {
			c.Log.Info("  %s already exists, skipping", key)
			out.Results[key] = true
			out.Skipped++
			continue
		}

		if c.DryRun {
			c.Log.Success("  [DRY] %s: would write %s", key, filepath.Base(t.OutputPath))
			out.Results[key] = true
			continue
		}

		img := src
		if t.Format.Normalized() {
			if rgb == nil {
				rgb = imaging.Normalize(src)
			}
			img = rgb
		}

		if err := c.Write(t.OutputPath, img, t.Format.Options); err != nil {
			c.Log.Error("  %s: failed - %v", key, err)
			out.Results[key] = false
			continue
		}

		fi, err := os.Stat(t.OutputPath)
		if err != nil {
			c.Log.Warn("  %s: written, but size unknown: %v", key, err)
			out.Results[key] = true
			out.Encoded++
			continue
		}
		size := fi.Size()
		c.Log.Success("  %s: %s", key, display.HumanSize(size))
		out.Results[key] = true
		out.Encoded++
		out.OutputBytes += size
	}
	return out
}

// decode sniffs path and decodes it as TIFF.
func decode(path string) (image.Image, error) {
	if _, err := probe.Probe(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode TIFF: %w", err)
	}
	return img, nil
}
