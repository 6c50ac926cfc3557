package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/tifconvert/internal/config"
	"github.com/backmassage/tifconvert/internal/convert"
	"github.com/backmassage/tifconvert/internal/display"
	"github.com/backmassage/tifconvert/internal/formats"
	"github.com/backmassage/tifconvert/internal/logging"
	"github.com/backmassage/tifconvert/internal/naming"
	"github.com/backmassage/tifconvert/internal/planner"
)

// ErrNotDirectory is returned when the input path is missing or is not a
// directory.
var ErrNotDirectory = errors.New("is not a directory")

// ValidateInput fails unless dir exists and is a directory.
func ValidateInput(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("'%s' %w", dir, ErrNotDirectory)
	}
	return nil
}

// OutputDirs maps every format to its subdirectory of outputRoot.
func OutputDirs(outputRoot string, specs []formats.Spec) map[formats.Key]string {
	dirs := make(map[formats.Key]string, len(specs))
	for _, s := range specs {
		dirs[s.Key] = filepath.Join(outputRoot, s.Dir())
	}
	return dirs
}

// CreateOutputDirs creates the per-format subdirectories of outputRoot in
// registry order. Existing directories are fine.
func CreateOutputDirs(outputRoot string, specs []formats.Spec) (map[formats.Key]string, error) {
	dirs := OutputDirs(outputRoot, specs)
	for _, s := range specs {
		if err := os.MkdirAll(dirs[s.Key], 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	return dirs, nil
}

// Run is the top-level batch entry point. It validates the input, prepares
// the output tree, discovers TIFF files, converts each one sequentially, and
// returns aggregate stats. The error is non-nil only for problems that stop
// the run before any file is converted; per-file failures are counted in
// RunStats.Failed.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	if err := ValidateInput(cfg.InputDir); err != nil {
		return stats, err
	}

	specs := formats.All()
	var dirs map[formats.Key]string
	if cfg.DryRun {
		dirs = OutputDirs(cfg.OutputDir, specs)
	} else {
		var err error
		if dirs, err = CreateOutputDirs(cfg.OutputDir, specs); err != nil {
			return stats, err
		}
		lock, err := acquireLock(cfg.OutputDir)
		if err != nil {
			return stats, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Warn("Could not release lock on %s: %v", cfg.OutputDir, err)
			}
		}()
	}

	files, err := Discover(cfg.InputDir, log)
	if err != nil {
		return stats, fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		log.Warn("No TIF/TIFF files found in '%s'", cfg.InputDir)
		return stats, nil
	}

	stats.Total = len(files)
	log.Success("Found %d TIF/TIFF file(s) to convert", stats.Total)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	log.Blank()

	conv := convert.New(cfg, log)
	tracker := naming.NewCollisionTracker()

	for i, path := range files {
		stats.Current = i + 1
		processFile(cfg, log, conv, tracker, dirs, path, &stats)
	}

	logSummary(cfg, log, specs, &stats)
	return stats, nil
}

// processFile reports the source size, converts it, and folds the outcome
// into stats.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	conv *convert.Converter,
	tracker *naming.CollisionTracker,
	dirs map[formats.Key]string,
	path string,
	stats *RunStats,
) {
	defer log.Blank()

	log.Info("[%d/%d] Converting: %s", stats.Current, stats.Total, filepath.Base(path))
	log.Debug(cfg.Verbose, "  Source: %s", path)

	fi, err := os.Stat(path)
	if err != nil {
		log.Error("  File not found: %s", path)
		stats.Failed++
		return
	}
	log.Info("  Original: %s", display.HumanSize(fi.Size()))
	stats.TotalInputBytes += fi.Size()

	if owner, collided := tracker.Claim(path); collided {
		log.Warn("  Name collision: outputs for '%s' were already produced from %s",
			naming.Stem(path), owner)
	}

	out := conv.Convert(planner.ConversionJob{SourcePath: path, OutputDirs: dirs})

	stats.FormatsEncoded += out.Encoded
	stats.FormatsSkipped += out.Skipped
	stats.TotalOutputBytes += out.OutputBytes
	if out.Results.AllOK() {
		stats.Converted++
	} else {
		stats.Failed++
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, specs []formats.Spec, stats *RunStats) {
	log.Success("Done! Converted %d file(s)", stats.Converted)
	if stats.Failed > 0 {
		log.Warn("%d file(s) had errors", stats.Failed)
	}
	if cfg.DryRun {
		log.Info("Dry run: nothing was written")
	} else {
		log.Info("Outputs: %d written, %d already existed", stats.FormatsEncoded, stats.FormatsSkipped)
		if stats.FormatsEncoded > 0 {
			log.Info("Size: sources %s, new outputs %s (%s)",
				display.HumanSize(stats.TotalInputBytes),
				display.HumanSize(stats.TotalOutputBytes),
				sizeChange(stats.TotalInputBytes, stats.TotalOutputBytes))
		}
	}
	log.Blank()

	log.Info("Output locations:")
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, []string{
			s.Dir() + "/",
			s.Extension[1:],
			filepath.Join(cfg.OutputDir, s.Dir()),
		})
	}
	log.Print(display.RenderTable([]string{"Format", "Type", "Directory"}, rows, nil) + "\n")
}

// sizeChange describes the new outputs relative to the sources, for example
// "-512.0KB, 50% of sources".
func sizeChange(in, out int64) string {
	return fmt.Sprintf("%s, %d%% of sources", display.HumanSizeWithSign(out-in), display.Percent(out, in))
}
