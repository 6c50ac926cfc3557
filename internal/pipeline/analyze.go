package pipeline

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/backmassage/tifconvert/internal/config"
	"github.com/backmassage/tifconvert/internal/display"
	"github.com/backmassage/tifconvert/internal/logging"
	"github.com/backmassage/tifconvert/internal/probe"
)

// fileRow holds the probed per-file data for the analysis table.
type fileRow struct {
	Name          string
	Dimensions    string
	ColorModel    string
	Size          int64
	BytesPerPixel float64
}

// Analyze discovers TIFF files, reads each header, and prints a table of
// dimensions, color model, and size. Files whose bytes-per-pixel ratio is
// far from the rest (typically uncompressed scans among compressed ones, or
// truncated files) are flagged.
func Analyze(cfg *config.Config, log *logging.Logger) error {
	if err := ValidateInput(cfg.InputDir); err != nil {
		return err
	}
	files, err := Discover(cfg.InputDir, log)
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		log.Warn("No TIF/TIFF files found in '%s'", cfg.InputDir)
		return nil
	}
	log.Info("Analyzing %d files in %s", len(files), cfg.InputDir)

	var rows []fileRow
	var skipped int
	var ratios []float64
	for _, path := range files {
		info, err := probe.Probe(path)
		if err != nil {
			skipped++
			log.Warn("Skip (unreadable): %s: %v", filepath.Base(path), err)
			continue
		}
		row := fileRow{
			Name:       filepath.Base(path),
			Dimensions: info.Dimensions(),
			ColorModel: info.ColorModel,
			Size:       info.Size,
		}
		if px := info.Pixels(); px > 0 {
			row.BytesPerPixel = float64(info.Size) / float64(px)
			ratios = append(ratios, row.BytesPerPixel)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		log.Warn("No files could be read")
		return nil
	}

	bounds := computeStats(ratios)
	log.Print(renderAnalysisTable(rows, bounds) + "\n")
	printAnalysisSummary(log, rows, skipped, bounds)
	return nil
}

func renderAnalysisTable(rows []fileRow, bounds iqrBounds) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Name,
			r.Dimensions,
			r.ColorModel,
			display.HumanSize(r.Size),
			fmt.Sprintf("%.2f", r.BytesPerPixel),
			formatFlag(bounds.classify(r.BytesPerPixel)),
		})
	}
	return display.RenderTable(
		[]string{"File", "Size (px)", "Color", "Size", "B/px", ""},
		out,
		[]display.Alignment{display.AlignLeft, display.AlignRight, display.AlignLeft, display.AlignRight, display.AlignRight},
	)
}

func printAnalysisSummary(log *logging.Logger, rows []fileRow, skipped int, bounds iqrBounds) {
	var outliers, extremes int
	for _, r := range rows {
		switch bounds.classify(r.BytesPerPixel) {
		case "extreme":
			extremes++
		case "outlier":
			outliers++
		}
	}

	log.Info("Analyzed %d files", len(rows))
	if skipped > 0 {
		log.Warn("  %d file(s) could not be read", skipped)
	}
	if bounds.valid {
		log.Info("  Bytes/pixel IQR: %.2f - %.2f (outlier < %.2f or > %.2f)",
			bounds.q1, bounds.q3, bounds.outlierLo, bounds.outlierHi)
	}
	if outliers > 0 {
		log.Warn("  %d outlier(s) flagged [*]", outliers)
	}
	if extremes > 0 {
		log.Error("  %d extreme outlier(s) flagged [!]", extremes)
	}
	if outliers == 0 && extremes == 0 {
		log.Success("  No outliers detected")
	}
}

// iqrBounds holds the IQR-based thresholds for outlier classification.
type iqrBounds struct {
	q1, q3    float64
	outlierLo float64 // Q1 - 1.5*IQR
	outlierHi float64 // Q3 + 1.5*IQR
	extremeLo float64 // Q1 - 3.0*IQR
	extremeHi float64 // Q3 + 3.0*IQR
	valid     bool
}

func computeStats(vals []float64) iqrBounds {
	if len(vals) < 4 {
		return iqrBounds{}
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	q1 := percentile(sorted, 25)
	q3 := percentile(sorted, 75)
	iqr := q3 - q1

	return iqrBounds{
		q1:        q1,
		q3:        q3,
		outlierLo: q1 - 1.5*iqr,
		outlierHi: q3 + 1.5*iqr,
		extremeLo: q1 - 3.0*iqr,
		extremeHi: q3 + 3.0*iqr,
		valid:     iqr > 0,
	}
}

// classify returns "" (normal), "outlier", or "extreme" for a value.
func (b *iqrBounds) classify(v float64) string {
	if !b.valid || v <= 0 {
		return ""
	}
	if v < b.extremeLo || v > b.extremeHi {
		return "extreme"
	}
	if v < b.outlierLo || v > b.outlierHi {
		return "outlier"
	}
	return ""
}

func formatFlag(class string) string {
	switch class {
	case "extreme":
		return "[!]"
	case "outlier":
		return "[*]"
	default:
		return ""
	}
}

// percentile computes the p-th percentile using linear interpolation.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p / 100) * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi || hi >= len(sorted) {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
