package naming

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of path without its final extension.
// "scans/roll 1/scan1.tif" → "scan1"; "a.b.tiff" → "a.b".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath builds <outputDir>/<stem of source><ext>. ext includes the dot.
func OutputPath(source, outputDir, ext string) string {
	return filepath.Join(outputDir, Stem(source)+ext)
}
