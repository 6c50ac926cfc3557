package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
)

// Source extensions, case-folded, with leading dot.
var tiffExtensions = map[string]bool{
	".tif":  true,
	".tiff": true,
}

// walkDir is filepath.WalkDir; tests replace it to inject read errors.
var walkDir = filepath.WalkDir

// Warner receives notices about entries that discovery skips.
type Warner interface {
	Warn(string, ...interface{})
}

// IsTIFFName reports whether name ends in .tif or .tiff in any letter case.
// Only the final extension counts: "scan.tiff.bak" is not a TIFF name.
func IsTIFFName(name string) bool {
	return tiffExtensions[cases.Fold().String(filepath.Ext(name))]
}

// Discover walks inputDir recursively, collects files with TIFF extensions,
// and returns the paths sorted lexicographically for deterministic
// processing order. Symlinks to regular files count; symlinked directories
// are not followed. A subdirectory that cannot be read is reported to log
// (which may be nil) and skipped; only an unreadable inputDir is an error.
func Discover(inputDir string, log Warner) ([]string, error) {
	warn := func(format string, args ...interface{}) {
		if log != nil {
			log.Warn(format, args...)
		}
	}

	var files []string
	err := walkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == inputDir {
				return err
			}
			warn("Skipping unreadable %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsTIFFName(d.Name()) {
			return nil
		}
		switch {
		case d.Type().IsRegular():
			files = append(files, path)
		case d.Type()&fs.ModeSymlink != 0:
			fi, err := os.Stat(path)
			if err != nil {
				warn("Skipping broken link %s: %v", path, err)
				return nil
			}
			if fi.Mode().IsRegular() {
				files = append(files, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
