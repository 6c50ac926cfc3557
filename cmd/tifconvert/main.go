// Command tifconvert converts every TIF/TIFF under a directory tree into
// PNG, JPEG, WebP and AVIF copies, one flat subdirectory per format.
// Originals are never modified.
package main

import (
	"errors"
	"fmt"
	"os"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "tifconvert: %v\n", err)
		return 1
	}
	return 0
}

// exitError carries a status code for failures that were already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
