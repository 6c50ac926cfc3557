// Package term holds the ANSI color escapes used by logging and display, and
// decides once at startup whether they are in effect.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/tifconvert/internal/config"
)

// Escape sequences for the log level tags and the banner. All are empty
// while colors are off, so callers can concatenate them unconditionally.
var (
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	NC      string // reset
)

// Configure turns colors on or off for mode. [logging.NewLogger] calls it.
func Configure(mode config.ColorMode) {
	on := wantColor(mode)
	set := func(dst *string, code string) {
		if on {
			*dst = "\033[" + code + "m"
		} else {
			*dst = ""
		}
	}
	set(&Red, "0;31")
	set(&Green, "0;32")
	set(&Yellow, "1;33")
	set(&Blue, "1;94")
	set(&Cyan, "1;96")
	set(&Magenta, "1;95")
	set(&NC, "0")
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// wantColor applies mode. Auto means stdout is a terminal, NO_COLOR is unset
// and TERM is not "dumb".
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a TTY, including Cygwin/MSYS ptys.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
