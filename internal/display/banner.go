package display

import (
	"fmt"
	"io"

	"github.com/backmassage/tifconvert/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	if term.Enabled() {
		fmt.Fprint(w, term.Magenta)
	}
	fmt.Fprint(w, ` _   _  __                            _
| |_(_)/ _| ___ ___  _ ____   _____ _ __| |_
| __| | |_ / __/ _ \| '_ \ \ / / _ \ '__| __|
| |_| |  _| (_| (_) | | | \ V /  __/ |  | |_
 \__|_|_|  \___\___/|_| |_|\_/ \___|_|   \__|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
