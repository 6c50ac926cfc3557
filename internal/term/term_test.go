package term

import (
	"os"
	"testing"

	"github.com/backmassage/tifconvert/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() || Red == "" || NC == "" {
		t.Error("ColorAlways should enable colors")
	}

	Configure(config.ColorNever)
	if Enabled() || Red != "" || Green != "" {
		t.Error("ColorNever should clear colors")
	}
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil file reported as terminal")
	}
}
