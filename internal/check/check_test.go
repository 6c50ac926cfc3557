package check

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
	"testing"

	"github.com/backmassage/tifconvert/internal/formats"
)

type mockLogger struct {
	lines []string
}

func (m *mockLogger) add(level, f string, a ...interface{}) {
	m.lines = append(m.lines, level+" "+fmt.Sprintf(f, a...))
}
func (m *mockLogger) Info(f string, a ...interface{})    { m.add("INFO", f, a...) }
func (m *mockLogger) Success(f string, a ...interface{}) { m.add("SUCCESS", f, a...) }
func (m *mockLogger) Warn(f string, a ...interface{})    { m.add("WARN", f, a...) }
func (m *mockLogger) Error(f string, a ...interface{})   { m.add("ERROR", f, a...) }
func (m *mockLogger) Debug(bool, string, ...interface{}) {}

func stubWriter(fail formats.Kind) func(string, image.Image, formats.Options) error {
	return func(path string, img image.Image, opts formats.Options) error {
		if opts.Kind == fail {
			return errors.New("no encoder")
		}
		return os.WriteFile(path, []byte("ok"), 0o644)
	}
}

func TestCheckEncoders_ReportsFailures(t *testing.T) {
	orig := writeFunc
	t.Cleanup(func() { writeFunc = orig })
	writeFunc = stubWriter(formats.KindAVIF)

	results := CheckEncoders()
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if err := results[formats.Compact].Err; !errors.Is(err, ErrEncoderUnavailable) {
		t.Errorf("compact err = %v, want ErrEncoderUnavailable", err)
	}
	for _, k := range []formats.Key{formats.Lossless, formats.Compatible, formats.Balanced} {
		if r := results[k]; r.Err != nil || r.Size != 2 {
			t.Errorf("%s = %+v", k, r)
		}
	}
}

func TestRunCheck(t *testing.T) {
	orig := writeFunc
	t.Cleanup(func() { writeFunc = orig })

	writeFunc = stubWriter("")
	log := &mockLogger{}
	if !RunCheck(log) {
		t.Errorf("RunCheck should pass: %v", log.lines)
	}

	writeFunc = stubWriter(formats.KindWebP)
	log = &mockLogger{}
	if RunCheck(log) {
		t.Error("RunCheck should fail when an encoder fails")
	}
	found := false
	for _, l := range log.lines {
		if strings.HasPrefix(l, "ERROR balanced (webp)") {
			found = true
		}
	}
	if !found {
		t.Errorf("no error line for balanced: %v", log.lines)
	}
}

func TestTestCard(t *testing.T) {
	img := testCard()
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.NRGBAAt(40, 40).A; a != 255 {
		t.Errorf("body alpha = %d, want 255", a)
	}
}
