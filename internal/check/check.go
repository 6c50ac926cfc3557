// Package check provides the --check self-test: every output format is
// encoded from a small generated image so missing codec support (libwebp,
// libheif without an AV1 encoder) shows up before a long batch run.
package check

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/strukturag/libheif/go/heif"

	"github.com/backmassage/tifconvert/internal/display"
	"github.com/backmassage/tifconvert/internal/encoder"
	"github.com/backmassage/tifconvert/internal/formats"
	"github.com/backmassage/tifconvert/internal/imaging"
)

// ErrEncoderUnavailable wraps the failure of a format's test encode.
var ErrEncoderUnavailable = errors.New("encoder unavailable")

// Logger is the subset of logging.Logger that RunCheck writes to.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// writeFunc matches encoder.WriteFile; swapped in tests.
var writeFunc = encoder.WriteFile

// RunCheck test-encodes every format and logs the outcome. It returns false
// if any format failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("libheif: %s", heif.GetVersion())

	results := CheckEncoders()
	ok := true
	for _, s := range formats.All() {
		r := results[s.Key]
		if r.Err != nil {
			log.Error("%s (%s): %v", s.Key, s.Extension[1:], r.Err)
			ok = false
			continue
		}
		log.Success("%s (%s): works, %s test image", s.Key, s.Extension[1:], display.HumanSize(r.Size))
	}
	return ok
}

// Result is the outcome of one format's test encode.
type Result struct {
	Size int64
	Err  error
}

// CheckEncoders encodes a small test card in every format into a temporary
// directory and reports each result. Lossy formats receive the normalized
// image, as in a real run.
func CheckEncoders() map[formats.Key]Result {
	results := make(map[formats.Key]Result)
	dir, err := os.MkdirTemp("", "tifconvert-check-")
	if err != nil {
		for _, k := range formats.Keys() {
			results[k] = Result{Err: fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)}
		}
		return results
	}
	defer os.RemoveAll(dir)

	src := testCard()
	rgb := imaging.Normalize(src)
	for _, s := range formats.All() {
		var img image.Image = src
		if s.Normalized() {
			img = rgb
		}
		path := filepath.Join(dir, "check"+s.Extension)
		if err := writeFunc(path, img, s.Options); err != nil {
			results[s.Key] = Result{Err: fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)}
			continue
		}
		var size int64
		if fi, err := os.Stat(path); err == nil {
			size = fi.Size()
		}
		results[s.Key] = Result{Size: size}
	}
	return results
}

// testCard returns a 64x64 gradient with a transparent corner.
func testCard() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			a := uint8(255)
			if x < 16 && y < 16 {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 4), uint8(y * 4), 128, a})
		}
	}
	return img
}
