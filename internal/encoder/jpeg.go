package encoder

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/backmassage/tifconvert/internal/formats"
)

func encodeJPEG(w io.Writer, img image.Image, opts formats.Options) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality(opts, jpeg.DefaultQuality)})
}

// quality returns opts.Quality clamped to 1-100, or def when unset.
func quality(opts formats.Options, def int) int {
	switch q := opts.Quality; {
	case q <= 0:
		return def
	case q > 100:
		return 100
	default:
		return q
	}
}
