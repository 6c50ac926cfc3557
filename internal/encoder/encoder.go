package encoder

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/backmassage/tifconvert/internal/formats"
)

// streamEncoder encodes img into w.
type streamEncoder func(w io.Writer, img image.Image, opts formats.Options) error

// fileEncoder encodes img into the file at path. Used by backends whose
// library only writes to named files.
type fileEncoder func(path string, img image.Image, opts formats.Options) error

var streamEncoders = map[formats.Kind]streamEncoder{
	formats.KindPNG:  encodePNG,
	formats.KindJPEG: encodeJPEG,
	formats.KindWebP: encodeWebP,
}

var fileEncoders = map[formats.Kind]fileEncoder{
	formats.KindAVIF: encodeAVIF,
}

// WriteFile encodes img with opts and writes the result to path atomically.
func WriteFile(path string, img image.Image, opts formats.Options) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if enc, ok := streamEncoders[opts.Kind]; ok {
		return writeAtomic(path, func(tmp string) error {
			return encodeToFile(tmp, img, opts, enc)
		})
	}
	if enc, ok := fileEncoders[opts.Kind]; ok {
		return writeAtomic(path, func(tmp string) error {
			return enc(tmp, img, opts)
		})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedKind, opts.Kind)
}

func encodeToFile(path string, img image.Image, opts formats.Options, enc streamEncoder) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := enc(f, img, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
