package encoder

import (
	"image"
	"image/png"
	"io"

	"github.com/backmassage/tifconvert/internal/formats"
)

func encodePNG(w io.Writer, img image.Image, opts formats.Options) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if opts.Optimize {
		enc.CompressionLevel = png.BestCompression
	}
	return enc.Encode(w, img)
}
