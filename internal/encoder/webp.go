package encoder

import (
	"fmt"
	"image"
	"io"

	webpenc "github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/backmassage/tifconvert/internal/formats"
)

// losslessLevel is libwebp's lossless effort, 0 (fast) to 9 (smallest).
const losslessLevel = 6

func encodeWebP(w io.Writer, img image.Image, opts formats.Options) error {
	o, err := webpOptions(opts)
	if err != nil {
		return err
	}
	return webp.Encode(w, img, o)
}

// webpOptions maps registry options onto libwebp's config. Method is
// clamped to libwebp's 0-6 range.
func webpOptions(opts formats.Options) (*webpenc.Options, error) {
	var (
		o   *webpenc.Options
		err error
	)
	if opts.Lossless {
		o, err = webpenc.NewLosslessEncoderOptions(webpenc.PresetDefault, losslessLevel)
		if err == nil {
			o.Lossless = true
		}
	} else {
		o, err = webpenc.NewLossyEncoderOptions(webpenc.PresetDefault, float32(quality(opts, 75)))
	}
	if err != nil {
		return nil, fmt.Errorf("webp options: %w", err)
	}
	switch m := opts.Method; {
	case m < 0:
		o.Method = 0
	case m > 6:
		o.Method = 6
	default:
		o.Method = m
	}
	return o, nil
}
