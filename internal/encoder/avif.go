package encoder

import (
	"fmt"
	"image"
	"image/color"

	"github.com/strukturag/libheif/go/heif"

	"github.com/backmassage/tifconvert/internal/formats"
)

func encodeAVIF(path string, img image.Image, opts formats.Options) error {
	lossless := heif.LosslessModeDisabled
	src := img
	if opts.Lossless {
		lossless = heif.LosslessModeEnabled
	} else {
		src = toYCbCr(img)
	}
	ctx, err := heif.EncodeFromImage(src, heif.CompressionAV1, quality(opts, 50), lossless, heif.LoggingLevelNone)
	if err != nil {
		return fmt.Errorf("heif encode: %w", err)
	}
	return ctx.WriteToFile(path)
}

// toYCbCr converts img to 4:2:0 YCbCr, the layout AV1 stores natively.
// Each chroma sample is the mean of the pixels it covers. Alpha is dropped;
// callers pass opaque images.
func toYCbCr(img image.Image) *image.YCbCr {
	if y, ok := img.(*image.YCbCr); ok && y.SubsampleRatio == image.YCbCrSubsampleRatio420 {
		return y
	}
	b := img.Bounds()
	out := image.NewYCbCr(b, image.YCbCrSubsampleRatio420)
	sumCb := make([]int, len(out.Cb))
	sumCr := make([]int, len(out.Cr))
	count := make([]int, len(out.Cb))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			yy, cb, cr := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			out.Y[out.YOffset(x, y)] = yy
			ci := out.COffset(x, y)
			sumCb[ci] += int(cb)
			sumCr[ci] += int(cr)
			count[ci]++
		}
	}
	for i, n := range count {
		if n == 0 {
			continue
		}
		out.Cb[i] = uint8((sumCb[i] + n/2) / n)
		out.Cr[i] = uint8((sumCr[i] + n/2) / n)
	}
	return out
}
