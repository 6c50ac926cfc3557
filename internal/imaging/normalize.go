// Package imaging turns decoded source images into the opaque RGB rendition
// handed to the lossy encoders.
package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Background is the color transparent regions are flattened onto.
var Background = color.White

// HasTransparency reports whether m can carry alpha: palette models and the
// RGBA/NRGBA/Alpha families. The answer is about the model, not the pixels.
func HasTransparency(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	_, paletted := m.(color.Palette)
	return paletted
}

// IsPaletted reports whether m is an indexed color model.
func IsPaletted(m color.Model) bool {
	_, ok := m.(color.Palette)
	return ok
}

// Normalize returns an opaque 8-bit RGB rendition of img with its origin at
// (0, 0). Images with alpha or a palette are composited onto Background;
// everything else is converted directly.
func Normalize(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if HasTransparency(img.ColorModel()) {
		bg := imaging.New(b.Dx(), b.Dy(), Background)
		return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
	}
	return imaging.Clone(img)
}

// ModelName returns a short label for a color model, as shown in reports.
func ModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	}
	if IsPaletted(m) {
		return "Paletted"
	}
	return "unknown"
}
