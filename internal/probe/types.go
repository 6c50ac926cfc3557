package probe

import "strconv"

// ImageInfo is the header-level description of one source file.
type ImageInfo struct {
	Path       string
	MIME       string
	Size       int64
	Width      int
	Height     int
	ColorModel string // Short label from imaging.ModelName.
	HasAlpha   bool
	Paletted   bool
}

// Pixels returns Width*Height.
func (i *ImageInfo) Pixels() int64 {
	return int64(i.Width) * int64(i.Height)
}

// Dimensions returns "WxH", or "?" when the header could not be read.
func (i *ImageInfo) Dimensions() string {
	if i.Width <= 0 || i.Height <= 0 {
		return "?"
	}
	return strconv.Itoa(i.Width) + "x" + strconv.Itoa(i.Height)
}
