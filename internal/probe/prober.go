package probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/tiff"

	"github.com/backmassage/tifconvert/internal/imaging"
)

// TIFFMIME is the MIME type mimetype reports for TIFF content.
const TIFFMIME = "image/tiff"

// ErrNotTIFF is returned when a file's content is not TIFF, whatever its
// extension says.
var ErrNotTIFF = errors.New("not a TIFF file")

// Sniff returns the detected MIME type of the content in r.
func Sniff(r io.Reader) (string, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// Probe reads the header of the file at path and returns its ImageInfo. The
// returned error wraps ErrNotTIFF when the content is some other type.
func Probe(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	info := &ImageInfo{Path: path, Size: fi.Size()}

	mime, err := Sniff(f)
	if err != nil {
		return info, fmt.Errorf("sniff: %w", err)
	}
	info.MIME = mime
	if !mimetype.EqualsAny(mime, TIFFMIME) {
		return info, fmt.Errorf("%w (detected %s)", ErrNotTIFF, mime)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return info, err
	}
	cfg, err := tiff.DecodeConfig(f)
	if err != nil {
		return info, fmt.Errorf("read TIFF header: %w", err)
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
	info.ColorModel = imaging.ModelName(cfg.ColorModel)
	info.HasAlpha = imaging.HasTransparency(cfg.ColorModel) && !imaging.IsPaletted(cfg.ColorModel)
	info.Paletted = imaging.IsPaletted(cfg.ColorModel)
	return info, nil
}
