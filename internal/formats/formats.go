package formats

import "fmt"

// Key identifies an output profile and doubles as its subdirectory name.
type Key string

const (
	Lossless   Key = "lossless"
	Compatible Key = "compatible"
	Balanced   Key = "balanced"
	Compact    Key = "compact"
)

// Kind selects the encoder backend for a profile.
type Kind string

const (
	KindPNG  Kind = "png"
	KindJPEG Kind = "jpeg"
	KindWebP Kind = "webp"
	KindAVIF Kind = "avif"
)

// Options is the encoder configuration for one profile. Only the fields
// meaningful for Kind are read by the encoder.
type Options struct {
	Kind     Kind
	Quality  int  // 1-100 for lossy kinds.
	Optimize bool // PNG: best compression. JPEG: ignored by the stdlib encoder.
	Method   int  // WebP effort, 0 (fast) to 6 (smallest).
	Lossless bool // WebP/AVIF lossless mode.
}

// Spec describes one output profile.
type Spec struct {
	Key         Key
	Extension   string // With leading dot.
	Description string
	Options     Options
}

// Normalized reports whether the profile is encoded from the opaque RGB
// rendition of the source. Only the lossless profile keeps the source as
// decoded.
func (s Spec) Normalized() bool {
	return s.Key != Lossless
}

// Dir returns the subdirectory name for this profile under the output root.
func (s Spec) Dir() string { return string(s.Key) }

var registry = [...]Spec{
	{
		Key:         Lossless,
		Extension:   ".png",
		Description: "Perfect quality, no artifacts (PNG)",
		Options:     Options{Kind: KindPNG, Optimize: true},
	},
	{
		Key:         Compatible,
		Extension:   ".jpg",
		Description: "Works everywhere, high quality (JPEG 95%)",
		Options:     Options{Kind: KindJPEG, Quality: 95, Optimize: true},
	},
	{
		Key:         Balanced,
		Extension:   ".webp",
		Description: "Good quality + small size (WebP 90%)",
		Options:     Options{Kind: KindWebP, Quality: 90, Method: 6},
	},
	{
		Key:         Compact,
		Extension:   ".avif",
		Description: "Smallest files, great for uploads (AVIF 85%)",
		Options:     Options{Kind: KindAVIF, Quality: 85},
	},
}

// All returns the four profiles in registry order. The slice is a copy.
func All() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry[:])
	return out
}

// Keys returns the profile keys in registry order.
func Keys() []Key {
	keys := make([]Key, len(registry))
	for i, s := range registry {
		keys[i] = s.Key
	}
	return keys
}

// Lookup returns the profile for key.
func Lookup(key Key) (Spec, error) {
	for _, s := range registry {
		if s.Key == key {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("unknown format %q", key)
}
