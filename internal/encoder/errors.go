package encoder

import "errors"

// Sentinel errors returned by WriteFile.
var (
	ErrUnsupportedKind = errors.New("unsupported encoder kind")
	ErrEmptyImage      = errors.New("image has no pixels")
)
