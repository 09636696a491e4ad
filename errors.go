package pixbuf

import "errors"

// Resource errors.
var (
	// ErrInvalidDimensions is returned when width or height is zero or negative.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrUnsupportedSource is returned when the source buffer is not one of
	// the supported element kinds ([]float32, []uint8, []uint32).
	ErrUnsupportedSource = errors.New("pixbuf: unsupported source buffer type")

	// ErrDisposed is returned when uploading from a disposed resource.
	ErrDisposed = errors.New("pixbuf: resource disposed")
)
