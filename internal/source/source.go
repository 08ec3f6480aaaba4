package source

import (
	"errors"
	"image"
)

// ErrInvalidImage marks an unreadable or zero-area input. Nothing is planned
// or rendered from such a source.
var ErrInvalidImage = errors.New("invalid image")

// Source supplies the still image the camera flies over.
type Source interface {
	// Dimensions returns the pixel size of the source without decoding it fully.
	Dimensions() (width, height int, err error)
	// Image decodes the full-resolution frame.
	Image() (image.Image, error)
	Close() error
}
