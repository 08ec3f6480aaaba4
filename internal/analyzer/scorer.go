package analyzer

import "image"

// Scorer rates the visual detail of one image region.
type Scorer interface {
	// Score returns the mean detail intensity of rect within img, in [0,1].
	Score(img image.Image, rect image.Rectangle) (float64, error)
}
