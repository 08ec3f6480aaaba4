package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration marks configuration rejected before any planning starts.
var ErrInvalidConfiguration = errors.New("invalid configuration")

type Config struct {
	InputPath   string
	PDFPage     int
	OutputVideo string

	Grid             int
	TopK             int
	FramesPerSegment int
	FPS              int
	ZoomMedium       float64

	Workers       int
	ScorerVariant string

	PlanInput  string
	PlanOutput string

	QRLink    string
	QRSeconds float64

	VideoEncoder string
	Quality      int
	DPI          int
	ShowStats    bool
	BuildVersion string
}

// Validate rejects configurations that would make planning impossible or
// would break the viewport containment guarantee downstream.
func (c *Config) Validate() error {
	if c.Grid < 1 {
		return fmt.Errorf("%w: grid must be >= 1, got %d", ErrInvalidConfiguration, c.Grid)
	}
	if c.TopK < 0 {
		return fmt.Errorf("%w: top-k must be >= 0, got %d", ErrInvalidConfiguration, c.TopK)
	}
	if c.FramesPerSegment < 1 {
		return fmt.Errorf("%w: frames-per-seg must be >= 1, got %d", ErrInvalidConfiguration, c.FramesPerSegment)
	}
	if c.FPS < 1 {
		return fmt.Errorf("%w: fps must be >= 1, got %d", ErrInvalidConfiguration, c.FPS)
	}
	// Zoom below 1.0 would make the viewport larger than the image itself.
	if math.IsNaN(c.ZoomMedium) || math.IsInf(c.ZoomMedium, 0) || c.ZoomMedium < 1.0 {
		return fmt.Errorf("%w: zoom must be a finite value >= 1.0, got %f", ErrInvalidConfiguration, c.ZoomMedium)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfiguration, c.Workers)
	}
	if c.QRSeconds < 0 {
		return fmt.Errorf("%w: qr-seconds must be >= 0, got %f", ErrInvalidConfiguration, c.QRSeconds)
	}
	return nil
}
