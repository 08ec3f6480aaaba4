package config

import (
	"errors"
	"math"
	"testing"
)

func validConfig() Config {
	return Config{
		Grid:             10,
		TopK:             5,
		FramesPerSegment: 60,
		FPS:              30,
		ZoomMedium:       1.4,
		Workers:          4,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"top-k zero is allowed", func(c *Config) { c.TopK = 0 }, false},
		{"grid of one", func(c *Config) { c.Grid = 1 }, false},
		{"single frame per segment", func(c *Config) { c.FramesPerSegment = 1 }, false},
		{"grid zero", func(c *Config) { c.Grid = 0 }, true},
		{"negative top-k", func(c *Config) { c.TopK = -1 }, true},
		{"frames zero", func(c *Config) { c.FramesPerSegment = 0 }, true},
		{"fps zero", func(c *Config) { c.FPS = 0 }, true},
		{"zoom below one", func(c *Config) { c.ZoomMedium = 0.9 }, true},
		{"zoom NaN", func(c *Config) { c.ZoomMedium = math.NaN() }, true},
		{"zoom infinite", func(c *Config) { c.ZoomMedium = math.Inf(1) }, true},
		{"workers zero", func(c *Config) { c.Workers = 0 }, true},
		{"negative qr seconds", func(c *Config) { c.QRSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
