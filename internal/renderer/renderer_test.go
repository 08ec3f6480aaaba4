package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/planner"
)

// stampCropper writes the frame's viewport origin into pixel (0,0) so order
// can be verified after the parallel fan-out.
type stampCropper struct {
	mu    sync.Mutex
	calls int
}

func (c *stampCropper) Render(img image.Image, vp planner.Viewport, outW, outH int) (*image.RGBA, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	frame := image.NewRGBA(image.Rect(0, 0, outW, outH))
	frame.Set(0, 0, color.RGBA{R: uint8(vp.X), G: uint8(vp.Y), A: 255})
	return frame, nil
}

func TestRenderAllPreservesOrder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))

	viewports := make([]planner.Viewport, 50)
	for i := range viewports {
		viewports[i] = planner.Viewport{X: i, Y: i * 2 % 256, W: 10, H: 10}
	}

	cropper := &stampCropper{}
	frames, err := RenderAll(img, viewports, 64, 64, 8, cropper)
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	if len(frames) != len(viewports) {
		t.Fatalf("Expected %d frames, got %d", len(viewports), len(frames))
	}
	if cropper.calls != len(viewports) {
		t.Errorf("Expected one render call per frame, got %d", cropper.calls)
	}

	for i, frame := range frames {
		r, g, _, _ := frame.At(0, 0).RGBA()
		if uint8(r>>8) != uint8(viewports[i].X) || uint8(g>>8) != uint8(viewports[i].Y) {
			t.Fatalf("Frame %d out of order: stamped (%d,%d), want (%d,%d)",
				i, r>>8, g>>8, viewports[i].X, viewports[i].Y)
		}
	}
}

type failCropper struct {
	failAt int
	count  int
	mu     sync.Mutex
}

func (c *failCropper) Render(img image.Image, vp planner.Viewport, outW, outH int) (*image.RGBA, error) {
	c.mu.Lock()
	n := c.count
	c.count++
	c.mu.Unlock()
	if n == c.failAt {
		return nil, fmt.Errorf("%w: synthetic", ErrRenderFailure)
	}
	return image.NewRGBA(image.Rect(0, 0, outW, outH)), nil
}

func TestRenderAllFailFast(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	viewports := make([]planner.Viewport, 20)
	for i := range viewports {
		viewports[i] = planner.Viewport{X: 0, Y: 0, W: 32, H: 32}
	}

	frames, err := RenderAll(img, viewports, 64, 64, 4, &failCropper{failAt: 7})
	if !errors.Is(err, ErrRenderFailure) {
		t.Fatalf("Expected ErrRenderFailure, got %v", err)
	}
	if frames != nil {
		t.Error("A failed run must not hand back partial frames")
	}
}

func TestCatmullRomCropperOutputSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	cropper := CatmullRomCropper{}
	frame, err := cropper.Render(img, planner.Viewport{X: 50, Y: 40, W: 100, H: 80}, 200, 160)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Viewports are always rescaled back to source resolution.
	if frame.Bounds().Dx() != 200 || frame.Bounds().Dy() != 160 {
		t.Errorf("Expected 200x160 frame, got %dx%d", frame.Bounds().Dx(), frame.Bounds().Dy())
	}
}

func TestCatmullRomCropperRejectsEscapedViewport(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	cropper := CatmullRomCropper{}
	_, err := cropper.Render(img, planner.Viewport{X: 60, Y: 60, W: 50, H: 50}, 100, 100)
	if !errors.Is(err, ErrRenderFailure) {
		t.Errorf("Expected ErrRenderFailure for out-of-bounds viewport, got %v", err)
	}
}

func TestEndCard(t *testing.T) {
	card, err := EndCard("https://example.com/flyover", 640, 480)
	if err != nil {
		t.Fatalf("EndCard failed: %v", err)
	}

	if card.Bounds().Dx() != 640 || card.Bounds().Dy() != 480 {
		t.Fatalf("Expected 640x480 card, got %v", card.Bounds())
	}

	// Corners stay white, the centered code contains dark modules.
	r, g, b, _ := card.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("Card corner should be white, got (%d,%d,%d)", r, g, b)
	}

	dark := false
	for y := 200; y < 280 && !dark; y++ {
		for x := 280; x < 360; x++ {
			if r, _, _, _ := card.At(x, y).RGBA(); r < 0x8000 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("Expected QR modules near the card center")
	}
}
