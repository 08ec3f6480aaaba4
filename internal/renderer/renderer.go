package renderer

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/planner"
)

// ErrRenderFailure marks a failed frame render. The pipeline never skips
// frames or substitutes placeholders, so one failure aborts the whole run.
var ErrRenderFailure = errors.New("render failure")

// Cropper is the crop-then-resize primitive invoked once per output frame.
type Cropper interface {
	Render(img image.Image, vp planner.Viewport, outW, outH int) (*image.RGBA, error)
}

// CatmullRomCropper rescales viewports with the Catmull-Rom kernel, which
// keeps fine detail sharp during deep zooms.
type CatmullRomCropper struct{}

func (CatmullRomCropper) Render(img image.Image, vp planner.Viewport, outW, outH int) (*image.RGBA, error) {
	if vp.W < 1 || vp.H < 1 {
		return nil, fmt.Errorf("%w: empty viewport %+v", ErrRenderFailure, vp)
	}
	src := image.Rect(vp.X, vp.Y, vp.X+vp.W, vp.Y+vp.H)
	if !src.In(img.Bounds()) {
		return nil, fmt.Errorf("%w: viewport %+v outside image %v", ErrRenderFailure, vp, img.Bounds())
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst, nil
}

// RenderAll renders every viewport of a plan into an output-sized frame,
// fanning the work out across workers. Each frame is a pure function of its
// viewport and the source image, so the only coordination needed is writing
// results by frame index, which preserves output ordering.
func RenderAll(img image.Image, viewports []planner.Viewport, outW, outH, workers int, cropper Cropper) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, len(viewports))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, vp := range viewports {
		g.Go(func() error {
			frame, err := cropper.Render(img, vp, outW, outH)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			frames[i] = frame
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
