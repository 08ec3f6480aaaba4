package engine

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/analyzer"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/config"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/planner"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/renderer"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/source"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/system"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/video"
)

// FlyoverProject wires the planning core to its collaborators: image source,
// detail scorer, frame cropper and video encoder. Every stage is fail-fast;
// a run either produces a complete video or nothing.
type FlyoverProject struct {
	Config  *config.Config
	Source  source.Source
	Scorer  analyzer.Scorer
	Cropper renderer.Cropper
	Encoder video.Encoder
}

func NewFlyoverProject(cfg *config.Config, src source.Source, scorer analyzer.Scorer, enc video.Encoder) *FlyoverProject {
	return &FlyoverProject{
		Config:  cfg,
		Source:  src,
		Scorer:  scorer,
		Cropper: renderer.CatmullRomCropper{},
		Encoder: enc,
	}
}

func (p *FlyoverProject) Run(ctx context.Context) error {
	startTime := time.Now()

	if err := p.Config.Validate(); err != nil {
		return err
	}

	img, err := p.Source.Image()
	if err != nil {
		return err
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: zero-area image", source.ErrInvalidImage)
	}

	fmt.Println("--- [PROJECT: FLYOVER ENGINE] ---")
	fmt.Printf("[*] Source: %s | %dx%d\n", p.Config.InputPath, width, height)
	fmt.Printf("[*] Grid: %dx%d | Top-K: %d | %d frames/segment @ %d FPS | Zoom: %.2f\n",
		p.Config.Grid, p.Config.Grid, p.Config.TopK, p.Config.FramesPerSegment, p.Config.FPS, p.Config.ZoomMedium)
	fmt.Println("---------------------------------")

	plan, err := p.loadOrBuildPlan(img, width, height)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Flight plan: %d waypoints, %d frames\n", len(plan.Waypoints), len(plan.Viewports))

	if p.Config.PlanOutput != "" {
		if err := planner.WritePlan(plan, p.Config.PlanOutput); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		fmt.Printf("[+++] Flight plan saved: %s\n", p.Config.PlanOutput)
		return nil
	}

	renderStart := time.Now()
	frames, err := renderer.RenderAll(img, plan.Viewports, width, height, p.Config.Workers, p.Cropper)
	if err != nil {
		return err
	}
	renderTime := time.Since(renderStart)

	if p.Config.QRLink != "" {
		card, err := renderer.EndCard(p.Config.QRLink, width, height)
		if err != nil {
			return err
		}
		for i := 0; i < int(p.Config.QRSeconds*float64(p.Config.FPS)); i++ {
			frames = append(frames, card)
		}
	}

	fmt.Printf("[*] Encoding %d frames (%s)...\n", len(frames), p.Config.VideoEncoder)
	encodeStart := time.Now()
	err = p.Encoder.Encode(ctx, frames, p.Config.OutputVideo, video.EncodeParams{
		Width:   width,
		Height:  height,
		FPS:     p.Config.FPS,
		Encoder: p.Config.VideoEncoder,
		Quality: p.Config.Quality,
	})
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}
	encodeTime := time.Since(encodeStart)

	if p.Config.ShowStats {
		p.printStats(len(frames), time.Since(startTime), renderTime, encodeTime)
	}
	return nil
}

// loadOrBuildPlan replays a saved flight plan when one is given, otherwise
// runs the full planning pass over the decoded image.
func (p *FlyoverProject) loadOrBuildPlan(img image.Image, width, height int) (*planner.Plan, error) {
	if p.Config.PlanInput != "" {
		plan, err := planner.ReadPlan(p.Config.PlanInput)
		if err != nil {
			return nil, fmt.Errorf("read plan: %w", err)
		}
		if plan.Width != width || plan.Height != height {
			return nil, fmt.Errorf("plan %s is for a %dx%d image, source is %dx%d",
				p.Config.PlanInput, plan.Width, plan.Height, width, height)
		}
		fmt.Printf("[*] Using flight plan: %s\n", p.Config.PlanInput)
		return plan, nil
	}

	return planner.BuildPlan(width, height, planner.Options{
		Grid:             p.Config.Grid,
		TopK:             p.Config.TopK,
		FramesPerSegment: p.Config.FramesPerSegment,
		ZoomMedium:       p.Config.ZoomMedium,
	}, func(rect image.Rectangle) (float64, error) {
		return p.Scorer.Score(img, rect)
	})
}

func (p *FlyoverProject) printStats(frameCount int, total, render, encode time.Duration) {
	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Rendering (CPU): %.2fs\n"+
			"Encoding: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Peak RSS: %s\n"+
			"----------------------------\n",
		p.Config.BuildVersion, total.Seconds(), render.Seconds(), encode.Seconds(),
		float64(frameCount)/total.Seconds(), system.FormatBytes(system.ProcessRSS()),
	)
}
