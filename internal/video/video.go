package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os/exec"
)

// EncodeParams describes one encoding run.
type EncodeParams struct {
	Width   int
	Height  int
	FPS     int
	Encoder string
	Quality int
}

// Encoder muxes an ordered frame sequence into a video file. Frames are
// consumed strictly in index order.
type Encoder interface {
	Encode(ctx context.Context, frames []*image.RGBA, videoPath string, params EncodeParams) error
}

type FFmpegEncoder struct{}

// Encode pipes raw RGBA frames to an ffmpeg child process over stdin, so no
// intermediate frame files touch the disk.
func (e *FFmpegEncoder) Encode(ctx context.Context, frames []*image.RGBA, videoPath string, params EncodeParams) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-c:v", params.Encoder,
	}
	args = append(args, qualityArgs(params.Encoder, params.Quality)...)
	args = append(args, videoPath)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	for i, frame := range frames {
		if _, err := stdin.Write(frame.Pix); err != nil {
			stdin.Close()
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg error: %w\nLog: %s", err, out.String())
	}
	return nil
}

// qualityArgs maps the quality setting onto the selected encoder.
func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		// VideoToolbox ignores -q:v on many versions; use bitrate instead.
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// DefaultQuality picks a sane quality for the encoder when the user passes 0.
func DefaultQuality(encoder string) int {
	switch encoder {
	case "h264_videotoolbox":
		return 75 // bitrate units: 75 -> 7.5 Mbit/s
	case "h264_nvenc":
		return 28 // CRF equivalent for NVENC
	default:
		return 23 // standard CRF for x264
	}
}
