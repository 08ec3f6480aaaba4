package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/analyzer"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/config"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/engine"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/source"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/system"
	"github.com/Yvngjunior/IMG-DRONEVID-VIEW/internal/video"
)

var buildVersion = "dev"

func main() {
	system.InitResourceLimits()

	for _, d := range []string{"input", "output"} {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Image (jpg/png/webp) or PDF to fly over (default: latest file in input/)")
	outputPtr := flag.String("output", "", "Output video path (default: generated under output/)")
	gridPtr := flag.Int("grid", 10, "Detail grid side length (grid x grid cells)")
	topKPtr := flag.Int("top-k", 5, "Number of high-detail waypoints to visit")
	framesPtr := flag.Int("frames-per-seg", 60, "Camera samples per path segment")
	fpsPtr := flag.Int("fps", 30, "Output frame rate")
	zoomPtr := flag.Float64("zoom", 1.4, "Zoom factor at interior waypoints (>= 1.0)")
	workersPtr := flag.Int("workers", system.DefaultWorkers(), "Parallel render workers")
	scorerPtr := flag.String("scorer", "sobel", "Detail scorer variant")
	pagePtr := flag.Int("page", 0, "PDF page to use (0-based)")
	dpiPtr := flag.Int("dpi", 300, "PDF rasterization DPI")
	planOutPtr := flag.String("plan-out", "", "Write the flight plan to a YAML file and exit")
	planInPtr := flag.String("plan-in", "", "Render from a saved YAML flight plan instead of planning")
	qrPtr := flag.String("qr", "", "Link to show as a QR end card after the flyover")
	qrSecondsPtr := flag.Float64("qr-seconds", 3.0, "End card duration in seconds")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 = auto; x264: CRF, VideoToolbox: bitrate = Q*100kbit/s)")
	statsPtr := flag.Bool("stats", false, "Print a performance report")

	flag.Parse()

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestInput("input")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put an image or PDF in input/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected input: %s\n", inputPath)
	}

	var src source.Source
	var err error
	if strings.HasSuffix(strings.ToLower(inputPath), ".pdf") {
		src, err = source.NewFitzPDFSource(inputPath, *pagePtr, *dpiPtr)
	} else {
		src, err = source.NewImageSource(inputPath)
	}
	if err != nil {
		log.Fatalf("[-] Source error: %v", err)
	}
	defer src.Close()

	scorer, err := analyzer.NewScorer(*scorerPtr)
	if err != nil {
		log.Fatalf("[-] Scorer error: %v", err)
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(inputPath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}

	encoderName := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Hardware acceleration detected: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		quality = video.DefaultQuality(encoderName)
	}

	cfg := &config.Config{
		InputPath:        inputPath,
		PDFPage:          *pagePtr,
		OutputVideo:      finalOutput,
		Grid:             *gridPtr,
		TopK:             *topKPtr,
		FramesPerSegment: *framesPtr,
		FPS:              *fpsPtr,
		ZoomMedium:       *zoomPtr,
		Workers:          *workersPtr,
		ScorerVariant:    *scorerPtr,
		PlanInput:        *planInPtr,
		PlanOutput:       *planOutPtr,
		QRLink:           *qrPtr,
		QRSeconds:        *qrSecondsPtr,
		VideoEncoder:     encoderName,
		Quality:          quality,
		DPI:              *dpiPtr,
		ShowStats:        *statsPtr,
		BuildVersion:     buildVersion,
	}

	project := engine.NewFlyoverProject(cfg, src, scorer, &video.FFmpegEncoder{})
	if err := project.Run(context.Background()); err != nil {
		log.Fatalf("[-] Project error: %v", err)
	}

	if cfg.PlanOutput == "" {
		fmt.Printf("[+++] Success! Result: %s\n", cfg.OutputVideo)
	}
}
