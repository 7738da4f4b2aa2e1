package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-weighted-raytracer/pkg/animation"
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/imaging"
	"github.com/df07/go-weighted-raytracer/pkg/integrator"
	"github.com/df07/go-weighted-raytracer/pkg/renderer"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

// Config holds the command line settings
type Config struct {
	SceneName   string
	TexturePath string // Image for the textured scene
	Width       int
	Height      int

	Progressive renderer.ProgressiveConfig
	Tracer      integrator.TracerConfig

	FPS           int    // Frames per second for animated scenes (0 renders a still)
	OutputDir     string // Local output root
	UseS3         bool   // Upload through S3 instead of writing files
	PreviewWidth  uint   // Also write a downscaled preview when non-zero
	PreviewHeight uint
}

func main() {
	config := Config{
		Progressive: renderer.DefaultProgressiveConfig(),
		Tracer:      integrator.DefaultTracerConfig(),
	}

	flag.StringVar(&config.SceneName, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&config.Width, "width", 400, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 300, "Image height in pixels")
	flag.IntVar(&config.Progressive.MaxSamplesPerPixel, "samples", config.Progressive.MaxSamplesPerPixel, "Maximum samples per pixel")
	flag.IntVar(&config.Progressive.MaxPasses, "passes", config.Progressive.MaxPasses, "Number of progressive passes")
	flag.IntVar(&config.Progressive.NumWorkers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.Float64Var(&config.Progressive.Adaptive.Threshold, "adaptive", config.Progressive.Adaptive.Threshold, "Adaptive sampling threshold (0 disables)")
	flag.IntVar(&config.Tracer.IndirectSamples, "indirect", config.Tracer.IndirectSamples, "Hemisphere samples for indirect light (0 disables)")
	flag.IntVar(&config.FPS, "fps", 0, "Frames per second; renders animated scenes as GIF when non-zero")
	flag.StringVar(&config.TexturePath, "texture", "", "PNG or JPEG texture for the textured scene")
	flag.StringVar(&config.OutputDir, "output", "output", "Output directory")
	flag.BoolVar(&config.UseS3, "s3", false, "Upload results to S3 (configured through S3_* environment variables)")
	flag.UintVar(&config.PreviewWidth, "preview-width", 0, "Width of an additional preview image")
	flag.UintVar(&config.PreviewHeight, "preview-height", 0, "Height of an additional preview image")
	envFile := flag.String("env", ".env", "Environment file to load before reading S3 settings")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weighted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load(*envFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		kind := ""
		if info.Animated {
			kind = " (animated)"
		}
		fmt.Printf("  %-10s %s%s\n", info.ID, info.Description, kind)
	}
}

// run renders the configured scene and writes the result to the sink
func run(ctx context.Context, config Config, logger core.Logger) error {
	anim, err := createAnimation(config)
	if err != nil {
		return err
	}

	sink, err := createSink(config)
	if err != nil {
		return err
	}

	if config.FPS > 0 && anim.Duration() > 0 {
		return renderAnimation(ctx, config, anim, sink, logger)
	}
	return renderStill(ctx, config, anim.At(0), sink, logger)
}

func createAnimation(config Config) (animation.Animation[*scene.Scene], error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", renderer.ErrInvalidConfig, config.Width, config.Height)
	}
	opts := scene.Options{
		AspectRatio: float64(config.Width) / float64(config.Height),
		TexturePath: config.TexturePath,
	}
	return scene.CreateAnimation(config.SceneName, opts)
}

// createSink picks S3 or a per-scene directory under OutputDir
func createSink(config Config) (imaging.Sink, error) {
	if config.UseS3 {
		return imaging.NewS3Sink(imaging.S3ConfigFromEnv())
	}
	return imaging.NewFileSink(filepath.Join(config.OutputDir, config.SceneName)), nil
}

// outputName builds a timestamped file name such as render_20060102_150405.png
func outputName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}

// renderFrame runs every progressive pass for one scene
func renderFrame(ctx context.Context, config Config, s *scene.Scene, logger core.Logger) (*imaging.Image, renderer.RenderStats, error) {
	tracer, err := integrator.NewRayTracer(s, config.Tracer)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	pr, err := renderer.NewProgressiveRaytracer(s, tracer, config.Width, config.Height, config.Progressive, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return pr.Render(ctx)
}

func renderStill(ctx context.Context, config Config, s *scene.Scene, sink imaging.Sink, logger core.Logger) error {
	startTime := time.Now()
	img, stats, err := renderFrame(ctx, config, s, logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))
	logger.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)

	data, err := imaging.PNGBytes(img, imaging.PNGOptions{})
	if err != nil {
		return err
	}
	name := outputName("render", "png", startTime)
	if err := sink.Write(ctx, name, "image/png", data); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", name)

	if config.PreviewWidth > 0 || config.PreviewHeight > 0 {
		preview, err := imaging.PNGBytes(img, imaging.PNGOptions{
			PreviewWidth:  config.PreviewWidth,
			PreviewHeight: config.PreviewHeight,
		})
		if err != nil {
			return err
		}
		previewName := outputName("preview", "png", startTime)
		if err := sink.Write(ctx, previewName, "image/png", preview); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s\n", previewName)
	}
	return nil
}

func renderAnimation(ctx context.Context, config Config, anim animation.Animation[*scene.Scene], sink imaging.Sink, logger core.Logger) error {
	startTime := time.Now()
	timeline := animation.NewTimeLine(anim.Duration(), config.FPS)
	logger.Printf("Rendering %d frames at %d fps...\n", timeline.FrameCount(), config.FPS)

	frames := make([]*imaging.Image, 0, timeline.FrameCount())
	for i, t := range timeline.Frames() {
		img, _, err := renderFrame(ctx, config, anim.At(t), logger)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		logger.Printf("Frame %d/%d done (t=%.2fs)\n", i+1, timeline.FrameCount(), t.Seconds())
		frames = append(frames, img)
	}

	var buf bytes.Buffer
	if err := imaging.EncodeGIF(&buf, frames, imaging.GIFDelay(timeline.FrameDuration()), 0); err != nil {
		return err
	}

	name := outputName("animation", "gif", startTime)
	if err := sink.Write(ctx, name, "image/gif", buf.Bytes()); err != nil {
		return err
	}
	logger.Printf("Animation saved as %s in %v\n", name, time.Since(startTime))
	return nil
}
