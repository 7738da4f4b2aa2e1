package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/imaging"
	"github.com/df07/go-weighted-raytracer/pkg/integrator"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned for unusable image sizes or sampling schedules
var ErrInvalidConfig = errors.New("invalid render config")

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int // Size of each tile (64x64 recommended)
	InitialSamples     int // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int // Maximum total samples per pixel
	MaxPasses          int // Maximum number of passes
	NumWorkers         int // Number of parallel workers (0 = use CPU count)

	Adaptive AdaptiveConfig // Per-pixel early termination
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 50,
		MaxPasses:          7,
		NumWorkers:         0,
		Adaptive: AdaptiveConfig{
			MinSamples: 0.1,
			Threshold:  0.01,
		},
	}
}

// Validate checks that the schedule can be executed
func (c ProgressiveConfig) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	case c.InitialSamples < 1:
		return fmt.Errorf("%w: initial samples must be at least 1, got %d", ErrInvalidConfig, c.InitialSamples)
	case c.MaxSamplesPerPixel < c.InitialSamples:
		return fmt.Errorf("%w: max samples %d below initial samples %d", ErrInvalidConfig, c.MaxSamplesPerPixel, c.InitialSamples)
	case c.MaxPasses < 1:
		return fmt.Errorf("%w: max passes must be at least 1, got %d", ErrInvalidConfig, c.MaxPasses)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// ProgressiveRaytracer renders an image in passes of increasing sample count.
// Each pass refines the same pixel statistics, so the image only improves.
type ProgressiveRaytracer struct {
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile        // Tile management
	currentPass   int            // Progressive state
	pixelStats    [][]PixelStats // Shared pixel statistics array (global image coordinates)
	tileRenderer  *TileRenderer
	logger        core.Logger
}

// NewProgressiveRaytracer creates a progressive renderer for the scene's camera
func NewProgressiveRaytracer(s *scene.Scene, integratorInst integrator.Integrator, width, height int, config ProgressiveConfig, logger core.Logger) (*ProgressiveRaytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, width, height)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Camera == nil {
		return nil, fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	}
	if integratorInst == nil {
		return nil, fmt.Errorf("%w: no integrator", ErrInvalidConfig)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &ProgressiveRaytracer{
		width:        width,
		height:       height,
		config:       config,
		tiles:        NewTileGrid(width, height, config.TileSize),
		pixelStats:   newPixelStatsGrid(width, height),
		tileRenderer: NewTileRenderer(s.Camera, integratorInst, width, height, config.Adaptive),
		logger:       logger,
	}, nil
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	// Special case: if only 1 pass, use all samples
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	targetSamples := pr.config.InitialSamples + (passNumber-1)*samplesPerPass

	// For the final pass, use all remaining samples
	if passNumber == pr.config.MaxPasses {
		targetSamples = pr.config.MaxSamplesPerPixel
	}

	return targetSamples
}

// RenderPass renders a single progressive pass using parallel processing.
// tileCallback, when set, is called from the calling goroutine as tiles finish.
func (pr *ProgressiveRaytracer) RenderPass(ctx context.Context, passNumber int, tileCallback func(TileCompletionResult)) (*imaging.Image, RenderStats, error) {
	pr.currentPass = passNumber
	targetSamples := pr.getSamplesForPass(passNumber)

	pool := NewWorkerPool(pr.tileRenderer, pr.config.NumWorkers, len(pr.tiles))
	pr.logger.Printf("Pass %d: Target %d samples per pixel (using %d workers)...\n",
		passNumber, targetSamples, pool.GetNumWorkers())

	pool.Start(ctx)

	for taskID, tile := range pr.tiles {
		task := TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		}
		if err := pool.SubmitTask(task); err != nil {
			return nil, RenderStats{}, err
		}
	}

	for i := 0; i < len(pr.tiles); i++ {
		result, err := pool.GetResult()
		if err != nil {
			return nil, RenderStats{}, err
		}

		tile := pr.tiles[result.TaskID]
		tile.PassesCompleted++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / pr.config.TileSize,
				TileY:      tile.Bounds.Min.Y / pr.config.TileSize,
				TileImage:  pr.extractTileImage(tile),
				PassNumber: passNumber,

				TileNumber:  i + 1,
				TotalTiles:  len(pr.tiles),
				TotalPasses: pr.config.MaxPasses,
			})
		}
	}

	if err := pool.Stop(); err != nil {
		return nil, RenderStats{}, err
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// Render runs every pass and returns the final image
func (pr *ProgressiveRaytracer) Render(ctx context.Context) (*imaging.Image, RenderStats, error) {
	var (
		img   *imaging.Image
		stats RenderStats
		err   error
	)
	for pass := 1; pass <= pr.config.MaxPasses; pass++ {
		img, stats, err = pr.RenderPass(ctx, pass, nil)
		if err != nil {
			return nil, RenderStats{}, err
		}
		if pr.reachedMaxSamples(stats) {
			break
		}
	}
	return img, stats, nil
}

// extractTileImage converts the tile's current pixel averages to 8-bit color
func (pr *ProgressiveRaytracer) extractTileImage(tile *Tile) *image.RGBA {
	bounds := tile.Bounds
	tileImage := imaging.NewImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tileImage.Set(x-bounds.Min.X, y-bounds.Min.Y, pr.pixelStats[y][x].GetColor())
		}
	}
	return tileImage.ToRGBA(imaging.DefaultGamma)
}

func (pr *ProgressiveRaytracer) reachedMaxSamples(stats RenderStats) bool {
	return int(stats.AverageSamples) >= pr.config.MaxSamplesPerPixel
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *imaging.Image
	Stats      RenderStats
	IsLast     bool
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX      int // Tile coordinates (not pixel coordinates)
	TileY      int
	TileImage  *image.RGBA // Image data for just this tile
	PassNumber int         // Which pass this tile was rendered in

	// Progress information
	TileNumber  int // Current tile number in this pass (1-based)
	TotalTiles  int // Total number of tiles in the image
	TotalPasses int // Total number of passes planned
}

// RenderOptions configures progressive rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// RenderProgressive renders all passes in a goroutine and reports through channels.
// If options.TileUpdates is false the tile channel is closed immediately.
// Tile events are dropped rather than blocking when the reader falls behind.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100)
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			var tileCallback func(TileCompletionResult)
			if options.TileUpdates {
				tileCallback = func(result TileCompletionResult) {
					select {
					case tileChan <- result:
					default:
					}
				}
			}

			img, stats, err := pr.RenderPass(ctx, pass, tileCallback)
			if err != nil {
				errChan <- err
				return
			}

			pr.logger.Printf("Pass %d completed in %v (actual: %.1f samples/pixel)\n",
				pass, time.Since(startTime), stats.AverageSamples)

			done := pr.reachedMaxSamples(stats)
			result := PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     pass == pr.config.MaxPasses || done,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if done {
				pr.logger.Printf("Reached maximum samples per pixel (%d), stopping.\n", pr.config.MaxSamplesPerPixel)
				return
			}
		}
	}()

	return passChan, tileChan, errChan
}

// assembleCurrentImage creates an image from the current state of the shared pixel stats
// and calculates render statistics in a single pass
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*imaging.Image, RenderStats) {
	img := imaging.NewImage(pr.width, pr.height)

	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.Set(x, y, pixel.GetColor())

			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}
