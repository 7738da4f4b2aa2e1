package renderer

import (
	"context"
	"image"
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/integrator"
	"github.com/df07/go-weighted-raytracer/pkg/sampling"
)

// AdaptiveConfig controls early termination of per-pixel sampling
type AdaptiveConfig struct {
	MinSamples float64 // Fraction of the pass target taken before stopping is considered
	Threshold  float64 // Relative luminance error to stop at (0 disables adaptive sampling)
}

// TileRenderer renders rectangular regions of the image through an integrator
type TileRenderer struct {
	camera     geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
	adaptive   AdaptiveConfig
}

// NewTileRenderer creates a tile renderer for an image of the given size
func NewTileRenderer(camera geometry.Camera, integratorInst integrator.Integrator, width, height int, adaptive AdaptiveConfig) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		width:      width,
		height:     height,
		adaptive:   adaptive,
	}
}

// RenderTileBounds renders pixels within the specified bounds until each has
// targetSamples samples (or converged). The context is checked once per row.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, pixelStats [][]PixelStats, targetSamples int) (RenderStats, error) {
	stats := tr.initRenderStatsForBounds(bounds, targetSamples)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samplesUsed := tr.adaptiveSamplePixel(i, j, &pixelStats[j][i], targetSamples)
			tr.updateStats(&stats, samplesUsed)
		}
	}

	tr.finalizeStats(&stats)
	return stats, nil
}

// pixelRect is the pixel's footprint in screen space ([0,1]², y down)
func (tr *TileRenderer) pixelRect(i, j int) sampling.Rectangle {
	w := float64(tr.width)
	h := float64(tr.height)
	return sampling.Rectangle{
		Origin: core.NewVec2(float64(i)/w, float64(j)/h),
		XAxis:  core.NewVec2(1/w, 0),
		YAxis:  core.NewVec2(0, 1/h),
	}
}

func (tr *TileRenderer) adaptiveSamplePixel(i, j int, ps *PixelStats, maxSamples int) int {
	initialSampleCount := ps.SampleCount
	rect := tr.pixelRect(i, j)

	for ps.SampleCount < maxSamples && !tr.shouldStopSampling(ps, maxSamples) {
		ps.AddSample(tr.sample(ps.nextSamplePoint(rect)))
	}

	return ps.SampleCount - initialSampleCount
}

// sample averages the colors of every camera ray through screen point p
func (tr *TileRenderer) sample(p core.Vec2) core.Color {
	sum := core.Black()
	count := 0
	for ray := range tr.camera.RaysThrough(p) {
		sum = sum.Add(tr.integrator.Trace(ray))
		count++
	}
	return sum.Divide(float64(count))
}

// shouldStopSampling determines if adaptive sampling should stop based on perceptual relative error
func (tr *TileRenderer) shouldStopSampling(ps *PixelStats, maxSamples int) bool {
	if tr.adaptive.Threshold <= 0 {
		return false
	}

	minSamples := max(1, int(float64(maxSamples)*tr.adaptive.MinSamples))
	if ps.SampleCount < minSamples {
		return false
	}

	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	variance := math.Max(0, meanSq-mean*mean)

	// Black pixels: relative error is undefined
	if mean <= 1e-8 {
		return variance < 1e-6
	}

	return math.Sqrt(variance)/mean < tr.adaptive.Threshold
}

func (tr *TileRenderer) initRenderStatsForBounds(bounds image.Rectangle, maxSamples int) RenderStats {
	return RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  maxSamples,
		MinSamples:  maxSamples, // reduced as pixels report in
	}
}

func (tr *TileRenderer) updateStats(stats *RenderStats, samplesUsed int) {
	stats.TotalSamples += samplesUsed
	stats.MinSamples = min(stats.MinSamples, samplesUsed)
	stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
}

func (tr *TileRenderer) finalizeStats(stats *RenderStats) {
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
}
