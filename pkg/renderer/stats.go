package renderer

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/sampling"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Maximum samples allowed per pixel
	MinSamples     int     // Minimum samples taken per pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Color // RGB accumulator for final result
	LuminanceAccum   float64    // Luminance accumulator for convergence
	LuminanceSqAccum float64    // Luminance squared for variance
	SampleCount      int        // Number of samples taken

	// Screen positions inside the pixel. Kept across passes so later passes
	// continue the same stratified sequence instead of repeating it.
	sampler *sampling.StratifiedSampler2D
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black()
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// nextSamplePoint returns the next screen position to sample, creating the
// pixel's sampler over rect on first use
func (ps *PixelStats) nextSamplePoint(rect sampling.Rectangle) core.Vec2 {
	if ps.sampler == nil {
		ps.sampler = sampling.NewStratifiedSampler2D(rect)
	}
	p := ps.sampler.Current()
	ps.sampler.Refine()
	return p
}

// newPixelStatsGrid allocates stats for every pixel, indexed [y][x]
func newPixelStatsGrid(width, height int) [][]PixelStats {
	grid := make([][]PixelStats, height)
	for y := range grid {
		grid[y] = make([]PixelStats, width)
	}
	return grid
}
