package sampling

import "github.com/df07/go-weighted-raytracer/pkg/core"

// StratifiedSampler2D walks cell centers of ever finer square grids over a rectangle.
// It starts at the center (a 1×1 grid), visits the cells of an N×N grid in
// row-major order and then doubles the resolution. The sequence is deterministic.
type StratifiedSampler2D struct {
	rect      Rectangle
	gridSize  int
	cellIndex int
}

// MakeStratifiedSampler2D returns a sampler value positioned at the rectangle's center
func MakeStratifiedSampler2D(rect Rectangle) StratifiedSampler2D {
	return StratifiedSampler2D{rect: rect, gridSize: 1}
}

// NewStratifiedSampler2D creates a sampler positioned at the rectangle's center
func NewStratifiedSampler2D(rect Rectangle) *StratifiedSampler2D {
	s := MakeStratifiedSampler2D(rect)
	return &s
}

// Current returns the center of the current cell
func (s *StratifiedSampler2D) Current() core.Vec2 {
	n := float64(s.gridSize)
	col := s.cellIndex % s.gridSize
	row := s.cellIndex / s.gridSize
	return s.rect.FromRelative(core.NewVec2((float64(col)+0.5)/n, (float64(row)+0.5)/n))
}

// Refine moves to the next cell, doubling the grid once all cells are used
func (s *StratifiedSampler2D) Refine() {
	s.cellIndex++
	if s.cellIndex >= s.gridSize*s.gridSize {
		s.gridSize *= 2
		s.cellIndex = 0
	}
}

// GridSize returns the number of cells along each axis of the current grid
func (s *StratifiedSampler2D) GridSize() int {
	return s.gridSize
}
