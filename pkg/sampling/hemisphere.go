package sampling

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

var (
	azimuthRange   = core.NewIntervalMapper(core.NewInterval(0, 1), core.NewInterval(0, 180))
	elevationRange = core.NewIntervalMapper(core.NewInterval(0, 1), core.NewInterval(-90, 90))
)

// hemisphereDirection maps a point of the unit square to a unit direction
// around +Z: x to azimuth in [0°,180°], y to elevation in [-90°,90°]
func hemisphereDirection(p core.Vec2) core.Vec3 {
	az := core.Degrees(azimuthRange.Map(p.X))
	el := core.Degrees(elevationRange.Map(p.Y))
	return core.NewVec3(az.Cos()*el.Cos(), el.Sin(), az.Sin()*el.Cos())
}

// HemisphereSampler turns a refiner over the unit square into unit directions
// on the hemisphere around +Z. The square's center maps to (0,0,1).
type HemisphereSampler struct {
	square Refiner[core.Vec2]
}

// NewHemisphereSampler wraps the given unit-square refiner
func NewHemisphereSampler(square Refiner[core.Vec2]) *HemisphereSampler {
	return &HemisphereSampler{square: square}
}

// Current returns the current direction in local coordinates
func (h *HemisphereSampler) Current() core.Vec3 {
	return hemisphereDirection(h.square.Current())
}

// Refine advances the underlying square sampler
func (h *HemisphereSampler) Refine() {
	h.square.Refine()
}

// StratifiedHemisphereSampler is a HemisphereSampler over a stratified unit
// square, stored by value. A local variable of this type needs no allocation.
type StratifiedHemisphereSampler struct {
	square StratifiedSampler2D
}

// MakeStratifiedHemisphereSampler returns a sampler value at (0,0,1)
func MakeStratifiedHemisphereSampler() StratifiedHemisphereSampler {
	return StratifiedHemisphereSampler{square: MakeStratifiedSampler2D(UnitSquare())}
}

// NewStratifiedHemisphereSampler creates a stratified hemisphere sampler
func NewStratifiedHemisphereSampler() *StratifiedHemisphereSampler {
	h := MakeStratifiedHemisphereSampler()
	return &h
}

// Current returns the current direction in local coordinates
func (h *StratifiedHemisphereSampler) Current() core.Vec3 {
	return hemisphereDirection(h.square.Current())
}

// Refine advances to the next stratified direction
func (h *StratifiedHemisphereSampler) Refine() {
	h.square.Refine()
}
