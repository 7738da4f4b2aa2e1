package renderer

import (
	"iter"
	"sync/atomic"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// pointCamera yields rays whose origin encodes the screen point (x, y, 0).
// extraRays adds further rays at z = 1, 2, ...
type pointCamera struct {
	extraRays int
}

func (c *pointCamera) RaysThrough(p core.Vec2) iter.Seq[core.Ray] {
	return func(yield func(core.Ray) bool) {
		for i := 0; i <= c.extraRays; i++ {
			ray := core.NewRay(core.NewVec3(p.X, p.Y, float64(i)), core.NewVec3(0, 0, -1))
			if !yield(ray) {
				return
			}
		}
	}
}

// noRayCamera yields nothing
type noRayCamera struct{}

func (noRayCamera) RaysThrough(core.Vec2) iter.Seq[core.Ray] {
	return func(func(core.Ray) bool) {}
}

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color core.Color
	calls atomic.Int64
}

func (m *constantIntegrator) Trace(core.Ray) core.Color {
	m.calls.Add(1)
	return m.color
}

// originIntegrator returns the ray origin as a color
type originIntegrator struct{}

func (originIntegrator) Trace(ray core.Ray) core.Color {
	return core.NewColor(ray.Origin.X, ray.Origin.Y, ray.Origin.Z)
}
