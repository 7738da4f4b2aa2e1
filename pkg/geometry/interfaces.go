package geometry

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

// Primitive is anything a ray can hit. Primitives are immutable once built
// and may be shared by several parents.
type Primitive interface {
	// FindFirstPositiveHit returns the closest hit with t > 0
	FindFirstPositiveHit(ray core.Ray) (*Hit, bool)
}

// Hit describes where a ray met a primitive
type Hit struct {
	T             float64
	Ray           core.Ray
	LocalPosition core.LocalPosition

	// Frame is the world-space shading frame; Z is the surface normal facing the ray origin's side
	Frame core.Frame

	// MaterialProperties is nil until a Decorator assigns a material
	MaterialProperties *material.Properties
}

// Normal returns the shading normal
func (h *Hit) Normal() core.Vec3 {
	return h.Frame.Z
}

// GlobalPosition returns the world-space hit point
func (h *Hit) GlobalPosition() core.Vec3 {
	return h.Frame.Origin
}

// Transformation returns the shading frame as a local-to-world transformation
func (h *Hit) Transformation() core.Transformation {
	return h.Frame.Transformation()
}

// SmallestPositive picks the hit with the smaller positive t.
// Either argument may be nil; on ties a wins.
func SmallestPositive(a, b *Hit) *Hit {
	aOk := a != nil && a.T > 0
	bOk := b != nil && b.T > 0
	switch {
	case aOk && bOk:
		if b.T < a.T {
			return b
		}
		return a
	case aOk:
		return a
	case bOk:
		return b
	default:
		return nil
	}
}

// AssertValidHit checks, in debug builds only, that a hit lies in front of the
// ray origin and carries an orthonormal frame
func AssertValidHit(hit *Hit) {
	core.Assert(hit.T > 0, "hit at non-positive t=%v", hit.T)
	core.Assert(hit.Frame.IsOrthonormal(), "hit frame is not orthonormal: %+v", hit.Frame)
}
