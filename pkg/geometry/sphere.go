package geometry

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

var (
	azimuthToU   = core.NewIntervalMapper(core.NewInterval(-180, 180), core.NewInterval(0, 1))
	elevationToV = core.NewIntervalMapper(core.NewInterval(-90, 90), core.NewInterval(0, 1))
)

// Sphere is the unit sphere at the local origin. Use a Transformer to place
// and size it.
type Sphere struct{}

// NewSphere creates a unit sphere
func NewSphere() *Sphere {
	return &Sphere{}
}

// FindFirstPositiveHit intersects the ray with the unit sphere
func (s *Sphere) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	o, d := ray.Origin, ray.Direction

	eq := core.QuadraticEquation{A: d.Dot(d), B: 2 * o.Dot(d), C: o.Dot(o) - 1}
	t1, t2, ok := eq.Solve()
	if !ok {
		return nil, false
	}

	t := t1
	if t <= 0 {
		t = t2
	}
	if t <= 0 {
		return nil, false
	}

	point := ray.At(t)

	// Z is the outward radius vector at the hit point
	z := point.Normalize()
	x := z.Orthogonal().Normalize()
	y := x.Cross(z)

	spherical := core.ToSpherical(point)
	uv := core.NewVec2(
		azimuthToU.Map(spherical.Azimuth.Degrees()),
		elevationToV.Map(spherical.Elevation.Degrees()),
	)

	hit := &Hit{
		T:             t,
		Ray:           ray,
		LocalPosition: core.LocalPosition{XYZ: point, UV: uv},
		Frame:         core.Frame{Origin: point, X: x, Y: y, Z: z},
	}
	AssertValidHit(hit)
	return hit, true
}
