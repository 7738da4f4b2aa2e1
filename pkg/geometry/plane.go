package geometry

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// PlaneXY is the infinite plane z = 0 in local coordinates.
// It is two-sided: the hit normal points toward the side the ray comes from.
type PlaneXY struct{}

// NewPlaneXY creates the z = 0 plane
func NewPlaneXY() *PlaneXY {
	return &PlaneXY{}
}

// FindFirstPositiveHit intersects the ray with z = 0
func (p *PlaneXY) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	if ray.Direction.Z == 0 {
		return nil, false
	}

	t := -ray.Origin.Z / ray.Direction.Z
	if t <= 0 {
		return nil, false
	}

	point := ray.At(t)
	point.Z = 0

	// Flip Y along with Z so the frame stays right-handed
	frame := core.StandardFrame(point)
	if ray.Origin.Z <= 0 {
		frame.Y = core.NewVec3(0, -1, 0)
		frame.Z = core.NewVec3(0, 0, -1)
	}

	hit := &Hit{
		T:             t,
		Ray:           ray,
		LocalPosition: core.LocalPosition{XYZ: point, UV: core.NewVec2(point.X, point.Y)},
		Frame:         frame,
	}
	AssertValidHit(hit)
	return hit, true
}
