package geometry

import (
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Triangle is a flat triangle given by three vertices in local space.
// Like PlaneXY it is two-sided.
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3 // Cached unit normal, zero for degenerate triangles
}

// NewTriangle creates a triangle. Vertices in counter-clockwise order see
// the normal pointing toward the viewer.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}

	normal := v1.Subtract(v0).Cross(v2.Subtract(v0))
	if normal.Length() > 0 {
		t.normal = normal.Normalize()
	}
	return t
}

// Normal returns the unit normal of the counter-clockwise side
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// FindFirstPositiveHit intersects the ray with the triangle using the
// Möller-Trumbore algorithm. UV holds the barycentric weights of V1 and V2.
func (t *Triangle) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Near zero: the ray lies in the triangle's plane
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	param := f * edge2.Dot(q)
	if param <= 0 {
		return nil, false
	}

	point := ray.At(param)

	z := t.normal
	if ray.Direction.Dot(z) > 0 {
		z = z.Negate()
	}
	x := edge1.Normalize()
	y := z.Cross(x)

	hit := &Hit{
		T:             param,
		Ray:           ray,
		LocalPosition: core.LocalPosition{XYZ: point, UV: core.NewVec2(u, v)},
		Frame:         core.Frame{Origin: point, X: x, Y: y, Z: z},
	}
	AssertValidHit(hit)
	return hit, true
}
