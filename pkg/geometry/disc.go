package geometry

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Disc is the unit disc x² + y² ≤ 1 in the local z = 0 plane. It shares the
// plane's two-sided frame and UV.
type Disc struct {
	plane PlaneXY
}

// NewDisc creates a unit disc. Use a Transformer to place and size it.
func NewDisc() *Disc {
	return &Disc{}
}

// FindFirstPositiveHit intersects the ray with the plane, then rejects hits
// outside the unit circle
func (d *Disc) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	hit, ok := d.plane.FindFirstPositiveHit(ray)
	if !ok {
		return nil, false
	}
	p := hit.LocalPosition.XYZ
	if p.X*p.X+p.Y*p.Y > 1 {
		return nil, false
	}
	return hit, true
}
