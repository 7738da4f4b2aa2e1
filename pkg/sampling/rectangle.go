package sampling

import "github.com/df07/go-weighted-raytracer/pkg/core"

// Rectangle is a parallelogram in the plane spanned by two axes from Origin
type Rectangle struct {
	Origin core.Vec2
	XAxis  core.Vec2
	YAxis  core.Vec2
}

// UnitSquare returns the rectangle [0,1]²
func UnitSquare() Rectangle {
	return Rectangle{
		Origin: core.NewVec2(0, 0),
		XAxis:  core.NewVec2(1, 0),
		YAxis:  core.NewVec2(0, 1),
	}
}

// FromRelative maps a point given relative to the axes (0..1 each) into the plane
func (r Rectangle) FromRelative(p core.Vec2) core.Vec2 {
	return r.Origin.Add(r.XAxis.Multiply(p.X)).Add(r.YAxis.Multiply(p.Y))
}

// Center returns the midpoint of the rectangle
func (r Rectangle) Center() core.Vec2 {
	return r.FromRelative(core.NewVec2(0.5, 0.5))
}
