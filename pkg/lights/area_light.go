package lights

import (
	"iter"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/sampling"
)

// AreaLight is a parallelogram emitter spanned by U and V from Corner.
// Each query yields Resolution×Resolution rays from the cell centers of a
// regular grid over the surface, so soft shadows come out noise-free.
type AreaLight struct {
	Corner     core.Vec3
	U          core.Vec3
	V          core.Vec3
	Color      core.Color
	Resolution int
}

// NewAreaLight creates an area light; resolutions below one are raised to one
func NewAreaLight(corner, u, v core.Vec3, color core.Color, resolution int) *AreaLight {
	return &AreaLight{
		Corner:     corner,
		U:          u,
		V:          v,
		Color:      color,
		Resolution: max(1, resolution),
	}
}

// LightRaysTo yields one ray per grid cell, all carrying the full light color.
// The integrator averages the rays of a source.
func (l *AreaLight) LightRaysTo(point core.Vec3) iter.Seq[LightRay] {
	return func(yield func(LightRay) bool) {
		n := float64(l.Resolution)
		cell := sampling.Rectangle{
			XAxis: core.NewVec2(1/n, 0),
			YAxis: core.NewVec2(0, 1/n),
		}

		for row := 0; row < l.Resolution; row++ {
			for col := 0; col < l.Resolution; col++ {
				cell.Origin = core.NewVec2(float64(col)/n, float64(row)/n)
				p := cell.Center()
				origin := l.Corner.Add(l.U.Multiply(p.X)).Add(l.V.Multiply(p.Y))
				if !yield(LightRay{Color: l.Color, Ray: core.RayThrough(origin, point)}) {
					return
				}
			}
		}
	}
}
