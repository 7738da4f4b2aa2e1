package lights

import (
	"iter"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// PointLight emits from a single position
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// LightRaysTo yields exactly one ray from the light to point
func (l *PointLight) LightRaysTo(point core.Vec3) iter.Seq[LightRay] {
	return func(yield func(LightRay) bool) {
		yield(LightRay{Color: l.Color, Ray: core.RayThrough(l.Position, point)})
	}
}
