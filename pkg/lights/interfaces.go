package lights

import (
	"iter"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// LightSource produces the rays that carry its light to a point
type LightSource interface {
	// LightRaysTo yields a finite set of rays, each starting on the light and
	// reaching point at t = 1. Every call returns a fresh sequence.
	LightRaysTo(point core.Vec3) iter.Seq[LightRay]
}

// LightRay is one ray of light heading toward a shading point
type LightRay struct {
	Color core.Color
	Ray   core.Ray
}
