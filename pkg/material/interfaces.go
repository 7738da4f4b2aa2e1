package material

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Material maps a surface-local position to shading properties.
// At must be pure: the same position always yields the same properties.
type Material interface {
	At(position core.LocalPosition) Properties
}

// BRDF weights a pair of directions given in the local shading frame,
// where +Z is the surface normal. outgoing points toward the viewer and
// incoming toward where light arrives from. The result is never negative.
type BRDF interface {
	Compute(outgoing, incoming core.Vec3) float64
}

// Properties describe how a surface responds to light at one point
type Properties struct {
	Diffuse          core.Color
	Reflection       core.Color
	SpecularColor    core.Color
	SpecularExponent float64

	// BRDF drives indirect sampling; nil disables it for this surface
	BRDF BRDF
}

// Matte returns diffuse-only properties without indirect sampling
func Matte(diffuse core.Color) Properties {
	return Properties{Diffuse: diffuse}
}
