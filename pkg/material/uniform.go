package material

import "github.com/df07/go-weighted-raytracer/pkg/core"

// Uniform is a material whose properties do not vary over the surface
type Uniform struct {
	Properties Properties
}

// NewUniform creates a uniform material
func NewUniform(properties Properties) *Uniform {
	return &Uniform{Properties: properties}
}

// At returns the same properties everywhere
func (u *Uniform) At(core.LocalPosition) Properties {
	return u.Properties
}
