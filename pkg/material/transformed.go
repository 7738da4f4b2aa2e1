package material

import "github.com/df07/go-weighted-raytracer/pkg/core"

// Transformed places a child material on the surface by mapping the local
// position through the inverse of Transformation before evaluating it.
// UV is treated as the point (u, v, 0).
type Transformed struct {
	Transformation core.Transformation
	Child          Material
}

// NewTransformed creates a transformed material
func NewTransformed(transformation core.Transformation, child Material) *Transformed {
	return &Transformed{Transformation: transformation, Child: child}
}

// At evaluates the child at the transformed position
func (t *Transformed) At(position core.LocalPosition) Properties {
	inverse := t.Transformation.Inverse()
	uv := inverse.TransformPoint(core.NewVec3(position.UV.X, position.UV.Y, 0))
	return t.Child.At(core.LocalPosition{
		XYZ: inverse.TransformPoint(position.XYZ),
		UV:  core.NewVec2(uv.X, uv.Y),
	})
}
