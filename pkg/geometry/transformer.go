package geometry

import "github.com/df07/go-weighted-raytracer/pkg/core"

// Transformer places a child primitive in its parent's space
type Transformer struct {
	Transformation core.Transformation
	Child          Primitive
}

// NewTransformer wraps child with the given child-to-parent transformation
func NewTransformer(transformation core.Transformation, child Primitive) *Transformer {
	return &Transformer{Transformation: transformation, Child: child}
}

// FindFirstPositiveHit maps the ray into child space, intersects the child
// and maps the hit frame back. t carries over unchanged because the ray
// direction is never renormalized.
func (tr *Transformer) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	local := tr.Transformation.InverseTransformRay(ray)

	hit, ok := tr.Child.FindFirstPositiveHit(local)
	if !ok {
		return nil, false
	}

	hit.Ray = ray
	hit.Frame = hit.Frame.Transform(tr.Transformation)
	AssertValidHit(hit)
	return hit, true
}
