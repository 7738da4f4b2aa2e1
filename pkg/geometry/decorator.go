package geometry

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

// Decorator attaches a material to every hit of its child that has none yet.
// A decorator nested deeper in the tree therefore wins over an outer one.
type Decorator struct {
	Material material.Material
	Child    Primitive
}

// NewDecorator wraps child with the given material
func NewDecorator(m material.Material, child Primitive) *Decorator {
	return &Decorator{Material: m, Child: child}
}

// FindFirstPositiveHit forwards to the child and fills in material properties
func (d *Decorator) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	hit, ok := d.Child.FindFirstPositiveHit(ray)
	if !ok {
		return nil, false
	}

	if hit.MaterialProperties == nil {
		props := d.Material.At(hit.LocalPosition)
		hit.MaterialProperties = &props
	}
	return hit, true
}
