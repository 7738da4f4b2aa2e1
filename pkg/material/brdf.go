package material

import (
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// ConstantBRDF weights every direction pair the same
type ConstantBRDF struct {
	Value float64
}

// NewConstantBRDF returns a BRDF of 1, which makes indirect sampling
// average the hemisphere uniformly
func NewConstantBRDF() *ConstantBRDF {
	return &ConstantBRDF{Value: 1}
}

// Compute returns the constant value
func (b *ConstantBRDF) Compute(outgoing, incoming core.Vec3) float64 {
	return b.Value
}

// LambertianBRDF weights incoming light by its cosine against the normal
type LambertianBRDF struct{}

// Compute returns max(0, cos θ) of the incoming direction
func (LambertianBRDF) Compute(outgoing, incoming core.Vec3) float64 {
	length := incoming.Length()
	if length == 0 {
		return 0
	}
	return max(0, incoming.Z/length)
}

// PhongBRDF concentrates weight around the mirror direction of outgoing
type PhongBRDF struct {
	Exponent float64
}

// NewPhongBRDF creates a Phong lobe with the given exponent
func NewPhongBRDF(exponent float64) *PhongBRDF {
	return &PhongBRDF{Exponent: exponent}
}

// Compute returns max(0, cos α)^exponent where α is the angle between the
// incoming direction and the mirror of outgoing around +Z
func (b *PhongBRDF) Compute(outgoing, incoming core.Vec3) float64 {
	mirror := core.NewVec3(-outgoing.X, -outgoing.Y, outgoing.Z)
	if mirror.Length() == 0 || incoming.Length() == 0 {
		return 0
	}
	cos := mirror.CosAngleBetween(incoming)
	if cos <= 0 {
		return 0
	}
	return math.Pow(cos, b.Exponent)
}
