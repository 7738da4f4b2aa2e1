package material

import (
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Checkerboard alternates two materials over UV space.
// Squares is the number of checks along each UV axis.
type Checkerboard struct {
	Even    Material
	Odd     Material
	Squares float64
}

// NewCheckerboard creates a checkerboard with the given number of checks per unit of UV
func NewCheckerboard(even, odd Material, squares float64) *Checkerboard {
	return &Checkerboard{Even: even, Odd: odd, Squares: squares}
}

// At picks the material of the check containing the UV coordinate
func (c *Checkerboard) At(position core.LocalPosition) Properties {
	checkX := int(math.Floor(position.UV.X * c.Squares))
	checkY := int(math.Floor(position.UV.Y * c.Squares))

	// Floor keeps negative coordinates alternating too
	if (checkX+checkY)%2 == 0 {
		return c.Even.At(position)
	}
	return c.Odd.At(position)
}
