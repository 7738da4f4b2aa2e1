package material

import (
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// ImageTexture takes its diffuse color from a 2D image indexed by UV.
// All other properties come from Base.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], y = 0 is the top row
	Base   Properties
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color, base Properties) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Base:   base,
	}
}

// At returns Base with the diffuse color looked up at the position's UV
func (t *ImageTexture) At(position core.LocalPosition) Properties {
	props := t.Base
	props.Diffuse = t.Evaluate(position.UV)
	return props
}

// Evaluate samples the texture with nearest-neighbor filtering. UVs wrap
// around; V = 0 is the bottom of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2) core.Color {
	if t.Width <= 0 || t.Height <= 0 {
		return core.Black()
	}

	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	x := min(t.Width-1, max(0, int(u*float64(t.Width))))
	y := min(t.Height-1, max(0, int((1.0-v)*float64(t.Height))))

	return t.Pixels[y*t.Width+x]
}
