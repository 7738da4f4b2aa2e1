package material

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to the red channel and V to the green channel.
func NewUVDebugTexture(width, height int, base Properties) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := 1 - float64(y)/float64(max(1, height-1))
			pixels[y*width+x] = core.NewColor(u, v, 0)
		}
	}

	return NewImageTexture(width, height, pixels, base)
}

// NewGradientTexture creates a vertical gradient from top (V = 1) to bottom (V = 0)
func NewGradientTexture(width, height int, top, bottom core.Color, base Properties) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := top.Multiply(1.0 - t).Add(bottom.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels, base)
}
