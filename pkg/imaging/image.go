// Package imaging turns rendered radiance into 8-bit images, encodes them
// as PNG or animated GIF, and delivers the bytes to a Sink.
package imaging

import (
	"image"
	"image/color"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// DefaultGamma is the display gamma applied when converting to 8-bit color
const DefaultGamma = 2.0

// Image is a grid of linear colors, row-major with (0,0) at the top left
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set stores the color at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}

// Bounds returns the image rectangle
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// ToRGBA converts the whole image to 8-bit color
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	return img.RegionToRGBA(img.Bounds(), gamma)
}

// RegionToRGBA converts the pixels inside bounds. The result's origin is the
// region's top-left corner.
func (img *Image) RegionToRGBA(bounds image.Rectangle, gamma float64) *image.RGBA {
	bounds = bounds.Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, ToRGBA(img.At(x, y), gamma))
		}
	}
	return out
}

// ToRGBA converts a linear color to 8-bit RGBA with gamma correction and clamping
func ToRGBA(c core.Color, gamma float64) color.RGBA {
	c = c.GammaCorrect(gamma).Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}
