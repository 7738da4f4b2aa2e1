package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"math"
	"os"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/imaging"
)

// LoadImage loads a PNG or JPEG file into linear colors. Stored values are
// assumed to be gamma-encoded with imaging.DefaultGamma.
func LoadImage(filename string) (*imaging.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := DecodeImage(file, imaging.DefaultGamma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return img, nil
}

// DecodeImage decodes a PNG or JPEG stream and undoes the given gamma
func DecodeImage(r io.Reader, gamma float64) (*imaging.Image, error) {
	// Format is auto-detected from the header
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	out := imaging.NewImage(bounds.Dx(), bounds.Dy())

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			out.Set(x, y, core.NewColor(
				linearize(float64(r)/65535.0, gamma),
				linearize(float64(g)/65535.0, gamma),
				linearize(float64(b)/65535.0, gamma),
			))
		}
	}

	return out, nil
}

func linearize(v, gamma float64) float64 {
	if gamma <= 0 || gamma == 1 {
		return v
	}
	return math.Pow(v, gamma)
}
