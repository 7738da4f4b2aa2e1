package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// ErrEmptyAnimation is returned when an animation has no frames
var ErrEmptyAnimation = errors.New("animation has no frames")

// GIFDelay converts a frame duration to GIF delay units (hundredths of a second)
func GIFDelay(frame time.Duration) int {
	return max(1, int(frame/(10*time.Millisecond)))
}

// EncodeGIF writes the frames as a looping animated GIF. Each frame is
// quantized to the Plan 9 palette with Floyd-Steinberg dithering.
// delay is in hundredths of a second.
func EncodeGIF(w io.Writer, frames []*Image, delay int, gamma float64) error {
	if len(frames) == 0 {
		return ErrEmptyAnimation
	}
	if gamma <= 0 {
		gamma = DefaultGamma
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}

	for _, frame := range frames {
		rgba := frame.ToRGBA(gamma)
		paletted := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
