package core

import "math"

// Color is a linear RGB radiance value
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color { return Color{} }

// White returns (1, 1, 1)
func White() Color { return Color{1, 1, 1} }

// Red returns (1, 0, 0)
func Red() Color { return Color{1, 0, 0} }

// Green returns (0, 1, 0)
func Green() Color { return Color{0, 1, 0} }

// Blue returns (0, 0, 1)
func Blue() Color { return Color{0, 0, 1} }

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales the color by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the componentwise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Divide scales the color by 1/scalar. Division by zero yields black.
func (c Color) Divide(scalar float64) Color {
	if scalar == 0 {
		return Color{}
	}
	return c.Multiply(1 / scalar)
}

// IsNotBlack reports whether any channel is non-zero
func (c Color) IsNotBlack() bool {
	return c.R != 0 || c.G != 0 || c.B != 0
}

// Intensity returns the mean of the three channels
func (c Color) Intensity() float64 {
	return (c.R + c.G + c.B) / 3
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to each channel
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(max(0, c.R), invGamma),
		G: math.Pow(max(0, c.G), invGamma),
		B: math.Pow(max(0, c.B), invGamma),
	}
}

// ApproxEqual compares two colors channelwise with the given tolerance
func (c Color) ApproxEqual(other Color, tolerance float64) bool {
	return math.Abs(c.R-other.R) <= tolerance &&
		math.Abs(c.G-other.G) <= tolerance &&
		math.Abs(c.B-other.B) <= tolerance
}
