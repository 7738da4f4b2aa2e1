package integrator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid tracer config")

// TracerConfig holds the thresholds of the weighted ray tracer
type TracerConfig struct {
	MinimumWeight       float64 // rays with a smaller weight contribute black
	ShadowThreshold     float64 // a light ray is blocked by hits with t below this
	SurfaceOffset       float64 // secondary rays start this far above the surface
	IndirectSamples     int     // hemisphere directions per indirect estimate
	IndirectAttenuation float64 // weight factor applied to indirect rays
}

// DefaultTracerConfig returns the standard thresholds
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		MinimumWeight:       0.01,
		ShadowThreshold:     0.999,
		SurfaceOffset:       1e-4,
		IndirectSamples:     100,
		IndirectAttenuation: 0.09,
	}
}

// Validate checks that every field is in range
func (c TracerConfig) Validate() error {
	switch {
	case c.MinimumWeight <= 0:
		return fmt.Errorf("%w: minimum weight must be positive, got %v", ErrInvalidConfig, c.MinimumWeight)
	case c.ShadowThreshold <= 0 || c.ShadowThreshold > 1:
		return fmt.Errorf("%w: shadow threshold must be in (0, 1], got %v", ErrInvalidConfig, c.ShadowThreshold)
	case c.SurfaceOffset < 0:
		return fmt.Errorf("%w: surface offset must not be negative, got %v", ErrInvalidConfig, c.SurfaceOffset)
	case c.IndirectSamples < 0:
		return fmt.Errorf("%w: indirect samples must not be negative, got %d", ErrInvalidConfig, c.IndirectSamples)
	case c.IndirectAttenuation < 0 || c.IndirectAttenuation >= 1:
		return fmt.Errorf("%w: indirect attenuation must be in [0, 1), got %v", ErrInvalidConfig, c.IndirectAttenuation)
	}
	return nil
}
