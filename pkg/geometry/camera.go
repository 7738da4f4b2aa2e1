package geometry

import (
	"errors"
	"fmt"
	"iter"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/sampling"
)

// Camera generates primary rays for points on the screen
type Camera interface {
	// RaysThrough yields the rays for screen point p in [0,1]², x to the right and y down
	RaysThrough(p core.Vec2) iter.Seq[core.Ray]
}

// ErrDegenerateCamera is returned when the camera axes cannot be constructed
var ErrDegenerateCamera = errors.New("degenerate camera")

// CameraConfig describes a perspective camera
type CameraConfig struct {
	Eye              core.Vec3
	LookAt           core.Vec3
	Up               core.Vec3
	DistanceToScreen float64
	AspectRatio      float64 // width / height
}

// DefaultCameraConfig looks from z = 5 toward the origin with a square screen
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:              core.NewVec3(0, 0, 5),
		LookAt:           core.NewVec3(0, 0, 0),
		Up:               core.NewVec3(0, 1, 0),
		DistanceToScreen: 1,
		AspectRatio:      1,
	}
}

// PerspectiveCamera is a pinhole camera. The screen is a rectangle of height 1
// and width AspectRatio at distance DistanceToScreen in front of the eye.
type PerspectiveCamera struct {
	config CameraConfig
	frame  core.Transformation
	screen sampling.Rectangle
}

// NewPerspectiveCamera creates a camera from config
func NewPerspectiveCamera(config CameraConfig) (*PerspectiveCamera, error) {
	if config.DistanceToScreen <= 0 || config.AspectRatio <= 0 {
		return nil, fmt.Errorf("%w: distance %v and aspect ratio %v must be positive",
			ErrDegenerateCamera, config.DistanceToScreen, config.AspectRatio)
	}

	look := config.LookAt.Subtract(config.Eye).Normalize()
	right := look.Cross(config.Up).Normalize()
	if look.Length() == 0 || right.Length() == 0 {
		return nil, fmt.Errorf("%w: eye %v, look at %v, up %v", ErrDegenerateCamera, config.Eye, config.LookAt, config.Up)
	}
	up := right.Cross(look)

	frame := core.Frame{Origin: config.Eye, X: right, Y: up, Z: look.Negate()}

	w := config.AspectRatio
	screen := sampling.Rectangle{
		Origin: core.NewVec2(-w/2, 0.5),
		XAxis:  core.NewVec2(w, 0),
		YAxis:  core.NewVec2(0, -1),
	}

	return &PerspectiveCamera{config: config, frame: frame.Transformation(), screen: screen}, nil
}

// Config returns the configuration the camera was built from
func (c *PerspectiveCamera) Config() CameraConfig {
	return c.config
}

// RaysThrough yields the single ray from the eye through screen point p.
// The ray reaches the screen at t = 1.
func (c *PerspectiveCamera) RaysThrough(p core.Vec2) iter.Seq[core.Ray] {
	return func(yield func(core.Ray) bool) {
		s := c.screen.FromRelative(p)
		local := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(s.X, s.Y, -c.config.DistanceToScreen))
		yield(c.frame.TransformRay(local))
	}
}
