package scene

import (
	"fmt"

	"github.com/df07/go-weighted-raytracer/pkg/animation"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
)

// Animated is a scene whose camera moves over time. Every At call builds a
// fresh Scene; the primitives and lights are shared between frames.
type Animated struct {
	camera       animation.Animation[geometry.CameraConfig]
	fallback     *geometry.PerspectiveCamera
	root         geometry.Primitive
	lightSources []lights.LightSource
}

// NewAnimated creates an animated scene. The camera configuration at the
// start of the animation must be valid.
func NewAnimated(camera animation.Animation[geometry.CameraConfig], root geometry.Primitive, lightSources ...lights.LightSource) (*Animated, error) {
	first, err := geometry.NewPerspectiveCamera(camera.At(0))
	if err != nil {
		return nil, fmt.Errorf("invalid initial camera: %w", err)
	}
	return &Animated{camera: camera, fallback: first, root: root, lightSources: lightSources}, nil
}

// At returns the scene at time t. If the camera degenerates at t the
// initial camera is used instead.
func (a *Animated) At(t animation.TimeStamp) *Scene {
	camera, err := geometry.NewPerspectiveCamera(a.camera.At(t))
	if err != nil {
		camera = a.fallback
	}
	return New(camera, a.root, a.lightSources...)
}

// Duration returns the length of the camera animation
func (a *Animated) Duration() animation.Duration {
	return a.camera.Duration()
}
