package scene

import (
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is built once and never mutated while rendering.
type Scene struct {
	Camera       geometry.Camera
	Root         geometry.Primitive
	LightSources []lights.LightSource
}

// New creates a scene
func New(camera geometry.Camera, root geometry.Primitive, lightSources ...lights.LightSource) *Scene {
	return &Scene{Camera: camera, Root: root, LightSources: lightSources}
}

// Options adjust how a built-in scene is constructed
type Options struct {
	AspectRatio float64 // width / height of the output image

	// TexturePath is a PNG or JPEG used by scenes that show an image texture.
	// Empty selects a generated texture.
	TexturePath string
}

// DefaultOptions returns options for a square image
func DefaultOptions() Options {
	return Options{AspectRatio: 1}
}
