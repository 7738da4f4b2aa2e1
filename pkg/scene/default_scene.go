package scene

import (
	"time"

	"github.com/df07/go-weighted-raytracer/pkg/animation"
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

// reflectiveMaterial is a diffuse color with a strong mirror component and a
// soft highlight
func reflectiveMaterial(diffuse core.Color) material.Material {
	return material.NewUniform(material.Properties{
		Diffuse:          diffuse,
		Reflection:       core.White().Multiply(0.8),
		SpecularColor:    core.White().Multiply(0.5),
		SpecularExponent: 20,
	})
}

func defaultCamera(opts Options) geometry.CameraConfig {
	config := geometry.DefaultCameraConfig()
	config.Eye = core.NewVec3(0, 5, 10)
	config.AspectRatio = opts.AspectRatio
	return config
}

// defaultRoot builds a red and a blue sphere in front of the z = 0 wall.
// Both spheres share one unit sphere primitive.
func defaultRoot() geometry.Primitive {
	sphere := geometry.NewSphere()

	wall := geometry.NewDecorator(reflectiveMaterial(core.White()), geometry.NewPlaneXY())
	left := geometry.NewDecorator(reflectiveMaterial(core.Red()),
		geometry.NewTransformer(core.Translate(core.NewVec3(-2, 0, 3)), sphere))
	right := geometry.NewDecorator(reflectiveMaterial(core.Blue()),
		geometry.NewTransformer(core.Translate(core.NewVec3(1, 0, 5)), sphere))

	return geometry.NewUnion(left, right, wall)
}

func defaultLights() []lights.LightSource {
	return []lights.LightSource{lights.NewPointLight(core.NewVec3(0, 5, 1), core.White())}
}

// NewDefaultScene creates two reflective spheres lit by a point light
func NewDefaultScene(opts Options) (*Scene, error) {
	camera, err := geometry.NewPerspectiveCamera(defaultCamera(opts))
	if err != nil {
		return nil, err
	}
	return New(camera, defaultRoot(), defaultLights()...), nil
}

// NewSweepAnimation moves the camera of the default scene from x = -2 to x = 2 in one second
func NewSweepAnimation(opts Options) (animation.Animation[*Scene], error) {
	eye := animation.NewLinearVec3(core.NewVec3(-2, 5, 10), core.NewVec3(2, 5, 10), time.Second)
	return newEyeAnimation(opts, eye)
}

// NewSpringAnimation swings the camera of the default scene onto a damped spring
func NewSpringAnimation(opts Options) (animation.Animation[*Scene], error) {
	eye := animation.NewSpring(core.NewVec3(-6, 2, 8), core.NewVec3(1, 5, 10), 2*time.Second, animation.DefaultSpringConfig())
	return newEyeAnimation(opts, eye)
}

func newEyeAnimation(opts Options, eye animation.Animation[core.Vec3]) (animation.Animation[*Scene], error) {
	camera := animation.Map(eye, func(position core.Vec3) geometry.CameraConfig {
		config := defaultCamera(opts)
		config.Eye = position
		return config
	})
	animated, err := NewAnimated(camera, defaultRoot(), defaultLights()...)
	if err != nil {
		return nil, err
	}
	return animated, nil
}
