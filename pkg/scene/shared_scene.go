package scene

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

// NewSharedScene places one unit sphere five times: plain, scaled, squashed,
// rotated and nested under two transformers. The outer decorator only colors
// the instances that have no material of their own.
func NewSharedScene(opts Options) (*Scene, error) {
	config := geometry.DefaultCameraConfig()
	config.Eye = core.NewVec3(0, 3, 12)
	config.AspectRatio = opts.AspectRatio
	camera, err := geometry.NewPerspectiveCamera(config)
	if err != nil {
		return nil, err
	}

	sphere := geometry.NewSphere()
	glossy := func(c core.Color) material.Material {
		return material.NewUniform(material.Properties{
			Diffuse:          c,
			Reflection:       core.White().Multiply(0.3),
			SpecularColor:    core.White(),
			SpecularExponent: 50,
		})
	}

	plain := geometry.NewTransformer(core.Translate(core.NewVec3(-4, 0, 1)), sphere)
	scaled := geometry.NewDecorator(glossy(core.Red()),
		geometry.NewTransformer(core.Translate(core.NewVec3(-1, 0, 1.5)).Compose(core.UniformScale(1.5)), sphere))
	squashed := geometry.NewDecorator(glossy(core.Green()),
		geometry.NewTransformer(core.Translate(core.NewVec3(2, 0, 1)).Compose(core.Scale(1, 0.5, 1)), sphere))
	tilted := geometry.NewTransformer(
		core.Translate(core.NewVec3(4.5, 0, 1)).Compose(core.RotateZ(core.Degrees(45))).Compose(core.Scale(0.5, 1.2, 0.5)),
		geometry.NewDecorator(glossy(core.Blue()), sphere))
	nested := geometry.NewTransformer(core.Translate(core.NewVec3(0, 3, 0)),
		geometry.NewTransformer(core.UniformScale(0.5), plain))

	wall := geometry.NewDecorator(material.NewUniform(material.Matte(core.White().Multiply(0.8))), geometry.NewPlaneXY())
	shapes := geometry.NewUnion(plain, scaled, squashed, tilted, nested)
	root := geometry.NewUnion(
		geometry.NewDecorator(glossy(core.NewColor(1, 0.8, 0.2)), shapes),
		wall,
	)

	return New(camera, root,
		lights.NewPointLight(core.NewVec3(-5, 8, 8), core.White().Multiply(0.7)),
		lights.NewPointLight(core.NewVec3(5, 8, 8), core.White().Multiply(0.5)),
	), nil
}
