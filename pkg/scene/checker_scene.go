package scene

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

// NewCheckerScene shows a checkerboard floor and a diffuse sphere under an
// area light. Both surfaces carry a BRDF so they pick up indirect light.
func NewCheckerScene(opts Options) (*Scene, error) {
	config := geometry.DefaultCameraConfig()
	config.Eye = core.NewVec3(0, 3, 6)
	config.LookAt = core.NewVec3(0, 0.5, 0)
	config.AspectRatio = opts.AspectRatio
	camera, err := geometry.NewPerspectiveCamera(config)
	if err != nil {
		return nil, err
	}

	lambertian := material.LambertianBRDF{}
	light := material.NewUniform(material.Properties{Diffuse: core.NewColor(0.9, 0.9, 0.85), BRDF: lambertian})
	dark := material.NewUniform(material.Properties{Diffuse: core.NewColor(0.15, 0.15, 0.2), BRDF: lambertian})

	// Rotate the checkerboard by 45° within the floor
	board := material.NewTransformed(core.RotateZ(core.Degrees(45)), material.NewCheckerboard(light, dark, 1))

	// PlaneXY lies in z = 0; tip it over to become the y = 0 floor
	floor := geometry.NewDecorator(board,
		geometry.NewTransformer(core.RotateX(core.Degrees(-90)), geometry.NewPlaneXY()))

	ball := geometry.NewDecorator(
		material.NewUniform(material.Properties{
			Diffuse:          core.NewColor(0.8, 0.3, 0.2),
			SpecularColor:    core.White().Multiply(0.4),
			SpecularExponent: 30,
			BRDF:             material.NewPhongBRDF(5),
		}),
		geometry.NewTransformer(core.Translate(core.NewVec3(0, 1, 0)), geometry.NewSphere()),
	)

	area := lights.NewAreaLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.White(),
		3,
	)

	return New(camera, geometry.NewUnion(ball, floor), area), nil
}
