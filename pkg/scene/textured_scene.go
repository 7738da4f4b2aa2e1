package scene

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/loaders"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

const generatedTextureSize = 256

// sphereTexture loads opts.TexturePath, or generates a UV debug texture
func sphereTexture(opts Options, base material.Properties) (*material.ImageTexture, error) {
	if opts.TexturePath == "" {
		return material.NewUVDebugTexture(generatedTextureSize, generatedTextureSize, base), nil
	}
	img, err := loaders.LoadImage(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(img.Width, img.Height, img.Pixels, base), nil
}

// NewTexturedScene wraps an image around a sphere standing on a floor
// whose color fades from blue to white along one axis
func NewTexturedScene(opts Options) (*Scene, error) {
	config := geometry.DefaultCameraConfig()
	config.Eye = core.NewVec3(0, 2, 6)
	config.LookAt = core.NewVec3(0, 1, 0)
	config.AspectRatio = opts.AspectRatio
	camera, err := geometry.NewPerspectiveCamera(config)
	if err != nil {
		return nil, err
	}

	texture, err := sphereTexture(opts, material.Properties{
		SpecularColor:    core.White().Multiply(0.3),
		SpecularExponent: 40,
		BRDF:             material.LambertianBRDF{},
	})
	if err != nil {
		return nil, err
	}

	ball := geometry.NewDecorator(texture,
		geometry.NewTransformer(core.Translate(core.NewVec3(0, 1, 0)), geometry.NewSphere()))

	// Scale the gradient across a 10x10 patch of the floor
	gradient := material.NewGradientTexture(1, 64,
		core.NewColor(0.2, 0.3, 0.7), core.NewColor(0.9, 0.9, 0.9),
		material.Properties{BRDF: material.LambertianBRDF{}})
	floor := geometry.NewDecorator(
		material.NewTransformed(core.UniformScale(10), gradient),
		geometry.NewTransformer(core.RotateX(core.Degrees(-90)), geometry.NewPlaneXY()))

	return New(camera, geometry.NewUnion(ball, floor),
		lights.NewPointLight(core.NewVec3(3, 5, 4), core.White()),
		lights.NewPointLight(core.NewVec3(-4, 3, 2), core.White().Multiply(0.4)),
	), nil
}
