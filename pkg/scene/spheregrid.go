package scene

import (
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

const (
	sphereGridSize    = 6
	sphereGridSpacing = 1.0
	sphereGridRadius  = 0.35
)

// oklchToRGB converts OKLCH to linear RGB clamped to [0, 1].
// l: lightness (0-1), c: chroma (0-0.4), h: hue in degrees.
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	return core.NewColor(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	).Clamp(0, 1)
}

// NewSphereGridScene places a grid of spheres on a disc in front of a
// triangle backdrop. Every sphere is the same shared primitive; hue varies
// along x and chroma along z.
func NewSphereGridScene(opts Options) (*Scene, error) {
	config := geometry.DefaultCameraConfig()
	config.Eye = core.NewVec3(0, 5, 9)
	config.LookAt = core.NewVec3(0, 0.4, 0)
	config.AspectRatio = opts.AspectRatio
	camera, err := geometry.NewPerspectiveCamera(config)
	if err != nil {
		return nil, err
	}

	sphere := geometry.NewSphere()
	children := make([]geometry.Primitive, 0, sphereGridSize*sphereGridSize+2)

	offset := float64(sphereGridSize-1) * sphereGridSpacing / 2
	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			hue := float64(i) / float64(sphereGridSize-1) * 360
			chroma := 0.05 + float64(j)/float64(sphereGridSize-1)*0.2
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)

			position := core.NewVec3(
				float64(i)*sphereGridSpacing-offset,
				sphereGridRadius,
				float64(j)*sphereGridSpacing-offset,
			)
			children = append(children, geometry.NewDecorator(
				material.NewUniform(material.Properties{
					Diffuse:          oklchToRGB(lightness, chroma, hue),
					Reflection:       core.White().Multiply(0.25),
					SpecularColor:    core.White().Multiply(0.6),
					SpecularExponent: 60,
				}),
				geometry.NewTransformer(core.Translate(position).Compose(core.UniformScale(sphereGridRadius)), sphere),
			))
		}
	}

	floor := geometry.NewDecorator(
		material.NewUniform(material.Properties{Diffuse: core.NewColor(0.5, 0.5, 0.5), BRDF: material.LambertianBRDF{}}),
		geometry.NewTransformer(core.RotateX(core.Degrees(-90)).Compose(core.UniformScale(offset+2)), geometry.NewDisc()),
	)

	// Two triangles make the backdrop rectangle
	backdropMaterial := material.NewUniform(material.Matte(core.NewColor(0.85, 0.85, 0.8)))
	bl, br := core.NewVec3(-6, 0, -offset-2), core.NewVec3(6, 0, -offset-2)
	tl, tr := core.NewVec3(-6, 6, -offset-2), core.NewVec3(6, 6, -offset-2)
	backdrop := geometry.NewDecorator(backdropMaterial, geometry.NewUnion(
		geometry.NewTriangle(bl, br, tr),
		geometry.NewTriangle(bl, tr, tl),
	))

	children = append(children, floor, backdrop)

	return New(camera, geometry.NewUnion(children...),
		lights.NewPointLight(core.NewVec3(4, 8, 6), core.White().Multiply(0.8)),
		lights.NewAreaLight(core.NewVec3(-4, 6, 2), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), core.White().Multiply(0.4), 2),
	), nil
}
