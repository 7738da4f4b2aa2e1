package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/lights"
	"github.com/df07/go-weighted-raytracer/pkg/material"
	"github.com/df07/go-weighted-raytracer/pkg/sampling"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

// RayTracer is a recursive ray tracer. Every ray carries a weight that
// shrinks with each bounce; once it drops below the configured minimum the
// ray contributes nothing, which bounds the recursion.
// A RayTracer holds no mutable state and may be shared between goroutines.
type RayTracer struct {
	scene  *scene.Scene
	config TracerConfig
}

// NewRayTracer creates a ray tracer for the scene
func NewRayTracer(s *scene.Scene, config TracerConfig) (*RayTracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("%w: scene has no root primitive", ErrInvalidConfig)
	}
	return &RayTracer{scene: s, config: config}, nil
}

// Config returns the tracer's thresholds
func (rt *RayTracer) Config() TracerConfig {
	return rt.config
}

// Trace returns the color seen along ray
func (rt *RayTracer) Trace(ray core.Ray) core.Color {
	return rt.WeightedTrace(ray, 1.0)
}

// WeightedTrace returns the color seen along ray, or black if weight is too
// small to matter
func (rt *RayTracer) WeightedTrace(ray core.Ray, weight float64) core.Color {
	if weight < rt.config.MinimumWeight {
		return core.Black()
	}

	hit, ok := rt.scene.Root.FindFirstPositiveHit(ray)
	if !ok {
		return core.Black()
	}
	geometry.AssertValidHit(hit)
	if hit.MaterialProperties == nil {
		return core.Black()
	}
	props := hit.MaterialProperties

	result := rt.directLight(hit, props)
	result = result.Add(rt.reflection(hit, props, weight))
	result = result.Add(rt.indirectLight(hit, props, weight))
	return result
}

func (rt *RayTracer) directLight(hit *geometry.Hit, props *material.Properties) core.Color {
	result := core.Black()
	for _, source := range rt.scene.LightSources {
		result = result.Add(rt.lightSourceContribution(hit, props, source))
	}
	return result
}

// lightSourceContribution averages the contributions of all rays of one source
func (rt *RayTracer) lightSourceContribution(hit *geometry.Hit, props *material.Properties, source lights.LightSource) core.Color {
	sum := core.Black()
	count := 0
	for lightRay := range source.LightRaysTo(hit.GlobalPosition()) {
		sum = sum.Add(rt.lightRayContribution(hit, props, lightRay))
		count++
	}
	return sum.Divide(float64(count))
}

func (rt *RayTracer) lightRayContribution(hit *geometry.Hit, props *material.Properties, lightRay lights.LightRay) core.Color {
	if rt.isShadowed(lightRay.Ray) {
		return core.Black()
	}

	normal := hit.Normal()
	toHit := lightRay.Ray.Direction.Normalize()
	cos := -normal.Dot(toHit)
	if cos <= 0 {
		return core.Black()
	}

	result := lightRay.Color.Multiply(cos).MultiplyColor(props.Diffuse)

	if props.SpecularColor.IsNotBlack() && props.SpecularExponent > 0 {
		toEye := hit.Ray.Direction.Negate().Normalize()
		alignment := toHit.Reflect(normal).Dot(toEye)
		if alignment > 0 {
			specular := lightRay.Color.MultiplyColor(props.SpecularColor).Multiply(math.Pow(alignment, props.SpecularExponent))
			result = result.Add(specular)
		}
	}

	return result
}

// isShadowed reports whether something blocks the light ray before it
// reaches the shaded point at t = 1
func (rt *RayTracer) isShadowed(ray core.Ray) bool {
	blocker, ok := rt.scene.Root.FindFirstPositiveHit(ray)
	return ok && blocker.T < rt.config.ShadowThreshold
}

func (rt *RayTracer) reflection(hit *geometry.Hit, props *material.Properties, weight float64) core.Color {
	if !props.Reflection.IsNotBlack() {
		return core.Black()
	}

	normal := hit.Normal()
	reflected := core.NewRay(rt.offsetOrigin(hit), hit.Ray.Direction.Reflect(normal))
	return rt.WeightedTrace(reflected, weight*props.Reflection.Intensity()).MultiplyColor(props.Reflection)
}

// indirectLight estimates light arriving from the rest of the scene by
// tracing a fixed set of stratified hemisphere directions weighted by the BRDF
func (rt *RayTracer) indirectLight(hit *geometry.Hit, props *material.Properties, weight float64) core.Color {
	if props.BRDF == nil || rt.config.IndirectSamples == 0 {
		return core.Black()
	}

	frame := hit.Frame
	origin := rt.offsetOrigin(hit)
	outgoing := frame.ToLocal(hit.Ray.Direction.Negate().Normalize())
	childWeight := weight * rt.config.IndirectAttenuation

	// Each trace gets its own sampler on the stack so the tracer stays stateless
	hemisphere := sampling.MakeStratifiedHemisphereSampler()

	accumulated := core.Black()
	totalWeight := 0.0
	for i := 0; i < rt.config.IndirectSamples; i++ {
		local := hemisphere.Current()
		hemisphere.Refine()

		w := props.BRDF.Compute(outgoing, local)
		if w <= 0 {
			continue
		}
		totalWeight += w

		// local.Z is the cosine against the normal
		incoming := rt.WeightedTrace(core.NewRay(origin, frame.ToWorld(local)), childWeight)
		accumulated = accumulated.Add(incoming.Multiply(local.Z * w))
	}

	return accumulated.Divide(totalWeight).MultiplyColor(props.Diffuse)
}

func (rt *RayTracer) offsetOrigin(hit *geometry.Hit) core.Vec3 {
	return hit.GlobalPosition().Add(hit.Normal().Multiply(rt.config.SurfaceOffset))
}
