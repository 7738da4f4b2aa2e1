//go:build !debug

package integrator

import (
	"testing"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/geometry"
	"github.com/df07/go-weighted-raytracer/pkg/material"
	"github.com/df07/go-weighted-raytracer/pkg/scene"
)

// negativeHit always reports a hit behind the ray origin
type negativeHit struct{}

func (negativeHit) FindFirstPositiveHit(ray core.Ray) (*geometry.Hit, bool) {
	props := material.Matte(core.White())
	return &geometry.Hit{T: -3, Ray: ray, Frame: core.StandardFrame(core.NewVec3(0, 0, 0)), MaterialProperties: &props}, true
}

func TestWeightedTrace_ReleaseSkipsAssertions(t *testing.T) {
	if core.AssertionsEnabled() {
		t.Fatal("release build should not check assertions")
	}

	rt, err := NewRayTracer(scene.New(nil, negativeHit{}), DefaultTracerConfig())
	if err != nil {
		t.Fatalf("NewRayTracer: %v", err)
	}
	// No lights and no reflection: the bad hit shades to black without panicking
	if got := rt.Trace(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))); got.IsNotBlack() {
		t.Errorf("expected black, got %v", got)
	}
}
