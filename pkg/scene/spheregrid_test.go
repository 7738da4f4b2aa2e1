package scene

import (
	"testing"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

func TestOklchToRGB(t *testing.T) {
	tests := []struct {
		name    string
		l, c, h float64
		want    core.Color
	}{
		{"white", 1, 0, 0, core.White()},
		{"black", 0, 0, 0, core.Black()},
		{"achromatic ignores hue", 1, 0, 217, core.White()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oklchToRGB(tt.l, tt.c, tt.h); !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	// Vivid colors stay within the displayable range
	for h := 0.0; h < 360; h += 30 {
		c := oklchToRGB(0.7, 0.4, h)
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Errorf("hue %v: %v out of range", h, c)
		}
	}
}

func TestSphereGridScene_SpheresRestOnFloor(t *testing.T) {
	s, err := NewSphereGridScene(DefaultOptions())
	if err != nil {
		t.Fatalf("NewSphereGridScene: %v", err)
	}

	// Straight down onto the first grid sphere: its top is at 2 * radius
	offset := float64(sphereGridSize-1) * sphereGridSpacing / 2
	ray := core.NewRay(core.NewVec3(-offset, 10, -offset), core.NewVec3(0, -1, 0))
	hit, ok := s.Root.FindFirstPositiveHit(ray)
	if !ok {
		t.Fatal("expected to hit the sphere")
	}
	if !hit.GlobalPosition().ApproxEqual(core.NewVec3(-offset, 2*sphereGridRadius, -offset), 1e-9) {
		t.Errorf("unexpected hit position %v", hit.GlobalPosition())
	}

	// Between spheres the ray reaches the disc floor
	between := core.NewRay(core.NewVec3(-offset+sphereGridSpacing/2, 10, -offset+sphereGridSpacing/2), core.NewVec3(0, -1, 0))
	hit, ok = s.Root.FindFirstPositiveHit(between)
	if !ok || hit.GlobalPosition().Y > 1e-9 {
		t.Fatalf("expected to hit the floor, got %v %v", hit, ok)
	}
	if hit.MaterialProperties == nil || hit.MaterialProperties.BRDF == nil {
		t.Error("floor should carry a BRDF for indirect light")
	}
	if !hit.Normal().ApproxEqual(core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("floor normal should face up, got %v", hit.Normal())
	}

	// Straight back into the triangle backdrop
	back := core.NewRay(core.NewVec3(1, 2, 0), core.NewVec3(0, 0, -1))
	hit, ok = s.Root.FindFirstPositiveHit(back)
	if !ok {
		t.Fatal("expected to hit the backdrop")
	}
	if got := hit.GlobalPosition().Z; got > -offset-2+1e-9 || got < -offset-2-1e-9 {
		t.Errorf("expected backdrop at z=%v, got %v", -offset-2, got)
	}

}
