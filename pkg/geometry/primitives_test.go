package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weighted-raytracer/pkg/core"
	"github.com/df07/go-weighted-raytracer/pkg/material"
)

func TestSphere_FindFirstPositiveHit(t *testing.T) {
	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "from +x",
			origin:         core.NewVec3(5, 0, 0),
			direction:      core.NewVec3(-1, 0, 0),
			expectHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:           "from -y with scaled direction",
			origin:         core.NewVec3(0, -9, 0),
			direction:      core.NewVec3(0, 2, 0),
			expectHit:      true,
			expectedT:      4,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:           "from inside",
			origin:         core.NewVec3(0, 0, 0),
			direction:      core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "pointing away",
			origin:    core.NewVec3(5, 0, 0),
			direction: core.NewVec3(1, 0, 0),
		},
		{
			name:      "miss",
			origin:    core.NewVec3(5, 2, 0),
			direction: core.NewVec3(-1, 0, 0),
		},
		{
			name:      "zero direction",
			origin:    core.NewVec3(5, 0, 0),
			direction: core.NewVec3(0, 0, 0),
		},
	}

	sphere := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.FindFirstPositiveHit(core.NewRay(tt.origin, tt.direction))
			if ok != tt.expectHit {
				t.Fatalf("expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if !hit.Normal().ApproxEqual(tt.expectedNormal, 1e-9) {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, hit.Normal())
			}
			if !hit.Frame.IsOrthonormal() {
				t.Errorf("frame not orthonormal: %+v", hit.Frame)
			}
			if hit.MaterialProperties != nil {
				t.Error("bare sphere should not carry material properties")
			}
		})
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere()

	// Hitting +x head on: azimuth 0, elevation 0
	hit, ok := sphere.FindFirstPositiveHit(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)))
	if !ok {
		t.Fatal("expected hit")
	}
	if !hit.LocalPosition.UV.ApproxEqual(core.NewVec2(0.5, 0.5), 1e-9) {
		t.Errorf("expected uv (0.5,0.5), got %v", hit.LocalPosition.UV)
	}

	// Top of the sphere: elevation 90°
	hit, ok = sphere.FindFirstPositiveHit(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.LocalPosition.UV.Y-1) > 1e-9 {
		t.Errorf("expected v=1 at the pole, got %v", hit.LocalPosition.UV.Y)
	}
}

func TestPlaneXY_FindFirstPositiveHit(t *testing.T) {
	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
		expectedUV     core.Vec2
	}{
		{
			name:           "from above",
			origin:         core.NewVec3(1, 2, 5),
			direction:      core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedT:      5,
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedUV:     core.NewVec2(1, 2),
		},
		{
			name:           "from below",
			origin:         core.NewVec3(0, 0, -5),
			direction:      core.NewVec3(1, 0, 2),
			expectHit:      true,
			expectedT:      2.5,
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedUV:     core.NewVec2(2.5, 0),
		},
		{
			name:      "parallel",
			origin:    core.NewVec3(0, 0, 5),
			direction: core.NewVec3(1, 0, 0),
		},
		{
			name:      "pointing away",
			origin:    core.NewVec3(0, 0, 5),
			direction: core.NewVec3(0, 0, 1),
		},
	}

	plane := NewPlaneXY()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := plane.FindFirstPositiveHit(core.NewRay(tt.origin, tt.direction))
			if ok != tt.expectHit {
				t.Fatalf("expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if !hit.Normal().ApproxEqual(tt.expectedNormal, 1e-9) {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, hit.Normal())
			}
			if !hit.LocalPosition.UV.ApproxEqual(tt.expectedUV, 1e-9) {
				t.Errorf("expected uv %v, got %v", tt.expectedUV, hit.LocalPosition.UV)
			}
			if !hit.Frame.X.Cross(hit.Frame.Y).ApproxEqual(hit.Frame.Z, 1e-9) {
				t.Errorf("frame is not right-handed: %+v", hit.Frame)
			}
		})
	}
}

func TestUnion_ClosestHitWins(t *testing.T) {
	near := NewTransformer(core.Translate(core.NewVec3(0, 0, 2)), NewSphere())
	far := NewTransformer(core.Translate(core.NewVec3(0, 0, -2)), NewSphere())
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))

	for _, u := range []*Union{NewUnion(near, far), NewUnion(far, near)} {
		hit, ok := u.FindFirstPositiveHit(ray)
		if !ok {
			t.Fatal("expected hit")
		}
		if math.Abs(hit.T-7) > 1e-9 {
			t.Errorf("expected t=7, got %v", hit.T)
		}
	}

	if _, ok := NewUnion().FindFirstPositiveHit(ray); ok {
		t.Error("empty union should never hit")
	}
}

func TestUnion_TieKeepsFirstChild(t *testing.T) {
	red := NewDecorator(material.NewUniform(material.Matte(core.Red())), NewSphere())
	green := NewDecorator(material.NewUniform(material.Matte(core.Green())), NewSphere())

	hit, ok := NewUnion(red, green).FindFirstPositiveHit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.MaterialProperties.Diffuse != core.Red() {
		t.Errorf("expected the first child to win, got %v", hit.MaterialProperties.Diffuse)
	}
}

func TestTransformer_TranslatedSphere(t *testing.T) {
	offset := core.NewVec3(3, -1, 2)
	moved := NewTransformer(core.Translate(offset), NewSphere())
	sphere := NewSphere()

	rays := []core.Ray{
		core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(0.2, 4, 0.1), core.NewVec3(0, -2, 0)),
		core.NewRay(core.NewVec3(-3, -3, -3), core.NewVec3(1, 1, 1)),
	}

	// Translating the ray and the sphere together must not change the hit
	for _, ray := range rays {
		want, wantOk := sphere.FindFirstPositiveHit(ray)
		got, gotOk := moved.FindFirstPositiveHit(core.NewRay(ray.Origin.Add(offset), ray.Direction))
		if wantOk != gotOk {
			t.Fatalf("ray %+v: hit mismatch %v vs %v", ray, wantOk, gotOk)
		}
		if !wantOk {
			continue
		}
		if math.Abs(want.T-got.T) > 1e-9 {
			t.Errorf("t mismatch: %v vs %v", want.T, got.T)
		}
		if !got.GlobalPosition().ApproxEqual(want.GlobalPosition().Add(offset), 1e-9) {
			t.Errorf("position mismatch: %v vs %v", got.GlobalPosition(), want.GlobalPosition().Add(offset))
		}
		if !got.Normal().ApproxEqual(want.Normal(), 1e-9) {
			t.Errorf("normal mismatch: %v vs %v", got.Normal(), want.Normal())
		}
	}
}

func TestTransformer_ScaledSpherePreservesT(t *testing.T) {
	// Ellipsoid with x radius 2; hit from (5,0,0) reaches x=2 at t=3
	ellipsoid := NewTransformer(core.Scale(2, 1, 1), NewSphere())
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hit, ok := ellipsoid.FindFirstPositiveHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("expected t=3, got %v", hit.T)
	}
	if !hit.GlobalPosition().ApproxEqual(ray.At(hit.T), 1e-9) {
		t.Errorf("global position %v does not lie on the ray", hit.GlobalPosition())
	}
	if !hit.Normal().ApproxEqual(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("expected normal (1,0,0), got %v", hit.Normal())
	}
	if !hit.Frame.IsOrthonormal() {
		t.Errorf("frame not orthonormal: %+v", hit.Frame)
	}
}

func TestTransformer_NonUniformScaleNormal(t *testing.T) {
	// Point (2/√2, 1/√2, 0) on the ellipsoid x²/4 + y² = 1 has normal ∝ (x/4, y, 0)
	ellipsoid := NewTransformer(core.Scale(2, 1, 1), NewSphere())
	target := core.NewVec3(2/math.Sqrt2, 1/math.Sqrt2, 0)
	ray := core.RayThrough(core.NewVec3(5, 5, 0), target)

	hit, ok := ellipsoid.FindFirstPositiveHit(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if !hit.GlobalPosition().ApproxEqual(target, 1e-9) {
		t.Fatalf("expected hit at %v, got %v", target, hit.GlobalPosition())
	}
	expected := core.NewVec3(target.X/4, target.Y, 0).Normalize()
	if !hit.Normal().ApproxEqual(expected, 1e-9) {
		t.Errorf("expected normal %v, got %v", expected, hit.Normal())
	}
}

func TestDecorator_InnerMaterialWins(t *testing.T) {
	inner := NewDecorator(material.NewUniform(material.Matte(core.Red())), NewSphere())
	outer := NewDecorator(material.NewUniform(material.Matte(core.Blue())), inner)

	hit, ok := outer.FindFirstPositiveHit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.MaterialProperties == nil || hit.MaterialProperties.Diffuse != core.Red() {
		t.Errorf("expected inner red material, got %+v", hit.MaterialProperties)
	}
}

func TestDecorator_SharedPrimitive(t *testing.T) {
	// One sphere shared by two differently decorated and placed parents
	shared := NewSphere()
	left := NewDecorator(material.NewUniform(material.Matte(core.Red())),
		NewTransformer(core.Translate(core.NewVec3(-2, 0, 0)), shared))
	right := NewDecorator(material.NewUniform(material.Matte(core.Green())),
		NewTransformer(core.Translate(core.NewVec3(2, 0, 0)), shared))
	scene := NewUnion(left, right)

	tests := []struct {
		x    float64
		want core.Color
	}{
		{-2, core.Red()},
		{2, core.Green()},
	}
	for _, tt := range tests {
		hit, ok := scene.FindFirstPositiveHit(core.NewRay(core.NewVec3(tt.x, 0, 5), core.NewVec3(0, 0, -1)))
		if !ok {
			t.Fatalf("x=%v: expected hit", tt.x)
		}
		if hit.MaterialProperties.Diffuse != tt.want {
			t.Errorf("x=%v: expected %v, got %v", tt.x, tt.want, hit.MaterialProperties.Diffuse)
		}
	}
}

func TestSmallestPositive(t *testing.T) {
	a := &Hit{T: 2}
	b := &Hit{T: 1}
	negative := &Hit{T: -1}

	tests := []struct {
		name string
		a, b *Hit
		want *Hit
	}{
		{"both positive", a, b, b},
		{"tie keeps first", b, &Hit{T: 1}, b},
		{"nil first", nil, a, a},
		{"nil second", a, nil, a},
		{"negative ignored", negative, a, a},
		{"both nil", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmallestPositive(tt.a, tt.b); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
