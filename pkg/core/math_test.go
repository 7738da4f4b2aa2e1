package core

import (
	"math"
	"testing"
)

func TestQuadraticEquation_Solve(t *testing.T) {
	tests := []struct {
		name   string
		eq     QuadraticEquation
		wantOk bool
		t1, t2 float64
	}{
		{"two roots", QuadraticEquation{A: 1, B: -3, C: 2}, true, 1, 2},
		{"negative leading coefficient", QuadraticEquation{A: -1, B: 3, C: -2}, true, 1, 2},
		{"double root", QuadraticEquation{A: 1, B: -2, C: 1}, true, 1, 1},
		{"no real roots", QuadraticEquation{A: 1, B: 0, C: 1}, false, 0, 0},
		{"degenerate", QuadraticEquation{A: 0, B: 1, C: 1}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2, ok := tt.eq.Solve()
			if ok != tt.wantOk {
				t.Fatalf("expected ok=%v, got %v", tt.wantOk, ok)
			}
			if !ok {
				return
			}
			if math.Abs(t1-tt.t1) > 1e-9 || math.Abs(t2-tt.t2) > 1e-9 {
				t.Errorf("expected roots (%v, %v), got (%v, %v)", tt.t1, tt.t2, t1, t2)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	got := NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0))
	if !got.ApproxEqual(NewVec3(1, 1, 0), 1e-9) {
		t.Errorf("expected (1,1,0), got %v", got)
	}
}

func TestVec3_Orthogonal(t *testing.T) {
	for _, v := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 0, 1), NewVec3(1, 2, 3), NewVec3(-5, 0.1, 0.1)} {
		o := v.Orthogonal()
		if o.Length() == 0 {
			t.Errorf("%v: orthogonal is zero", v)
		}
		if !v.IsOrthogonalTo(o) {
			t.Errorf("%v: %v is not orthogonal", v, o)
		}
	}
}

func TestRayThrough(t *testing.T) {
	ray := RayThrough(NewVec3(1, 1, 1), NewVec3(3, 0, 1))
	if got := ray.At(1); !got.ApproxEqual(NewVec3(3, 0, 1), 1e-9) {
		t.Errorf("expected target at t=1, got %v", got)
	}
}

func TestSpherical_RoundTrip(t *testing.T) {
	points := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(0, 3, 0),
		NewVec3(1, 2, -3),
		NewVec3(-2, -1, 0.5),
	}

	for _, p := range points {
		s := ToSpherical(p)
		if s.Azimuth.Degrees() < -180 || s.Azimuth.Degrees() > 180 {
			t.Errorf("%v: azimuth %v out of range", p, s.Azimuth.Degrees())
		}
		if s.Elevation.Degrees() < -90 || s.Elevation.Degrees() > 90 {
			t.Errorf("%v: elevation %v out of range", p, s.Elevation.Degrees())
		}
		if got := s.ToCartesian(); !got.ApproxEqual(p, 1e-9) {
			t.Errorf("round trip of %v gave %v", p, got)
		}
	}
}

func TestSpherical_Axes(t *testing.T) {
	s := ToSpherical(NewVec3(0, 0, -1))
	if math.Abs(s.Azimuth.Degrees()-90) > 1e-9 {
		t.Errorf("expected azimuth 90° for -z, got %v", s.Azimuth.Degrees())
	}
	s = ToSpherical(NewVec3(0, 1, 0))
	if math.Abs(s.Elevation.Degrees()-90) > 1e-9 {
		t.Errorf("expected elevation 90° for +y, got %v", s.Elevation.Degrees())
	}
}

func TestIntervalMapper(t *testing.T) {
	m := NewIntervalMapper(NewInterval(-180, 180), NewInterval(0, 1))
	tests := []struct{ in, out float64 }{
		{-180, 0},
		{0, 0.5},
		{90, 0.75},
		{180, 1},
	}
	for _, tt := range tests {
		if got := m.Map(tt.in); math.Abs(got-tt.out) > 1e-9 {
			t.Errorf("Map(%v): expected %v, got %v", tt.in, tt.out, got)
		}
	}

	if !NewInterval(0, 1).Contains(0.5) || NewInterval(0, 1).Contains(1.5) {
		t.Error("Contains gave the wrong answer")
	}
}

func TestColor_Operations(t *testing.T) {
	c := NewColor(0.2, 0.4, 0.6)
	if got := c.Intensity(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("intensity: expected 0.4, got %v", got)
	}
	if got := c.Divide(0); got.IsNotBlack() {
		t.Errorf("divide by zero should be black, got %v", got)
	}
	if got := c.MultiplyColor(NewColor(2, 0, 1)); !got.ApproxEqual(NewColor(0.4, 0, 0.6), 1e-9) {
		t.Errorf("multiply color: got %v", got)
	}
	if Black().IsNotBlack() || !White().IsNotBlack() {
		t.Error("IsNotBlack gave the wrong answer")
	}
}
