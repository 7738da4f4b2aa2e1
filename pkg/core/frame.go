package core

import "github.com/go-gl/mathgl/mgl64"

// Frame is an orthonormal coordinate system anchored at Origin.
// For shading frames Z is the outward surface normal and X, Y span the tangent plane.
type Frame struct {
	Origin Vec3
	X      Vec3
	Y      Vec3
	Z      Vec3
}

// StandardFrame returns the world axes anchored at origin
func StandardFrame(origin Vec3) Frame {
	return Frame{
		Origin: origin,
		X:      NewVec3(1, 0, 0),
		Y:      NewVec3(0, 1, 0),
		Z:      NewVec3(0, 0, 1),
	}
}

// ToWorld maps a direction expressed in frame coordinates to world space
func (f Frame) ToWorld(local Vec3) Vec3 {
	return f.X.Multiply(local.X).Add(f.Y.Multiply(local.Y)).Add(f.Z.Multiply(local.Z))
}

// ToLocal maps a world direction into frame coordinates
func (f Frame) ToLocal(world Vec3) Vec3 {
	return NewVec3(f.X.Dot(world), f.Y.Dot(world), f.Z.Dot(world))
}

// Transformation returns the frame as a matrix pair. The inverse is the
// rigid inverse, which is exact because the axes are orthonormal.
func (f Frame) Transformation() Transformation {
	o := f.Origin
	matrix := mgl64.Mat4{
		f.X.X, f.X.Y, f.X.Z, 0,
		f.Y.X, f.Y.Y, f.Y.Z, 0,
		f.Z.X, f.Z.Y, f.Z.Z, 0,
		o.X, o.Y, o.Z, 1,
	}
	inverse := mgl64.Mat4{
		f.X.X, f.Y.X, f.Z.X, 0,
		f.X.Y, f.Y.Y, f.Z.Y, 0,
		f.X.Z, f.Y.Z, f.Z.Z, 0,
		-f.X.Dot(o), -f.Y.Dot(o), -f.Z.Dot(o), 1,
	}
	return Transformation{Matrix: matrix, InverseMatrix: inverse}
}

// Transform maps the frame through t and re-orthonormalizes it.
// The normal goes through the inverse-transpose; the tangents are then
// Gram-Schmidt projected against it, keeping the frame's handedness.
func (f Frame) Transform(t Transformation) Frame {
	z := t.TransformNormal(f.Z).Normalize()

	x := t.TransformVector(f.X)
	x = x.Subtract(z.Multiply(x.Dot(z))).Normalize()

	y := t.TransformVector(f.Y)
	y = y.Subtract(z.Multiply(y.Dot(z))).Subtract(x.Multiply(y.Dot(x))).Normalize()

	return Frame{
		Origin: t.TransformPoint(f.Origin),
		X:      x,
		Y:      y,
		Z:      z,
	}
}

// IsOrthonormal reports whether all axes are unit length and mutually perpendicular
func (f Frame) IsOrthonormal() bool {
	return f.X.IsUnit() && f.Y.IsUnit() && f.Z.IsUnit() &&
		f.X.IsOrthogonalTo(f.Y) && f.X.IsOrthogonalTo(f.Z) && f.Y.IsOrthogonalTo(f.Z)
}
