package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transformation is an affine transform stored together with its inverse
// so that neither direction ever needs a matrix inversion at trace time
type Transformation struct {
	Matrix        mgl64.Mat4
	InverseMatrix mgl64.Mat4
}

// Identity returns the identity transformation
func Identity() Transformation {
	return Transformation{Matrix: mgl64.Ident4(), InverseMatrix: mgl64.Ident4()}
}

// Translate returns a translation by the given displacement
func Translate(displacement Vec3) Transformation {
	d := displacement
	return Transformation{
		Matrix:        mgl64.Translate3D(d.X, d.Y, d.Z),
		InverseMatrix: mgl64.Translate3D(-d.X, -d.Y, -d.Z),
	}
}

// Scale returns a (possibly non-uniform) scale. Factors must be non-zero.
func Scale(sx, sy, sz float64) Transformation {
	Assert(sx != 0 && sy != 0 && sz != 0, "scale factors must be non-zero, got (%v, %v, %v)", sx, sy, sz)
	return Transformation{
		Matrix:        mgl64.Scale3D(sx, sy, sz),
		InverseMatrix: mgl64.Scale3D(1/sx, 1/sy, 1/sz),
	}
}

// UniformScale scales all three axes by the same factor
func UniformScale(s float64) Transformation {
	return Scale(s, s, s)
}

// RotateX rotates around the x axis
func RotateX(angle Angle) Transformation {
	return Transformation{
		Matrix:        mgl64.HomogRotate3DX(angle.Radians()),
		InverseMatrix: mgl64.HomogRotate3DX(-angle.Radians()),
	}
}

// RotateY rotates around the y axis
func RotateY(angle Angle) Transformation {
	return Transformation{
		Matrix:        mgl64.HomogRotate3DY(angle.Radians()),
		InverseMatrix: mgl64.HomogRotate3DY(-angle.Radians()),
	}
}

// RotateZ rotates around the z axis
func RotateZ(angle Angle) Transformation {
	return Transformation{
		Matrix:        mgl64.HomogRotate3DZ(angle.Radians()),
		InverseMatrix: mgl64.HomogRotate3DZ(-angle.Radians()),
	}
}

// Compose returns t ∘ inner: inner is applied first, then t
func (t Transformation) Compose(inner Transformation) Transformation {
	return Transformation{
		Matrix:        t.Matrix.Mul4(inner.Matrix),
		InverseMatrix: inner.InverseMatrix.Mul4(t.InverseMatrix),
	}
}

// Inverse swaps the forward and inverse matrices
func (t Transformation) Inverse() Transformation {
	return Transformation{Matrix: t.InverseMatrix, InverseMatrix: t.Matrix}
}

// TransformPoint applies the transformation to a point (w = 1)
func (t Transformation) TransformPoint(p Vec3) Vec3 {
	return fromMgl(t.Matrix.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

// TransformVector applies the transformation to a direction (w = 0)
func (t Transformation) TransformVector(v Vec3) Vec3 {
	return fromMgl(t.Matrix.Mul4x1(toMgl(v).Vec4(0)).Vec3())
}

// TransformNormal maps a surface normal with the inverse-transpose,
// which keeps it perpendicular to the surface under non-uniform scale.
// The result is not normalized.
func (t Transformation) TransformNormal(n Vec3) Vec3 {
	return fromMgl(t.InverseMatrix.Transpose().Mul4x1(toMgl(n).Vec4(0)).Vec3())
}

// TransformRay maps both origin and direction. The direction is not
// renormalized so ray parameters t stay valid across spaces.
func (t Transformation) TransformRay(r Ray) Ray {
	return Ray{Origin: t.TransformPoint(r.Origin), Direction: t.TransformVector(r.Direction)}
}

// InverseTransformRay maps a ray with the inverse matrix
func (t Transformation) InverseTransformRay(r Ray) Ray {
	return t.Inverse().TransformRay(r)
}

// ApproxEqual compares both matrices elementwise
func (t Transformation) ApproxEqual(other Transformation, tolerance float64) bool {
	return t.Matrix.ApproxEqualThreshold(other.Matrix, tolerance) &&
		t.InverseMatrix.ApproxEqualThreshold(other.InverseMatrix, tolerance)
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
