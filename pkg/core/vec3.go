package core

import (
	"math"
)

// Tolerance used by the approximate comparisons in this package
const Tolerance = 1e-9

// Vec3 represents a 3D point or vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Orthogonal returns a vector perpendicular to v. The result is not normalized
// and its rotation around v is arbitrary. The zero vector maps to zero.
func (v Vec3) Orthogonal() Vec3 {
	// Cross with the axis least aligned with v to stay away from degeneracy
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax <= ay && ax <= az:
		return v.Cross(NewVec3(1, 0, 0))
	case ay <= az:
		return v.Cross(NewVec3(0, 1, 0))
	default:
		return v.Cross(NewVec3(0, 0, 1))
	}
}

// Reflect mirrors v around the given unit normal: r = v - 2*dot(v,n)*n
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// CosAngleBetween returns the cosine of the angle between two non-zero vectors
func (v Vec3) CosAngleBetween(other Vec3) float64 {
	return v.Normalize().Dot(other.Normalize())
}

// IsUnit reports whether the vector has length 1 within tolerance
func (v Vec3) IsUnit() bool {
	return math.Abs(v.LengthSquared()-1) < 1e-6
}

// IsOrthogonalTo reports whether two vectors are perpendicular within tolerance
func (v Vec3) IsOrthogonalTo(other Vec3) bool {
	return math.Abs(v.Dot(other)) < 1e-6
}

// ApproxEqual compares two vectors componentwise with the given tolerance
func (v Vec3) ApproxEqual(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// Vec2 represents a 2D point, used for UV, screen and sampler coordinates
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two 2D vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Multiply returns the 2D vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// ApproxEqual compares two 2D vectors componentwise with the given tolerance
func (v Vec2) ApproxEqual(other Vec2, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance && math.Abs(v.Y-other.Y) <= tolerance
}

// Ray represents a ray with an origin and direction.
// The direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// RayThrough creates a ray starting at from that reaches to at t = 1
func RayThrough(from, to Vec3) Ray {
	return Ray{Origin: from, Direction: to.Subtract(from)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// LocalPosition holds surface-local coordinates of a hit:
// the point in the primitive's own space and its UV parameterization
type LocalPosition struct {
	XYZ Vec3
	UV  Vec2
}
