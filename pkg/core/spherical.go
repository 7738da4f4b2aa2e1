package core

import "math"

// Angle is a plane angle stored in radians
type Angle float64

// Degrees creates an angle from degrees
func Degrees(degrees float64) Angle {
	return Angle(degrees * math.Pi / 180)
}

// Radians creates an angle from radians
func Radians(radians float64) Angle {
	return Angle(radians)
}

// Radians returns the angle in radians
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Sin returns the sine of the angle
func (a Angle) Sin() float64 { return math.Sin(float64(a)) }

// Cos returns the cosine of the angle
func (a Angle) Cos() float64 { return math.Cos(float64(a)) }

// Spherical coordinates. Azimuth is measured in the xz plane from +x,
// elevation from the xz plane toward +y.
type Spherical struct {
	Radius    float64
	Azimuth   Angle
	Elevation Angle
}

// ToCartesian converts spherical coordinates to a cartesian point
func (s Spherical) ToCartesian() Vec3 {
	return Vec3{
		X: s.Radius * s.Azimuth.Cos() * s.Elevation.Cos(),
		Y: s.Radius * s.Elevation.Sin(),
		Z: -s.Radius * s.Azimuth.Sin() * s.Elevation.Cos(),
	}
}

// ToSpherical converts a cartesian point to spherical coordinates.
// Azimuth lies in [-180°, 180°] and elevation in [-90°, 90°].
func ToSpherical(p Vec3) Spherical {
	radius := p.Length()
	azimuth := Radians(-math.Atan2(p.Z, p.X))

	var elevation Angle
	if radius > 0 {
		cos := max(-1, min(1, p.Y/radius))
		elevation = Degrees(90) - Radians(math.Acos(cos))
	}

	return Spherical{Radius: radius, Azimuth: azimuth, Elevation: elevation}
}

// Interval is a closed interval [Lower, Upper]
type Interval struct {
	Lower, Upper float64
}

// NewInterval creates an interval
func NewInterval(lower, upper float64) Interval {
	return Interval{Lower: lower, Upper: upper}
}

// Position returns where x lies relative to the bounds (0 at Lower, 1 at Upper)
func (i Interval) Position(x float64) float64 {
	return (x - i.Lower) / (i.Upper - i.Lower)
}

// FromPosition is the inverse of Position
func (i Interval) FromPosition(t float64) float64 {
	return i.Lower + (i.Upper-i.Lower)*t
}

// Contains reports whether x lies within the bounds
func (i Interval) Contains(x float64) bool {
	t := i.Position(x)
	return 0 <= t && t <= 1
}

// IntervalMapper maps one interval linearly onto another
type IntervalMapper struct {
	Source Interval
	Target Interval
}

// NewIntervalMapper creates a mapper from source to target
func NewIntervalMapper(source, target Interval) IntervalMapper {
	return IntervalMapper{Source: source, Target: target}
}

// Map maps x from the source interval to the target interval
func (m IntervalMapper) Map(x float64) float64 {
	return m.Target.FromPosition(m.Source.Position(x))
}
