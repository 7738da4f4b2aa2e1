// Package animation describes values that change over time and the
// timeline along which animated scenes are rendered frame by frame.
package animation

import (
	"time"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Duration is a length of time
type Duration = time.Duration

// TimeStamp is a point in time measured from the start of an animation
type TimeStamp time.Duration

// Seconds returns the time stamp in seconds
func (t TimeStamp) Seconds() float64 {
	return time.Duration(t).Seconds()
}

// Add returns the time stamp d later
func (t TimeStamp) Add(d Duration) TimeStamp {
	return t + TimeStamp(d)
}

// Sub returns the duration between two time stamps
func (t TimeStamp) Sub(other TimeStamp) Duration {
	return Duration(t - other)
}

// Seconds converts a number of seconds to a Duration
func Seconds(s float64) Duration {
	return Duration(s * float64(time.Second))
}

// Animation is a value of type T that varies over a fixed duration
type Animation[T any] interface {
	At(t TimeStamp) T
	Duration() Duration
}

// Constant is an animation that never changes
type Constant[T any] struct {
	Value  T
	Length Duration
}

// At returns the constant value
func (c Constant[T]) At(TimeStamp) T { return c.Value }

// Duration returns the animation length
func (c Constant[T]) Duration() Duration { return c.Length }

// Func adapts a function into an animation
type Func[T any] struct {
	F      func(t TimeStamp) T
	Length Duration
}

// At calls the function
func (f Func[T]) At(t TimeStamp) T { return f.F(t) }

// Duration returns the animation length
func (f Func[T]) Duration() Duration { return f.Length }

// Map transforms the values of an animation, keeping its duration
func Map[T, U any](a Animation[T], f func(T) U) Animation[U] {
	return Func[U]{
		F:      func(t TimeStamp) U { return f(a.At(t)) },
		Length: a.Duration(),
	}
}

// Interpolator blends two values; fraction 0 yields start and 1 yields end
type Interpolator[T any] func(start, end T, fraction float64) T

// InterpolateFloat interpolates two numbers linearly
func InterpolateFloat(start, end, fraction float64) float64 {
	return start + (end-start)*fraction
}

// InterpolateVec3 interpolates two vectors componentwise
func InterpolateVec3(start, end core.Vec3, fraction float64) core.Vec3 {
	return start.Add(end.Subtract(start).Multiply(fraction))
}

// Linear moves from Start to End at constant speed. Times outside the
// duration extrapolate along the same line.
type Linear[T any] struct {
	Start       T
	End         T
	Length      Duration
	Interpolate Interpolator[T]
}

// NewLinear creates a linear animation of floats
func NewLinear(start, end float64, length Duration) Linear[float64] {
	return Linear[float64]{Start: start, End: end, Length: length, Interpolate: InterpolateFloat}
}

// NewLinearVec3 creates a linear animation of vectors
func NewLinearVec3(start, end core.Vec3, length Duration) Linear[core.Vec3] {
	return Linear[core.Vec3]{Start: start, End: end, Length: length, Interpolate: InterpolateVec3}
}

// At interpolates between Start and End
func (l Linear[T]) At(t TimeStamp) T {
	if l.Length <= 0 {
		return l.End
	}
	return l.Interpolate(l.Start, l.End, float64(t)/float64(l.Length))
}

// Duration returns the animation length
func (l Linear[T]) Duration() Duration { return l.Length }
