package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// SpringConfig controls the damped spring that drives a Spring animation
type SpringConfig struct {
	FPS              int
	AngularFrequency float64 // higher is faster
	Damping          float64 // 1 is critically damped, below 1 overshoots
}

// DefaultSpringConfig returns a critically damped spring at 30 frames per second
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{FPS: 30, AngularFrequency: 4.0, Damping: 1.0}
}

// Spring moves a point from Start toward End along a damped spring.
// The motion is simulated once per frame up front, so At is a lookup and
// the animation is deterministic.
type Spring struct {
	samples []core.Vec3
	fps     int
	length  Duration
}

// NewSpring simulates a spring from start to end over length
func NewSpring(start, end core.Vec3, length Duration, config SpringConfig) *Spring {
	fps := max(1, config.FPS)
	spring := harmonica.NewSpring(harmonica.FPS(fps), config.AngularFrequency, config.Damping)

	steps := int(math.Ceil(length.Seconds()*float64(fps))) + 1
	samples := make([]core.Vec3, steps)

	pos := start
	var vel core.Vec3
	for i := range samples {
		samples[i] = pos
		pos.X, vel.X = spring.Update(pos.X, vel.X, end.X)
		pos.Y, vel.Y = spring.Update(pos.Y, vel.Y, end.Y)
		pos.Z, vel.Z = spring.Update(pos.Z, vel.Z, end.Z)
	}

	return &Spring{samples: samples, fps: fps, length: length}
}

// At returns the simulated position, interpolating between frames
func (s *Spring) At(t TimeStamp) core.Vec3 {
	frame := max(0, t.Seconds()*float64(s.fps))
	i := int(math.Floor(frame))
	if i >= len(s.samples)-1 {
		return s.samples[len(s.samples)-1]
	}
	return InterpolateVec3(s.samples[i], s.samples[i+1], frame-float64(i))
}

// Duration returns the animation length
func (s *Spring) Duration() Duration { return s.length }
