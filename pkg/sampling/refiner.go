// Package sampling provides deterministic, progressively refining sample
// streams: a stratified 2D sampler and a hemisphere direction sampler built on it.
package sampling

// Refiner is an infinite stream of progressively better samples.
// Current returns the sample at the present position without advancing;
// Refine advances to the next one. Callers decide how many refinements to consume.
type Refiner[T any] interface {
	Current() T
	Refine()
}

// Constant is a Refiner whose value never changes
type Constant[T any] struct {
	Value T
}

// NewConstant creates a constant refiner
func NewConstant[T any](value T) *Constant[T] {
	return &Constant[T]{Value: value}
}

// Current returns the constant value
func (c *Constant[T]) Current() T { return c.Value }

// Refine does nothing
func (c *Constant[T]) Refine() {}

// Take returns the first n samples of r, refining after each one.
// It leaves r positioned n refinements further on.
func Take[T any](r Refiner[T], n int) []T {
	samples := make([]T, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, r.Current())
		r.Refine()
	}
	return samples
}
