package integrator

import (
	"github.com/df07/go-weighted-raytracer/pkg/core"
)

// Integrator computes the color seen along a camera ray.
// Implementations must be safe for concurrent use.
type Integrator interface {
	Trace(ray core.Ray) core.Color
}
