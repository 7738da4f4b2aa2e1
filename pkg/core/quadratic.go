package core

import "math"

// QuadraticEquation represents a*x² + b*x + c = 0
type QuadraticEquation struct {
	A, B, C float64
}

// Solve returns both real roots in ascending order.
// ok is false when the discriminant is negative or a is zero.
func (q QuadraticEquation) Solve() (t1, t2 float64, ok bool) {
	if q.A == 0 {
		return 0, 0, false
	}

	discriminant := q.B*q.B - 4*q.A*q.C
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-q.B - sqrtD) / (2 * q.A)
	t2 = (-q.B + sqrtD) / (2 * q.A)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}
