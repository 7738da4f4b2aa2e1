package geometry

import "github.com/df07/go-weighted-raytracer/pkg/core"

// Union groups primitives; the closest hit among the children wins
type Union struct {
	Children []Primitive
}

// NewUnion creates a union of the given primitives
func NewUnion(children ...Primitive) *Union {
	return &Union{Children: children}
}

// FindFirstPositiveHit returns the hit with the smallest positive t over all
// children. On ties the earlier child wins.
func (u *Union) FindFirstPositiveHit(ray core.Ray) (*Hit, bool) {
	var closest *Hit
	for _, child := range u.Children {
		hit, ok := child.FindFirstPositiveHit(ray)
		if !ok {
			continue
		}
		closest = SmallestPositive(closest, hit)
	}
	return closest, closest != nil
}
