// Package graph defines the design graph: a declarative description of
// solids (primitives, transforms, booleans, groups) that the tessellator
// turns into a tessellated B-rep shape through a geometry kernel.
package graph

import "fmt"

// Vec3 is a 3-component vector used for dimensions, translations and
// Euler rotations.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
