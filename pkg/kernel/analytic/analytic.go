// Package analytic implements the kernel interface with exact per-face
// tessellation of primitive solids. Every face gets its own local
// triangulation plus a placement transform, and neighbouring faces are
// tessellated independently, so edge and seam vertices come out duplicated
// exactly the way a real B-rep mesher produces them. The downstream
// deduplication pass is what merges them back together.
package analytic

import (
	"fmt"
	"math"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

type primKind int

const (
	primBox primKind = iota
	primCylinder
)

// prim is one primitive instance with its accumulated placement.
type prim struct {
	kind primKind
	// box: dims[0..2] = x, y, z extents. cylinder: dims[0] = height,
	// dims[1] = radius.
	dims [3]float64
	loc  brep.Transform
}

// solid is a collection of placed primitives. Transforms compose onto
// every primitive; union concatenates primitive lists.
type solid struct {
	prims []prim
}

// localBounds returns the primitive's bounding box in its local frame.
func (p prim) localBounds() (min, max [3]float64) {
	switch p.kind {
	case primCylinder:
		h, r := p.dims[0], p.dims[1]
		return [3]float64{-r, -r, 0}, [3]float64{r, r, h}
	default:
		return [3]float64{0, 0, 0}, p.dims
	}
}

// BoundingBox returns the axis-aligned bounding box of all primitives.
func (s *solid) BoundingBox() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range s.prims {
		lo, hi := p.localBounds()
		// Transform the eight corners; axis-aligned bounds follow.
		for i := 0; i < 8; i++ {
			corner := brep.Point{lo[0], lo[1], lo[2]}
			if i&1 != 0 {
				corner[0] = hi[0]
			}
			if i&2 != 0 {
				corner[1] = hi[1]
			}
			if i&4 != 0 {
				corner[2] = hi[2]
			}
			w := p.loc.Apply(corner)
			for a := 0; a < 3; a++ {
				if w[a] < min[a] {
					min[a] = w[a]
				}
				if w[a] > max[a] {
					max[a] = w[a]
				}
			}
		}
	}
	return min, max
}

// Kernel implements kernel.Kernel with analytic tessellation.
type Kernel struct{}

// New returns a new analytic Kernel.
func New() *Kernel {
	return &Kernel{}
}

// Box creates a box with its minimum corner at the origin.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	return &solid{prims: []prim{{
		kind: primBox,
		dims: [3]float64{x, y, z},
		loc:  brep.Identity(),
	}}}
}

// Cylinder creates a cylinder along +Z with its base center at the origin.
func (k *Kernel) Cylinder(height, radius float64) kernel.Solid {
	return &solid{prims: []prim{{
		kind: primCylinder,
		dims: [3]float64{height, radius, 0},
		loc:  brep.Identity(),
	}}}
}

// Union aggregates the two solids' primitives. The analytic backend does
// not compute the merged boundary: overlapping inputs keep their interior
// faces. Use the sdfx backend for true booleans.
func (k *Kernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb := a.(*solid), b.(*solid)
	out := &solid{prims: make([]prim, 0, len(sa.prims)+len(sb.prims))}
	out.prims = append(out.prims, sa.prims...)
	out.prims = append(out.prims, sb.prims...)
	return out, nil
}

// Difference is not supported by the analytic backend.
func (k *Kernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	return nil, fmt.Errorf("analytic kernel: difference not supported, use the sdfx backend")
}

// Intersection is not supported by the analytic backend.
func (k *Kernel) Intersection(a, b kernel.Solid) (kernel.Solid, error) {
	return nil, fmt.Errorf("analytic kernel: intersection not supported, use the sdfx backend")
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return s.(*solid).transformed(brep.Translation(x, y, z))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes,
// applied in X, Y, Z order about the origin.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	const degToRad = math.Pi / 180.0
	m := brep.RotationZ(z * degToRad).
		Compose(brep.RotationY(y * degToRad)).
		Compose(brep.RotationX(x * degToRad))
	return s.(*solid).transformed(m)
}

func (s *solid) transformed(m brep.Transform) *solid {
	out := &solid{prims: make([]prim, len(s.prims))}
	for i, p := range s.prims {
		p.loc = m.Compose(p.loc)
		out.prims[i] = p
	}
	return out
}

// Tessellate emits every primitive's faces.
func (k *Kernel) Tessellate(s kernel.Solid, opts kernel.Options) (*brep.Shape, error) {
	shape := &brep.Shape{}
	for _, p := range s.(*solid).prims {
		switch p.kind {
		case primBox:
			tessellateBox(shape, p)
		case primCylinder:
			tessellateCylinder(shape, p, opts)
		default:
			return nil, fmt.Errorf("analytic kernel: unknown primitive kind %d", p.kind)
		}
	}
	return shape, nil
}
