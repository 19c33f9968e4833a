// Package sdfx implements the kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. Boolean operations are
// exact in SDF space; tessellation uses marching cubes, so the output is a
// single face whose triangulation is a raw triangle soup. The downstream
// deduplication pass turns that soup into an indexed mesh.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Marching cubes resolution bounds. The actual cell count is derived from
// the linear deflection tolerance and clamped into this range.
const (
	minMeshCells     = 16
	maxMeshCells     = 400
	defaultMeshCells = 200
)

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct{}

// New returns a new sdfx Kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with its minimum corner at the origin. sdf.Box3D
// centers the box at the origin, so we translate by half-dimensions to
// match the analytic backend's convention.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Cylinder creates a cylinder along +Z with its base center at the origin.
// sdf.Cylinder3D centers the cylinder, so we shift it up by half its
// height.
func (k *Kernel) Cylinder(height, radius float64) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	m := sdf.Translate3d(v3.Vec{Z: height / 2})
	return wrap(sdf.Transform3D(s, m))
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b))), nil
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b))), nil
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) (kernel.Solid, error) {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b))), nil
}

// Translate moves a solid by (x, y, z).
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// meshCells derives the marching cubes grid resolution from the linear
// deflection: one cell per deflection unit along the largest extent.
func meshCells(s sdf.SDF3, opts kernel.Options) int {
	bb := s.BoundingBox()
	size := [3]float64{bb.Max.X - bb.Min.X, bb.Max.Y - bb.Min.Y, bb.Max.Z - bb.Min.Z}
	maxDim := math.Max(size[0], math.Max(size[1], size[2]))

	d := opts.LinearDeflection
	if opts.Relative {
		d *= maxDim
	}
	if d <= 0 || maxDim <= 0 {
		return defaultMeshCells
	}

	cells := int(math.Ceil(maxDim / d))
	if cells < minMeshCells {
		cells = minMeshCells
	}
	if cells > maxMeshCells {
		cells = maxMeshCells
	}
	return cells
}

// Tessellate runs marching cubes and packs the resulting triangle soup
// into a single face: three nodes per triangle, no sharing. The shared
// edges between neighbouring triangles are what the deduplication stage
// merges.
func (k *Kernel) Tessellate(s kernel.Solid, opts kernel.Options) (*brep.Shape, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(meshCells(sdf3, opts))
	triangles := render.ToTriangles(sdf3, renderer)

	tr := &brep.Triangulation{
		Nodes:     make([]brep.Point, 0, len(triangles)*3),
		Triangles: make([]brep.Triangle, 0, len(triangles)),
	}
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			tr.Nodes = append(tr.Nodes, brep.Point{v.X, v.Y, v.Z})
		}
		tr.Triangles = append(tr.Triangles, brep.Triangle{3*i + 1, 3*i + 2, 3*i + 3})
	}

	shape := &brep.Shape{}
	if len(tr.Triangles) > 0 {
		shape.AddFace(brep.Face{Triangulation: tr, Location: brep.Identity()})
	}
	return shape, nil
}
