package analytic

import (
	"math"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/kernel"
)

// segments returns the number of angular facets for a circle of radius r,
// bounded by both the chordal (linear deflection) and angular tolerances.
func segments(r float64, opts kernel.Options) int {
	theta := opts.AngularDeflection
	if theta <= 0 {
		theta = kernel.DefaultOptions().AngularDeflection
	}

	d := opts.LinearDeflection
	if opts.Relative {
		d *= r
	}
	// Chord sagitta r*(1-cos(step/2)) must stay within d.
	if d > 0 && d < r {
		if chord := 2 * math.Acos(1-d/r); chord < theta {
			theta = chord
		}
	}

	n := int(math.Ceil(2 * math.Pi / theta))
	if n < 3 {
		n = 3
	}
	return n
}

// tessellateCylinder appends the three faces of a cylinder of the given
// height and radius, axis along local +Z, base center at the local origin.
// The side patch duplicates its seam nodes (parameter wrap at angle 0) and
// both caps re-tessellate the rim circles independently, matching how CAD
// meshers emit per-face triangulations; deduplication merges them later.
func tessellateCylinder(shape *brep.Shape, p prim, opts kernel.Options) {
	h, r := p.dims[0], p.dims[1]
	n := segments(r, opts)

	shape.AddFace(brep.Face{Triangulation: cylinderSide(h, r, n), Location: p.loc})
	// bottom cap, outward -Z
	shape.AddFace(brep.Face{Triangulation: cylinderCap(r, n, false), Location: p.loc})
	// top cap, outward +Z
	shape.AddFace(brep.Face{Triangulation: cylinderCap(r, n, true), Location: p.loc.Compose(brep.Translation(0, 0, h))})
}

// cylinderSide builds the lateral surface: n+1 node columns (the column at
// angle 0 repeats at angle 2*pi), two rows, two triangles per segment with
// outward winding.
func cylinderSide(h, r float64, n int) *brep.Triangulation {
	tr := &brep.Triangulation{
		Nodes:     make([]brep.Point, 0, 2*(n+1)),
		Triangles: make([]brep.Triangle, 0, 2*n),
	}
	for i := 0; i <= n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		c, s := r*math.Cos(phi), r*math.Sin(phi)
		tr.Nodes = append(tr.Nodes, brep.Point{c, s, 0}, brep.Point{c, s, h})
	}
	for i := 0; i < n; i++ {
		b0 := 2*i + 1 // bottom node of column i, 1-based
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b1 + 1
		tr.Triangles = append(tr.Triangles,
			brep.Triangle{b0, b1, t1},
			brep.Triangle{b0, t1, t0},
		)
	}
	return tr
}

// cylinderCap builds a disc fan in the local z=0 plane: center node plus n
// rim nodes. top selects the winding so normals point away from the solid.
func cylinderCap(r float64, n int, top bool) *brep.Triangulation {
	tr := &brep.Triangulation{
		Nodes:     make([]brep.Point, 0, n+1),
		Triangles: make([]brep.Triangle, 0, n),
	}
	tr.Nodes = append(tr.Nodes, brep.Point{0, 0, 0})
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		tr.Nodes = append(tr.Nodes, brep.Point{r * math.Cos(phi), r * math.Sin(phi), 0})
	}
	for i := 0; i < n; i++ {
		a := i + 2          // rim node i, 1-based with center at 1
		b := (i+1)%n + 2    // next rim node, wrapping
		if top {
			tr.Triangles = append(tr.Triangles, brep.Triangle{1, a, b})
		} else {
			tr.Triangles = append(tr.Triangles, brep.Triangle{1, b, a})
		}
	}
	return tr
}
