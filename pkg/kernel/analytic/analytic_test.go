package analytic_test

import (
	"math"
	"testing"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/kernel"
	"github.com/gmodel921/cadglb/pkg/kernel/analytic"
)

// worldCorners collects every transformed node of every face, rounded to
// 6 decimals, as a set.
func worldCorners(shape *brep.Shape) map[[3]float64]bool {
	set := make(map[[3]float64]bool)
	for _, f := range shape.Faces() {
		if f.Triangulation == nil {
			continue
		}
		for _, node := range f.Triangulation.Nodes {
			w := f.Location.Apply(node)
			key := [3]float64{
				math.Round(w[0]*1e6) / 1e6,
				math.Round(w[1]*1e6) / 1e6,
				math.Round(w[2]*1e6) / 1e6,
			}
			set[key] = true
		}
	}
	return set
}

func TestBoxTessellation(t *testing.T) {
	k := analytic.New()
	shape, err := k.Tessellate(k.Box(2, 3, 4), kernel.DefaultOptions())
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if shape.FaceCount() != 6 {
		t.Fatalf("box has %d faces, want 6", shape.FaceCount())
	}
	for i, f := range shape.Faces() {
		if f.Triangulation.NodeCount() != 4 || f.Triangulation.TriangleCount() != 2 {
			t.Errorf("face %d: %d nodes / %d triangles, want 4 / 2",
				i, f.Triangulation.NodeCount(), f.Triangulation.TriangleCount())
		}
		if err := f.Triangulation.Check(); err != nil {
			t.Errorf("face %d: %v", i, err)
		}
	}

	// 24 face nodes must collapse to exactly the 8 box corners.
	corners := worldCorners(shape)
	if len(corners) != 8 {
		t.Fatalf("box tessellation has %d distinct world points, want 8", len(corners))
	}
	for _, want := range [][3]float64{
		{0, 0, 0}, {2, 0, 0}, {0, 3, 0}, {2, 3, 0},
		{0, 0, 4}, {2, 0, 4}, {0, 3, 4}, {2, 3, 4},
	} {
		if !corners[want] {
			t.Errorf("corner %v missing from tessellation", want)
		}
	}
}

func TestCylinderTessellation(t *testing.T) {
	k := analytic.New()
	opts := kernel.Options{LinearDeflection: 0.1, Relative: true, AngularDeflection: 0.5}
	shape, err := k.Tessellate(k.Cylinder(10, 2), opts)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	if shape.FaceCount() != 3 {
		t.Fatalf("cylinder has %d faces, want 3 (side + two caps)", shape.FaceCount())
	}

	side := shape.Faces()[0].Triangulation
	if err := side.Check(); err != nil {
		t.Fatalf("side triangulation: %v", err)
	}
	// Side columns: NodeCount = 2*(n+1), TriangleCount = 2*n.
	n := side.TriangleCount() / 2
	if side.NodeCount() != 2*(n+1) {
		t.Errorf("side has %d nodes for %d segments, want %d", side.NodeCount(), n, 2*(n+1))
	}
	// Angular deflection 0.5 rad alone caps the step at 0.5, so at least
	// ceil(2*pi/0.5) = 13 segments.
	if n < 13 {
		t.Errorf("side has %d segments, want >= 13 for angular deflection 0.5", n)
	}

	// Each cap rim must coincide with a side ring: total distinct points
	// are 2n rim points plus 2 cap centers.
	corners := worldCorners(shape)
	if len(corners) != 2*n+2 {
		t.Errorf("cylinder has %d distinct world points, want %d", len(corners), 2*n+2)
	}
}

func TestSegmentsHonorsAngularDeflection(t *testing.T) {
	k := analytic.New()
	coarse := kernel.Options{LinearDeflection: 100, Relative: false, AngularDeflection: 1.1}
	shape, err := k.Tessellate(k.Cylinder(1, 1), coarse)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	side := shape.Faces()[0].Triangulation
	n := side.TriangleCount() / 2
	// ceil(2*pi/1.1) = 6; the loose linear deflection never tightens it.
	if n != 6 {
		t.Errorf("segments = %d, want 6 for angular deflection 1.1 and loose linear deflection", n)
	}
}

func TestTransformsRelocateGeometry(t *testing.T) {
	k := analytic.New()
	s := k.Translate(k.Rotate(k.Box(1, 1, 1), 0, 0, 90), 10, 0, 0)

	min, max := s.BoundingBox()
	// Rotating the unit box 90 degrees about Z maps [0,1]x[0,1] onto
	// [-1,0]x[0,1]; the translation then shifts X by 10.
	wantMin := [3]float64{9, 0, 0}
	wantMax := [3]float64{10, 1, 1}
	for a := 0; a < 3; a++ {
		if math.Abs(min[a]-wantMin[a]) > 1e-9 || math.Abs(max[a]-wantMax[a]) > 1e-9 {
			t.Fatalf("BoundingBox() = %v..%v, want %v..%v", min, max, wantMin, wantMax)
		}
	}
}

func TestUnionAggregates(t *testing.T) {
	k := analytic.New()
	u, err := k.Union(k.Box(1, 1, 1), k.Translate(k.Box(1, 1, 1), 2, 0, 0))
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	shape, err := k.Tessellate(u, kernel.DefaultOptions())
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if shape.FaceCount() != 12 {
		t.Errorf("union of two boxes has %d faces, want 12", shape.FaceCount())
	}
}

func TestUnsupportedBooleans(t *testing.T) {
	k := analytic.New()
	a, b := k.Box(1, 1, 1), k.Box(2, 2, 2)
	if _, err := k.Difference(a, b); err == nil {
		t.Error("Difference: want error from the analytic backend")
	}
	if _, err := k.Intersection(a, b); err == nil {
		t.Error("Intersection: want error from the analytic backend")
	}
}
