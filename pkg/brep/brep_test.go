package brep

import (
	"math"
	"testing"
)

// almostEqual compares points with a loose epsilon for trig roundoff.
func almostEqual(a, b Point) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestTriangulationCheck(t *testing.T) {
	tr := &Triangulation{
		Nodes:     []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []Triangle{{1, 2, 3}},
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}

	bad := &Triangulation{
		Nodes:     []Point{{0, 0, 0}, {1, 0, 0}},
		Triangles: []Triangle{{1, 2, 3}},
	}
	if err := bad.Check(); err == nil {
		t.Fatal("Check() = nil for out-of-range node index, want error")
	}

	zero := &Triangulation{
		Nodes:     []Point{{0, 0, 0}},
		Triangles: []Triangle{{0, 1, 1}},
	}
	if err := zero.Check(); err == nil {
		t.Fatal("Check() = nil for 0 index (indices are 1-based), want error")
	}
}

func TestShapeFaces(t *testing.T) {
	s := &Shape{}
	if s.FaceCount() != 0 {
		t.Fatalf("FaceCount() = %d, want 0", s.FaceCount())
	}

	s.AddFace(Face{Location: Identity()})
	s.AddFace(Face{Location: Translation(1, 0, 0)})

	other := &Shape{}
	other.AddFace(Face{Location: Identity()})
	s.Merge(other)
	s.Merge(nil)

	if s.FaceCount() != 3 {
		t.Fatalf("FaceCount() = %d, want 3", s.FaceCount())
	}
	if len(s.Faces()) != s.FaceCount() {
		t.Fatalf("Faces() length %d disagrees with FaceCount() %d", len(s.Faces()), s.FaceCount())
	}
}

func TestTransformApply(t *testing.T) {
	p := Point{1, 2, 3}

	if got := Identity().Apply(p); got != p {
		t.Fatalf("Identity().Apply(%v) = %v", p, got)
	}

	if got := Translation(10, 20, 30).Apply(p); got != (Point{11, 22, 33}) {
		t.Fatalf("Translation.Apply = %v", got)
	}

	// Quarter turn about Z maps +X to +Y.
	got := RotationZ(math.Pi / 2).Apply(Point{1, 0, 0})
	if !almostEqual(got, Point{0, 1, 0}) {
		t.Fatalf("RotationZ(90deg).Apply((1,0,0)) = %v, want (0,1,0)", got)
	}

	got = RotationX(math.Pi / 2).Apply(Point{0, 1, 0})
	if !almostEqual(got, Point{0, 0, 1}) {
		t.Fatalf("RotationX(90deg).Apply((0,1,0)) = %v, want (0,0,1)", got)
	}

	got = RotationY(math.Pi / 2).Apply(Point{0, 0, 1})
	if !almostEqual(got, Point{1, 0, 0}) {
		t.Fatalf("RotationY(90deg).Apply((0,0,1)) = %v, want (1,0,0)", got)
	}
}

func TestTransformCompose(t *testing.T) {
	// Compose applies the right-hand transform first.
	rot := RotationZ(math.Pi / 2)
	trans := Translation(10, 0, 0)

	// Rotate then translate: (1,0,0) -> (0,1,0) -> (10,1,0).
	got := trans.Compose(rot).Apply(Point{1, 0, 0})
	if !almostEqual(got, Point{10, 1, 0}) {
		t.Fatalf("translate(rotate(p)) = %v, want (10,1,0)", got)
	}

	// Translate then rotate: (1,0,0) -> (11,0,0) -> (0,11,0).
	got = rot.Compose(trans).Apply(Point{1, 0, 0})
	if !almostEqual(got, Point{0, 11, 0}) {
		t.Fatalf("rotate(translate(p)) = %v, want (0,11,0)", got)
	}
}
