// Package brep holds the tessellated boundary-representation model the
// conversion pipeline consumes. A Shape is an ordered collection of faces;
// each face carries the triangulation an upstream tessellator produced for
// it, together with the transform placing its face-local nodes in world
// space. Shapes are read-only to the pipeline.
package brep

import "fmt"

// Point is a 3-D point.
type Point [3]float64

// Triangle references three triangulation nodes by 1-based index,
// following the usual CAD kernel convention.
type Triangle [3]int

// Triangulation is the per-face triangular approximation of one surface
// patch. Nodes are in face-local coordinates.
type Triangulation struct {
	Nodes     []Point
	Triangles []Triangle
}

// NodeCount returns the number of nodes.
func (t *Triangulation) NodeCount() int { return len(t.Nodes) }

// TriangleCount returns the number of triangles.
func (t *Triangulation) TriangleCount() int { return len(t.Triangles) }

// Check verifies that every triangle references a valid node.
func (t *Triangulation) Check() error {
	n := len(t.Nodes)
	for i, tri := range t.Triangles {
		for _, idx := range tri {
			if idx < 1 || idx > n {
				return fmt.Errorf("triangle %d references node %d, want 1..%d", i, idx, n)
			}
		}
	}
	return nil
}

// Face is one surface patch of a shape. A nil Triangulation means the
// tessellator skipped the face (degenerate or zero-area); such a face
// contributes no geometry downstream but still takes part in enumeration.
type Face struct {
	Triangulation *Triangulation
	Location      Transform
}

// Shape is a tessellated solid: a flat sequence of faces. Faces() always
// returns the same faces in the same order for a given shape, so a face
// count taken before a walk agrees with the walk itself.
type Shape struct {
	faces []Face
}

// AddFace appends a face to the shape.
func (s *Shape) AddFace(f Face) {
	s.faces = append(s.faces, f)
}

// Merge appends all faces of other, preserving their order.
func (s *Shape) Merge(other *Shape) {
	if other == nil {
		return
	}
	s.faces = append(s.faces, other.faces...)
}

// FaceCount returns the number of faces.
func (s *Shape) FaceCount() int { return len(s.faces) }

// Faces returns the faces in enumeration order. The returned slice is the
// shape's backing storage and must not be mutated.
func (s *Shape) Faces() []Face { return s.faces }
