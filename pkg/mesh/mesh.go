// Package mesh defines the indexed triangle mesh the conversion pipeline
// produces and the GLB exporter consumes.
package mesh

import "fmt"

// Mesh is an indexed triangle mesh. Vertices are deduplicated world-space
// points in double precision; each triangle holds three 0-based indices
// into Vertices. Triangle winding is whatever the source triangulations
// carried; no reordering happens in the pipeline.
type Mesh struct {
	Vertices  [][3]float64
	Triangles [][3]uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Triangles) == 0
}

// Validate checks that every triangle index references an existing vertex.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx >= n {
				return fmt.Errorf("triangle %d references vertex %d, want < %d", i, idx, n)
			}
		}
	}
	return nil
}
