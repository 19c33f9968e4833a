package convert

import (
	"math"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/mesh"
)

// spatialKey is the canonical identity of a world-space point: each
// coordinate scaled by 10^decimals and rounded to an integer. Keying on
// integers sidesteps floating-point hash instability; two points merge iff
// all three scaled coordinates round equal.
type spatialKey [3]int64

// vertexTable canonicalizes world-space points into mesh vertex indices.
// Insertion order defines the final vertex order; entries are never
// overwritten or removed. One table serves exactly one conversion.
type vertexTable struct {
	scale float64
	index map[spatialKey]uint32
	out   *mesh.Mesh
}

func newVertexTable(decimals int, out *mesh.Mesh) *vertexTable {
	return &vertexTable{
		scale: math.Pow(10, float64(decimals)),
		index: make(map[spatialKey]uint32),
		out:   out,
	}
}

// key rounds half away from zero, uniformly on all three axes, so points
// shared between faces hash identically regardless of which face inserted
// them first.
func (t *vertexTable) key(p brep.Point) spatialKey {
	return spatialKey{
		int64(math.Round(p[0] * t.scale)),
		int64(math.Round(p[1] * t.scale)),
		int64(math.Round(p[2] * t.scale)),
	}
}

// insert returns the vertex index for p, appending a new vertex holding
// the rounded coordinates if the key is unseen. First-seen wins; the
// lookup-or-insert is safe to call in any stage order.
func (t *vertexTable) insert(p brep.Point) uint32 {
	k := t.key(p)
	if idx, ok := t.index[k]; ok {
		return idx
	}
	idx := uint32(len(t.out.Vertices))
	t.index[k] = idx
	t.out.Vertices = append(t.out.Vertices, [3]float64{
		float64(k[0]) / t.scale,
		float64(k[1]) / t.scale,
		float64(k[2]) / t.scale,
	})
	return idx
}
