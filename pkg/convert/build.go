package convert

import (
	"fmt"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/mesh"
	"github.com/gmodel921/cadglb/pkg/progress"
)

// Processing checkpoints are interpolated between the post-tessellation
// checkpoint (12%) and the pre-export checkpoint (90%).
const (
	processingFloor = 12
	processingCeil  = 90
)

// Convert walks the tessellated faces of shape and builds one deduplicated
// indexed mesh. Faces are visited in enumeration order on the calling
// goroutine; the observer, if any, receives processing checkpoints at
// roughly one-percent cadence and a terminal error checkpoint on failure.
// Each call owns its own vertex table and mesh, so independent conversions
// may run concurrently as long as they do not share a shape.
func Convert(shape *brep.Shape, opts Options, observer progress.Func) (*mesh.Mesh, error) {
	rep := progress.NewReporter(observer)
	m, err := buildMesh(shape, opts, rep)
	if err != nil {
		rep.Error(err.Error())
		return nil, err
	}
	return m, nil
}

// buildMesh is the deduplication core. It emits processing checkpoints but
// leaves the terminal error checkpoint to its callers, which know whether
// the failure has already been reported.
func buildMesh(shape *brep.Shape, opts Options, rep *progress.Reporter) (*mesh.Mesh, error) {
	// Count up front: percent interpolation divides by the total before
	// any face is processed. Faces() yields exactly FaceCount() faces in
	// a fixed order, so the count and the walk always agree.
	total := shape.FaceCount()
	if total == 0 {
		return nil, ErrNoGeometry
	}

	out := &mesh.Mesh{}
	table := newVertexTable(opts.RoundDecimals, out)
	meter := progress.NewMeter(total, processingFloor, processingCeil)

	for i, face := range shape.Faces() {
		processed := i + 1

		// Faces the tessellator skipped, or patches that ended up with no
		// triangles, contribute nothing but still advance the walk.
		if face.Triangulation != nil && face.Triangulation.TriangleCount() > 0 {
			if err := appendFace(face, table, out); err != nil {
				return nil, &ConversionError{Stage: "face processing", Err: err}
			}
		}

		if meter.Due(processed) {
			rep.Report(meter.Percent(processed), progress.StateProcessing,
				fmt.Sprintf("Processed %d/%d faces", processed, total))
		}
	}

	if out.IsEmpty() {
		return nil, ErrEmptyMesh
	}
	return out, nil
}

// appendFace merges one face's triangulation into the mesh: every node is
// transformed to world space and canonicalized eagerly (so vertex order
// follows node order), then each triangle is emitted with its source
// winding intact. Triangles that collapse onto repeated indices after
// rounding are kept; filtering degenerates is the exporter's concern.
func appendFace(face brep.Face, table *vertexTable, out *mesh.Mesh) error {
	tri := face.Triangulation
	if err := tri.Check(); err != nil {
		return fmt.Errorf("malformed triangulation: %w", err)
	}

	for _, node := range tri.Nodes {
		table.insert(face.Location.Apply(node))
	}

	for _, t := range tri.Triangles {
		a := table.insert(face.Location.Apply(tri.Nodes[t[0]-1]))
		b := table.insert(face.Location.Apply(tri.Nodes[t[1]-1]))
		c := table.insert(face.Location.Apply(tri.Nodes[t[2]-1]))
		out.Triangles = append(out.Triangles, [3]uint32{a, b, c})
	}
	return nil
}
