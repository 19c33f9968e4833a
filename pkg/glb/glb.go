// Package glb serializes indexed triangle meshes as binary glTF.
package glb

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gmodel921/cadglb/pkg/mesh"
)

// Save writes the mesh to path as a single-scene GLB file.
func Save(m *mesh.Mesh, path string) error {
	doc, err := document(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("writing glb %s: %w", path, err)
	}
	return nil
}

// Write streams the mesh to w in GLB form.
func Write(m *mesh.Mesh, w io.Writer) error {
	doc, err := document(m)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding glb: %w", err)
	}
	return nil
}

// document builds a one-mesh glTF document. Vertex coordinates narrow
// to float32, which is all the glTF container carries.
func document(m *mesh.Mesh) (*gltf.Document, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	positions := make([][3]float32, m.VertexCount())
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}

	indices := make([]uint32, 0, 3*m.TriangleCount())
	for _, t := range m.Triangles {
		indices = append(indices, t[0], t[1], t[2])
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "converted",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "model", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []uint32{0}
	return doc, nil
}
