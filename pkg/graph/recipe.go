package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// recipeShape is one entry of a YAML recipe file.
type recipeShape struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Dims   *Vec3    `yaml:"dims,omitempty"`   // box extents
	Height float64  `yaml:"height,omitempty"` // cylinder
	Radius float64  `yaml:"radius,omitempty"` // cylinder
	At     *Vec3    `yaml:"at,omitempty"`     // translation
	Rotate *Vec3    `yaml:"rotate,omitempty"` // Euler angles, degrees
	Of     []string `yaml:"of,omitempty"`     // operand/child names
}

type recipeFile struct {
	Shapes []recipeShape `yaml:"shapes"`
}

// LoadRecipe reads a YAML recipe file into a design graph.
func LoadRecipe(path string) (*DesignGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe %s: %w", path, err)
	}
	return ParseRecipe(data)
}

// ParseRecipe builds a design graph from YAML recipe bytes. Each entry
// becomes a node (wrapped in a transform node when placed); entries not
// referenced by another entry's "of" list become roots, in file order.
func ParseRecipe(data []byte) (*DesignGraph, error) {
	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}

	g := New()
	// byName maps each entry to the node a reference should resolve to:
	// the transform wrapper when the entry is placed, the entry itself
	// otherwise.
	byName := make(map[string]NodeID, len(file.Shapes))
	referenced := make(map[string]bool)

	// First pass: create nodes so "of" lists can reference entries
	// declared in any order.
	for i, rs := range file.Shapes {
		if rs.Name == "" {
			return nil, fmt.Errorf("recipe shape %d has no name", i)
		}
		if _, dup := byName[rs.Name]; dup {
			return nil, fmt.Errorf("recipe shape %q declared twice", rs.Name)
		}

		node, err := recipeNode(rs)
		if err != nil {
			return nil, err
		}
		g.AddNode(node)

		top := node.ID
		if rs.At != nil || rs.Rotate != nil {
			wrapper := &Node{
				ID:       NewNodeID(rs.Name + ".place"),
				Kind:     NodeTransform,
				Children: []NodeID{node.ID},
				Data:     TransformData{Translation: rs.At, Rotation: rs.Rotate},
			}
			g.AddNode(wrapper)
			top = wrapper.ID
		}
		byName[rs.Name] = top
	}

	// Second pass: wire operands.
	for _, rs := range file.Shapes {
		if len(rs.Of) == 0 {
			continue
		}
		n := g.MustLookup(rs.Name)
		for _, ref := range rs.Of {
			id, ok := byName[ref]
			if !ok {
				return nil, fmt.Errorf("recipe shape %q references unknown shape %q", rs.Name, ref)
			}
			n.Children = append(n.Children, id)
			referenced[ref] = true
		}
	}

	// Unreferenced entries are the scene roots, in file order.
	for _, rs := range file.Shapes {
		if !referenced[rs.Name] {
			g.AddRoot(byName[rs.Name])
		}
	}
	return g, nil
}

// recipeNode builds the bare node for one recipe entry.
func recipeNode(rs recipeShape) (*Node, error) {
	n := &Node{ID: NewNodeID(rs.Name), Name: rs.Name}

	switch rs.Kind {
	case "box":
		if rs.Dims == nil {
			return nil, fmt.Errorf("recipe shape %q: box needs dims", rs.Name)
		}
		n.Kind = NodePrimitive
		n.Data = BoxData{PrimKind: PrimBox, Dimensions: *rs.Dims}
	case "cylinder":
		n.Kind = NodePrimitive
		n.Data = CylinderData{PrimKind: PrimCylinder, Height: rs.Height, Radius: rs.Radius}
	case "union":
		n.Kind = NodeBoolean
		n.Data = BooleanData{Op: OpUnion}
	case "difference":
		n.Kind = NodeBoolean
		n.Data = BooleanData{Op: OpDifference}
	case "intersection":
		n.Kind = NodeBoolean
		n.Data = BooleanData{Op: OpIntersection}
	case "group":
		n.Kind = NodeGroup
		n.Data = GroupData{Description: rs.Name}
	default:
		return nil, fmt.Errorf("recipe shape %q has unknown kind %q", rs.Name, rs.Kind)
	}
	return n, nil
}
