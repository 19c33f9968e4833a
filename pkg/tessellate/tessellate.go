// Package tessellate walks a design graph and produces a tessellated
// boundary representation using a geometry kernel. Primitives become
// solids, boolean nodes combine them, and every resulting solid is
// tessellated and merged into one shape.
package tessellate

import (
	"fmt"

	"github.com/gmodel921/cadglb/pkg/brep"
	"github.com/gmodel921/cadglb/pkg/graph"
	"github.com/gmodel921/cadglb/pkg/kernel"
)

// transformStack accumulates spatial transforms during graph traversal.
type transformStack struct {
	translations []graph.Vec3
	rotations    []graph.Vec3
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(translation, rotation graph.Vec3) {
	ts.translations = append(ts.translations, translation)
	ts.rotations = append(ts.rotations, rotation)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
	}
	if len(ts.rotations) > 0 {
		ts.rotations = ts.rotations[:len(ts.rotations)-1]
	}
}

// accumulatedTranslation returns the sum of all translations on the stack.
func (ts *transformStack) accumulatedTranslation() graph.Vec3 {
	var sum graph.Vec3
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// accumulatedRotation returns the sum of all rotations on the stack.
func (ts *transformStack) accumulatedRotation() graph.Vec3 {
	var sum graph.Vec3
	for _, r := range ts.rotations {
		sum = sum.Add(r)
	}
	return sum
}

// Tessellate walks the design graph, builds one solid per standalone
// primitive or boolean result, and tessellates them all into a single
// shape. The tessellator is read-only and never mutates the graph.
func Tessellate(g *graph.DesignGraph, k kernel.Kernel, opts kernel.Options) (*brep.Shape, error) {
	shape := &brep.Shape{}
	if g == nil {
		return shape, nil
	}

	ts := newTransformStack()
	var solids []kernel.Solid

	for _, rootID := range g.Roots {
		root := g.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := walkNode(g, k, root, ts)
		if err != nil {
			return nil, fmt.Errorf("walking root %s: %w", rootID.Short(), err)
		}
		solids = append(solids, collected...)
	}

	for _, s := range solids {
		part, err := k.Tessellate(s, opts)
		if err != nil {
			return nil, fmt.Errorf("tessellating solid: %w", err)
		}
		shape.Merge(part)
	}
	return shape, nil
}

// walkNode recursively traverses a node and its children, collecting solids.
func walkNode(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]kernel.Solid, error) {
	switch n.Kind {
	case graph.NodePrimitive:
		s, err := handlePrimitive(k, n, ts)
		if err != nil {
			return nil, err
		}
		return []kernel.Solid{s}, nil

	case graph.NodeTransform:
		return handleTransform(g, k, n, ts)

	case graph.NodeBoolean:
		s, err := handleBoolean(g, k, n, ts)
		if err != nil {
			return nil, err
		}
		return []kernel.Solid{s}, nil

	case graph.NodeGroup:
		return handleGroup(g, k, n, ts)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

// handlePrimitive creates a solid for a primitive node with the
// accumulated transforms applied, rotation first, then translation.
func handlePrimitive(k kernel.Kernel, n *graph.Node, ts *transformStack) (kernel.Solid, error) {
	var solid kernel.Solid

	switch data := n.Data.(type) {
	case graph.BoxData:
		solid = k.Box(data.Dimensions.X, data.Dimensions.Y, data.Dimensions.Z)
	case graph.CylinderData:
		solid = k.Cylinder(data.Height, data.Radius)
	default:
		return nil, fmt.Errorf("primitive node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	rot := ts.accumulatedRotation()
	if !rot.IsZero() {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}

	trans := ts.accumulatedTranslation()
	if !trans.IsZero() {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	return solid, nil
}

// handleTransform pushes the transform, recurses into children, then pops.
func handleTransform(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]kernel.Solid, error) {
	td, ok := n.Data.(graph.TransformData)
	if !ok {
		return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	var translation, rotation graph.Vec3
	if td.Translation != nil {
		translation = *td.Translation
	}
	if td.Rotation != nil {
		rotation = *td.Rotation
	}
	ts.push(translation, rotation)
	defer ts.pop()

	var solids []kernel.Solid
	for _, child := range g.Children(n) {
		collected, err := walkNode(g, k, child, ts)
		if err != nil {
			return nil, err
		}
		solids = append(solids, collected...)
	}
	return solids, nil
}

// handleBoolean walks both operands and combines them with the node's
// operation. Each operand subtree must resolve to exactly one solid.
func handleBoolean(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) (kernel.Solid, error) {
	bd, ok := n.Data.(graph.BooleanData)
	if !ok {
		return nil, fmt.Errorf("boolean node %s has unexpected data type %T", n.ID.Short(), n.Data)
	}

	children := g.Children(n)
	if len(children) != 2 {
		return nil, fmt.Errorf("boolean node %s has %d operands, want 2", n.ID.Short(), len(children))
	}

	operands := make([]kernel.Solid, 0, 2)
	for _, child := range children {
		collected, err := walkNode(g, k, child, ts)
		if err != nil {
			return nil, err
		}
		if len(collected) != 1 {
			return nil, fmt.Errorf("boolean operand %s yields %d solids, want 1", child.ID.Short(), len(collected))
		}
		operands = append(operands, collected[0])
	}

	var combined kernel.Solid
	var err error
	switch bd.Op {
	case graph.OpUnion:
		combined, err = k.Union(operands[0], operands[1])
	case graph.OpDifference:
		combined, err = k.Difference(operands[0], operands[1])
	case graph.OpIntersection:
		combined, err = k.Intersection(operands[0], operands[1])
	default:
		return nil, fmt.Errorf("boolean node %s has unknown operation %v", n.ID.Short(), bd.Op)
	}
	if err != nil {
		return nil, fmt.Errorf("boolean %s on node %s: %w", bd.Op, n.ID.Short(), err)
	}
	return combined, nil
}

// handleGroup recurses into children transparently.
func handleGroup(g *graph.DesignGraph, k kernel.Kernel, n *graph.Node, ts *transformStack) ([]kernel.Solid, error) {
	var solids []kernel.Solid
	for _, child := range g.Children(n) {
		collected, err := walkNode(g, k, child, ts)
		if err != nil {
			return nil, err
		}
		solids = append(solids, collected...)
	}
	return solids, nil
}
