package graph

import "fmt"

// ValidationError is one blocking problem found in a design graph.
type ValidationError struct {
	NodeID  NodeID
	Message string
}

func (e ValidationError) Error() string {
	if e.NodeID != ZeroID {
		return fmt.Sprintf("node %s: %s", e.NodeID.Short(), e.Message)
	}
	return e.Message
}

// Validate runs structural and geometric checks over a graph. A graph
// with no roots is valid here; the pipeline reports it as missing
// geometry later, with better context.
func Validate(g *DesignGraph) []ValidationError {
	if g == nil {
		return []ValidationError{{Message: "nil design graph"}}
	}

	var errs []ValidationError
	for _, n := range g.Nodes {
		errs = append(errs, validateNode(g, n)...)
	}
	for _, id := range g.Roots {
		if g.Get(id) == nil {
			errs = append(errs, ValidationError{NodeID: id, Message: "root references a missing node"})
		}
	}
	return errs
}

func validateNode(g *DesignGraph, n *Node) []ValidationError {
	var errs []ValidationError

	for _, cid := range n.Children {
		if g.Get(cid) == nil {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("child %s does not exist", cid.Short()),
			})
		}
	}

	switch data := n.Data.(type) {
	case BoxData:
		d := data.Dimensions
		if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("box dimensions %s must all be positive", d),
			})
		}
	case CylinderData:
		if data.Height <= 0 || data.Radius <= 0 {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("cylinder height %g and radius %g must be positive", data.Height, data.Radius),
			})
		}
	case BooleanData:
		if len(n.Children) != 2 {
			errs = append(errs, ValidationError{
				NodeID:  n.ID,
				Message: fmt.Sprintf("%s takes exactly two operands, got %d", data.Op, len(n.Children)),
			})
		}
	}

	return errs
}
