package graph

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// NodeID identifies a graph node.
type NodeID string

// ZeroID is the empty node ID.
const ZeroID NodeID = ""

var idCounter uint64

// NewNodeID derives a fresh node ID from a human-readable seed. IDs are
// unique within a process; the seed only aids debugging.
func NewNodeID(seed string) NodeID {
	n := atomic.AddUint64(&idCounter, 1)
	h := fnv.New64a()
	fmt.Fprintf(h, "%s/%d", seed, n)
	return NodeID(fmt.Sprintf("%s-%016x", seed, h.Sum64()))
}

// Short returns an abbreviated form for error messages.
func (id NodeID) Short() string {
	if len(id) <= 12 {
		return string(id)
	}
	return string(id[:12])
}

// NodeKind enumerates the types of nodes in the design graph.
type NodeKind int

const (
	NodePrimitive NodeKind = iota // geometric primitive (box, cylinder)
	NodeTransform                 // spatial transformation (place)
	NodeBoolean                   // boolean operation (union, difference, intersection)
	NodeGroup                     // logical grouping
)

func (k NodeKind) String() string {
	switch k {
	case NodePrimitive:
		return "primitive"
	case NodeTransform:
		return "transform"
	case NodeBoolean:
		return "boolean"
	case NodeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is the fundamental element of the design graph.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Name     string
	Children []NodeID
	Data     NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}
