package graph

// PrimitiveKind distinguishes between primitive shapes.
type PrimitiveKind int

const (
	PrimBox      PrimitiveKind = iota // rectangular solid
	PrimCylinder                      // cylindrical solid
)

// BoxData describes a rectangular solid with its minimum corner at the
// local origin.
type BoxData struct {
	PrimKind   PrimitiveKind
	Dimensions Vec3 // extents along X, Y, Z in model units
}

func (BoxData) nodeData() {}

// CylinderData describes a cylinder along local +Z with its base center at
// the local origin.
type CylinderData struct {
	PrimKind PrimitiveKind
	Height   float64
	Radius   float64
}

func (CylinderData) nodeData() {}

// TransformData is a spatial transformation applied to child nodes.
type TransformData struct {
	Translation *Vec3
	Rotation    *Vec3 // Euler angles in degrees
}

func (TransformData) nodeData() {}

// BoolOp enumerates boolean operations on two operands.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpDifference
	OpIntersection
)

func (op BoolOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// BooleanData combines exactly two child solids.
type BooleanData struct {
	Op BoolOp
}

func (BooleanData) nodeData() {}

// GroupData is a transparent logical grouping of children.
type GroupData struct {
	Description string
}

func (GroupData) nodeData() {}
