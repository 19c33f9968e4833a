// Package kernel defines the abstract geometry kernel interface.
// Implementations (analytic, sdfx) provide solid modeling and tessellation
// behind this interface, so the conversion pipeline never depends on a
// particular geometry library.
package kernel

import "github.com/gmodel921/cadglb/pkg/brep"

// Options are the tessellation tolerances passed through to a backend.
// Values are not range-checked here; out-of-range values are the caller's
// responsibility.
type Options struct {
	// LinearDeflection is the maximum chord distance between the true
	// surface and its facets, in model units.
	LinearDeflection float64
	// Relative scales LinearDeflection by the solid's characteristic size.
	Relative bool
	// AngularDeflection bounds the facet angle on curved surfaces, radians.
	AngularDeflection float64
}

// DefaultOptions returns the standard tessellation tolerances.
func DefaultOptions() Options {
	return Options{LinearDeflection: 0.1, Relative: true, AngularDeflection: 0.5}
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Both are built with their minimum corner (box) or base
	// center (cylinder) at the origin so placement translations work
	// intuitively.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid

	// Boolean operations. Backends may support only a subset and return
	// an error for the rest.
	Union(a, b Solid) (Solid, error)
	Difference(a, b Solid) (Solid, error)
	Intersection(a, b Solid) (Solid, error)

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Tessellate produces the solid's faces, each carrying its own local
	// triangulation and placement, honoring the deflection tolerances.
	Tessellate(s Solid, opts Options) (*brep.Shape, error)
}
