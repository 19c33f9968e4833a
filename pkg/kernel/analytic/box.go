package analytic

import (
	"math"

	"github.com/gmodel921/cadglb/pkg/brep"
)

// planeFace builds a w-by-h rectangle triangulated in its own XY plane,
// placed by loc. Planar patches deviate zero from their triangulation, so
// two triangles always satisfy any deflection tolerance. Winding is
// counter-clockwise in the local frame (normal along local +Z).
func planeFace(w, h float64, loc brep.Transform) brep.Face {
	return brep.Face{
		Triangulation: &brep.Triangulation{
			Nodes: []brep.Point{
				{0, 0, 0},
				{w, 0, 0},
				{w, h, 0},
				{0, h, 0},
			},
			Triangles: []brep.Triangle{{1, 2, 3}, {1, 3, 4}},
		},
		Location: loc,
	}
}

// tessellateBox appends the six faces of an axis-aligned box spanning
// [0,x]x[0,y]x[0,z] in the primitive's local frame. Each face is a
// separate patch with its own placement, so the twelve shared edges leave
// duplicated corner vertices for the deduplicator to merge (8 unique
// corners out of 24 face nodes).
func tessellateBox(shape *brep.Shape, p prim) {
	x, y, z := p.dims[0], p.dims[1], p.dims[2]
	const half = math.Pi / 2

	faces := []brep.Face{
		// top, z = z0, outward +Z
		planeFace(x, y, brep.Translation(0, 0, z)),
		// bottom, z = 0, outward -Z
		planeFace(x, y, brep.Translation(0, y, 0).Compose(brep.RotationX(math.Pi))),
		// front, y = 0, outward -Y
		planeFace(x, z, brep.RotationX(half)),
		// back, y = y0, outward +Y
		planeFace(x, z, brep.Translation(0, y, z).Compose(brep.RotationX(-half))),
		// left, x = 0, outward -X
		planeFace(z, y, brep.RotationY(-half)),
		// right, x = x0, outward +X
		planeFace(z, y, brep.Translation(x, 0, z).Compose(brep.RotationY(half))),
	}
	for _, f := range faces {
		f.Location = p.loc.Compose(f.Location)
		shape.AddFace(f)
	}
}
