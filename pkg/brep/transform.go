package brep

import "math"

// Transform is an affine local-to-world transform: a linear part M
// (rotation for all transforms built here) and a translation T.
type Transform struct {
	M [3][3]float64
	T [3]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns a pure translation by (x, y, z).
func Translation(x, y, z float64) Transform {
	t := Identity()
	t.T = [3]float64{x, y, z}
	return t
}

// RotationX returns a rotation about the X axis by rad radians.
func RotationX(rad float64) Transform {
	c, s := math.Cos(rad), math.Sin(rad)
	return Transform{M: [3][3]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}}
}

// RotationY returns a rotation about the Y axis by rad radians.
func RotationY(rad float64) Transform {
	c, s := math.Cos(rad), math.Sin(rad)
	return Transform{M: [3][3]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}}
}

// RotationZ returns a rotation about the Z axis by rad radians.
func RotationZ(rad float64) Transform {
	c, s := math.Cos(rad), math.Sin(rad)
	return Transform{M: [3][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}}
}

// Compose returns the transform that applies b first, then a.
func (a Transform) Compose(b Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
		}
		out.T[i] = a.M[i][0]*b.T[0] + a.M[i][1]*b.T[1] + a.M[i][2]*b.T[2] + a.T[i]
	}
	return out
}

// Apply transforms a point from local to world space.
func (t Transform) Apply(p Point) Point {
	return Point{
		t.M[0][0]*p[0] + t.M[0][1]*p[1] + t.M[0][2]*p[2] + t.T[0],
		t.M[1][0]*p[0] + t.M[1][1]*p[1] + t.M[1][2]*p[2] + t.T[1],
		t.M[2][0]*p[0] + t.M[2][1]*p[1] + t.M[2][2]*p[2] + t.T[2],
	}
}
