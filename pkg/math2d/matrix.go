package math2d

import "math"

// Matrix is a 2D affine transform [a, b, c, d, tx, ty].
//
// A point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty).
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translation returns a translation matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scaling returns a scale matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a counter-clockwise rotation matrix (radians, y up).
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// MatMul writes m1·m2 into out: the result applies m2 first, then m1.
// out may alias either input.
func MatMul(out, m1, m2 *Matrix) *Matrix {
	a := m1[0]*m2[0] + m1[2]*m2[1]
	b := m1[1]*m2[0] + m1[3]*m2[1]
	c := m1[0]*m2[2] + m1[2]*m2[3]
	d := m1[1]*m2[2] + m1[3]*m2[3]
	tx := m1[0]*m2[4] + m1[2]*m2[5] + m1[4]
	ty := m1[1]*m2[4] + m1[3]*m2[5] + m1[5]
	out[0], out[1], out[2], out[3], out[4], out[5] = a, b, c, d, tx, ty
	return out
}

// Mul returns m·o (o applied first).
func (m Matrix) Mul(o Matrix) Matrix {
	return *MatMul(&m, &m, &o)
}

// Apply returns the point v transformed by m.
func (m Matrix) Apply(v Vec2) Vec2 {
	return *ApplyTransform(&v, &v, &m)
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
