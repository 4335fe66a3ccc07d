package math3d

import "math"

// Mat3 is a 3x3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// It acts on column vectors: MulVec3 computes M × v.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Diag3 returns a diagonal matrix; used for axis-aligned scaling.
func Diag3(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// RotateX3 returns a right-handed rotation of rad radians about the X axis.
func RotateX3(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotateY3 returns a right-handed rotation of rad radians about the Y axis.
func RotateY3(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotateZ3 returns a right-handed rotation of rad radians about the Z axis.
func RotateZ3(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mul returns m × b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*b[col] + m[row*3+1]*b[3+col] + m[row*3+2]*b[6+col]
		}
	}
	return r
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// ApproxEqual reports whether every element of m and b differs by at most eps.
func (m Mat3) ApproxEqual(b Mat3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
