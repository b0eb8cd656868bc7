// Package mat provides the 4x4 row-major matrix kernels: tiered transpose,
// Cramer's-rule inversion with epsilon-gated singularity detection, and
// Gram-Schmidt scale/rotation/translation decomposition.
//
// A Mat4 is four contiguous Vec4 rows, so its byte layout is exactly four
// hardware registers of matching width; the register tiers of Transpose and
// Invert rely on that. Matrices follow the row-vector convention: a point
// transforms as v' = v * M and the translation lives in row 3.
package mat

import (
	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/quat"
	"github.com/go-vmath/vmath/vec"
)

// Mat4 is a 4x4 matrix of four row vectors.
type Mat4[T lane.Lanes] [4]vec.Vec4[T]

// Identity returns the identity matrix.
func Identity[T lane.Lanes]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// FromScale returns the scaling matrix diag(s[0], s[1], s[2], 1).
func FromScale[T lane.Lanes](s vec.Vec3[T]) Mat4[T] {
	m := Identity[T]()
	m[0][0] = s[0]
	m[1][1] = s[1]
	m[2][2] = s[2]
	return m
}

// FromTranslation returns the matrix translating points by t.
func FromTranslation[T lane.Lanes](t vec.Vec3[T]) Mat4[T] {
	m := Identity[T]()
	m[3][0] = t[0]
	m[3][1] = t[1]
	m[3][2] = t[2]
	return m
}

// FromQuaternion returns the rotation matrix of a unit quaternion.
func FromQuaternion[T lane.Floats](q quat.Quaternion[T]) Mat4[T] {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z
	return Mat4[T]{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(zz+xx), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(yy+xx), 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m * o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for i := range r {
		var acc, bc, t vec.Vec4[T]
		lane.Broadcast(bc[:], m[i][:], 0)
		lane.Mul(acc[:], bc[:], o[0][:])
		for k := 1; k < 4; k++ {
			lane.Broadcast(bc[:], m[i][:], k)
			lane.Mul(t[:], bc[:], o[k][:])
			lane.Add(acc[:], acc[:], t[:])
		}
		r[i] = acc
	}
	return r
}

// TransformPoint applies m to the point v, including the translation row.
func (m Mat4[T]) TransformPoint(v vec.Vec3[T]) vec.Vec3[T] {
	var r vec.Vec3[T]
	for j := range r {
		r[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j] + m[3][j]
	}
	return r
}

// TransformVector applies the linear 3x3 block of m to the direction v.
func (m Mat4[T]) TransformVector(v vec.Vec3[T]) vec.Vec3[T] {
	var r vec.Vec3[T]
	for j := range r {
		r[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j]
	}
	return r
}

// Determinant returns the determinant of m via the twelve two-term
// sub-products of the cofactor expansion.
func Determinant[T lane.Floats](m Mat4[T]) T {
	s0 := m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s1 := m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s2 := m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s3 := m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s4 := m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s5 := m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c0 := m[2][0]*m[3][1] - m[3][0]*m[2][1]
	c1 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c2 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c3 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c4 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c5 := m[2][2]*m[3][3] - m[3][2]*m[2][3]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// nan4 returns a matrix with NaN in every entry.
func nan4[T lane.Floats]() Mat4[T] {
	n := fmath.NaN[T]()
	var m Mat4[T]
	for i := range m {
		m[i] = vec.Vec4[T]{n, n, n, n}
	}
	return m
}
