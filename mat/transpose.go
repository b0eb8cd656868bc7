package mat

import (
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/vec"
)

// Transpose returns the transpose of m.
//
// When a register width holding four T lanes is accelerated, the rows are
// treated as registers and transposed with the two-stage interleave trick;
// otherwise entries are moved field by field. Transposition involves no
// arithmetic, so both tiers produce bit-identical results.
func (m Mat4[T]) Transpose() Mat4[T] {
	if _, ok := lane.Pick[T](4); ok {
		return transposeRegs(m)
	}
	var r Mat4[T]
	for i := range r {
		for j := range r[i] {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// transposeRegs is the lane-interleave tier. Stage one interleaves row
// pairs, stage two concatenates the interleaved halves; all sixteen lanes
// are real, so no padding is involved.
func transposeRegs[T lane.Lanes](m Mat4[T]) Mat4[T] {
	var a, b, c, d vec.Vec4[T]
	lane.InterleaveLower(a[:], m[0][:], m[1][:]) // m00 m10 m01 m11
	lane.InterleaveLower(b[:], m[2][:], m[3][:]) // m20 m30 m21 m31
	lane.InterleaveUpper(c[:], m[0][:], m[1][:]) // m02 m12 m03 m13
	lane.InterleaveUpper(d[:], m[2][:], m[3][:]) // m22 m32 m23 m33

	var t Mat4[T]
	lane.ConcatLowerLower(t[0][:], a[:], b[:])
	lane.ConcatUpperUpper(t[1][:], a[:], b[:])
	lane.ConcatLowerLower(t[2][:], c[:], d[:])
	lane.ConcatUpperUpper(t[3][:], c[:], d[:])
	return t
}
