package mat

import (
	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/vec"
)

// Invert computes the inverse of m by Cramer's rule.
//
// If the magnitude of the determinant falls below the smallest positive
// value of T, m is treated as singular: the result is filled with NaN and
// ok is false. Both tiers share that policy; they may differ in rounding
// but agree on invertibility for well-conditioned inputs.
func Invert[T lane.Floats](m Mat4[T]) (result Mat4[T], ok bool) {
	if _, simd := lane.Pick[T](4); simd {
		return invertRegs(m)
	}
	return invertScalar(m)
}

// invertRegs is the lane-parallel tier: transpose the rows into column
// registers, form the six 2x2 sub-determinant registers from shuffled
// column pairs, then combine them into the four adjugate rows with
// sign-masked multiply/subtract chains.
func invertRegs[T lane.Floats](m Mat4[T]) (Mat4[T], bool) {
	t := transposeRegs(m) // t[j] holds column j

	// Each pair register carries (c, c, s, s): the 2x2 determinant of
	// column pair (j,k) over rows 2,3 in the low lanes and over rows 0,1
	// in the high lanes.
	g01 := subdet2x2(t[0], t[1])
	g02 := subdet2x2(t[0], t[2])
	g03 := subdet2x2(t[0], t[3])
	g12 := subdet2x2(t[1], t[2])
	g13 := subdet2x2(t[1], t[3])
	g23 := subdet2x2(t[2], t[3])

	r0 := adjRow(t[1], t[2], t[3], g23, g13, g12, false)
	r1 := adjRow(t[0], t[2], t[3], g23, g03, g02, true)
	r2 := adjRow(t[0], t[1], t[3], g13, g03, g01, false)
	r3 := adjRow(t[0], t[1], t[2], g12, g02, g01, true)

	// det = dot(adjugate row 0, column 0)
	var p vec.Vec4[T]
	lane.Mul(p[:], r0[:], t[0][:])
	det := p[0] + p[1] + p[2] + p[3]

	if fmath.Abs(det) < fmath.Epsilon[T]() {
		return nan4[T](), false
	}

	inv := 1 / det
	scale := vec.Vec4[T]{inv, inv, inv, inv}
	adj := Mat4[T]{r0, r1, r2, r3}
	for i := range adj {
		lane.Mul(adj[i][:], adj[i][:], scale[:])
	}
	return adj, true
}

// subdet2x2 builds the paired 2x2 determinant register for columns a, b:
// lanes 0,1 hold a2*b3 - a3*b2 and lanes 2,3 hold a0*b1 - a1*b0.
func subdet2x2[T lane.Floats](a, b vec.Vec4[T]) vec.Vec4[T] {
	var al, bh, ah, bl, p, q, g vec.Vec4[T]
	lane.Shuffle4(al[:], a[:], 2, 2, 0, 0)
	lane.Shuffle4(bh[:], b[:], 3, 3, 1, 1)
	lane.Shuffle4(ah[:], a[:], 3, 3, 1, 1)
	lane.Shuffle4(bl[:], b[:], 2, 2, 0, 0)
	lane.Mul(p[:], al[:], bh[:])
	lane.Mul(q[:], ah[:], bl[:])
	lane.Sub(g[:], p[:], q[:])
	return g
}

// adjRow combines three column registers and their matching pair registers
// into one adjugate row: swz(x)*gx - swz(y)*gy + swz(z)*gz, where swz swaps
// lanes within each half so every lane picks up the row it is a cofactor
// of. negate flips the checkerboard sign for odd rows.
func adjRow[T lane.Floats](x, y, z, gx, gy, gz vec.Vec4[T], negate bool) vec.Vec4[T] {
	var sx, sy, sz, a, b, c, acc vec.Vec4[T]
	lane.Shuffle4(sx[:], x[:], 1, 0, 3, 2)
	lane.Shuffle4(sy[:], y[:], 1, 0, 3, 2)
	lane.Shuffle4(sz[:], z[:], 1, 0, 3, 2)
	lane.Mul(a[:], sx[:], gx[:])
	lane.Mul(b[:], sy[:], gy[:])
	lane.Mul(c[:], sz[:], gz[:])
	lane.Sub(acc[:], a[:], b[:])
	lane.Add(acc[:], acc[:], c[:])

	signs := vec.Vec4[T]{1, -1, 1, -1}
	if negate {
		signs = vec.Vec4[T]{-1, 1, -1, 1}
	}
	lane.Mul(acc[:], acc[:], signs[:])
	return acc
}

// invertScalar is the closed-form tier: the classic adjugate over twelve
// shared two-term sub-products.
func invertScalar[T lane.Floats](m Mat4[T]) (Mat4[T], bool) {
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

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if fmath.Abs(det) < fmath.Epsilon[T]() {
		return nan4[T](), false
	}
	inv := 1 / det

	var r Mat4[T]
	r[0][0] = (m[1][1]*c5 - m[1][2]*c4 + m[1][3]*c3) * inv
	r[0][1] = (-m[0][1]*c5 + m[0][2]*c4 - m[0][3]*c3) * inv
	r[0][2] = (m[3][1]*s5 - m[3][2]*s4 + m[3][3]*s3) * inv
	r[0][3] = (-m[2][1]*s5 + m[2][2]*s4 - m[2][3]*s3) * inv

	r[1][0] = (-m[1][0]*c5 + m[1][2]*c2 - m[1][3]*c1) * inv
	r[1][1] = (m[0][0]*c5 - m[0][2]*c2 + m[0][3]*c1) * inv
	r[1][2] = (-m[3][0]*s5 + m[3][2]*s2 - m[3][3]*s1) * inv
	r[1][3] = (m[2][0]*s5 - m[2][2]*s2 + m[2][3]*s1) * inv

	r[2][0] = (m[1][0]*c4 - m[1][1]*c2 + m[1][3]*c0) * inv
	r[2][1] = (-m[0][0]*c4 + m[0][1]*c2 - m[0][3]*c0) * inv
	r[2][2] = (m[3][0]*s4 - m[3][1]*s2 + m[3][3]*s0) * inv
	r[2][3] = (-m[2][0]*s4 + m[2][1]*s2 - m[2][3]*s0) * inv

	r[3][0] = (-m[1][0]*c3 + m[1][1]*c1 - m[1][2]*c0) * inv
	r[3][1] = (m[0][0]*c3 - m[0][1]*c1 + m[0][2]*c0) * inv
	r[3][2] = (-m[3][0]*s3 + m[3][1]*s1 - m[3][2]*s0) * inv
	r[3][3] = (m[2][0]*s3 - m[2][1]*s1 + m[2][2]*s0) * inv

	return r, true
}
