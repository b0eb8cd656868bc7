package mat

import (
	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/quat"
	"github.com/go-vmath/vmath/vec"
)

// Decompose splits a scale/rotate/translate matrix into its three parts by
// Gram-Schmidt orthonormalization with degeneracy recovery.
//
// The axes are processed in ascending order of scale magnitude; an axis
// whose scale is below the decomposition tolerance is rebuilt from the
// canonical basis or from the cross product of the already-fixed axes. A
// basis with negative determinant gets one axis and its scale component
// negated (handedness correction).
//
// If the orthonormalized basis is not a pure rotation, the input was not a
// scale/rotate/translate composition: rotation is the identity quaternion
// and ok is false. scale and translation are still filled in. The receiver
// is never mutated; the routine works on its own copy of the basis.
func Decompose[T lane.Floats](m Mat4[T]) (scale vec.Vec3[T], rotation quat.Quaternion[T], translation vec.Vec3[T], ok bool) {
	translation = vec.Vec3[T]{m[3][0], m[3][1], m[3][2]}

	basis := [3]vec.Vec3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
	for i := range basis {
		scale[i] = vec.Length3(basis[i])
	}

	a, b, c := rankAxes(scale)
	tol := fmath.DecomposeTol[T]()

	canonical := [3]vec.Vec3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	if fmath.Abs(scale[a]) < tol {
		basis[a] = canonical[a]
	}
	basis[a] = vec.Normalize3(basis[a])

	if fmath.Abs(scale[b]) < tol {
		basis[b] = vec.Cross(basis[a], canonical[leastParallel(basis[a])])
	}
	basis[b] = vec.Normalize3(basis[b])

	if fmath.Abs(scale[c]) < tol {
		basis[c] = vec.Cross(basis[a], basis[b])
	}
	basis[c] = vec.Normalize3(basis[c])

	det := vec.Dot3(basis[0], vec.Cross(basis[1], basis[2]))
	if det < 0 {
		scale[a] = -scale[a]
		basis[a] = basis[a].Neg()
		det = -det
	}

	if (det-1)*(det-1) > tol {
		return scale, quat.Identity[T](), translation, false
	}

	rotation = quat.FromRotationBasis(basis[0], basis[1], basis[2])
	return scale, rotation, translation, true
}

// rankAxes orders the three axis indices by ascending scale magnitude,
// breaking ties by index order.
func rankAxes[T lane.Floats](scale vec.Vec3[T]) (a, b, c int) {
	a, b, c = 0, 1, 2
	if fmath.Abs(scale[b]) < fmath.Abs(scale[a]) {
		a, b = b, a
	}
	if fmath.Abs(scale[c]) < fmath.Abs(scale[b]) {
		b, c = c, b
	}
	if fmath.Abs(scale[b]) < fmath.Abs(scale[a]) {
		a, b = b, a
	}
	return a, b, c
}

// leastParallel picks the canonical axis least parallel to the unit vector
// v by comparing component magnitudes.
func leastParallel[T lane.Floats](v vec.Vec3[T]) int {
	x, y, z := fmath.Abs(v[0]), fmath.Abs(v[1]), fmath.Abs(v[2])
	if x < y {
		if x < z {
			return 0
		}
		return 2
	}
	if y < z {
		return 1
	}
	return 2
}
