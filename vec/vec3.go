package vec

import "github.com/go-vmath/vmath/lane"

// Add returns v + o lane by lane.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Add(dst[:], v[:], o[:])
	return dst
}

// Sub returns v - o lane by lane.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Sub(dst[:], v[:], o[:])
	return dst
}

// Mul returns v * o lane by lane.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Mul(dst[:], v[:], o[:])
	return dst
}

// Div returns v / o lane by lane.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Div(dst[:], v[:], o[:])
	return dst
}

// Rem returns the lane-wise remainder of v / o.
func (v Vec3[T]) Rem(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Rem(dst[:], v[:], o[:])
	return dst
}

// Neg returns -v lane by lane.
func (v Vec3[T]) Neg() Vec3[T] {
	var dst Vec3[T]
	lane.Neg(dst[:], v[:])
	return dst
}

// Abs returns the lane-wise absolute value of v.
func (v Vec3[T]) Abs() Vec3[T] {
	var dst Vec3[T]
	lane.Abs(dst[:], v[:])
	return dst
}

// Min returns the lane-wise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Min(dst[:], v[:], o[:])
	return dst
}

// Max returns the lane-wise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Max(dst[:], v[:], o[:])
	return dst
}

// Clamp returns v limited to [lo, hi] lane by lane.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	lane.Clamp(dst[:], v[:], lo[:], hi[:])
	return dst
}

// Eq reports whether v and o are equal in every lane.
func (v Vec3[T]) Eq(o Vec3[T]) bool {
	return lane.Eq(v[:], o[:])
}

// Dot3 returns the dot product of a and b.
func Dot3[T lane.Floats](a, b Vec3[T]) T {
	return dot(a[:], b[:])
}

// Length3 returns the Euclidean norm of v.
func Length3[T lane.Floats](v Vec3[T]) T {
	return length(v[:])
}

// Normalize3 returns v scaled to unit length.
func Normalize3[T lane.Floats](v Vec3[T]) Vec3[T] {
	var dst Vec3[T]
	normalize(dst[:], v[:])
	return dst
}

// Lerp3 returns the linear blend of a and b at parameter t.
func Lerp3[T lane.Floats](a, b Vec3[T], t T) Vec3[T] {
	var dst Vec3[T]
	lerp(dst[:], a[:], b[:], t)
	return dst
}

// Cross returns the cross product of a and b.
func Cross[T lane.Floats](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
