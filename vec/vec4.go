package vec

import "github.com/go-vmath/vmath/lane"

// Add returns v + o lane by lane.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Add(dst[:], v[:], o[:])
	return dst
}

// Sub returns v - o lane by lane.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Sub(dst[:], v[:], o[:])
	return dst
}

// Mul returns v * o lane by lane.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Mul(dst[:], v[:], o[:])
	return dst
}

// Div returns v / o lane by lane.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Div(dst[:], v[:], o[:])
	return dst
}

// Rem returns the lane-wise remainder of v / o.
func (v Vec4[T]) Rem(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Rem(dst[:], v[:], o[:])
	return dst
}

// Neg returns -v lane by lane.
func (v Vec4[T]) Neg() Vec4[T] {
	var dst Vec4[T]
	lane.Neg(dst[:], v[:])
	return dst
}

// Abs returns the lane-wise absolute value of v.
func (v Vec4[T]) Abs() Vec4[T] {
	var dst Vec4[T]
	lane.Abs(dst[:], v[:])
	return dst
}

// Min returns the lane-wise minimum of v and o.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Min(dst[:], v[:], o[:])
	return dst
}

// Max returns the lane-wise maximum of v and o.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Max(dst[:], v[:], o[:])
	return dst
}

// Clamp returns v limited to [lo, hi] lane by lane.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	lane.Clamp(dst[:], v[:], lo[:], hi[:])
	return dst
}

// Eq reports whether v and o are equal in every lane.
func (v Vec4[T]) Eq(o Vec4[T]) bool {
	return lane.Eq(v[:], o[:])
}

// Dot4 returns the dot product of a and b.
func Dot4[T lane.Floats](a, b Vec4[T]) T {
	return dot(a[:], b[:])
}

// Length4 returns the Euclidean norm of v.
func Length4[T lane.Floats](v Vec4[T]) T {
	return length(v[:])
}

// Normalize4 returns v scaled to unit length.
func Normalize4[T lane.Floats](v Vec4[T]) Vec4[T] {
	var dst Vec4[T]
	normalize(dst[:], v[:])
	return dst
}

// Lerp4 returns the linear blend of a and b at parameter t.
func Lerp4[T lane.Floats](a, b Vec4[T], t T) Vec4[T] {
	var dst Vec4[T]
	lerp(dst[:], a[:], b[:], t)
	return dst
}
