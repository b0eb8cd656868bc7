package vec

import "github.com/go-vmath/vmath/lane"

// Add returns v + o lane by lane.
func (v Vec5[T]) Add(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Add(dst[:], v[:], o[:])
	return dst
}

// Sub returns v - o lane by lane.
func (v Vec5[T]) Sub(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Sub(dst[:], v[:], o[:])
	return dst
}

// Mul returns v * o lane by lane.
func (v Vec5[T]) Mul(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Mul(dst[:], v[:], o[:])
	return dst
}

// Div returns v / o lane by lane.
func (v Vec5[T]) Div(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Div(dst[:], v[:], o[:])
	return dst
}

// Rem returns the lane-wise remainder of v / o.
func (v Vec5[T]) Rem(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Rem(dst[:], v[:], o[:])
	return dst
}

// Neg returns -v lane by lane.
func (v Vec5[T]) Neg() Vec5[T] {
	var dst Vec5[T]
	lane.Neg(dst[:], v[:])
	return dst
}

// Abs returns the lane-wise absolute value of v.
func (v Vec5[T]) Abs() Vec5[T] {
	var dst Vec5[T]
	lane.Abs(dst[:], v[:])
	return dst
}

// Min returns the lane-wise minimum of v and o.
func (v Vec5[T]) Min(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Min(dst[:], v[:], o[:])
	return dst
}

// Max returns the lane-wise maximum of v and o.
func (v Vec5[T]) Max(o Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Max(dst[:], v[:], o[:])
	return dst
}

// Clamp returns v limited to [lo, hi] lane by lane.
func (v Vec5[T]) Clamp(lo, hi Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	lane.Clamp(dst[:], v[:], lo[:], hi[:])
	return dst
}

// Eq reports whether v and o are equal in every lane.
func (v Vec5[T]) Eq(o Vec5[T]) bool {
	return lane.Eq(v[:], o[:])
}

// Dot5 returns the dot product of a and b.
func Dot5[T lane.Floats](a, b Vec5[T]) T {
	return dot(a[:], b[:])
}

// Length5 returns the Euclidean norm of v.
func Length5[T lane.Floats](v Vec5[T]) T {
	return length(v[:])
}

// Normalize5 returns v scaled to unit length.
func Normalize5[T lane.Floats](v Vec5[T]) Vec5[T] {
	var dst Vec5[T]
	normalize(dst[:], v[:])
	return dst
}

// Lerp5 returns the linear blend of a and b at parameter t.
func Lerp5[T lane.Floats](a, b Vec5[T], t T) Vec5[T] {
	var dst Vec5[T]
	lerp(dst[:], a[:], b[:], t)
	return dst
}
