package vec

import "github.com/go-vmath/vmath/lane"

// Add returns v + o lane by lane.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Add(dst[:], v[:], o[:])
	return dst
}

// Sub returns v - o lane by lane.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Sub(dst[:], v[:], o[:])
	return dst
}

// Mul returns v * o lane by lane.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Mul(dst[:], v[:], o[:])
	return dst
}

// Div returns v / o lane by lane.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Div(dst[:], v[:], o[:])
	return dst
}

// Rem returns the lane-wise remainder of v / o.
func (v Vec2[T]) Rem(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Rem(dst[:], v[:], o[:])
	return dst
}

// Neg returns -v lane by lane.
func (v Vec2[T]) Neg() Vec2[T] {
	var dst Vec2[T]
	lane.Neg(dst[:], v[:])
	return dst
}

// Abs returns the lane-wise absolute value of v.
func (v Vec2[T]) Abs() Vec2[T] {
	var dst Vec2[T]
	lane.Abs(dst[:], v[:])
	return dst
}

// Min returns the lane-wise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Min(dst[:], v[:], o[:])
	return dst
}

// Max returns the lane-wise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Max(dst[:], v[:], o[:])
	return dst
}

// Clamp returns v limited to [lo, hi] lane by lane.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	lane.Clamp(dst[:], v[:], lo[:], hi[:])
	return dst
}

// Eq reports whether v and o are equal in every lane.
func (v Vec2[T]) Eq(o Vec2[T]) bool {
	return lane.Eq(v[:], o[:])
}

// Dot2 returns the dot product of a and b.
func Dot2[T lane.Floats](a, b Vec2[T]) T {
	return dot(a[:], b[:])
}

// Length2 returns the Euclidean norm of v.
func Length2[T lane.Floats](v Vec2[T]) T {
	return length(v[:])
}

// Normalize2 returns v scaled to unit length.
func Normalize2[T lane.Floats](v Vec2[T]) Vec2[T] {
	var dst Vec2[T]
	normalize(dst[:], v[:])
	return dst
}

// Lerp2 returns the linear blend of a and b at parameter t.
func Lerp2[T lane.Floats](a, b Vec2[T], t T) Vec2[T] {
	var dst Vec2[T]
	lerp(dst[:], a[:], b[:], t)
	return dst
}
