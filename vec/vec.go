// Package vec provides fixed-arity numeric vector value types Vec2 through
// Vec5, generic over the element type. The types are plain arrays: a
// VecN[T] occupies exactly N*sizeof(T) bytes with no hidden padding, which
// is what lets the lane engine reinterpret one as the low lanes of a
// hardware register.
//
// All arithmetic delegates to package lane; the per-arity methods are thin
// wrappers around the one arity-generic engine. Values are immutable:
// every operation returns a freshly constructed vector.
package vec

import (
	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
)

// Vec2 is a two-lane vector.
type Vec2[T lane.Lanes] [2]T

// Vec3 is a three-lane vector.
type Vec3[T lane.Lanes] [3]T

// Vec4 is a four-lane vector.
type Vec4[T lane.Lanes] [4]T

// Vec5 is a five-lane vector.
type Vec5[T lane.Lanes] [5]T

// dot is the cross-lane reduction shared by the per-arity Dot functions.
// Reductions stay scalar: they gain nothing from a padded register and the
// padding contract does not cover them.
func dot[T lane.Floats](a, b []T) T {
	var s T
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// length returns the Euclidean norm of v.
func length[T lane.Floats](v []T) T {
	return fmath.Sqrt(dot(v, v))
}

// normalize writes v scaled to unit length into dst.
// A zero vector produces NaN lanes, matching v / 0.
func normalize[T lane.Floats](dst, v []T) {
	inv := 1 / length(v)
	for i := range dst {
		dst[i] = v[i] * inv
	}
}

// lerp writes the linear blend a + (b-a)*t into dst.
func lerp[T lane.Floats](dst, a, b []T, t T) {
	for i := range dst {
		dst[i] = a[i] + (b[i]-a[i])*t
	}
}
