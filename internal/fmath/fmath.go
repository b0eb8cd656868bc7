// Package fmath provides the scalar numeric primitives the vector and
// matrix kernels share: square roots, transcendentals and the per-precision
// tolerance constants, generic over the floating element type.
package fmath

import "math"

// Floats mirrors the lane package constraint so fmath has no dependency on
// the dispatch engine.
type Floats interface {
	~float32 | ~float64
}

// Sqrt returns the square root of x.
func Sqrt[T Floats](x T) T {
	// Rounding float64 sqrt to float32 is still correctly rounded, so one
	// implementation serves both precisions.
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod[T Floats](x, y T) T {
	return T(math.Mod(float64(x), float64(y)))
}

// Sin returns the sine of x radians.
func Sin[T Floats](x T) T {
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x radians.
func Cos[T Floats](x T) T {
	return T(math.Cos(float64(x)))
}

// Atan2 returns the angle of the vector (x, y) in radians.
func Atan2[T Floats](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// NaN returns a quiet NaN of type T.
func NaN[T Floats]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is an IEEE not-a-number value.
func IsNaN[T Floats](x T) bool {
	return x != x
}

// Epsilon returns the smallest representable positive value of T. Matrix
// inversion treats any determinant below it as singular.
func Epsilon[T Floats]() T {
	if is32[T]() {
		return any(float32(math.SmallestNonzeroFloat32)).(T)
	}
	return any(float64(math.SmallestNonzeroFloat64)).(T)
}

// DecomposeTol returns the tolerance used by matrix decomposition to decide
// whether a basis is degenerate or non-orthogonal. Unlike Epsilon this is a
// practical gate: Gram-Schmidt on well-formed transforms accumulates
// rounding well above the subnormal range.
func DecomposeTol[T Floats]() T {
	if is32[T]() {
		return any(float32(1e-4)).(T)
	}
	return any(float64(1e-12)).(T)
}

// is32 reports whether T is the single-precision element type.
func is32[T Floats]() bool {
	var z T
	_, ok := any(z).(float32)
	return ok
}
