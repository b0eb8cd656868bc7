package lane

import "math"

// This file provides the elementwise operator catalog. Every operator comes
// in two observably equivalent flavors: a padded-register execution (the
// operand is zero-extended into the low lanes of the narrowest accelerated
// register that holds it, the kernel runs across the full register, and the
// low lanes are copied back out) and a scalar loop over the real lanes only.
//
// In the portable build the register flavor is an emulated loop over the
// register's lane count; architecture-specific builds may replace it with
// hardware intrinsics without changing observable results beyond
// floating-point rounding.
//
// The padding contract: an operator may take the register path only when a
// zero padding lane cannot influence the real lanes and cannot itself fault.
// That holds for every lane-local operator here except integer division and
// remainder (a zero padding divisor traps), which always run scalar for
// integer element types, and aggregate equality (see Eq).

// loadPadded copies src into the low lanes of a fresh register of width w.
// The remaining high lanes stay zero.
func loadPadded[T Lanes](w Width, src []T) []T {
	reg := make([]T, Count[T](w))
	copy(reg, src)
	return reg
}

// binary applies a lane-local binary kernel to dst[i] = k(a[i], b[i]),
// through a padded register when one is accelerated.
func binary[T Lanes](dst, a, b []T, k func(x, y T) T) {
	if w, ok := Pick[T](len(dst)); ok {
		ra := loadPadded(w, a[:len(dst)])
		rb := loadPadded(w, b[:len(dst)])
		for i := range ra {
			ra[i] = k(ra[i], rb[i])
		}
		copy(dst, ra[:len(dst)])
		return
	}
	binaryScalar(dst, a, b, k)
}

// binaryScalar is the scalar fallback loop shared by all binary operators.
func binaryScalar[T Lanes](dst, a, b []T, k func(x, y T) T) {
	for i := range dst {
		dst[i] = k(a[i], b[i])
	}
}

// unary applies dst[i] = k(v[i]) through a padded register when one is
// accelerated.
func unary[T Lanes](dst, v []T, k func(x T) T) {
	if w, ok := Pick[T](len(dst)); ok {
		r := loadPadded(w, v[:len(dst)])
		for i := range r {
			r[i] = k(r[i])
		}
		copy(dst, r[:len(dst)])
		return
	}
	for i := range dst {
		dst[i] = k(v[i])
	}
}

// Add stores a[i] + b[i] into dst for the len(dst) real lanes.
func Add[T Lanes](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x + y })
}

// Sub stores a[i] - b[i] into dst.
func Sub[T Lanes](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x - y })
}

// Mul stores a[i] * b[i] into dst.
func Mul[T Lanes](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x * y })
}

// Div stores a[i] / b[i] into dst. Division by zero follows the element
// type's native semantics: IEEE Inf/NaN for floats, a runtime panic for
// integers. The engine never pre-validates divisors.
func Div[T Lanes](dst, a, b []T) {
	k := func(x, y T) T { return x / y }
	if isFloat[T]() {
		binary(dst, a, b, k)
		return
	}
	// Integer division cannot use the register path: the zero padding
	// divisor lanes would trap even though their results are discarded.
	binaryScalar(dst, a, b, k)
}

// Rem stores the remainder of a[i] / b[i] into dst: x % y for integers,
// math.Mod for floats. Same zero-divisor policy as Div.
func Rem[T Lanes](dst, a, b []T) {
	if isFloat[T]() {
		binary(dst, a, b, remScalar[T])
		return
	}
	binaryScalar(dst, a, b, remScalar[T])
}

// Min stores the lane-wise minimum of a and b into dst.
func Min[T Lanes](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max stores the lane-wise maximum of a and b into dst.
func Max[T Lanes](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Neg stores -v[i] into dst. Unsigned types wrap.
func Neg[T Lanes](dst, v []T) {
	unary(dst, v, func(x T) T { return -x })
}

// Abs stores the absolute value of v[i] into dst.
func Abs[T Lanes](dst, v []T) {
	unary(dst, v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Clamp stores v[i] limited to [lo[i], hi[i]] into dst.
// PRECONDITION: lo[i] <= hi[i].
func Clamp[T Lanes](dst, v, lo, hi []T) {
	if w, ok := Pick[T](len(dst)); ok {
		rv := loadPadded(w, v[:len(dst)])
		rl := loadPadded(w, lo[:len(dst)])
		rh := loadPadded(w, hi[:len(dst)])
		for i := range rv {
			rv[i] = clampScalar(rv[i], rl[i], rh[i])
		}
		copy(dst, rv[:len(dst)])
		return
	}
	for i := range dst {
		dst[i] = clampScalar(v[i], lo[i], hi[i])
	}
}

// And stores a[i] & b[i] into dst.
func And[T Integers](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x & y })
}

// Or stores a[i] | b[i] into dst.
func Or[T Integers](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x | y })
}

// Xor stores a[i] ^ b[i] into dst.
func Xor[T Integers](dst, a, b []T) {
	binary(dst, a, b, func(x, y T) T { return x ^ y })
}

// Not stores the bitwise complement of v[i] into dst.
func Not[T Integers](dst, v []T) {
	unary(dst, v, func(x T) T { return ^x })
}

// Eq reports whether a and b are equal in every one of the len(a) real
// lanes.
//
// Eq never takes a register path. Two padded registers always agree in
// their zero padding lanes, so an aggregate lane-mask compare would report
// equality for lanes that do not exist unless the mask were explicitly
// truncated first; the per-lane scalar compare sidesteps that entirely.
func Eq[T Lanes](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clampScalar limits x to [lo, hi] for a single element.
func clampScalar[T Lanes](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// remScalar computes the remainder for a single element: x % y for
// integers, math.Mod for floats.
func remScalar[T Lanes](x, y T) T {
	switch xv := any(x).(type) {
	case float32:
		yv := any(y).(float32)
		return any(float32(math.Mod(float64(xv), float64(yv)))).(T)
	case float64:
		yv := any(y).(float64)
		return any(math.Mod(xv, yv)).(T)
	case int8:
		return any(xv % any(y).(int8)).(T)
	case int16:
		return any(xv % any(y).(int16)).(T)
	case int32:
		return any(xv % any(y).(int32)).(T)
	case int64:
		return any(xv % any(y).(int64)).(T)
	case uint8:
		return any(xv % any(y).(uint8)).(T)
	case uint16:
		return any(xv % any(y).(uint16)).(T)
	case uint32:
		return any(xv % any(y).(uint32)).(T)
	case uint64:
		return any(xv % any(y).(uint64)).(T)
	default:
		var zero T
		return zero
	}
}

// isFloat reports whether T is a floating-point element type.
func isFloat[T Lanes]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	}
	return false
}
