package lane

// This file provides the shuffle and permutation vocabulary used by the
// matrix kernels: pairwise interleaves, half concatenations, and four-lane
// swizzles. These are the portable renditions of the unpcklps/unpckhps,
// movlhps/movhlps and shufps instruction families; operands are full
// registers (every lane is real), so no padding is involved.
//
// dst must not alias a source operand, except in Shuffle4 which reads every
// source lane before writing.

// InterleaveLower interleaves the lower halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](dst, a, b []T) {
	half := len(dst) / 2
	for i := 0; i < half; i++ {
		dst[2*i] = a[i]
		dst[2*i+1] = b[i]
	}
}

// InterleaveUpper interleaves the upper halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](dst, a, b []T) {
	half := len(dst) / 2
	for i := 0; i < half; i++ {
		dst[2*i] = a[half+i]
		dst[2*i+1] = b[half+i]
	}
}

// ConcatLowerLower concatenates the lower halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower[T Lanes](dst, a, b []T) {
	half := len(dst) / 2
	copy(dst[:half], a[:half])
	copy(dst[half:], b[:half])
}

// ConcatUpperUpper concatenates the upper halves of two registers.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper[T Lanes](dst, a, b []T) {
	half := len(dst) / 2
	copy(dst[:half], a[half:2*half])
	copy(dst[half:], b[half:2*half])
}

// Shuffle4 swizzles a four-lane register:
// dst = [v[i0], v[i1], v[i2], v[i3]].
// The indices select source lanes and may repeat.
func Shuffle4[T Lanes](dst, v []T, i0, i1, i2, i3 int) {
	dst[0], dst[1], dst[2], dst[3] = v[i0], v[i1], v[i2], v[i3]
}

// Broadcast fills dst with a single lane of v.
func Broadcast[T Lanes](dst, v []T, lane int) {
	val := v[lane]
	for i := range dst {
		dst[i] = val
	}
}
