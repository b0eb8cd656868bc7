// Package lane provides the elementwise dispatch engine behind the vmath
// vector and matrix types: per-call selection of a hardware register width
// for a fixed-arity operand, zero-padded execution on that register, and a
// scalar fallback when no width qualifies.
//
// Operands are slices of 2 to 5 lanes. The engine is generic over both the
// element type and the arity; the per-arity vector types in package vec are
// thin wrappers around it.
//
// Basic usage:
//
//	a := []float32{1, 2, 3, 4, 5}
//	b := []float32{5, 4, 3, 2, 1}
//	dst := make([]float32, 5)
//	lane.Add(dst, a, b)
package lane

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
