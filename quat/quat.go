// Package quat provides the quaternion scalar type the matrix kernels use
// for rotation extraction and construction.
package quat

import (
	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/vec"
)

// Quaternion is a rotation quaternion with scalar part W.
type Quaternion[T lane.Floats] struct {
	X, Y, Z, W T
}

// Identity returns the identity rotation.
func Identity[T lane.Floats]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// Dot returns the four-component dot product of a and b.
func Dot[T lane.Floats](a, b Quaternion[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Length returns the norm of q.
func (q Quaternion[T]) Length() T {
	return fmath.Sqrt(Dot(q, q))
}

// Normalize returns q scaled to unit length.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	inv := 1 / q.Length()
	return Quaternion[T]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Neg returns -q. A quaternion and its negation represent the same
// rotation.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Mul returns the Hamilton product a*b, the rotation b followed by a.
func Mul[T lane.Floats](a, b Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// FromAxisAngle returns the rotation of angle radians about the unit axis.
func FromAxisAngle[T lane.Floats](axis vec.Vec3[T], angle T) Quaternion[T] {
	half := angle / 2
	s := fmath.Sin(half)
	c := fmath.Cos(half)
	return Quaternion[T]{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// AxisAngle returns the rotation axis and angle of a unit quaternion.
// The identity rotation reports the X axis with angle 0.
func (q Quaternion[T]) AxisAngle() (vec.Vec3[T], T) {
	s := fmath.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	angle := 2 * fmath.Atan2(s, q.W)
	if s == 0 {
		return vec.Vec3[T]{1, 0, 0}, 0
	}
	inv := 1 / s
	return vec.Vec3[T]{q.X * inv, q.Y * inv, q.Z * inv}, angle
}

// FromRotationBasis extracts the quaternion of the proper orthonormal basis
// whose rows are x, y and z (row-vector convention: x is the image of the
// X axis). The branch on the dominant diagonal entry keeps the square root
// argument well away from zero.
func FromRotationBasis[T lane.Floats](x, y, z vec.Vec3[T]) Quaternion[T] {
	trace := x[0] + y[1] + z[2]
	var q Quaternion[T]
	switch {
	case trace > 0:
		s := fmath.Sqrt(trace + 1)
		q.W = s / 2
		s = 1 / (2 * s)
		q.X = (y[2] - z[1]) * s
		q.Y = (z[0] - x[2]) * s
		q.Z = (x[1] - y[0]) * s
	case x[0] >= y[1] && x[0] >= z[2]:
		s := fmath.Sqrt(1 + x[0] - y[1] - z[2])
		inv := 1 / (2 * s)
		q.X = s / 2
		q.Y = (x[1] + y[0]) * inv
		q.Z = (x[2] + z[0]) * inv
		q.W = (y[2] - z[1]) * inv
	case y[1] > z[2]:
		s := fmath.Sqrt(1 + y[1] - x[0] - z[2])
		inv := 1 / (2 * s)
		q.X = (y[0] + x[1]) * inv
		q.Y = s / 2
		q.Z = (z[1] + y[2]) * inv
		q.W = (z[0] - x[2]) * inv
	default:
		s := fmath.Sqrt(1 + z[2] - x[0] - y[1])
		inv := 1 / (2 * s)
		q.X = (z[0] + x[2]) * inv
		q.Y = (z[1] + y[2]) * inv
		q.Z = s / 2
		q.W = (x[1] - y[0]) * inv
	}
	return q
}
