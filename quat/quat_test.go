package quat

import (
	"math"
	"testing"

	"github.com/go-vmath/vmath/internal/fmath"
	"github.com/go-vmath/vmath/lane"
	"github.com/go-vmath/vmath/vec"
)

func TestIdentity(t *testing.T) {
	id := Identity[float64]()
	if id.Length() != 1 {
		t.Errorf("identity length = %v", id.Length())
	}
	q := FromAxisAngle(vec.Vec3[float64]{0, 0, 1}, 1.3)
	if got := Mul(q, id); got != q {
		t.Errorf("q * identity = %v, want %v", got, q)
	}
	if got := Mul(id, q); got != q {
		t.Errorf("identity * q = %v, want %v", got, q)
	}
}

func TestNormalize(t *testing.T) {
	q := Quaternion[float64]{1, 2, 3, 4}
	n := q.Normalize()
	if d := fmath.Abs(n.Length() - 1); d > 1e-15 {
		t.Errorf("normalized length off by %v", d)
	}
	// Direction is preserved.
	inv := 1 / q.Length()
	want := Quaternion[float64]{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
	if fmath.Abs(n.X-want.X) > 1e-15 || fmath.Abs(n.Y-want.Y) > 1e-15 ||
		fmath.Abs(n.Z-want.Z) > 1e-15 || fmath.Abs(n.W-want.W) > 1e-15 {
		t.Errorf("Normalize changed direction: %v", n)
	}
}

func TestMulComposesRotations(t *testing.T) {
	// Two quarter turns about Z equal one half turn.
	quarter := FromAxisAngle(vec.Vec3[float64]{0, 0, 1}, math.Pi/2)
	half := FromAxisAngle(vec.Vec3[float64]{0, 0, 1}, math.Pi)
	got := Mul(quarter, quarter)
	if fmath.Abs(got.X-half.X) > 1e-15 || fmath.Abs(got.Y-half.Y) > 1e-15 ||
		fmath.Abs(got.Z-half.Z) > 1e-15 || fmath.Abs(got.W-half.W) > 1e-15 {
		t.Errorf("quarter*quarter = %v, want %v", got, half)
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	axis := vec.Normalize3(vec.Vec3[float64]{2, -1, 0.5})
	const angle = 0.8
	q := FromAxisAngle(axis, angle)
	gotAxis, gotAngle := q.AxisAngle()
	if fmath.Abs(gotAngle-angle) > 1e-14 {
		t.Errorf("angle = %v, want %v", gotAngle, angle)
	}
	for i := range axis {
		if fmath.Abs(gotAxis[i]-axis[i]) > 1e-14 {
			t.Errorf("axis[%d] = %v, want %v", i, gotAxis[i], axis[i])
		}
	}
}

func TestAxisAngleIdentity(t *testing.T) {
	axis, angle := Identity[float32]().AxisAngle()
	if angle != 0 {
		t.Errorf("identity angle = %v", angle)
	}
	if axis != (vec.Vec3[float32]{1, 0, 0}) {
		t.Errorf("identity axis = %v", axis)
	}
}

func TestNegSameRotation(t *testing.T) {
	q := FromAxisAngle(vec.Vec3[float64]{1, 0, 0}, 0.6)
	n := q.Neg()
	// Rotating a vector with q and with -q gives the same result; check
	// through the sandwich product q*v*q^-1 with v as a pure quaternion.
	v := Quaternion[float64]{0.3, -0.7, 0.2, 0}
	conj := func(p Quaternion[float64]) Quaternion[float64] {
		return Quaternion[float64]{-p.X, -p.Y, -p.Z, p.W}
	}
	a := Mul(Mul(q, v), conj(q))
	b := Mul(Mul(n, v), conj(n))
	if fmath.Abs(a.X-b.X) > 1e-15 || fmath.Abs(a.Y-b.Y) > 1e-15 || fmath.Abs(a.Z-b.Z) > 1e-15 {
		t.Errorf("q and -q rotate differently: %v vs %v", a, b)
	}
}

func TestFromRotationBasisBranches(t *testing.T) {
	// Each case lands in a different branch of the trace switch.
	cases := []struct {
		name  string
		axis  vec.Vec3[float64]
		angle float64
	}{
		{"positive trace", vec.Vec3[float64]{0, 0, 1}, 0.4},
		{"x dominant", vec.Vec3[float64]{1, 0, 0}, 3.0},
		{"y dominant", vec.Vec3[float64]{0, 1, 0}, 3.0},
		{"z dominant", vec.Vec3[float64]{0, 0, 1}, 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := FromAxisAngle(tc.axis, tc.angle)
			x, y, z := rotate(want, vec.Vec3[float64]{1, 0, 0}),
				rotate(want, vec.Vec3[float64]{0, 1, 0}),
				rotate(want, vec.Vec3[float64]{0, 0, 1})
			got := FromRotationBasis(x, y, z)
			if Dot(got, want) < 0 {
				got = got.Neg()
			}
			if fmath.Abs(got.X-want.X) > 1e-14 || fmath.Abs(got.Y-want.Y) > 1e-14 ||
				fmath.Abs(got.Z-want.Z) > 1e-14 || fmath.Abs(got.W-want.W) > 1e-14 {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

// rotate applies the unit quaternion q to v.
func rotate[T lane.Floats](q Quaternion[T], v vec.Vec3[T]) vec.Vec3[T] {
	p := Quaternion[T]{v[0], v[1], v[2], 0}
	c := Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
	r := Mul(Mul(q, p), c)
	return vec.Vec3[T]{r.X, r.Y, r.Z}
}
