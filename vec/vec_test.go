package vec

import (
	"math"
	"testing"
	"unsafe"

	"github.com/go-vmath/vmath/lane"
)

var tierCaps = []lane.Width{lane.W512, lane.W256, lane.W128, lane.W64, 0}

// forEachCap runs fn once per dispatch width cap, restoring the default.
func forEachCap(t *testing.T, fn func(t *testing.T, cap lane.Width)) {
	t.Helper()
	prev := lane.SetMaxWidth(lane.W512)
	defer lane.SetMaxWidth(prev)
	for _, c := range tierCaps {
		lane.SetMaxWidth(c)
		fn(t, c)
	}
}

func TestVectorSizes(t *testing.T) {
	// The engine reinterprets vectors as the low bytes of a register, so
	// there must be no hidden padding between lanes.
	if s := unsafe.Sizeof(Vec2[float64]{}); s != 16 {
		t.Errorf("sizeof Vec2[float64] = %d, want 16", s)
	}
	if s := unsafe.Sizeof(Vec3[float32]{}); s != 12 {
		t.Errorf("sizeof Vec3[float32] = %d, want 12", s)
	}
	if s := unsafe.Sizeof(Vec4[int16]{}); s != 8 {
		t.Errorf("sizeof Vec4[int16] = %d, want 8", s)
	}
	if s := unsafe.Sizeof(Vec5[float32]{}); s != 20 {
		t.Errorf("sizeof Vec5[float32] = %d, want 20", s)
	}
	if s := unsafe.Sizeof(Vec5[float64]{}); s != 40 {
		t.Errorf("sizeof Vec5[float64] = %d, want 40", s)
	}
}

func TestVec5PaddingSafety(t *testing.T) {
	// Arity 5 never fills a register exactly, so every tier exercises
	// padding lanes. The five real output lanes must match a direct
	// scalar computation under every cap.
	a := Vec5[float32]{1.5, -2.25, 3, 4, 5.5}
	b := Vec5[float32]{2, 4, -8, 0.5, 11}
	forEachCap(t, func(t *testing.T, cap lane.Width) {
		add := a.Add(b)
		sub := a.Sub(b)
		mul := a.Mul(b)
		div := a.Div(b)
		for i := 0; i < 5; i++ {
			if add[i] != a[i]+b[i] {
				t.Errorf("cap %v: Add lane %d: got %v, want %v", cap, i, add[i], a[i]+b[i])
			}
			if sub[i] != a[i]-b[i] {
				t.Errorf("cap %v: Sub lane %d: got %v, want %v", cap, i, sub[i], a[i]-b[i])
			}
			if mul[i] != a[i]*b[i] {
				t.Errorf("cap %v: Mul lane %d: got %v, want %v", cap, i, mul[i], a[i]*b[i])
			}
			if div[i] != a[i]/b[i] {
				t.Errorf("cap %v: Div lane %d: got %v, want %v", cap, i, div[i], a[i]/b[i])
			}
		}
	})
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3[int32]{6, -2, 9}
	b := Vec3[int32]{3, 5, -3}
	if got := a.Add(b); got != (Vec3[int32]{9, 3, 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3[int32]{3, -7, 12}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec3[int32]{18, -10, -27}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(b); got != (Vec3[int32]{2, 0, -3}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Rem(b); got != (Vec3[int32]{0, -2, 0}) {
		t.Errorf("Rem = %v", got)
	}
	if got := a.Neg(); got != (Vec3[int32]{-6, 2, -9}) {
		t.Errorf("Neg = %v", got)
	}
	if got := b.Abs(); got != (Vec3[int32]{3, 5, 3}) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Min(b); got != (Vec3[int32]{3, -2, -3}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != (Vec3[int32]{6, 5, 9}) {
		t.Errorf("Max = %v", got)
	}
}

func TestClamp(t *testing.T) {
	v := Vec4[float32]{-1, 0.5, 3, 10}
	lo := Vec4[float32]{0, 0, 0, 0}
	hi := Vec4[float32]{1, 1, 5, 5}
	if got := v.Clamp(lo, hi); got != (Vec4[float32]{0, 0.5, 3, 5}) {
		t.Errorf("Clamp = %v", got)
	}
}

func TestEq(t *testing.T) {
	a := Vec5[float64]{1, 2, 3, 4, 5}
	b := a
	if !a.Eq(b) {
		t.Error("Eq reported equal vectors as different")
	}
	b[4] = 5.0000001
	if a.Eq(b) {
		t.Error("Eq missed a difference in the fifth lane")
	}
	// Equality stays scalar: two vectors differing only in the last lane
	// must never be masked by padded-register comparison.
	forEachCap(t, func(t *testing.T, cap lane.Width) {
		if a.Eq(b) {
			t.Errorf("cap %v: Eq missed last-lane difference", cap)
		}
	})
}

func TestDotLength(t *testing.T) {
	a := Vec3[float64]{1, 2, 2}
	if got := Dot3(a, a); got != 9 {
		t.Errorf("Dot3 = %v, want 9", got)
	}
	if got := Length3(a); got != 3 {
		t.Errorf("Length3 = %v, want 3", got)
	}
	n := Normalize3(a)
	if math.Abs(Length3(n)-1) > 1e-15 {
		t.Errorf("Normalize3 length = %v", Length3(n))
	}
}

func TestCross(t *testing.T) {
	x := Vec3[float32]{1, 0, 0}
	y := Vec3[float32]{0, 1, 0}
	if got := Cross(x, y); got != (Vec3[float32]{0, 0, 1}) {
		t.Errorf("Cross(x, y) = %v, want z", got)
	}
	if got := Cross(y, x); got != (Vec3[float32]{0, 0, -1}) {
		t.Errorf("Cross(y, x) = %v, want -z", got)
	}
}

func TestLerp(t *testing.T) {
	a := Vec2[float32]{0, 10}
	b := Vec2[float32]{10, 20}
	if got := Lerp2(a, b, 0.5); got != (Vec2[float32]{5, 15}) {
		t.Errorf("Lerp2 = %v", got)
	}
	if got := Lerp2(a, b, 0); got != a {
		t.Errorf("Lerp2 at 0 = %v", got)
	}
	if got := Lerp2(a, b, 1); got != b {
		t.Errorf("Lerp2 at 1 = %v", got)
	}
}
