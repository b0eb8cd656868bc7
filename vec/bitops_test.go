package vec

import "testing"

func TestBitwiseVec4(t *testing.T) {
	a := Vec4[uint8]{0xF0, 0x12, 0xFF, 0x00}
	b := Vec4[uint8]{0x0F, 0x34, 0x01, 0xFF}
	if got := And4(a, b); got != (Vec4[uint8]{0x00, 0x10, 0x01, 0x00}) {
		t.Errorf("And4 = %v", got)
	}
	if got := Or4(a, b); got != (Vec4[uint8]{0xFF, 0x36, 0xFF, 0xFF}) {
		t.Errorf("Or4 = %v", got)
	}
	if got := Xor4(a, b); got != (Vec4[uint8]{0xFF, 0x26, 0xFE, 0xFF}) {
		t.Errorf("Xor4 = %v", got)
	}
	if got := Not4(a); got != (Vec4[uint8]{0x0F, 0xED, 0x00, 0xFF}) {
		t.Errorf("Not4 = %v", got)
	}
}

func TestBitwiseVec5(t *testing.T) {
	a := Vec5[uint32]{0xDEADBEEF, 0, 0xFFFFFFFF, 0x01020304, 0xAAAA5555}
	b := Vec5[uint32]{0xFFFF0000, 0xFFFFFFFF, 0x0000FFFF, 0x04030201, 0x5555AAAA}
	and := And5(a, b)
	or := Or5(a, b)
	xor := Xor5(a, b)
	not := Not5(a)
	for i := 0; i < 5; i++ {
		if and[i] != a[i]&b[i] {
			t.Errorf("And5 lane %d: got %#x, want %#x", i, and[i], a[i]&b[i])
		}
		if or[i] != a[i]|b[i] {
			t.Errorf("Or5 lane %d: got %#x, want %#x", i, or[i], a[i]|b[i])
		}
		if xor[i] != a[i]^b[i] {
			t.Errorf("Xor5 lane %d: got %#x, want %#x", i, xor[i], a[i]^b[i])
		}
		if not[i] != ^a[i] {
			t.Errorf("Not5 lane %d: got %#x, want %#x", i, not[i], ^a[i])
		}
	}
}

func TestBitwiseVec2Vec3(t *testing.T) {
	a2 := Vec2[int64]{0x7FFF, -1}
	b2 := Vec2[int64]{0x00FF, 0x10}
	if got := And2(a2, b2); got != (Vec2[int64]{0x00FF, 0x10}) {
		t.Errorf("And2 = %v", got)
	}
	a3 := Vec3[uint16]{1, 2, 4}
	b3 := Vec3[uint16]{3, 2, 1}
	if got := Xor3(a3, b3); got != (Vec3[uint16]{2, 0, 5}) {
		t.Errorf("Xor3 = %v", got)
	}
}
