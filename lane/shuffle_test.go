package lane

import "testing"

func TestInterleaveLower(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	dst := make([]float32, 4)
	InterleaveLower(dst, a, b)
	want := []float32{1, 5, 2, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestInterleaveUpper(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	dst := make([]float32, 4)
	InterleaveUpper(dst, a, b)
	want := []float32{3, 7, 4, 8}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestConcat(t *testing.T) {
	a := []int32{1, 2, 3, 4}
	b := []int32{5, 6, 7, 8}
	ll := make([]int32, 4)
	uu := make([]int32, 4)
	ConcatLowerLower(ll, a, b)
	ConcatUpperUpper(uu, a, b)
	wantLL := []int32{1, 2, 5, 6}
	wantUU := []int32{3, 4, 7, 8}
	for i := 0; i < 4; i++ {
		if ll[i] != wantLL[i] {
			t.Errorf("ConcatLowerLower lane %d: got %v, want %v", i, ll[i], wantLL[i])
		}
		if uu[i] != wantUU[i] {
			t.Errorf("ConcatUpperUpper lane %d: got %v, want %v", i, uu[i], wantUU[i])
		}
	}
}

func TestShuffle4(t *testing.T) {
	v := []float64{10, 11, 12, 13}
	dst := make([]float64, 4)
	Shuffle4(dst, v, 3, 3, 0, 1)
	want := []float64{13, 13, 10, 11}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], want[i])
		}
	}
	// In-place swizzle must read before writing.
	Shuffle4(v, v, 1, 0, 3, 2)
	want = []float64{11, 10, 13, 12}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("in-place lane %d: got %v, want %v", i, v[i], want[i])
		}
	}
}

func TestBroadcast(t *testing.T) {
	v := []uint32{7, 8, 9, 10}
	dst := make([]uint32, 4)
	Broadcast(dst, v, 2)
	for i := range dst {
		if dst[i] != 9 {
			t.Errorf("lane %d: got %v, want 9", i, dst[i])
		}
	}
}
