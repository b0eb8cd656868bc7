// Copyright 2026 vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import "unsafe"

// Width is a hardware vector register width in bits.
//
// Widths are always tried in ascending order: an operation uses the
// narrowest accelerated register its operand fits into.
type Width int

const (
	// W64 is a 64-bit register (NEON D registers).
	W64 Width = 64

	// W128 is a 128-bit register (SSE2, NEON Q registers).
	W128 Width = 128

	// W256 is a 256-bit register (AVX2).
	W256 Width = 256

	// W512 is a 512-bit register (AVX-512).
	W512 Width = 512
)

// widths lists every width the platform may support, ascending.
var widths = [...]Width{W64, W128, W256, W512}

// Bytes returns the register width in bytes.
func (w Width) Bytes() int {
	return int(w) / 8
}

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case W64:
		return "64bit"
	case W128:
		return "128bit"
	case W256:
		return "256bit"
	case W512:
		return "512bit"
	default:
		return "scalar"
	}
}

// index returns the position of w in the ascending width list, or -1.
func (w Width) index() int {
	for i, c := range widths {
		if c == w {
			return i
		}
	}
	return -1
}

// Count returns the number of T lanes a register of width w holds.
func Count[T Lanes](w Width) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return w.Bytes() / elementSize
}

// Accelerated reports whether the platform exposes a hardware vector unit of
// exactly width w for element type T and the runtime opted into it. The
// answer is fixed for the process lifetime (modulo SetMaxWidth, which is a
// test hook).
func Accelerated[T Lanes](w Width) bool {
	i := w.index()
	if i < 0 || !accel[i] || w > maxAllowed {
		return false
	}
	return Count[T](w) >= 1
}
