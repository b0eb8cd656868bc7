//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	// Check for VMATH_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// SSE2 is baseline for amd64.
	enable(W128, "sse2")

	if cpu.X86.HasAVX2 {
		enable(W256, "avx2")
	}

	// AVX-512 needs the F/BW/VL trio before the full elementwise catalog is
	// usable on 512-bit registers.
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL {
		enable(W512, "avx512")
	}

	// 64-bit MMX registers are never used on amd64: the instruction set is
	// legacy and SSE2 covers every operand size it would.
}
