//go:build arm64

package lane

import "golang.org/x/sys/cpu"

func init() {
	// Check for VMATH_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	// We still check the cpu package for future SVE support.
	if cpu.ARM64.HasASIMD {
		// NEON exposes both 64-bit D registers and 128-bit Q registers.
		enable(W64, "neon")
		enable(W128, "neon")
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// Future: SVE support (scalable width; reported per-machine)
	// if cpu.ARM64.HasSVE {
	//     enable(..., "sve")
	// }
}
