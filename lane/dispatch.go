package lane

import (
	"os"
	"strconv"
	"unsafe"
)

// accel records which register widths are accelerated on this platform.
// Indexed in ascending width order; populated once by init() in the
// per-GOARCH dispatch_*.go files and immutable afterwards.
var accel [len(widths)]bool

// maxAllowed caps the widths Pick may select. It defaults to W512 and is
// only ever narrowed by SetMaxWidth, a hook for tests and benchmarks.
var maxAllowed = W512

// currentName is the human-readable name of the detected SIMD target.
// Set by init() in dispatch_*.go files.
var currentName = "scalar"

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// enable marks width w as accelerated and records the target name.
func enable(w Width, name string) {
	if i := w.index(); i >= 0 {
		accel[i] = true
	}
	currentName = name
}

// setScalarMode disables every register width; all operations take the
// scalar fallback.
func setScalarMode() {
	for i := range accel {
		accel[i] = false
	}
	currentName = "scalar"
}

// NoSimdEnv checks if the VMATH_NO_SIMD environment variable is set.
// When set, every operation uses the scalar fallback regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VMATH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SetMaxWidth caps the register widths the engine may select and returns the
// previous cap. Passing 0 forces the scalar fallback everywhere.
//
// This is a hook for tests and benchmarks that compare tiers against each
// other; production code should leave the cap alone. It is not synchronized:
// call it only when no other goroutine is executing lane operations.
func SetMaxWidth(w Width) Width {
	prev := maxAllowed
	maxAllowed = w
	return prev
}

// Pick selects the narrowest accelerated width whose register can hold n
// lanes of T. The boolean result is false when no width qualifies and the
// caller must use the scalar fallback.
//
// The choice is a pure function of (T, n, capability table); it is
// recomputed on each call, never cached.
func Pick[T Lanes](n int) (Width, bool) {
	var dummy T
	needed := n * int(unsafe.Sizeof(dummy))
	for _, w := range widths {
		if w > maxAllowed {
			break
		}
		if accel[w.index()] && w.Bytes() >= needed {
			return w, true
		}
	}
	return 0, false
}
