// Package scratch allocates working buffers aligned to the byte
// boundary a vectorized backend for the detected CPU features would
// want, even though the transform code that consumes them is plain
// Go with no vector intrinsics.
package scratch

import (
	"unsafe"

	"github.com/cwbudde/xfft/internal/cpu"
)

// Bytes allocates n bytes aligned to the current process's preferred
// SIMD alignment and returns only the aligned slice. That slice points
// into a slightly larger backing allocation, which it keeps alive.
func Bytes(n int) []byte {
	if n == 0 {
		return nil
	}
	align := cpu.Detect().Alignment()
	raw := make([]byte, n+align)
	offset := -int(uintptr(unsafe.Pointer(&raw[0]))) & (align - 1)
	return raw[offset : offset+n : offset+n]
}

// Complex128 allocates a complex128 scratch buffer of length n,
// aligned to the host's preferred SIMD width.
func Complex128(n int) []complex128 {
	if n == 0 {
		return nil
	}
	buf := Bytes(n * 16)
	return unsafe.Slice((*complex128)(unsafe.Pointer(&buf[0])), n)
}

// Complex64 allocates a complex64 scratch buffer of length n.
func Complex64(n int) []complex64 {
	if n == 0 {
		return nil
	}
	buf := Bytes(n * 8)
	return unsafe.Slice((*complex64)(unsafe.Pointer(&buf[0])), n)
}

// Float64 allocates a float64 scratch buffer of length n.
func Float64(n int) []float64 {
	if n == 0 {
		return nil
	}
	buf := Bytes(n * 8)
	return unsafe.Slice((*float64)(unsafe.Pointer(&buf[0])), n)
}

// Float32 allocates a float32 scratch buffer of length n.
func Float32(n int) []float32 {
	if n == 0 {
		return nil
	}
	buf := Bytes(n * 4)
	return unsafe.Slice((*float32)(unsafe.Pointer(&buf[0])), n)
}
