// Package cpu reports CPU SIMD capabilities for the current process.
//
// The DFT engine itself is pure Go with no vector intrinsics, but the scratch
// allocator and Plan metadata use this detection to choose an
// alignment that would suit a future vectorized backend without
// forcing a re-allocation if one is added later.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD-relevant capabilities of the host CPU.
type Features struct {
	HasAVX2      bool
	HasAVX512F   bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512F:   cpu.X86.HasAVX512F,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Alignment returns the byte alignment a vectorized backend targeting
// these features would want for its working buffers.
func (f Features) Alignment() int {
	switch {
	case f.HasAVX512F:
		return 64
	case f.HasAVX2, f.HasNEON:
		return 32
	case f.HasSSE2:
		return 16
	default:
		return 8
	}
}
