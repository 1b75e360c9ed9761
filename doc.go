// Package xfft implements discrete Fourier transforms over complex
// and real sequences: a complex-to-complex Plan, a real-to-halfcomplex
// RealPlan, and a real-to-real HartleyPlan, plus ExecC2C/ExecR2C/
// ExecC2R/ExecR2R drivers for transforming along one or more axes of
// a strided N-D array.
//
// Every transform length is supported, not just powers of two: short
// or highly composite lengths route through a mixed-radix engine
// (internal/cfft, internal/rfft) built from hand-unrolled radix-2/3/4/5
// butterflies (plus radix-7/11 in the complex engine) and a
// generic-radix fallback; large prime lengths route
// through a Bluestein chirp-z engine (internal/bluestein) instead. The
// dispatcher choosing between them is a tagged union resolved once at
// plan construction, never a v-table.
//
// A Plan, RealPlan, or HartleyPlan may be shared read-only across
// goroutines: Forward, Backward, and Transform each allocate their
// own scratch per call and touch no mutable plan state. Callers who
// transform the same length in a tight loop and want to avoid that
// per-call allocation can call WithScratch for a single-goroutine
// wrapper with permanently owned buffers instead.
package xfft
