package xfft

import (
	"github.com/cwbudde/xfft/internal/bluestein"
	"github.com/cwbudde/xfft/internal/rfft"
	"github.com/cwbudde/xfft/internal/scratch"
)

// RealPlan is a precomputed real-to-halfcomplex DFT plan for a fixed
// length and working precision T. Forward emits the Hermitian CCE
// layout described in §3: r0, re1, im1, re2, im2, ..., with a
// trailing lone real term when N is even.
type RealPlan[T Float] struct {
	n    int
	kind algoKind

	mixed *rfft.Plan
	blue  *bluestein.Plan
}

// NewRealPlan builds a real DFT plan for a transform of length n,
// using the same mixed-radix/Bluestein dispatch heuristic as NewPlan.
func NewRealPlan[T Float](n int) (*RealPlan[T], error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	p := &RealPlan[T]{n: n}

	if useMixedRadix(n) {
		mixed, err := rfft.New(n)
		if err != nil {
			return nil, ErrInvalidLength
		}
		p.kind = algoMixedRadix
		p.mixed = mixed
		return p, nil
	}

	blue, err := bluestein.New(n)
	if err != nil {
		return nil, ErrInvalidLength
	}
	p.kind = algoBluestein
	p.blue = blue
	return p, nil
}

// Len returns the transform length the plan was built for.
func (p *RealPlan[T]) Len() int { return p.n }

// Forward computes the forward real-to-halfcomplex DFT of src into
// dst, scaling every output sample by scale.
func (p *RealPlan[T]) Forward(dst, src []T, scale float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}

	in := scratch.Float64(p.n)
	for i := 0; i < p.n; i++ {
		in[i] = float64(src[i])
	}

	out := scratch.Float64(p.n)
	switch p.kind {
	case algoMixedRadix:
		work := scratch.Float64(p.n)
		p.mixed.Forward(out, in, work, scale)
	case algoBluestein:
		work := scratch.Complex128(p.blue.ScratchLen() + p.n)
		p.blue.ForwardR(out, in, work)
		if scale != 1 {
			for i := range out {
				out[i] *= scale
			}
		}
	}

	for i := 0; i < p.n; i++ {
		dst[i] = T(out[i])
	}
	return nil
}

// Backward computes the inverse halfcomplex-to-real DFT of src into
// dst, scaling every output sample by scale.
func (p *RealPlan[T]) Backward(dst, src []T, scale float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}

	in := scratch.Float64(p.n)
	for i := 0; i < p.n; i++ {
		in[i] = float64(src[i])
	}

	out := scratch.Float64(p.n)
	switch p.kind {
	case algoMixedRadix:
		work := scratch.Float64(p.n)
		p.mixed.Backward(out, in, work, scale)
	case algoBluestein:
		work := scratch.Complex128(p.blue.ScratchLen() + p.n)
		p.blue.BackwardR(out, in, work)
		if scale != 1 {
			for i := range out {
				out[i] *= scale
			}
		}
	}

	for i := 0; i < p.n; i++ {
		dst[i] = T(out[i])
	}
	return nil
}

// workLen reports how long a scratch complex buffer a Bluestein
// fallback needs; mixed-radix real plans need none.
func (p *RealPlan[T]) workLen() int {
	if p.kind == algoBluestein {
		return p.blue.ScratchLen() + p.n
	}
	return 0
}

// ScratchedRealPlan pairs a RealPlan with a permanently allocated
// buffer set, for callers who transform the same length in a tight
// loop. Not safe for concurrent use.
type ScratchedRealPlan[T Float] struct {
	plan    *RealPlan[T]
	in, out []float64
	workF   []float64
	workC   []complex128
}

// WithScratch returns a ScratchedRealPlan wrapping p with its own
// permanent buffers.
func (p *RealPlan[T]) WithScratch() *ScratchedRealPlan[T] {
	return &ScratchedRealPlan[T]{
		plan:  p,
		in:    scratch.Float64(p.n),
		out:   scratch.Float64(p.n),
		workF: scratch.Float64(p.n),
		workC: scratch.Complex128(p.workLen()),
	}
}

// Forward computes the forward real-to-halfcomplex DFT of src into
// dst using sp's permanent buffers.
func (sp *ScratchedRealPlan[T]) Forward(dst, src []T, scale float64) error {
	return sp.run(dst, src, false, scale)
}

// Backward computes the inverse halfcomplex-to-real DFT of src into
// dst using sp's permanent buffers.
func (sp *ScratchedRealPlan[T]) Backward(dst, src []T, scale float64) error {
	return sp.run(dst, src, true, scale)
}

func (sp *ScratchedRealPlan[T]) run(dst, src []T, bwd bool, scale float64) error {
	p := sp.plan
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}

	in, out := sp.in, sp.out
	for i := 0; i < p.n; i++ {
		in[i] = float64(src[i])
	}

	switch p.kind {
	case algoMixedRadix:
		if bwd {
			p.mixed.Backward(out, in, sp.workF, scale)
		} else {
			p.mixed.Forward(out, in, sp.workF, scale)
		}
	case algoBluestein:
		if bwd {
			p.blue.BackwardR(out, in, sp.workC)
		} else {
			p.blue.ForwardR(out, in, sp.workC)
		}
		if scale != 1 {
			for i := range out {
				out[i] *= scale
			}
		}
	}

	for i := 0; i < p.n; i++ {
		dst[i] = T(out[i])
	}
	return nil
}
