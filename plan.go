package xfft

import (
	"math"

	"github.com/cwbudde/xfft/internal/bluestein"
	"github.com/cwbudde/xfft/internal/cfft"
	"github.com/cwbudde/xfft/internal/cpu"
	"github.com/cwbudde/xfft/internal/scratch"
	"github.com/cwbudde/xfft/internal/sizeutil"
)

// algoKind tags which inner engine a Plan owns. The dispatcher holds
// exactly one of the two alternatives; the unused one is never
// constructed.
type algoKind int

const (
	algoMixedRadix algoKind = iota
	algoBluestein
)

// Plan is a precomputed complex-to-complex DFT plan for a fixed
// length and working precision T. It owns either a mixed-radix or a
// Bluestein engine, chosen at construction, and is safe to use
// concurrently across goroutines provided each call supplies its own
// buffers.
type Plan[T Complex] struct {
	n    int
	kind algoKind

	mixed *cfft.Plan
	blue  *bluestein.Plan

	features cpu.Features
}

// NewPlan builds a complex DFT plan for a transform of length n,
// choosing between the mixed-radix and Bluestein engines per the
// dispatcher heuristic in §4.6: small or highly composite lengths use
// mixed-radix directly, everything else compares estimated cost.
func NewPlan[T Complex](n int) (*Plan[T], error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	p := &Plan[T]{n: n, features: cpu.Detect()}

	if useMixedRadix(n) {
		mixed, err := cfft.New(n)
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

func useMixedRadix(n int) bool {
	if n < 50 {
		return true
	}
	if sizeutil.LargestPrimeFactor(n) <= int(math.Sqrt(float64(n))) {
		return true
	}

	const blueOverhead = 1.5
	directCost := sizeutil.CostGuess(n)
	blueCost := blueOverhead * 2 * sizeutil.CostGuess(sizeutil.GoodSize(2*n-1))
	return directCost <= blueCost
}

// Len returns the transform length the plan was built for.
func (p *Plan[T]) Len() int { return p.n }

// Features reports the SIMD capabilities detected for this process,
// for callers deciding whether to route through a vectorized backend.
func (p *Plan[T]) Features() cpu.Features { return p.features }

// Forward computes the forward DFT of src into dst, scaling every
// output sample by scale. dst and src must be non-nil and at least
// Len() long.
func (p *Plan[T]) Forward(dst, src []T, scale float64) error {
	return p.transform(dst, src, false, scale)
}

// Backward computes the inverse DFT of src into dst, scaling every
// output sample by scale.
func (p *Plan[T]) Backward(dst, src []T, scale float64) error {
	return p.transform(dst, src, true, scale)
}

// workLen reports how long a scratch buffer ScratchedPlan must hand
// to the inner engine on every call.
func (p *Plan[T]) workLen() int {
	if p.kind == algoBluestein {
		return p.blue.ScratchLen()
	}
	return p.n
}

func (p *Plan[T]) transform(dst, src []T, bwd bool, scale float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}

	in := scratch.Complex128(p.n)
	out := scratch.Complex128(p.n)
	work := scratch.Complex128(p.workLen())
	p.transformBuf(dst, src, in, out, work, bwd, scale)
	return nil
}

// transformBuf runs the transform using caller-supplied buffers, all
// at least p.n (in, out) or p.workLen() (work) long. It performs no
// validation; callers (transform and ScratchedPlan) do that.
func (p *Plan[T]) transformBuf(dst, src []T, in, out, work []complex128, bwd bool, scale float64) {
	for i := 0; i < p.n; i++ {
		in[i] = complex128(src[i])
	}

	switch p.kind {
	case algoMixedRadix:
		if bwd {
			p.mixed.Backward(out, in, work, scale)
		} else {
			p.mixed.Forward(out, in, work, scale)
		}
	case algoBluestein:
		if bwd {
			p.blue.Backward(out, in, work, scale)
		} else {
			p.blue.Forward(out, in, work, scale)
		}
	}

	for i := 0; i < p.n; i++ {
		dst[i] = T(out[i])
	}
}

// ScratchedPlan pairs a Plan with a permanently allocated buffer set,
// for callers who transform the same length in a tight loop and want
// to avoid a fresh allocation on every call. It is not safe for
// concurrent use — each goroutine that wants one calls WithScratch on
// its own.
type ScratchedPlan[T Complex] struct {
	plan          *Plan[T]
	in, out, work []complex128
}

// WithScratch returns a ScratchedPlan wrapping p with its own
// permanent buffers.
func (p *Plan[T]) WithScratch() *ScratchedPlan[T] {
	return &ScratchedPlan[T]{
		plan: p,
		in:   scratch.Complex128(p.n),
		out:  scratch.Complex128(p.n),
		work: scratch.Complex128(p.workLen()),
	}
}

// Forward computes the forward DFT of src into dst using sp's
// permanent buffers.
func (sp *ScratchedPlan[T]) Forward(dst, src []T, scale float64) error {
	return sp.run(dst, src, false, scale)
}

// Backward computes the inverse DFT of src into dst using sp's
// permanent buffers.
func (sp *ScratchedPlan[T]) Backward(dst, src []T, scale float64) error {
	return sp.run(dst, src, true, scale)
}

func (sp *ScratchedPlan[T]) run(dst, src []T, bwd bool, scale float64) error {
	p := sp.plan
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}
	p.transformBuf(dst, src, sp.in, sp.out, sp.work, bwd, scale)
	return nil
}
