// Package bluestein implements the chirp-z transform: a length-N
// complex DFT reduced to a length-M cyclic convolution, M =
// sizeutil.GoodSize(2N-1), executed by a nested mixed-radix plan. It
// serves lengths the mixed-radix engine handles poorly, typically
// large primes.
package bluestein

import (
	"errors"

	"github.com/cwbudde/xfft/internal/cfft"
	"github.com/cwbudde/xfft/internal/sizeutil"
	"github.com/cwbudde/xfft/internal/trig"
)

// ErrInvalidLength is returned for a non-positive length.
var ErrInvalidLength = errors.New("bluestein: invalid length")

// Plan holds the chirp tables and nested mixed-radix plan for a fixed
// length-N complex transform. Plan holds no per-call working state,
// so a single Plan may be used concurrently provided each caller
// supplies its own scratch, per ScratchLen.
type Plan struct {
	n, m int

	bk  []complex128 // length n chirp
	bkf []complex128 // length m, forward-transformed zero-padded bk, scaled by 1/m

	inner        *cfft.Plan
	innerScratch []complex128 // buildChirp only; not touched after New
}

// New builds a Bluestein plan for a length-n complex transform.
func New(n int) (*Plan, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	m := sizeutil.GoodSize(2*n - 1)
	inner, err := cfft.New(m)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		n:            n,
		m:            m,
		inner:        inner,
		innerScratch: make([]complex128, m),
	}
	p.buildChirp()
	return p, nil
}

// Len returns the transform length the plan was built for.
func (p *Plan) Len() int { return p.n }

// ScratchLen returns the length the scratch buffer passed to Forward
// and Backward must have. ForwardR and BackwardR need ScratchLen()
// plus Len() more, since they stage the real input/output in the
// first Len() slots before handing the rest to fft.
func (p *Plan) ScratchLen() int { return 2 * p.m }

func (p *Plan) buildChirp() {
	n, m := p.n, p.m
	table := trig.Table(2*n, false)
	at := func(k int) (float64, float64) { return table[2*k], table[2*k+1] }

	p.bk = make([]complex128, n)
	p.bk[0] = 1

	coeff := 0
	for k := 1; k < n; k++ {
		coeff += 2*k - 1
		if coeff >= 2*n {
			coeff -= 2 * n
		}
		c, s := at(coeff)
		p.bk[k] = complex(c, s)
	}

	bkf := make([]complex128, m)
	xm := 1 / float64(m)
	bkf[0] = p.bk[0] * complex(xm, 0)
	for k := 1; k < n; k++ {
		// b_k is even in k (exp(i*pi*k^2/n) = exp(i*pi*(-k)^2/n)), so
		// the wraparound value at M-k is a plain copy, not a conjugate.
		v := p.bk[k] * complex(xm, 0)
		bkf[k] = v
		bkf[m-k] = v
	}

	p.inner.Forward(bkf, bkf, p.innerScratch, 1)
	p.bkf = bkf
}

// Forward runs the forward Bluestein transform of src into dst; both
// must have length at least Len(). scratch must have length at least
// ScratchLen() and is caller-owned, for concurrent use of one Plan.
func (p *Plan) Forward(dst, src, scratch []complex128, scale float64) {
	p.fft(dst, src, scratch, false, scale)
}

// Backward runs the inverse Bluestein transform of src into dst.
func (p *Plan) Backward(dst, src, scratch []complex128, scale float64) {
	p.fft(dst, src, scratch, true, scale)
}

// ForwardR runs the forward transform of n real samples into the
// halfcomplex layout used by internal/rfft: r0, re1, im1, re2, im2,
// ..., with a trailing lone real term when n is even. It lets the
// real-plan dispatcher fall back to Bluestein for large-prime
// lengths. scratch must have length at least ScratchLen()+Len().
func (p *Plan) ForwardR(dst, src []float64, scratch []complex128) {
	n := p.n
	tmp, rest := scratch[:n], scratch[n:]
	for k := 0; k < n; k++ {
		tmp[k] = complex(src[k], 0)
	}

	p.fft(tmp, tmp, rest, false, 1)

	dst[0] = real(tmp[0])
	for k := 1; k <= (n-1)/2; k++ {
		dst[2*k-1] = real(tmp[k])
		dst[2*k] = imag(tmp[k])
	}
	if n%2 == 0 {
		dst[n-1] = real(tmp[n/2])
	}
}

// BackwardR runs the inverse of ForwardR: src holds n real samples in
// halfcomplex layout, dst receives n real samples.
func (p *Plan) BackwardR(dst, src []float64, scratch []complex128) {
	n := p.n
	tmp, rest := scratch[:n], scratch[n:]

	tmp[0] = complex(src[0], 0)
	for k := 1; k <= (n-1)/2; k++ {
		tmp[k] = complex(src[2*k-1], src[2*k])
	}
	if n%2 == 0 {
		tmp[n/2] = complex(src[n-1], 0)
	}
	for j := 1; j <= (n-1)/2; j++ {
		tmp[n-j] = complex(real(tmp[j]), -imag(tmp[j]))
	}

	p.fft(tmp, tmp, rest, true, 1)

	for k := 0; k < n; k++ {
		dst[k] = real(tmp[k])
	}
}

// chirpMul is a*w for bwd, a*conj(w) for forward — the isign-tagged
// product that steps 1, 3 and 5 of the chirp-z transform all share.
func chirpMul(bwd bool, a, w complex128) complex128 {
	if bwd {
		return a * w
	}
	return a * complex(real(w), -imag(w))
}

// fft implements fftblue::fft: embed src into the length-m chirp
// buffer, run the cyclic convolution through the nested mixed-radix
// plan, then demodulate. akf and the inner plan's own scratch both
// come out of the caller-supplied scratch, sized m+m by ScratchLen
// plus the inner plan's requirement (also m).
func (p *Plan) fft(dst, src []complex128, scratch []complex128, bwd bool, fct float64) {
	n, m := p.n, p.m
	akf, inner := scratch[:m], scratch[m:2*m]

	for k := 0; k < n; k++ {
		akf[k] = chirpMul(bwd, src[k], p.bk[k])
	}
	for k := n; k < m; k++ {
		akf[k] = 0
	}

	p.inner.Forward(akf, akf, inner, 1)

	for k := 0; k < m; k++ {
		akf[k] = chirpMul(!bwd, akf[k], p.bkf[k])
	}

	p.inner.Backward(akf, akf, inner, 1)

	for k := 0; k < n; k++ {
		dst[k] = complex(fct, 0) * chirpMul(bwd, akf[k], p.bk[k])
	}
}
