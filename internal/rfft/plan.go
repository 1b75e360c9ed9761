// Package rfft implements the mixed-radix real-input DFT: a forward
// transform packs n real samples into n "halfcomplex" coefficients
// (r0, re1, im1, re2, im2, ..., r{n/2}), and backward undoes it. Radix
// 2/3/4/5 stages use hand-coded butterflies; anything else falls back
// to the generic-radix radfg/radbg pair.
package rfft

import (
	"errors"

	"github.com/cwbudde/xfft/internal/sizeutil"
	"github.com/cwbudde/xfft/internal/trig"
)

var (
	// ErrInvalidLength is returned for a non-positive length.
	ErrInvalidLength = errors.New("rfft: invalid length")
	// ErrTooManyFactors is returned when a length's factorization
	// would need more than sizeutil.MaxFactors stages.
	ErrTooManyFactors = errors.New("rfft: length factors into too many stages")
)

type factorStage struct {
	p   int
	tw  []float64
	tws []complex128
}

// Plan holds the precomputed factorization and twiddle tables for a
// fixed real transform length, stored in factorize() order (the order
// Backward walks; Forward walks it in reverse).
type Plan struct {
	n       int
	factors []factorStage
}

// New builds a real mixed-radix plan for a transform of length n.
func New(n int) (*Plan, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	p := &Plan{n: n}
	if n == 1 {
		return p, nil
	}

	ips := sizeutil.Factorize(n)
	if len(ips) > sizeutil.MaxFactors {
		return nil, ErrTooManyFactors
	}

	p.factors = buildStages(n, ips)
	return p, nil
}

// Len returns the transform length the plan was built for.
func (p *Plan) Len() int { return p.n }

func buildStages(n int, ips []int) []factorStage {
	table := trig.Table(n, true)
	at := func(k int) (float64, float64) { return table[2*k], table[2*k+1] }

	l1 := 1
	stages := make([]factorStage, len(ips))

	for stage, ip := range ips {
		ido := n / (l1 * ip)

		var tw []float64
		if stage < len(ips)-1 {
			tw = make([]float64, (ip-1)*(ido-1))
			for j := 1; j < ip; j++ {
				for i := 1; i <= (ido-1)/2; i++ {
					c, s := at(j * l1 * i)
					tw[(j-1)*(ido-1)+2*i-2] = c
					tw[(j-1)*(ido-1)+2*i-1] = s
				}
			}
		}

		var tws []complex128
		if ip > 5 {
			tws = make([]complex128, ip)
			tws[0] = 1
			for i := 1; i <= ip/2; i++ {
				c, s := at(i * (n / ip))
				tws[i] = complex(c, s)
				tws[ip-i] = complex(c, -s)
			}
		}

		stages[stage] = factorStage{p: ip, tw: tw, tws: tws}
		l1 *= ip
	}

	return stages
}

// Forward runs the forward real-to-halfcomplex transform of src into
// dst, using scratch as working space; all three must have length at
// least Len(). scale multiplies every output sample.
func (p *Plan) Forward(dst, src, scratch []float64, scale float64) {
	n := p.n
	copy(dst[:n], src[:n])

	if n == 1 {
		dst[0] *= scale
		return
	}

	c, ch := dst[:n], scratch[:n]
	l1 := n

	for i := len(p.factors) - 1; i >= 0; i-- {
		st := p.factors[i]
		ido := n / l1
		l1 /= st.p

		switch st.p {
		case 2:
			radf2(ido, l1, c, ch, st.tw)
		case 3:
			radf3(ido, l1, c, ch, st.tw)
		case 4:
			radf4(ido, l1, c, ch, st.tw)
		case 5:
			radf5(ido, l1, c, ch, st.tw)
		default:
			radfg(ido, st.p, l1, c, ch, st.tw, st.tws)
			c, ch = ch, c
		}

		c, ch = ch, c
	}

	if scale != 1 {
		for i := range c[:n] {
			c[i] *= scale
		}
	}
	if &c[0] != &dst[0] {
		copy(dst[:n], c[:n])
	}
}

// Backward runs the inverse halfcomplex-to-real transform of src into
// dst.
func (p *Plan) Backward(dst, src, scratch []float64, scale float64) {
	n := p.n
	copy(dst[:n], src[:n])

	if n == 1 {
		dst[0] *= scale
		return
	}

	c, ch := dst[:n], scratch[:n]
	l1 := 1

	for _, st := range p.factors {
		ido := n / (st.p * l1)

		switch st.p {
		case 2:
			radb2(ido, l1, c, ch, st.tw)
		case 3:
			radb3(ido, l1, c, ch, st.tw)
		case 4:
			radb4(ido, l1, c, ch, st.tw)
		case 5:
			radb5(ido, l1, c, ch, st.tw)
		default:
			radbg(ido, st.p, l1, c, ch, st.tw, st.tws)
		}

		c, ch = ch, c
		l1 *= st.p
	}

	if scale != 1 {
		for i := range c[:n] {
			c[i] *= scale
		}
	}
	if &c[0] != &dst[0] {
		copy(dst[:n], c[:n])
	}
}
