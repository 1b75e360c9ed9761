// Package cfft implements the mixed-radix Cooley-Tukey complex DFT:
// factorize the length, build a twiddle table per factor, and run the
// matching butterfly pass for each one.
package cfft

import (
	"errors"

	"github.com/cwbudde/xfft/internal/sizeutil"
	"github.com/cwbudde/xfft/internal/trig"
)

var (
	// ErrInvalidLength is returned for a non-positive length.
	ErrInvalidLength = errors.New("cfft: invalid length")
	// ErrTooManyFactors is returned when a length's factorization
	// would need more than MaxFactors stages.
	ErrTooManyFactors = errors.New("cfft: length factors into too many stages")
)

type factorStage struct {
	p   int
	tw  []complex128
	tws []complex128
}

// Plan holds the precomputed factorization and twiddle tables for a
// fixed transform length.
type Plan struct {
	n       int
	factors []factorStage
}

// New builds a complex mixed-radix plan for a transform of length n.
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

// buildStages computes, for each factor in sequence, the twiddle
// table addressed by WA(x,i) = tw[x*(ido-1)+i-1] for twiddle slot
// x=0..ip-2, ido position i=1..ido-1; factors with ip>11 additionally
// get a length-ip table of primitive-root twiddles for passg.
func buildStages(n int, ips []int) []factorStage {
	table := trig.Table(n, false)
	at := func(k int) complex128 { return complex(table[2*k], table[2*k+1]) }

	l1 := 1
	stages := make([]factorStage, len(ips))

	for stage, ip := range ips {
		ido := n / (l1 * ip)

		tw := make([]complex128, (ip-1)*(ido-1))
		for j := 1; j < ip; j++ {
			for i := 1; i < ido; i++ {
				tw[(j-1)*(ido-1)+(i-1)] = at(j * l1 * i)
			}
		}

		var tws []complex128
		if ip > 11 {
			tws = make([]complex128, ip)
			for j := 0; j < ip; j++ {
				tws[j] = at(j * l1 * ido)
			}
		}

		stages[stage] = factorStage{p: ip, tw: tw, tws: tws}
		l1 *= ip
	}

	return stages
}

// run executes the plan's pass sequence over buf (length n), scaling
// the final result by scale, and returns the buffer holding the
// result (either buf itself or the scratch buffer ch).
func (p *Plan) run(bwd bool, buf, scratch []complex128, scale float64) []complex128 {
	if p.n == 1 {
		if scale != 1 {
			buf[0] *= complex(scale, 0)
		}
		return buf
	}

	c, ch := buf, scratch
	l1 := 1

	for _, st := range p.factors {
		l2 := st.p * l1
		ido := p.n / l2

		switch st.p {
		case 2:
			pass2(bwd, ido, l1, c, ch, st.tw)
		case 3:
			pass3(bwd, ido, l1, c, ch, st.tw)
		case 4:
			pass4(bwd, ido, l1, c, ch, st.tw)
		case 5:
			pass5(bwd, ido, l1, c, ch, st.tw)
		case 7:
			pass7(bwd, ido, l1, c, ch, st.tw)
		case 11:
			pass11(bwd, ido, l1, c, ch, st.tw)
		default:
			passg(bwd, ido, st.p, l1, c, ch, st.tw, st.tws)
			c, ch = ch, c
		}

		c, ch = ch, c
		l1 = l2
	}

	if scale != 1 {
		for i := range c[:p.n] {
			c[i] *= complex(scale, 0)
		}
	}

	return c
}

// Forward runs the forward (analysis) transform of src into dst,
// using scratch as working space; scratch and dst must each have
// length at least Len(). scale multiplies every output sample.
func (p *Plan) Forward(dst, src, scratch []complex128, scale float64) {
	p.transform(false, dst, src, scratch, scale)
}

// Backward runs the inverse (synthesis) transform of src into dst.
func (p *Plan) Backward(dst, src, scratch []complex128, scale float64) {
	p.transform(true, dst, src, scratch, scale)
}

func (p *Plan) transform(bwd bool, dst, src, scratch []complex128, scale float64) {
	copy(dst[:p.n], src[:p.n])
	res := p.run(bwd, dst[:p.n], scratch[:p.n], scale)
	if &res[0] != &dst[0] {
		copy(dst[:p.n], res)
	}
}
