package cfft

import (
	"math"
	"math/cmplx"
	"strconv"
	"testing"
)

// naiveDFT computes the O(n^2) reference transform. bwd selects the
// sign convention used by the plan's own Forward/Backward.
func naiveDFT(bwd bool, in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	sign := -1.0
	if bwd {
		sign = 1.0
	}

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			theta := sign * 2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += in[j] * cmplx.Exp(complex(0, theta))
		}
		out[k] = sum
	}

	return out
}

func randComplex(seed int, n int) []complex128 {
	out := make([]complex128, n)
	x := uint32(seed*2654435761 + 1)
	next := func() float64 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		return float64(x%20000)/10000 - 1
	}
	for i := range out {
		out[i] = complex(next(), next())
	}
	return out
}

func TestPlan_MatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	// Exercise every hand-coded radix plus a couple of generic-radix
	// and mixed composite lengths.
	sizes := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16, 17, 24, 36, 60}

	for _, n := range sizes {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			plan, err := New(n)
			if err != nil {
				t.Fatalf("New(%d): %v", n, err)
			}

			in := randComplex(n, n)
			want := naiveDFT(false, in)

			dst := make([]complex128, n)
			scratch := make([]complex128, n)
			plan.Forward(dst, in, scratch, 1)

			for i := range want {
				if cmplx.Abs(dst[i]-want[i]) > 1e-9*float64(n) {
					t.Fatalf("n=%d: Forward()[%d] = %v, want %v", n, i, dst[i], want[i])
				}
			}
		})
	}
}

func TestPlan_RoundTrip(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 2, 5, 9, 13, 17, 40, 100, 540}

	for _, n := range sizes {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			plan, err := New(n)
			if err != nil {
				t.Fatalf("New(%d): %v", n, err)
			}

			in := randComplex(n, n)
			freq := make([]complex128, n)
			scratch := make([]complex128, n)
			plan.Forward(freq, in, scratch, 1)

			back := make([]complex128, n)
			plan.Backward(back, freq, scratch, 1.0/float64(n))

			for i := range in {
				if cmplx.Abs(back[i]-in[i]) > 1e-9*float64(n) {
					t.Fatalf("n=%d: round trip [%d] = %v, want %v", n, i, back[i], in[i])
				}
			}
		})
	}
}

func TestPlan_Linearity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{5, 9, 17, 60} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			plan, err := New(n)
			if err != nil {
				t.Fatalf("New(%d): %v", n, err)
			}

			x := randComplex(n+1, n)
			y := randComplex(n+2, n)
			a := complex(2.5, 1.3)
			b := complex(-1.7, 0.8)

			combined := make([]complex128, n)
			for i := range combined {
				combined[i] = a*x[i] + b*y[i]
			}

			scratch := make([]complex128, n)
			gotCombined := make([]complex128, n)
			plan.Forward(gotCombined, combined, scratch, 1)

			fx := make([]complex128, n)
			fy := make([]complex128, n)
			plan.Forward(fx, x, scratch, 1)
			plan.Forward(fy, y, scratch, 1)

			for i := range gotCombined {
				want := a*fx[i] + b*fy[i]
				if cmplx.Abs(gotCombined[i]-want) > 1e-9*float64(n) {
					t.Fatalf("n=%d i=%d: got %v want %v", n, i, gotCombined[i], want)
				}
			}
		})
	}
}

func TestPlan_Parseval(t *testing.T) {
	t.Parallel()

	for _, n := range []int{5, 9, 17, 60} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			plan, err := New(n)
			if err != nil {
				t.Fatalf("New(%d): %v", n, err)
			}

			in := randComplex(n+3, n)
			var timeEnergy float64
			for _, v := range in {
				timeEnergy += real(v)*real(v) + imag(v)*imag(v)
			}

			out := make([]complex128, n)
			scratch := make([]complex128, n)
			plan.Forward(out, in, scratch, 1)

			var freqEnergy float64
			for _, v := range out {
				freqEnergy += real(v)*real(v) + imag(v)*imag(v)
			}
			freqEnergy /= float64(n)

			if rel := math.Abs(timeEnergy-freqEnergy) / math.Max(timeEnergy, freqEnergy); rel > 1e-9 {
				t.Fatalf("n=%d: Parseval violated, time=%v freq=%v relErr=%e", n, timeEnergy, freqEnergy, rel)
			}
		})
	}
}

func TestNew_RejectsInvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := New(0); err != ErrInvalidLength {
		t.Errorf("New(0) error = %v, want ErrInvalidLength", err)
	}
	if _, err := New(-3); err != ErrInvalidLength {
		t.Errorf("New(-3) error = %v, want ErrInvalidLength", err)
	}
}

func TestNew_RejectsTooManyFactors(t *testing.T) {
	t.Parallel()

	// 4^25 * 3 factors into 26 stages, one over sizeutil.MaxFactors.
	n := 1
	for i := 0; i < 25; i++ {
		n *= 4
	}
	n *= 3

	if _, err := New(n); err != ErrTooManyFactors {
		t.Errorf("New(%d) error = %v, want ErrTooManyFactors", n, err)
	}
}

