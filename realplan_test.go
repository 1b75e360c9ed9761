package xfft

import (
	"math"
	"strconv"
	"testing"
)

func naiveRFFT(in []float64) []complex128 {
	n := len(in)
	out := make([]complex128, n/2+1)
	for k := range out {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			sum += complex(in[j], 0) * complex(c, s)
		}
		out[k] = sum
	}
	return out
}

func randReal(seed, n int) []float64 {
	state := uint32(seed*2246822519 + 1)
	next := func() float64 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return float64(state)/float64(1<<32)*2 - 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = next()
	}
	return out
}

func TestRealPlan_ForwardMatchesNaive(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 13, 17, 40, 97, 540, 541} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()
			p, err := NewRealPlan[float64](n)
			if err != nil {
				t.Fatalf("NewRealPlan(%d): %v", n, err)
			}

			in := randReal(n, n)
			want := naiveRFFT(in)

			got := make([]float64, n)
			if err := p.Forward(got, in, 1); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			for k := range want {
				var re, im float64
				switch {
				case k == 0:
					re, im = got[0], 0
				case n%2 == 0 && k == n/2:
					re, im = got[n-1], 0
				default:
					re, im = got[2*k-1], got[2*k]
				}
				d := math.Hypot(re-real(want[k]), im-imag(want[k]))
				if d > 1e-6*float64(n) {
					t.Fatalf("n=%d k=%d: got (%v,%v) want %v", n, k, re, im, want[k])
				}
			}
		})
	}
}

func TestRealPlan_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 9, 17, 100, 540, 541} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()
			p, err := NewRealPlan[float32](n)
			if err != nil {
				t.Fatalf("NewRealPlan(%d): %v", n, err)
			}

			src := randReal(n+3, n)
			in := make([]float32, n)
			for i := range in {
				in[i] = float32(src[i])
			}

			freq := make([]float32, n)
			if err := p.Forward(freq, in, 1); err != nil {
				t.Fatalf("Forward: %v", err)
			}

			back := make([]float32, n)
			if err := p.Backward(back, freq, 1.0/float64(n)); err != nil {
				t.Fatalf("Backward: %v", err)
			}

			for i := range in {
				d := math.Abs(float64(back[i] - in[i]))
				if d > 1e-3*float64(n) {
					t.Fatalf("n=%d i=%d: got %v want %v", n, i, back[i], in[i])
				}
			}
		})
	}
}

func TestNewRealPlan_RejectsInvalidLength(t *testing.T) {
	if _, err := NewRealPlan[float64](0); err != ErrInvalidLength {
		t.Errorf("NewRealPlan(0) = %v, want ErrInvalidLength", err)
	}
}

func TestRealPlan_RejectsShortSlices(t *testing.T) {
	p, err := NewRealPlan[float64](8)
	if err != nil {
		t.Fatal(err)
	}
	short := make([]float64, 4)
	full := make([]float64, 8)
	if err := p.Forward(full, short, 1); err != ErrLengthMismatch {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
	if err := p.Forward(nil, full, 1); err != ErrNilSlice {
		t.Errorf("got %v, want ErrNilSlice", err)
	}
}

// TestRealPlan_Linearity verifies Forward(a*x + b*y) == a*Forward(x) + b*Forward(y)
// for real scalars a, b, across both the mixed-radix and Bluestein engines.
func TestRealPlan_Linearity(t *testing.T) {
	for _, n := range []int{8, 17, 60, 97, 541} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()
			p, err := NewRealPlan[float64](n)
			if err != nil {
				t.Fatal(err)
			}

			x := randReal(n+1, n)
			y := randReal(n+2, n)
			const a, b = 2.5, -1.7

			combined := make([]float64, n)
			for i := range combined {
				combined[i] = a*x[i] + b*y[i]
			}

			gotCombined := make([]float64, n)
			if err := p.Forward(gotCombined, combined, 1); err != nil {
				t.Fatal(err)
			}

			fx := make([]float64, n)
			fy := make([]float64, n)
			if err := p.Forward(fx, x, 1); err != nil {
				t.Fatal(err)
			}
			if err := p.Forward(fy, y, 1); err != nil {
				t.Fatal(err)
			}

			for i := range gotCombined {
				want := a*fx[i] + b*fy[i]
				if d := math.Abs(gotCombined[i] - want); d > 1e-6*float64(n) {
					t.Fatalf("n=%d i=%d: got %v want %v", n, i, gotCombined[i], want)
				}
			}
		})
	}
}

// TestRealPlan_Parseval verifies Σ|x_k|² == (1/n)·Σ|X_k|² using the
// halfcomplex layout Forward produces: each nonzero-frequency bin
// represents a conjugate pair and so counts twice, except bin 0 and,
// for even n, the Nyquist bin.
func TestRealPlan_Parseval(t *testing.T) {
	for _, n := range []int{8, 17, 60, 97, 541} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()
			p, err := NewRealPlan[float64](n)
			if err != nil {
				t.Fatal(err)
			}

			in := randReal(n+3, n)
			var timeEnergy float64
			for _, v := range in {
				timeEnergy += v * v
			}

			out := make([]float64, n)
			if err := p.Forward(out, in, 1); err != nil {
				t.Fatal(err)
			}

			var freqEnergy float64
			for k := 0; k <= n/2; k++ {
				var re, im, weight float64
				switch {
				case k == 0:
					re, weight = out[0], 1
				case n%2 == 0 && k == n/2:
					re, weight = out[n-1], 1
				default:
					re, im, weight = out[2*k-1], out[2*k], 2
				}
				freqEnergy += weight * (re*re + im*im)
			}
			freqEnergy /= float64(n)

			if rel := math.Abs(timeEnergy-freqEnergy) / math.Max(timeEnergy, freqEnergy); rel > 1e-9 {
				t.Fatalf("n=%d: Parseval violated, time=%v freq=%v relErr=%e", n, timeEnergy, freqEnergy, rel)
			}
		})
	}
}

func TestScratchedRealPlan_MatchesRealPlan(t *testing.T) {
	for _, n := range []int{17, 60, 541} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()
			p, err := NewRealPlan[float64](n)
			if err != nil {
				t.Fatal(err)
			}
			sp := p.WithScratch()

			in := randReal(n+13, n)
			want := make([]float64, n)
			if err := p.Forward(want, in, 1); err != nil {
				t.Fatal(err)
			}

			for i := 0; i < 2; i++ {
				got := make([]float64, n)
				if err := sp.Forward(got, in, 1); err != nil {
					t.Fatal(err)
				}
				for j := range want {
					if math.Abs(got[j]-want[j]) > 1e-9*float64(n) {
						t.Fatalf("pass %d, i=%d: got %v want %v", i, j, got[j], want[j])
					}
				}
			}
		})
	}
}
