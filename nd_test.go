package xfft

import (
	"math"
	"testing"
)

func rowMajorStride64(shape []int) []int64 {
	stride := make([]int64, len(shape))
	acc := int64(1)
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = acc
		acc *= int64(shape[i])
	}
	return stride
}

func TestExecC2C_SingleAxisMatchesPlan(t *testing.T) {
	const rows, n = 3, 12
	shape := []int{rows, n}
	stride := rowMajorStride64(shape)

	in := randComplex(7, rows*n)
	inT := make([]complex128, len(in))
	copy(inT, in)

	out := make([]complex128, rows*n)
	if err := ExecC2C[complex128](shape, stride, stride, []int{1}, true, inT, out, 1); err != nil {
		t.Fatalf("ExecC2C: %v", err)
	}

	p, err := NewPlan[complex128](n)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]complex128, n)
	for r := 0; r < rows; r++ {
		row := inT[r*n : r*n+n]
		if err := p.Forward(want, row, 1); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			got := out[r*n+i]
			d := math.Hypot(real(got-want[i]), imag(got-want[i]))
			if d > 1e-9*float64(n) {
				t.Fatalf("row %d i %d: got %v want %v", r, i, got, want[i])
			}
		}
	}
}

func TestExecC2C_TwoAxesRoundTrip(t *testing.T) {
	const rows, cols = 4, 6
	shape := []int{rows, cols}
	stride := rowMajorStride64(shape)

	in := randComplex(11, rows*cols)

	freq := make([]complex128, rows*cols)
	if err := ExecC2C[complex128](shape, stride, stride, []int{0, 1}, true, in, freq, 1); err != nil {
		t.Fatalf("forward: %v", err)
	}

	back := make([]complex128, rows*cols)
	scale := 1.0 / float64(rows*cols)
	if err := ExecC2C[complex128](shape, stride, stride, []int{0, 1}, false, freq, back, scale); err != nil {
		t.Fatalf("backward: %v", err)
	}

	for i := range in {
		d := math.Hypot(real(back[i]-in[i]), imag(back[i]-in[i]))
		if d > 1e-6*float64(rows*cols) {
			t.Fatalf("i %d: got %v want %v", i, back[i], in[i])
		}
	}
}

func TestExecR2C_ExecC2R_RoundTrip(t *testing.T) {
	const rows, n = 3, 10
	shape := []int{rows, n}
	stride := rowMajorStride64(shape)

	state := uint32(99)
	in := make([]float64, rows*n)
	for i := range in {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		in[i] = float64(state)/float64(1<<32)*2 - 1
	}

	freq := make([]float64, rows*n)
	if err := ExecR2C[float64](shape, stride, stride, 1, in, freq, 1); err != nil {
		t.Fatalf("r2c: %v", err)
	}

	back := make([]float64, rows*n)
	if err := ExecC2R[float64](shape, stride, stride, 1, freq, back, 1.0/float64(n)); err != nil {
		t.Fatalf("c2r: %v", err)
	}

	for i := range in {
		if math.Abs(back[i]-in[i]) > 1e-9*float64(n) {
			t.Fatalf("i %d: got %v want %v", i, back[i], in[i])
		}
	}
}

func TestExecR2R_SelfInverseUpToScale(t *testing.T) {
	const rows, n = 2, 9
	shape := []int{rows, n}
	stride := rowMajorStride64(shape)

	state := uint32(4242)
	in := make([]float64, rows*n)
	for i := range in {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		in[i] = float64(state)/float64(1<<32)*2 - 1
	}

	once := make([]float64, rows*n)
	if err := ExecR2R[float64](shape, stride, stride, []int{1}, in, once, 1); err != nil {
		t.Fatalf("ExecR2R forward: %v", err)
	}

	twice := make([]float64, rows*n)
	if err := ExecR2R[float64](shape, stride, stride, []int{1}, once, twice, 1.0/float64(n)); err != nil {
		t.Fatalf("ExecR2R inverse: %v", err)
	}

	for i := range in {
		if math.Abs(twice[i]-in[i]) > 1e-9*float64(n) {
			t.Fatalf("i %d: got %v want %v", i, twice[i], in[i])
		}
	}
}

func TestExecC2C_RejectsInvalidShape(t *testing.T) {
	shape := []int{2, 3}
	stride := rowMajorStride64(shape)
	buf := make([]complex128, 6)
	if err := ExecC2C[complex128](shape, stride, stride, []int{5}, true, buf, buf, 1); err != ErrInvalidShape {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}

func TestExecC2C_RejectsZeroStrideOnTransformedAxis(t *testing.T) {
	shape := []int{2, 3}
	stride := []int64{3, 1}
	buf := make([]complex128, 6)

	bad := []int64{0, 1}
	if err := ExecC2C[complex128](shape, bad, stride, []int{0}, true, buf, buf, 1); err != ErrInvalidStride {
		t.Errorf("got %v, want ErrInvalidStride", err)
	}

	// a zero stride on a broadcast axis that isn't being transformed
	// is fine.
	broadcastIn := []int64{0, 1}
	out := make([]complex128, 6)
	if err := ExecC2C[complex128](shape, broadcastIn, stride, []int{1}, true, buf, out, 1); err != nil {
		t.Errorf("zero stride on non-transformed axis: got %v, want nil", err)
	}
}

func TestExecR2C_RejectsZeroStrideOnTransformedAxis(t *testing.T) {
	shape := []int{2, 4}
	stride := []int64{4, 0}
	buf := make([]float64, 8)
	if err := ExecR2C[float64](shape, stride, stride, 1, buf, buf, 1); err != ErrInvalidStride {
		t.Errorf("got %v, want ErrInvalidStride", err)
	}
}
