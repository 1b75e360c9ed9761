package xfft

// HartleyPlan is a real-to-real discrete Hartley transform of a fixed
// length, H[k] = sum x[j]*(cos+sin)(2*pi*j*k/N), built atop the
// halfcomplex output X of a forward RealPlan by recombining
// H[0]=X[0], H[k]=Re(X[k])-Im(X[k]), H[N-k]=Re(X[k])+Im(X[k]),
// modeled on pocketfft_general_hartley's "Hartley order" step.
type HartleyPlan[T Float] struct {
	n    int
	real *RealPlan[T]
}

// NewHartleyPlan builds a Hartley plan for a transform of length n.
func NewHartleyPlan[T Float](n int) (*HartleyPlan[T], error) {
	real, err := NewRealPlan[T](n)
	if err != nil {
		return nil, err
	}
	return &HartleyPlan[T]{n: n, real: real}, nil
}

// Len returns the transform length the plan was built for.
func (p *HartleyPlan[T]) Len() int { return p.n }

// Transform computes the Hartley transform of src into dst, scaling
// every output sample by scale. The Hartley transform is its own
// inverse up to a factor of n, so there is a single Transform method
// rather than separate Forward/Backward.
func (p *HartleyPlan[T]) Transform(dst, src []T, scale float64) error {
	half := make([]T, p.n)
	if err := p.real.Forward(half, src, scale); err != nil {
		return err
	}

	n := p.n

	dst[0] = half[0]
	i, i1, i2 := 1, 1, n-1
	for ; i < n-1; i, i1, i2 = i+2, i1+1, i2-1 {
		dst[i1] = half[i] - half[i+1]
		dst[i2] = half[i] + half[i+1]
	}
	if i < n {
		dst[i1] = half[i]
	}

	return nil
}
