package cfft

// pmc is the "plus-minus-combine" primitive used throughout the
// mixed-radix butterflies: it returns (c+d, c-d).
func pmc(c, d complex128) (complex128, complex128) {
	return c + d, c - d
}

// rot90 multiplies by i.
func rot90(a complex128) complex128 {
	return complex(-imag(a), real(a))
}

// rotm90 multiplies by -i.
func rotm90(a complex128) complex128 {
	return complex(imag(a), -real(a))
}

// specialMul applies a twiddle factor with the direction-dependent
// sign convention: backward multiplies by w, forward multiplies by
// conj(w).
func specialMul(bwd bool, a, w complex128) complex128 {
	if bwd {
		return a * w
	}

	return a * complex(real(w), -imag(w))
}
