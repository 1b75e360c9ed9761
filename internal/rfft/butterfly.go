package rfft

// pm is the real-valued "plus-minus" primitive: it returns (c+d, c-d).
func pm(c, d float64) (float64, float64) {
	return c + d, c - d
}

// mulpm multiplies the complex pair (e,f) by conj(c,d), returning the
// real and imaginary parts: a = c*e+d*f, b = c*f-d*e.
func mulpm(c, d, e, f float64) (a, b float64) {
	return c*e + d*f, c*f - d*e
}
