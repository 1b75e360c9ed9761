// Package trig builds the sine/cosine tables the mixed-radix and
// Bluestein plans use to derive their twiddle factors.
package trig

import "math"

// Table returns the interleaved (cos, sin) pairs for theta = 2*pi*k/n.
//
// When half is false, k ranges over 0..n-1 and the returned slice has
// 2*n entries. When half is true, k ranges over 0..n/2 (inclusive)
// and the returned slice still has 2*n entries, but only the first
// n/2+1 pairs are populated — the real-valued mixed-radix plan only
// ever indexes into that range, matching the "half" contract of the
// original FFTPACK-derived sincos_2pibyn generator this type is
// modeled on.
func Table(n int, half bool) []float64 {
	data := make([]float64, 2*n)

	if n == 0 {
		return data
	}

	limit := n - 1
	if half {
		limit = n / 2
	}

	step := 2 * math.Pi / float64(n)
	for k := 0; k <= limit; k++ {
		s, c := math.Sincos(step * float64(k))
		data[2*k] = c
		data[2*k+1] = s
	}

	return data
}

// At returns (cos, sin) for theta = 2*pi*k/n without building a full
// table, for callers that only need a handful of entries. It evaluates
// the angle exactly as Table does, so the two agree bit for bit.
func At(k, n int) (cos, sin float64) {
	sin, cos = math.Sincos(2 * math.Pi / float64(n) * float64(k))
	return cos, sin
}
