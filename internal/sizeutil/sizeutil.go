// Package sizeutil provides the small arithmetic helpers the planner
// uses to decide which 1-D algorithm fits a given transform length.
package sizeutil

import "math"

// LargestPrimeFactor returns the largest prime factor of n.
func LargestPrimeFactor(n int) int {
	res := 1

	for n%2 == 0 {
		res = 2
		n /= 2
	}

	limit := int(math.Sqrt(float64(n) + 0.01))
	for x := 3; x <= limit; x += 2 {
		for n%x == 0 {
			res = x
			n /= x
			limit = int(math.Sqrt(float64(n) + 0.01))
		}
	}

	if n > 1 {
		res = n
	}

	return res
}

// CostGuess approximates the mixed-radix work for a length-n
// transform as n times the sum of its prime factors, with a 1.1
// penalty applied to factors above 5.
func CostGuess(n int) float64 {
	const largeFactorPenalty = 1.1

	ni := n
	result := 0.0

	for n%2 == 0 {
		result += 2
		n /= 2
	}

	limit := int(math.Sqrt(float64(n) + 0.01))
	for x := 3; x <= limit; x += 2 {
		for n%x == 0 {
			if x <= 5 {
				result += float64(x)
			} else {
				result += largeFactorPenalty * float64(x)
			}

			n /= x
			limit = int(math.Sqrt(float64(n) + 0.01))
		}
	}

	if n > 1 {
		if n <= 5 {
			result += float64(n)
		} else {
			result += largeFactorPenalty * float64(n)
		}
	}

	return result * float64(ni)
}

// MaxFactors bounds how many mixed-radix stages a single transform
// length may factor into, matching the fixed-size factor table the
// original FFTPACK-derived planners use.
const MaxFactors = 25

// Factorize decomposes n the way pocketfft's cfftp/rfftp planners do:
// peel off factors of 4, then one factor of 2 (rotated to the front
// of the list), then odd trial division up to sqrt(n), with any
// leftover prime appended last.
func Factorize(n int) []int {
	var factors []int

	for n%4 == 0 {
		factors = append(factors, 4)
		n /= 4
	}

	if n%2 == 0 {
		n /= 2
		factors = append(factors, 2)
		factors[0], factors[len(factors)-1] = factors[len(factors)-1], factors[0]
	}

	maxDivisor := int(math.Sqrt(float64(n))) + 1
	for divisor := 3; n > 1 && divisor < maxDivisor; divisor += 2 {
		if n%divisor != 0 {
			continue
		}
		for n%divisor == 0 {
			factors = append(factors, divisor)
			n /= divisor
		}
		maxDivisor = int(math.Sqrt(float64(n))) + 1
	}

	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}

// GoodSize returns the smallest m >= n whose only prime factors are
// in {2, 3, 5, 7, 11}.
func GoodSize(n int) int {
	if n <= 12 {
		return n
	}

	bestFac := 2 * n
	for f2 := 1; f2 < bestFac; f2 *= 2 {
		for f23 := f2; f23 < bestFac; f23 *= 3 {
			for f235 := f23; f235 < bestFac; f235 *= 5 {
				for f2357 := f235; f2357 < bestFac; f2357 *= 7 {
					for f235711 := f2357; f235711 < bestFac; f235711 *= 11 {
						if f235711 >= n {
							bestFac = f235711
						}
					}
				}
			}
		}
	}

	return bestFac
}
