package sizeutil

import "testing"

func TestLargestPrimeFactor(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		1: 1, 2: 2, 3: 3, 4: 2, 12: 3, 17: 17, 100: 5, 541: 541, 1001: 13,
	}

	for n, want := range cases {
		if got := LargestPrimeFactor(n); got != want {
			t.Errorf("LargestPrimeFactor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestGoodSize(t *testing.T) {
	t.Parallel()

	exact := map[int]int{1: 1, 7: 7, 13: 14, 550: 550}

	for n, want := range exact {
		if got := GoodSize(n); got != want {
			t.Errorf("GoodSize(%d) = %d, want %d", n, got, want)
		}
	}

	for _, n := range []int{2, 17, 100, 541, 1001, 1081, 999983} {
		got := GoodSize(n)
		if got < n {
			t.Errorf("GoodSize(%d) = %d, which is < n", n, got)
		}

		if LargestPrimeFactor(got) > 11 {
			t.Errorf("GoodSize(%d) = %d has a prime factor > 11", n, got)
		}

		for m := n; m < got; m++ {
			if LargestPrimeFactor(m) <= 11 {
				t.Errorf("GoodSize(%d) = %d, but %d is smaller and also smooth", n, got, m)
			}
		}
	}
}

func TestCostGuess_CompositeCheaperThanPrime(t *testing.T) {
	t.Parallel()

	// A highly composite size should be cheaper than a prime of similar
	// magnitude.
	composite := CostGuess(1024)
	prime := CostGuess(1021)

	if composite >= prime {
		t.Errorf("CostGuess(1024) = %v, want less than CostGuess(1021) = %v", composite, prime)
	}
}
