package trig

import (
	"math"
	"testing"
)

func TestTable_MatchesMathSincos(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 7, 100, 1009} {
		table := Table(n, false)
		for k := 0; k < n; k++ {
			wantS, wantC := math.Sincos(2 * math.Pi * float64(k) / float64(n))
			if math.Abs(table[2*k]-wantC) > 1e-13 || math.Abs(table[2*k+1]-wantS) > 1e-13 {
				t.Fatalf("n=%d k=%d: got (%v,%v), want (%v,%v)", n, k, table[2*k], table[2*k+1], wantC, wantS)
			}
		}
	}
}

func TestTable_HalfOnlyFillsFirstHalf(t *testing.T) {
	t.Parallel()

	const n = 20
	table := Table(n, true)

	for k := 0; k <= n/2; k++ {
		wantS, wantC := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		if math.Abs(table[2*k]-wantC) > 1e-13 || math.Abs(table[2*k+1]-wantS) > 1e-13 {
			t.Fatalf("k=%d: got (%v,%v), want (%v,%v)", k, table[2*k], table[2*k+1], wantC, wantS)
		}
	}
}

func TestAt_MatchesTable(t *testing.T) {
	t.Parallel()

	const n = 37
	table := Table(n, false)

	for k := 0; k < n; k++ {
		c, s := At(k, n)
		if c != table[2*k] || s != table[2*k+1] {
			t.Fatalf("At(%d,%d) = (%v,%v), want (%v,%v)", k, n, c, s, table[2*k], table[2*k+1])
		}
	}
}

func TestTable_ZeroLength(t *testing.T) {
	t.Parallel()

	if got := Table(0, false); len(got) != 0 {
		t.Errorf("Table(0, false) = %v, want empty", got)
	}
}
