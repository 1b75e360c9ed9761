package cpu

import "testing"

func TestDetect_ReportsArchitecture(t *testing.T) {
	t.Parallel()

	f := Detect()
	if f.Architecture == "" {
		t.Fatal("Detect() returned empty Architecture")
	}
}

func TestAlignment_MonotoneInFeatureWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    Features
		want int
	}{
		{"none", Features{}, 8},
		{"sse2", Features{HasSSE2: true}, 16},
		{"avx2", Features{HasSSE2: true, HasAVX2: true}, 32},
		{"neon", Features{HasNEON: true}, 32},
		{"avx512", Features{HasSSE2: true, HasAVX2: true, HasAVX512F: true}, 64},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.f.Alignment(); got != tc.want {
				t.Errorf("Alignment() = %d, want %d", got, tc.want)
			}
		})
	}
}
