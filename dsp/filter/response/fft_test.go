package response

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/internal/testutil"
)

func TestEvaluateFFT_MatchesDirect(t *testing.T) {
	cases := []struct {
		name string
		c    biquad.Coefficients
		sr   float64
	}{
		{name: "lowpassish", c: lowpassish, sr: 48000},
		{name: "highpass 0.1 Hz", c: biquad.Coefficients{
			B0: 0.9889542480671399, B1: -1.9779084961342799, B2: 0.9889542480671399,
			A1: -1.9777864837767636, A2: 0.9780305084917961,
		}, sr: 40},
		{name: "notch 4.5 Hz", c: biquad.Coefficients{
			B0: 0.5393508534123093, B1: -0.8202512129723756, B2: 0.5393508534123093,
			A1: -0.8202512129723756, A2: 0.07870170682461852,
		}, sr: 40},
	}

	for _, tc := range cases {
		for _, n := range []int{3, 5, 65, 1025, 8193} {
			b := tc.c.Numerator()
			a := tc.c.Denominator()

			direct, err := Evaluate(b[:], a[:], tc.sr, n)
			if err != nil {
				t.Fatalf("%s n=%d: Evaluate: %v", tc.name, n, err)
			}
			viaFFT, err := EvaluateFFT(b[:], a[:], tc.sr, n)
			if err != nil {
				t.Fatalf("%s n=%d: EvaluateFFT: %v", tc.name, n, err)
			}

			testutil.RequireSliceNearlyEqual(t, viaFFT.Frequencies, direct.Frequencies, 0)
			testutil.RequireComplexSliceNearlyEqual(t, viaFFT.Values, direct.Values, 1e-9)
		}
	}
}

func TestEvaluateFFT_SmallGridsFallBack(t *testing.T) {
	b := lowpassish.Numerator()
	a := lowpassish.Denominator()

	for _, n := range []int{1, 2} {
		direct, err := Evaluate(b[:], a[:], 40, n)
		if err != nil {
			t.Fatal(err)
		}
		viaFFT, err := EvaluateFFT(b[:], a[:], 40, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		testutil.RequireComplexSliceNearlyEqual(t, viaFFT.Values, direct.Values, 0)
	}
}

func TestEvaluateFFT_RejectsNonPowerOfTwoGrid(t *testing.T) {
	b := lowpassish.Numerator()
	a := lowpassish.Denominator()

	for _, n := range []int{4, 100, 8000} {
		if _, err := EvaluateFFT(b[:], a[:], 40, n); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("n=%d: err=%v, want ErrInvalidParameter", n, err)
		}
	}
	if _, err := EvaluateFFT(b[:], a[:], 40, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("n=0: err=%v, want ErrInvalidParameter", err)
	}
}

func TestIsPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, false}, {1, true}, {2, true}, {3, false}, {64, true}, {7999, false}, {8192, true}, {-4, false},
	}
	for _, tt := range tests {
		if got := isPowerOf2(tt.n); got != tt.want {
			t.Errorf("isPowerOf2(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
