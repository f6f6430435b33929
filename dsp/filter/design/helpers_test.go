package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

func mag(c biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(c.Response(freq, sr))
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for i, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			t.Fatalf("unstable pole %d: |p|=%v coeff=%#v", i, cmplx.Abs(p), c)
		}
	}
}

// bandwidth3dB scans the magnitude response for the width of the region
// where |H| < 1/sqrt(2) around centerHz.
func bandwidth3dB(c biquad.Coefficients, centerHz, sr float64) float64 {
	const steps = 20000
	nyquist := sr / 2
	step := nyquist / steps
	edge := 1 / math.Sqrt2

	lo := centerHz
	for lo > 0 && mag(c, lo, sr) < edge {
		lo -= step
	}
	hi := centerHz
	for hi < nyquist && mag(c, hi, sr) < edge {
		hi += step
	}
	return hi - lo
}
