package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// FrequencyResponse pairs evenly spaced frequencies on [0, SampleRate/2]
// with the complex transfer function value at each. Frequencies and Values
// are index-aligned and have the same length.
type FrequencyResponse struct {
	Frequencies []float64
	Values      []complex128
	SampleRate  float64
}

// Len returns the number of grid points.
func (r FrequencyResponse) Len() int {
	return len(r.Frequencies)
}

// Magnitude returns |H| at every grid point.
func (r FrequencyResponse) Magnitude() []float64 {
	n := len(r.Values)
	if n == 0 {
		return nil
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, h := range r.Values {
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeDB returns 20*log10(|H|) at every grid point. Exact nulls map to
// -Inf.
func (r FrequencyResponse) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// Phase returns arg(H) in radians, in [-pi, pi], at every grid point.
func (r FrequencyResponse) Phase() []float64 {
	if len(r.Values) == 0 {
		return nil
	}

	out := make([]float64, len(r.Values))
	for i, h := range r.Values {
		out[i] = cmplx.Phase(h)
	}
	return out
}

// Nearest returns the index of the grid frequency closest to freqHz.
// Frequencies outside the grid clamp to the first or last index. It returns
// -1 for an empty response.
func (r FrequencyResponse) Nearest(freqHz float64) int {
	n := len(r.Frequencies)
	switch {
	case n == 0:
		return -1
	case n == 1 || freqHz <= r.Frequencies[0]:
		return 0
	case freqHz >= r.Frequencies[n-1]:
		return n - 1
	}

	step := r.Frequencies[n-1] / float64(n-1)
	i := int(math.Round(freqHz / step))
	return min(max(i, 0), n-1)
}
