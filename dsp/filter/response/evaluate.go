package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Evaluate computes the frequency response of
//
//	H(z) = (b0 + b1*z^-1 + b2*z^-2) / (a0 + a1*z^-1 + a2*z^-2)
//
// at numPoints frequencies evenly spaced over [0, sampleRate/2], both ends
// included. A single point yields just DC.
//
// b and a must each hold exactly 3 finite coefficients with a0 != 0,
// otherwise the error wraps core.ErrInvalidCoefficients. numPoints < 1 or a
// non-positive sample rate wrap core.ErrInvalidParameter.
func Evaluate(b, a []float64, sampleRate float64, numPoints int) (FrequencyResponse, error) {
	num, den, err := polynomials(b, a)
	if err != nil {
		return FrequencyResponse{}, err
	}
	if err := validateGrid(sampleRate, numPoints); err != nil {
		return FrequencyResponse{}, err
	}

	freqs := Frequencies(sampleRate, numPoints)
	values := make([]complex128, numPoints)
	for i, f := range freqs {
		w := 2 * math.Pi * f / sampleRate
		values[i] = biquad.TransferAt(num, den, w)
	}

	return FrequencyResponse{
		Frequencies: freqs,
		Values:      values,
		SampleRate:  sampleRate,
	}, nil
}

// EvaluateCoefficients is Evaluate for an already normalized biquad.
func EvaluateCoefficients(c biquad.Coefficients, sampleRate float64, numPoints int) (FrequencyResponse, error) {
	num := c.Numerator()
	den := c.Denominator()
	return Evaluate(num[:], den[:], sampleRate, numPoints)
}

// Frequencies returns numPoints frequencies evenly spaced over
// [0, sampleRate/2]. The first entry is exactly 0 and, for numPoints > 1, the
// last is exactly sampleRate/2.
func Frequencies(sampleRate float64, numPoints int) []float64 {
	if numPoints < 1 {
		return nil
	}

	freqs := make([]float64, numPoints)
	if numPoints == 1 {
		return freqs
	}

	nyquist := core.Nyquist(sampleRate)
	last := numPoints - 1
	for i := range freqs {
		freqs[i] = float64(i) * nyquist / float64(last)
	}
	freqs[last] = nyquist
	return freqs
}

func polynomials(b, a []float64) (num, den [3]float64, err error) {
	if err := biquad.ValidatePolynomials(b, a); err != nil {
		return num, den, err
	}
	copy(num[:], b)
	copy(den[:], a)
	return num, den, nil
}

func validateGrid(sampleRate float64, numPoints int) error {
	if numPoints < 1 {
		return fmt.Errorf("%w: number of points must be >= 1: %d", core.ErrInvalidParameter, numPoints)
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", core.ErrInvalidParameter, sampleRate)
	}
	return nil
}
