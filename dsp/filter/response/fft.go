package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// minFFTPoints is the smallest grid that leaves room for the three
// coefficients in the zero-padded FFT frame (2*(N-1) >= 4).
const minFFTPoints = 3

// EvaluateFFT computes the same grid as Evaluate from forward FFTs of the
// zero-padded numerator and denominator. With M = 2*(numPoints-1), bin k of
// an M-point FFT sits at k*sampleRate/M, so bins 0..numPoints-1 cover DC to
// Nyquist.
//
// numPoints-1 must be a power of two. Grids smaller than three points fall
// back to direct evaluation.
func EvaluateFFT(b, a []float64, sampleRate float64, numPoints int) (FrequencyResponse, error) {
	num, den, err := polynomials(b, a)
	if err != nil {
		return FrequencyResponse{}, err
	}
	if err := validateGrid(sampleRate, numPoints); err != nil {
		return FrequencyResponse{}, err
	}
	if numPoints < minFFTPoints {
		return Evaluate(b, a, sampleRate, numPoints)
	}
	if !isPowerOf2(numPoints - 1) {
		return FrequencyResponse{}, fmt.Errorf("%w: FFT evaluation needs numPoints-1 to be a power of two: %d",
			core.ErrInvalidParameter, numPoints)
	}

	fftSize := 2 * (numPoints - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return FrequencyResponse{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	numSpec, err := paddedSpectrum(plan, num, fftSize)
	if err != nil {
		return FrequencyResponse{}, err
	}
	denSpec, err := paddedSpectrum(plan, den, fftSize)
	if err != nil {
		return FrequencyResponse{}, err
	}

	values := make([]complex128, numPoints)
	for k := range values {
		values[k] = numSpec[k] / denSpec[k]
	}

	return FrequencyResponse{
		Frequencies: Frequencies(sampleRate, numPoints),
		Values:      values,
		SampleRate:  sampleRate,
	}, nil
}

func paddedSpectrum(plan *algofft.Plan[complex128], coeffs [3]float64, fftSize int) ([]complex128, error) {
	padded := make([]complex128, fftSize)
	for i, c := range coeffs {
		padded[i] = complex(c, 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}
	return spec, nil
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
