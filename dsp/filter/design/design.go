package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// BilinearTransform converts an analog second-order polynomial
// c0*s^2 + c1*s + c2 into the digital z^-1-domain polynomial
// d0 + d1*z^-1 + d2*z^-2 using the bilinear transform.
//
// The returned coefficients are normalized such that d0 = 1.
func BilinearTransform(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	if sampleRate <= 0 {
		return [3]float64{1, 0, 0}
	}

	d := bilinear(sCoeffs, sampleRate)
	d0 := d[0]
	if d0 == 0 || math.IsNaN(d0) || math.IsInf(d0, 0) {
		return [3]float64{1, 0, 0}
	}

	return [3]float64{1, d[1] / d0, d[2] / d0}
}

// bilinear substitutes s = 2*fs*(1 - z^-1)/(1 + z^-1) and multiplies through
// by (1 + z^-1)^2, leaving the result unnormalized.
func bilinear(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	k := 2 * sampleRate
	c0, c1, c2 := sCoeffs[0], sCoeffs[1], sCoeffs[2]

	return [3]float64{
		c0*k*k + c1*k + c2,
		-2*c0*k*k + 2*c2,
		c0*k*k - c1*k + c2,
	}
}

// discretize maps the analog transfer function num(s)/den(s) to a biquad.
// Numerator and denominator are transformed with the same factor, so the
// overall gain is preserved when a0 is divided out.
func discretize(num, den [3]float64, sampleRate float64) (biquad.Coefficients, error) {
	b := bilinear(num, sampleRate)
	a := bilinear(den, sampleRate)

	return biquad.FromPolynomials(b[:], a[:])
}

func validateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", core.ErrInvalidParameter, sampleRate)
	}
	return nil
}

// validateBand checks 0 < freq < Nyquist for the named frequency parameter.
func validateBand(name string, freq, sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	nyquist := core.Nyquist(sampleRate)
	switch {
	case !core.IsFinite(freq):
		return fmt.Errorf("%w: %s must be finite: %v", core.ErrInvalidParameter, name, freq)
	case freq <= 0:
		return fmt.Errorf("%w: %s must be > 0: %v", core.ErrInvalidParameter, name, freq)
	case freq >= nyquist:
		return fmt.Errorf("%w: %s must be below Nyquist (%v >= %v)", core.ErrInvalidParameter, name, freq, nyquist)
	}
	return nil
}
