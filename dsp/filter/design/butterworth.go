package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// ButterworthOrder is the only order a single biquad can realise.
// Higher orders need a cascade of sections, which this package does not
// design.
const ButterworthOrder = 2

// ButterworthPoles returns the left-half-plane poles of the normalized
// (cutoff 1 rad/s) analog Butterworth lowpass prototype of the given order:
//
//	p_k = exp(j*pi*(2k + n + 1) / (2n)),  k = 0..n-1
//
// The poles are equally spaced on the unit circle. Conjugate pairs are
// adjacent from the outside in: p_0 and p_{n-1}, p_1 and p_{n-2}, and so on.
func ButterworthPoles(order int) []complex128 {
	if order <= 0 {
		return nil
	}

	n := float64(order)
	poles := make([]complex128, order)
	for k := range poles {
		theta := math.Pi * (2*float64(k) + n + 1) / (2 * n)
		poles[k] = cmplx.Rect(1, theta)
	}
	return poles
}

// ButterworthHighpass designs a second-order Butterworth highpass with its
// -3 dB point at cutoffHz.
//
// The analog prototype pole pair is moved to the highpass by s -> wc/s, where
// wc is the cutoff prewarped so the bilinear transform lands it exactly on
// cutoffHz. The result has a double zero at z = 1 (no DC) and unity gain at
// Nyquist.
func ButterworthHighpass(order int, cutoffHz, sampleRate float64) (biquad.Coefficients, error) {
	return butterworth(order, cutoffHz, sampleRate, highpassSection)
}

// ButterworthLowpass designs a second-order Butterworth lowpass with its
// -3 dB point at cutoffHz. Gain is 1 at DC and 0 at Nyquist.
func ButterworthLowpass(order int, cutoffHz, sampleRate float64) (biquad.Coefficients, error) {
	return butterworth(order, cutoffHz, sampleRate, lowpassSection)
}

// sectionFunc returns analog numerator/denominator polynomials in s for the
// prototype pole pair (p, conj(p)) scaled to cutoff wc (rad/s).
type sectionFunc func(p complex128, wc float64) (num, den [3]float64)

// lowpassSection applies s -> s/wc to the unity-DC-gain prototype
// |p|^2 / ((s-p)(s-conj(p))).
func lowpassSection(p complex128, wc float64) (num, den [3]float64) {
	r2 := real(p)*real(p) + imag(p)*imag(p)
	num = [3]float64{0, 0, r2 * wc * wc}
	den = [3]float64{1, -2 * real(p) * wc, r2 * wc * wc}
	return num, den
}

// highpassSection applies s -> wc/s to the same prototype.
func highpassSection(p complex128, wc float64) (num, den [3]float64) {
	r2 := real(p)*real(p) + imag(p)*imag(p)
	num = [3]float64{r2, 0, 0}
	den = [3]float64{r2, -2 * real(p) * wc, wc * wc}
	return num, den
}

func butterworth(order int, cutoffHz, sampleRate float64, section sectionFunc) (biquad.Coefficients, error) {
	if order != ButterworthOrder {
		return biquad.Coefficients{}, fmt.Errorf("%w: butterworth order must be %d, got %d (higher orders need cascaded biquads)",
			core.ErrInvalidParameter, ButterworthOrder, order)
	}
	if err := validateBand("cutoff", cutoffHz, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}

	wc := prewarp(cutoffHz, sampleRate)
	p := ButterworthPoles(order)[0]
	num, den := section(p, wc)

	return discretize(num, den, sampleRate)
}

// prewarp returns the analog frequency (rad/s) that the bilinear transform
// maps onto freq. With Wn = freq/(fs/2) this is 2*fs*tan(pi*Wn/2).
func prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}
