package biquad

import (
	"math"
	"math/cmplx"
)

// TransferAt evaluates
//
//	H(e^jw) = (b0 + b1*e^-jw + b2*e^-2jw) / (a0 + a1*e^-jw + a2*e^-2jw)
//
// at the normalized angular frequency w (radians/sample). a0 is used as given,
// so unnormalized polynomials evaluate correctly.
func TransferAt(b, a [3]float64, w float64) complex128 {
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := ejw * ejw

	num := complex(b[0], 0) + complex(b[1], 0)*ejw + complex(b[2], 0)*ej2w
	den := complex(a[0], 0) + complex(a[1], 0)*ejw + complex(a[2], 0)*ej2w
	return num / den
}

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return TransferAt(c.Numerator(), c.Denominator(), w)
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}
