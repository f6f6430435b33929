package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biquad/dsp/core"
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Notch designs a second-order notch (band-reject) filter centered at
// centerHz. q sets the -3 dB rejection bandwidth to roughly centerHz/q.
//
// With w0 = 2*pi*centerHz/sampleRate and bw = w0/q the section is
//
//	beta = tan(bw/2),  g = 1/(1+beta)
//	b = g * [1, -2cos(w0), 1]
//	a = [1, -2g*cos(w0), 2g-1]
//
// The zeros sit on the unit circle at angle ±w0, so the gain at centerHz is
// exactly zero. For beta < 1 the poles share that angle at radius
// sqrt((1-beta)/(1+beta)); wider notches pull them onto the real axis.
// Numerator and denominator have the same value at z = 1 and z = -1, giving
// unity gain at DC and at Nyquist.
//
// bw must stay below pi: wider bands push beta through infinity and the poles
// outside the unit circle, so q <= w0/pi is rejected as well as q <= 0.
func Notch(centerHz, q, sampleRate float64) (biquad.Coefficients, error) {
	if err := validateBand("notch center", centerHz, sampleRate); err != nil {
		return biquad.Coefficients{}, err
	}
	if q <= 0 || !core.IsFinite(q) {
		return biquad.Coefficients{}, fmt.Errorf("%w: quality factor must be > 0: %v", core.ErrInvalidParameter, q)
	}

	w0 := 2 * math.Pi * centerHz / sampleRate
	bw := w0 / q
	if bw >= math.Pi {
		return biquad.Coefficients{}, fmt.Errorf("%w: notch bandwidth must be below Nyquist (q=%v, minimum %v)",
			core.ErrInvalidParameter, q, NotchMinQ(centerHz, sampleRate))
	}

	beta := math.Tan(bw / 2)
	gain := 1 / (1 + beta)
	cw := math.Cos(w0)

	return biquad.Coefficients{
		B0: gain,
		B1: -2 * gain * cw,
		B2: gain,
		A1: -2 * gain * cw,
		A2: 2*gain - 1,
	}, nil
}

// NotchMinQ returns the smallest quality factor Notch accepts for centerHz,
// exclusive.
func NotchMinQ(centerHz, sampleRate float64) float64 {
	return 2 * centerHz / sampleRate
}
