// Package response evaluates the frequency response of a biquad on an evenly
// spaced grid from DC to Nyquist.
//
// [Evaluate] computes H(e^jw) directly from the numerator and denominator
// polynomials at each grid point. [EvaluateFFT] produces the same grid from
// zero-padded FFTs of the two polynomials, which is cheaper for long power of
// two grids. Both return a [FrequencyResponse] whose magnitude, dB and phase
// views are derived on demand.
package response
