// Package biquad defines the second-order IIR transfer function shared by the
// filter designers and the response evaluator.
//
// A [Coefficients] value describes
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// with the leading denominator coefficient normalized to 1. Values are plain
// immutable data: the package offers analysis (poles, zeros, stability,
// single-frequency response) but no sample processing.
//
// Coefficient design (Butterworth, notch) lives in dsp/filter/design, and
// grid evaluation over [0, Nyquist] lives in dsp/filter/response.
package biquad
