// Package design provides digital biquad coefficient designers.
//
// [ButterworthHighpass] and [ButterworthLowpass] start from the analog
// Butterworth prototype (poles equally spaced on the unit circle in the left
// half s-plane), scale it to the prewarped cutoff and map it to the z-domain
// with [BilinearTransform]. [Notch] places a zero pair on the unit circle at
// the notch frequency and a pole pair at the same angle, pulled inward by an
// amount set by the quality factor.
//
// Every designer returns [biquad.Coefficients] with a0 normalized to 1 and
// fails with core.ErrInvalidParameter for out-of-range input. Only single
// second-order sections are produced; higher orders would need a cascade of
// biquads.
package design
