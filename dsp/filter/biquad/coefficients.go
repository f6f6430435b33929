package biquad

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-biquad/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// FromPolynomials builds Coefficients from numerator b = [b0 b1 b2] and
// denominator a = [a0 a1 a2], dividing every term by a0.
//
// It fails with core.ErrInvalidCoefficients if either slice is not of length
// 3, if a0 is zero, or if any coefficient is NaN or Inf.
func FromPolynomials(b, a []float64) (Coefficients, error) {
	if err := ValidatePolynomials(b, a); err != nil {
		return Coefficients{}, err
	}

	a0 := a[0]
	return Coefficients{
		B0: b[0] / a0,
		B1: b[1] / a0,
		B2: b[2] / a0,
		A1: a[1] / a0,
		A2: a[2] / a0,
	}, nil
}

// ValidatePolynomials checks that b and a describe a second-order transfer
// function with a non-degenerate denominator.
func ValidatePolynomials(b, a []float64) error {
	if len(b) != 3 {
		return fmt.Errorf("%w: numerator must have 3 coefficients, got %d", core.ErrInvalidCoefficients, len(b))
	}
	if len(a) != 3 {
		return fmt.Errorf("%w: denominator must have 3 coefficients, got %d", core.ErrInvalidCoefficients, len(a))
	}
	if !core.IsFinite(b...) || !core.IsFinite(a...) {
		return fmt.Errorf("%w: coefficients must be finite: b=%v a=%v", core.ErrInvalidCoefficients, b, a)
	}
	if a[0] == 0 {
		return fmt.Errorf("%w: leading denominator coefficient a0 is zero: a=%v", core.ErrInvalidCoefficients, a)
	}
	return nil
}

// Numerator returns [b0 b1 b2].
func (c Coefficients) Numerator() [3]float64 {
	return [3]float64{c.B0, c.B1, c.B2}
}

// Denominator returns [1 a1 a2].
func (c Coefficients) Denominator() [3]float64 {
	return [3]float64{1, c.A1, c.A2}
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) IsStable() bool {
	return c.MaxPoleRadius() < 1
}

// MaxPoleRadius returns the largest pole magnitude |p|.
func (c Coefficients) MaxPoleRadius() float64 {
	p := c.Poles()
	return max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// String formats the coefficients in numerator/denominator form.
func (c Coefficients) String() string {
	return fmt.Sprintf("b=%v a=%v", c.Numerator(), c.Denominator())
}
