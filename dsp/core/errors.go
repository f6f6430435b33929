package core

import "errors"

// Error kinds shared by the filter designers and the response evaluator.
// Call sites wrap them with fmt.Errorf("%w: ...") so callers can match with
// errors.Is.
var (
	// ErrInvalidParameter reports a design or evaluation parameter outside
	// its valid range (frequency not in (0, Nyquist), q <= 0, unsupported
	// order, non-positive sample rate or point count).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidCoefficients reports a coefficient set that does not describe
	// a second-order transfer function (wrong length, a0 == 0, NaN/Inf).
	ErrInvalidCoefficients = errors.New("invalid coefficients")
)
