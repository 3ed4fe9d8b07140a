package engine

import "errors"

var (
	// ErrLengthMismatch is returned when inputs and weights are not positionally aligned.
	ErrLengthMismatch = errors.New("input and weight vectors differ in length")
	// ErrDivideByZero is returned when normalizing a weight vector whose sum is zero.
	ErrDivideByZero = errors.New("weights sum to zero")
	// ErrUnknownActivation is returned for an activation outside the supported set.
	ErrUnknownActivation = errors.New("unknown activation")
	// ErrNonFinite is returned when a sum overflows to infinity or becomes NaN.
	ErrNonFinite = errors.New("non-finite result")
)

// Error kinds reported to callers outside the process (HTTP bodies, events, metrics).
const (
	KindLengthMismatch    = "length_mismatch"
	KindDivideByZero      = "divide_by_zero"
	KindUnknownActivation = "unknown_activation"
	KindNonFinite         = "non_finite"
	KindInternal          = "internal"
)

// ErrorKind maps an engine error to its stable kind string.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrLengthMismatch):
		return KindLengthMismatch
	case errors.Is(err, ErrDivideByZero):
		return KindDivideByZero
	case errors.Is(err, ErrUnknownActivation):
		return KindUnknownActivation
	case errors.Is(err, ErrNonFinite):
		return KindNonFinite
	default:
		return KindInternal
	}
}
