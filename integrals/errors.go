package integrals

import "errors"

var (
	// ErrNilDomain is returned when a nil domain is passed to an evaluator.
	ErrNilDomain = errors.New("integrals: domain is nil")

	// ErrInvalidPosition is returned for a negative, NaN or infinite nuclear distance.
	ErrInvalidPosition = errors.New("integrals: nuclear distance must be finite and >= 0")
)
