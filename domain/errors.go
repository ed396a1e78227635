package domain

import "errors"

var (
	// ErrInvalidAlpha is returned when α is not a positive finite number.
	ErrInvalidAlpha = errors.New("domain: alpha must be positive and finite")

	// ErrInvalidFunctions is returned when fewer than one basis function is requested.
	ErrInvalidFunctions = errors.New("domain: number of functions must be >= 1")

	// ErrInvalidElectrons is returned for a negative electron count.
	ErrInvalidElectrons = errors.New("domain: electron count must be >= 0")

	// ErrInvalidPosition is returned when the boundary position is NaN or infinite.
	ErrInvalidPosition = errors.New("domain: position must be finite")
)
