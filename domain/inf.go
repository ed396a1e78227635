package domain

import (
	"fmt"
	"math"
)

// Side selects which half-line a domain occupies.
type Side bool

const (
	// Left is the half-line (-∞, Position].
	Left Side = false
	// Right is the half-line [Position, +∞).
	Right Side = true
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Inf is an immutable semi-infinite domain together with its basis parameters.
type Inf struct {
	nucleus   int     // index of the nucleus bounding the domain
	position  float64 // boundary coordinate
	side      Side    // which half-line
	alpha     float64 // decay rate, > 0
	electrons int     // electrons assigned to the domain
	functions int     // basis size N, >= 1
	neighbour *Inf    // adjacent domain, nil when isolated
}

// NewInf validates its arguments and returns a semi-infinite domain.
//
// nucleus and electrons are bookkeeping for callers assembling molecules; the
// integral evaluators read only alpha and functions. neighbour may be nil.
//
// Any positive finite alpha is accepted. The α² kinetic and α¹ boundary-potential
// scaling laws are checked on α ∈ (0, max], max being the largest α whose matrix
// entries are still representable; beyond it the affected entries are +Inf.
//
// Errors:
//   - ErrInvalidAlpha when alpha ≤ 0, NaN or ±Inf.
//   - ErrInvalidFunctions when functions < 1.
//   - ErrInvalidElectrons when electrons < 0.
//   - ErrInvalidPosition when position is NaN or ±Inf.
func NewInf(nucleus int, position float64, side Side, alpha float64,
	electrons, functions int, neighbour *Inf) (*Inf, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, fmt.Errorf("NewInf(alpha=%g): %w", alpha, ErrInvalidAlpha)
	}
	if functions < 1 {
		return nil, fmt.Errorf("NewInf(functions=%d): %w", functions, ErrInvalidFunctions)
	}
	if electrons < 0 {
		return nil, fmt.Errorf("NewInf(electrons=%d): %w", electrons, ErrInvalidElectrons)
	}
	if math.IsNaN(position) || math.IsInf(position, 0) {
		return nil, fmt.Errorf("NewInf(position=%g): %w", position, ErrInvalidPosition)
	}

	return &Inf{
		nucleus:   nucleus,
		position:  position,
		side:      side,
		alpha:     alpha,
		electrons: electrons,
		functions: functions,
		neighbour: neighbour,
	}, nil
}

// Nucleus returns the index of the bounding nucleus.
func (d *Inf) Nucleus() int { return d.nucleus }

// Position returns the boundary coordinate.
func (d *Inf) Position() float64 { return d.position }

// Side returns the occupied half-line.
func (d *Inf) Side() Side { return d.side }

// Alpha returns the exponential decay rate of the basis.
func (d *Inf) Alpha() float64 { return d.alpha }

// Electrons returns the electron count assigned to the domain.
func (d *Inf) Electrons() int { return d.electrons }

// Functions returns the basis size N.
func (d *Inf) Functions() int { return d.functions }

// Neighbour returns the adjacent domain, or nil.
func (d *Inf) Neighbour() *Inf { return d.neighbour }

// Contains reports whether x lies in the open interior of the domain.
func (d *Inf) Contains(x float64) bool {
	if d.side == Right {
		return x > d.position
	}

	return x < d.position
}

// DistanceFrom returns the distance between the boundary and a point x lying
// outside the open interior; ok is false when x is inside the domain.
func (d *Inf) DistanceFrom(x float64) (t float64, ok bool) {
	if d.Contains(x) {
		return 0, false
	}

	return math.Abs(x - d.position), true
}

// String implements fmt.Stringer.
func (d *Inf) String() string {
	return fmt.Sprintf("Inf{side=%s, position=%g, alpha=%g, functions=%d}",
		d.side, d.position, d.alpha, d.functions)
}
