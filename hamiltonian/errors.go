package hamiltonian

import "errors"

var (
	// ErrNilDomain is returned when a nil domain is passed.
	ErrNilDomain = errors.New("hamiltonian: domain is nil")

	// ErrInvalidCharge is returned for a nuclear charge below 1.
	ErrInvalidCharge = errors.New("hamiltonian: nuclear charge must be >= 1")

	// ErrNucleusInside is returned when a nucleus lies in the open interior of the domain.
	ErrNucleusInside = errors.New("hamiltonian: nucleus inside domain")

	// ErrEigenFailed is returned when the symmetric eigen-decomposition does not converge.
	ErrEigenFailed = errors.New("hamiltonian: eigen decomposition failed")
)
