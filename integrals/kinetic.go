package integrals

import (
	"fmt"

	"github.com/katalvlaran/leglag/domain"
	"github.com/katalvlaran/leglag/matrix"
)

// KineticCoefficient returns the α-independent kinetic coefficient K(i,j), i ≤ j:
//
//	K(i,j) = 2(2i+3)/3 · sqrt((i+1)(i+2) / ((j+1)(j+2))) − δ_ij
//
// so that T[i,j] = α²/2 · K(i,j). Arguments with i > j are swapped.
func KineticCoefficient(i, j int) float64 {
	if i > j {
		i, j = j, i
	}

	return kineticCoefficient(normSquares(j+1), i, j)
}

// kineticCoefficient evaluates K(i,j) for i ≤ j against precomputed norm squares.
func kineticCoefficient(ns []float64, i, j int) float64 {
	k := float64(2*(2*i+3)) / 3 * normRatio(ns, i, j)
	if i == j {
		k--
	}

	return k
}

// InfKinetic returns the N×N kinetic-energy matrix of d's basis,
// T[i,j] = ½ ∫ ψ_i' ψ_j' dx = α²/2 · K(i,j).
//
// Implementation:
//   - Stage 1: validate d.
//   - Stage 2: tabulate the normalisation squares once.
//   - Stage 3: fill the upper triangle, mirror it.
//
// Entries whose true value exceeds the float64 range come back as +Inf with a
// nil error.
//
// Errors:
//   - ErrNilDomain when d is nil.
//
// Complexity: O(N²) time and memory.
func InfKinetic(d *domain.Inf) (*matrix.Dense, error) {
	if d == nil {
		return nil, fmt.Errorf("InfKinetic: %w", ErrNilDomain)
	}
	n := d.Functions()
	ns := normSquares(n)
	alpha := d.Alpha()

	m, err := matrix.BuildSymmetric(n, func(i, j int) float64 {
		return kineticScale(alpha, kineticCoefficient(ns, i, j))
	}, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("InfKinetic: %w", err)
	}

	return m, nil
}
