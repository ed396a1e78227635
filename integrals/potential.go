package integrals

import (
	"fmt"
	"math"

	"github.com/katalvlaran/leglag/domain"
	"github.com/katalvlaran/leglag/matrix"
	"github.com/katalvlaran/leglag/special"
)

// BoundaryPotentialCoefficient returns the α-independent coefficient P0(i,j)
// of the potential of a nucleus sitting on the domain boundary:
//
//	P0(i,j) = ½ · sqrt((i+1)(i+2) / ((j+1)(j+2))),  i ≤ j,
//
// so that V[i,j] = 2α · P0(i,j) at t = 0. Arguments with i > j are swapped.
func BoundaryPotentialCoefficient(i, j int) float64 {
	if i > j {
		i, j = j, i
	}

	return boundaryCoefficient(normSquares(j+1), i, j)
}

func boundaryCoefficient(ns []float64, i, j int) float64 {
	return normRatio(ns, i, j) / 2
}

// InfPotential returns the N×N matrix of ∫ ψ_i ψ_j / (x+t) dx for a unit-charge
// nucleus at distance t from the boundary of d.
//
// Two closed forms, selected on t == 0 (s = 2αt == 0):
//
//	t = 0:  V[i,j] = 2α · P0(i,j)
//	t > 0:  V[i,j] = 2α · c_i c_j · L_i⁽²⁾(-s) · Q_j(s),  i ≤ j,  s = 2αt
//
// The t > 0 form follows from L_j(u) = L_j(-s) + (u+s)·r(u) with deg r < j and
// orthogonality of L_i against r when i ≥ j (roles swapped for the upper triangle).
// L_i(-s) grows and Q_j(s) decays without bound in s, so neither is formed:
// entries are walked from V[0,0] = α·Q_0 through the ratios ρ_i of
// special.LaguerreNegRatios and r_j of special.LaguerreStieltjesRatios,
//
//	V[i,i] = V[i-1,i-1] · ρ_i·r_i · c_i²/c_(i-1)²,   V[i,j] = V[i,j-1] · r_j · c_j/c_(j-1).
//
// When 2αt overflows, every ψ_i has decayed long before x reaches t and V is
// its s → ∞ limit I/t.
//
// Errors:
//   - ErrNilDomain when d is nil.
//   - ErrInvalidPosition when t < 0, NaN or ±Inf.
//
// Complexity: O(N²) plus the O(N + 1/s) kernel sweep.
func InfPotential(d *domain.Inf, t float64) (*matrix.Dense, error) {
	if d == nil {
		return nil, fmt.Errorf("InfPotential: %w", ErrNilDomain)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return nil, fmt.Errorf("InfPotential(t=%g): %w", t, ErrInvalidPosition)
	}
	n := d.Functions()
	alpha := d.Alpha()
	ns := normSquares(n)

	// s underflows to 0 only when α·t is below the smallest subnormal; the
	// boundary form is then exact to double precision.
	s := 2 * alpha * t

	var entry matrix.EntryFunc
	switch {
	case s == 0:
		entry = func(i, j int) float64 {
			return potentialScale(alpha, boundaryCoefficient(ns, i, j))
		}
	case math.IsInf(s, 1):
		entry = func(i, j int) float64 {
			if i == j {
				return 1 / t
			}

			return 0
		}
	default:
		var err error
		if entry, err = ratioEntries(n, s, alpha, ns); err != nil {
			return nil, fmt.Errorf("InfPotential: %w", err)
		}
	}

	m, err := matrix.BuildSymmetric(n, entry, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("InfPotential: %w", err)
	}

	return m, nil
}

// ratioEntries returns the t > 0 entry function. It carries V[i,j] itself along
// the row and down the diagonal, so an intermediate under- or overflows only
// where the entry does, and relies on BuildSymmetric visiting the upper
// triangle in row-major order.
func ratioEntries(n int, s, alpha float64, ns []float64) (matrix.EntryFunc, error) {
	rho, err := special.LaguerreNegRatios(n, laguerreOrder, s)
	if err != nil {
		return nil, err
	}
	r, err := special.LaguerreStieltjesRatios(n, laguerreOrder, s)
	if err != nil {
		return nil, err
	}

	var diag, v float64 // V[i,i], V[i,j]
	return func(i, j int) float64 {
		switch {
		case j > i:
			v *= r[j] * normRatio(ns, j-1, j)
		case i == 0:
			diag = potentialScale(alpha, r[0]*normProduct(ns, 0, 0))
			v = diag
		default:
			diag *= rho[i] * r[i] * (ns[i-1] / ns[i])
			v = diag
		}

		return v
	}, nil
}
