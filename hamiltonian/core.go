package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/leglag/domain"
	"github.com/katalvlaran/leglag/integrals"
	"github.com/katalvlaran/leglag/matrix"
)

// Nucleus is a point charge on the line.
type Nucleus struct {
	Position float64
	Charge   int
}

// Distance returns the distance from n to the boundary of d.
//
// Errors:
//   - ErrNilDomain when d is nil.
//   - ErrNucleusInside when n lies in the open interior of d.
func Distance(d *domain.Inf, n Nucleus) (float64, error) {
	if d == nil {
		return 0, ErrNilDomain
	}
	t, ok := d.DistanceFrom(n.Position)
	if !ok {
		return 0, fmt.Errorf("Distance(%g, %s): %w", n.Position, d, ErrNucleusInside)
	}

	return t, nil
}

// Core returns H = T − Σ_k Z_k·V(t_k) for the basis of d.
//
// Implementation:
//   - Stage 1: validate every nucleus (charge, position) before any allocation.
//   - Stage 2: T from integrals.InfKinetic.
//   - Stage 3: subtract Z_k·V(t_k) in input order.
//
// Errors:
//   - ErrNilDomain, ErrInvalidCharge, ErrNucleusInside (wrapped with the nucleus index);
//     evaluator errors are propagated.
//
// Complexity: O(K·N²) plus one kernel sweep per nucleus.
func Core(d *domain.Inf, nuclei []Nucleus) (matrix.Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("Core: %w", ErrNilDomain)
	}
	dist := make([]float64, len(nuclei))
	for k, nuc := range nuclei {
		if nuc.Charge < 1 {
			return nil, fmt.Errorf("Core: nucleus %d (charge=%d): %w", k, nuc.Charge, ErrInvalidCharge)
		}
		t, err := Distance(d, nuc)
		if err != nil {
			return nil, fmt.Errorf("Core: nucleus %d: %w", k, err)
		}
		dist[k] = t
	}

	kin, err := integrals.InfKinetic(d)
	if err != nil {
		return nil, fmt.Errorf("Core: %w", err)
	}
	var h matrix.Matrix = kin
	for k, nuc := range nuclei {
		v, err := integrals.InfPotential(d, dist[k])
		if err != nil {
			return nil, fmt.Errorf("Core: nucleus %d: %w", k, err)
		}
		if h, err = matrix.AddScaled(h, -float64(nuc.Charge), v); err != nil {
			return nil, fmt.Errorf("Core: nucleus %d: %w", k, err)
		}
	}

	return h, nil
}

// Spectrum returns the eigenvalues of the symmetric matrix h in ascending order.
//
// Errors:
//   - matrix validation sentinels (ErrNilMatrix, ErrNonSquare, ErrAsymmetry) via ToSymDense.
//   - ErrEigenFailed when gonum's EigenSym does not converge.
func Spectrum(h matrix.Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	sym, err := matrix.ToSymDense(h, o.symTol)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, fmt.Errorf("Spectrum: %w", ErrEigenFailed)
	}

	return es.Values(nil), nil
}
