// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToSymDense copies the upper triangle of a square, tol-symmetric matrix into a
// gonum *mat.SymDense, the input type of gonum's symmetric eigen-solver.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²).
func ToSymDense(m Matrix, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, fmt.Errorf("ToSymDense: %w", err)
	}
	n := m.Rows()
	out := mat.NewSymDense(n, nil)
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, _ = m.At(i, j)
			out.SetSym(i, j, v)
		}
	}

	return out, nil
}
