// SPDX-License-Identifier: MIT

// Package matrix - elementwise algebra on same-shape operands.
//
// Purpose:
//   - Superpose integral matrices (H = T - Σ Z_k V_k) without leaving the package's
//     error discipline.
//   - Compare matrices under numpy-style closeness (|a-b| ≤ atol + rtol*|b|).
//
// Determinism:
//   - Fixed row-major loop order; *Dense operands use the flat buffer directly.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAdd       = "Add"
	opAddScaled = "AddScaled"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the option reproducing m's numeric policy on a fresh result.
func policyOf(m Matrix) Option {
	if d, ok := m.(*Dense); ok && !d.validateNaNInf {
		return WithNoValidateNaNInf()
	}

	return WithValidateNaNInf()
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (result policy).
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return AddScaled(a, 1, b)
}

// AddScaled returns a + alpha*b. The result inherits a's numeric policy.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (result policy).
// Complexity: O(r*c).
func AddScaled(a Matrix, alpha float64, b Matrix) (Matrix, error) {
	tag := opAddScaled
	if alpha == 1 {
		tag = opAdd
	}
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c, policyOf(a))
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range out.data {
				out.data[k] = da.data[k] + alpha*db.data[k]
				if out.validateNaNInf && isNonFinite(out.data[k]) {
					return nil, matrixErrorf(tag, denseErrorf(ctxSet, k/c, k%c, ErrNaNInf))
				}
			}

			return out, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if err = out.Set(i, j, av+alpha*bv); err != nil {
				return nil, matrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Equal entries (including equal infinities) always pass; NaN never does.
// Negative tolerances are normalised to their absolute value.
//
// Errors: ErrNaNInf for non-finite tolerances, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av == bv {
				continue
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
