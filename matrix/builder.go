// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// EntryFunc returns the value of element (i, j) for i ≤ j.
type EntryFunc func(i, j int) float64

// BuildSymmetric allocates an n×n Dense, evaluates entry once per pair of the
// upper triangle (diagonal included) in row-major order, and mirrors the
// result into the lower triangle.
//
// Implementation:
//   - Stage 1: allocate via NewDense (shape + policy).
//   - Stage 2: fill A[i,j] = entry(i,j) for 0 ≤ i ≤ j < n through Set, so the
//     numeric policy applies to every produced value.
//   - Stage 3: MirrorUpper.
//
// Errors:
//   - ErrInvalidDimensions when n ≤ 0.
//   - ErrNaNInf when the policy rejects a produced value; no partial matrix is returned.
//
// Complexity:
//   - Time O(n²) entry calls / 2, Space O(n²).
func BuildSymmetric(n int, entry EntryFunc, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildSymmetric: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err = m.Set(i, j, entry(i, j)); err != nil {
				return nil, fmt.Errorf("BuildSymmetric: %w", err)
			}
		}
	}
	if err = m.MirrorUpper(); err != nil {
		return nil, fmt.Errorf("BuildSymmetric: %w", err)
	}

	return m, nil
}
