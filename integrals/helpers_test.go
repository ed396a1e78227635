package integrals_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/leglag/domain"
	"github.com/katalvlaran/leglag/matrix"
)

// rtol is the element-wise relative tolerance for closed-form comparisons.
const rtol = 1e-14

// newDomain returns a domain bounded at the origin.
func newDomain(t testing.TB, side domain.Side, alpha float64, functions int) *domain.Inf {
	t.Helper()
	d, err := domain.NewInf(0, 0, side, alpha, 1, functions, nil)
	require.NoError(t, err)

	return d
}

// requireExactSymmetric fails unless m[i,j] and m[j,i] are bit-identical.
func requireExactSymmetric(t *testing.T, m *matrix.Dense) {
	t.Helper()
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
}

// requireMatrixRel compares m to want element-wise with relative tolerance tol.
func requireMatrixRel(t *testing.T, m *matrix.Dense, want [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want), m.Cols())
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Truef(t, scalar.EqualWithinRel(got, want[i][j], tol),
				"[%d,%d] = %.17g, want %.17g", i, j, got, want[i][j])
		}
	}
}

// scaled returns f·c element-wise.
func scaled(c [][]float64, f float64) [][]float64 {
	out := make([][]float64, len(c))
	for i := range c {
		out[i] = make([]float64, len(c[i]))
		for j := range c[i] {
			out[i][j] = f * c[i][j]
		}
	}

	return out
}
