package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leglag/matrix"
)

// mustDense builds an r×c Dense from row-major values or fails the test.
func mustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for k, v := range vals {
		require.NoError(t, m.Set(k/c, k%c, v))
	}

	return m
}

// hide wraps a Matrix to force the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// TestBuildSymmetric checks entry calls on the upper triangle only and exact mirroring.
func TestBuildSymmetric(t *testing.T) {
	calls := 0
	m, err := matrix.BuildSymmetric(4, func(i, j int) float64 {
		require.LessOrEqual(t, i, j)
		calls++
		return float64(10*i + j)
	})
	require.NoError(t, err)
	require.Equal(t, 10, calls)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := m.At(i, j)
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			require.Equal(t, float64(10*lo+hi), v)
		}
	}
}

// TestBuildSymmetricErrors checks shape and policy failures.
func TestBuildSymmetricErrors(t *testing.T) {
	_, err := matrix.BuildSymmetric(0, func(i, j int) float64 { return 0 })
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.BuildSymmetric(2, func(i, j int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.BuildSymmetric(2, func(i, j int) float64 { return math.Inf(1) }, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	require.True(t, math.IsInf(v, 1))
}

// TestAddScaled checks Dense fast path and generic path give the same result.
func TestAddScaled(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 0.5, 0.5, -1, 2)

	fast, err := matrix.AddScaled(a, -2, b)
	require.NoError(t, err)
	slow, err := matrix.AddScaled(hide{a}, -2, hide{b})
	require.NoError(t, err)

	want := mustDense(t, 2, 2, 0, 1, 5, 0)
	for _, got := range []matrix.Matrix{fast, slow} {
		ok, err := matrix.AllClose(got, want, 0, 0)
		require.NoError(t, err)
		require.True(t, ok)
	}

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := sum.At(1, 1)
	require.Equal(t, 6.0, v)

	_, err = matrix.Add(a, mustDense(t, 1, 2, 0, 0))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddScaledPolicy checks that the result inherits the left operand's numeric policy.
func TestAddScaledPolicy(t *testing.T) {
	huge := mustDense(t, 1, 1, math.MaxFloat64)

	_, err := matrix.Add(huge, huge)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.MaxFloat64))
	out, err := matrix.Add(relaxed, huge)
	require.NoError(t, err)
	v, _ := out.At(0, 0)
	require.True(t, math.IsInf(v, 1))
}

// TestAllClose checks the rtol/atol relation and argument validation.
func TestAllClose(t *testing.T) {
	a := mustDense(t, 1, 2, 1, 100)
	b := mustDense(t, 1, 2, 1+1e-15, 100+1e-12)

	ok, err := matrix.AllClose(a, b, 1e-13, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-16, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-11)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, mustDense(t, 2, 1, 0, 0), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
