package integrals_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/leglag/domain"
	"github.com/katalvlaran/leglag/integrals"
	"github.com/katalvlaran/leglag/matrix"
)

// unscaledPotentialAtZero is P0 for the first five functions, V = 2α · P0 at t = 0.
var unscaledPotentialAtZero = [][]float64{
	{0.5, math.Sqrt(3) / 6, math.Sqrt(6) / 12, math.Sqrt(10) / 20, math.Sqrt(15) / 30},
	{math.Sqrt(3) / 6, 0.5, math.Sqrt(2) / 4, math.Sqrt(30) / 20, math.Sqrt(5) / 10},
	{math.Sqrt(6) / 12, math.Sqrt(2) / 4, 0.5, math.Sqrt(15) / 10, math.Sqrt(10) / 10},
	{math.Sqrt(10) / 20, math.Sqrt(30) / 20, math.Sqrt(15) / 10, 0.5, math.Sqrt(6) / 6},
	{math.Sqrt(15) / 30, math.Sqrt(5) / 10, math.Sqrt(10) / 10, math.Sqrt(6) / 6, 0.5},
}

// potentialFixtures hold V for five functions at t > 0, evaluated analytically.
var potentialFixtures = []struct {
	alpha, t float64
	want     [][]float64
}{
	{
		alpha: 2, t: 1,
		want: [][]float64{
			{0.60306079683378665927, 0.12784011696937552659, 0.037486952245518249652, 0.013108762856806335803, 0.0051495572630676102668},
			{0.12784011696937552659, 0.51665968161851543467, 0.15150171379034025222, 0.052978434348840739448, 0.020811687904276340999},
			{0.037486952245518249652, 0.15150171379034025222, 0.45911952506799888982, 0.16054890079162115197, 0.063068938478793636324},
			{0.013108762856806335803, 0.052978434348840739448, 0.16054890079162115197, 0.41729904920753857386, 0.16392892092041569535},
			{0.0051495572630676102668, 0.020811687904276340999, 0.063068938478793636324, 0.16392892092041569535, 0.38514368740123998198},
		},
	},
	{
		alpha: 0.7, t: 3.5,
		want: [][]float64{
			{0.18488870402209088733, 0.034999413128998148669, 0.0092834496726205206711, 0.0029640617151554127543, 0.0010707968626326696883},
			{0.034999413128998148669, 0.15963467267289742612, 0.042342437123216826208, 0.013519284450203167054, 0.0048839763694181906751},
			{0.0092834496726205206711, 0.042342437123216826208, 0.14252116220018659995, 0.045504799980003726799, 0.016439062926447980851},
			{0.0029640617151554127543, 0.013519284450203167054, 0.045504799980003726799, 0.12994344770646939481, 0.046943366736365071840},
			{0.0010707968626326696883, 0.0048839763694181906751, 0.016439062926447980851, 0.046943366736365071840, 0.12019739670863536310},
		},
	},
}

func TestInfPotentialShape(t *testing.T) {
	for n := 1; n <= 50; n++ {
		for _, side := range []domain.Side{domain.Left, domain.Right} {
			for _, pos := range []float64{0, 0.5, 7} {
				m, err := integrals.InfPotential(newDomain(t, side, 2, n), pos)
				require.NoError(t, err)
				require.Equal(t, n, m.Rows())
				require.Equal(t, n, m.Cols())
				requireExactSymmetric(t, m)
			}
		}
	}
}

func TestInfPotentialAtBoundaryScaling(t *testing.T) {
	maxAlpha := math.Sqrt(math.MaxFloat64)
	r := rand.New(rand.NewSource(77))
	alphas := []float64{1e-150, 1, maxAlpha}
	for k := 0; k < 200; k++ {
		alphas = append(alphas, logUniform(r, 1e-150, maxAlpha))
	}
	for _, alpha := range alphas {
		for _, side := range []domain.Side{domain.Left, domain.Right} {
			m, err := integrals.InfPotential(newDomain(t, side, alpha, 5), 0)
			require.NoError(t, err)
			requireMatrixRel(t, m, scaled(unscaledPotentialAtZero, 2*alpha), rtol)
		}
	}
}

func TestInfPotentialFixtures(t *testing.T) {
	for _, fx := range potentialFixtures {
		for _, side := range []domain.Side{domain.Left, domain.Right} {
			m, err := integrals.InfPotential(newDomain(t, side, fx.alpha, 5), fx.t)
			require.NoError(t, err)
			requireMatrixRel(t, m, fx.want, rtol)
		}
	}
}

// TestInfPotentialContinuity checks V(t) → V(0) as the nucleus approaches the boundary.
func TestInfPotentialContinuity(t *testing.T) {
	const alpha = 1.3
	for _, n := range []int{5, 20} {
		m, err := integrals.InfPotential(newDomain(t, domain.Right, alpha, n), 1e-10)
		require.NoError(t, err)
		at0, err := integrals.InfPotential(newDomain(t, domain.Right, alpha, n), 0)
		require.NoError(t, err)
		ok, err := matrix.AllClose(m, at0, 1e-8, 0)
		require.NoError(t, err)
		require.Truef(t, ok, "n=%d", n)
	}
}

// TestInfPotentialUnderflow checks that s = 2αt underflowing to zero falls back
// to the boundary form.
func TestInfPotentialUnderflow(t *testing.T) {
	d := newDomain(t, domain.Right, 1e-200, 4)
	tiny, err := integrals.InfPotential(d, 1e-200)
	require.NoError(t, err)
	at0, err := integrals.InfPotential(d, 0)
	require.NoError(t, err)
	ok, err := matrix.AllClose(tiny, at0, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// requireFinite fails on the first NaN or ±Inf entry of m.
func requireFinite(t *testing.T, m *matrix.Dense) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "[%d,%d] = %g", i, j, v)
		}
	}
}

// TestInfPotentialLargeSeparation covers s = 2αt far beyond the range of
// L_i(-s) and Q_j(s) taken separately. There V → I/t with
// V[i,i+1] = sqrt((i+1)(i+3))/(t·s) to leading order in 1/s.
func TestInfPotentialLargeSeparation(t *testing.T) {
	for _, tc := range []struct {
		alpha, t float64
	}{
		{1e150, 1},
		{1e200, 3},
		{1e300, 1e-5},
	} {
		s := 2 * tc.alpha * tc.t
		m, err := integrals.InfPotential(newDomain(t, domain.Right, tc.alpha, 5), tc.t)
		require.NoError(t, err)
		requireFinite(t, m)
		requireExactSymmetric(t, m)
		for i := 0; i < 5; i++ {
			v, _ := m.At(i, i)
			require.Truef(t, scalar.EqualWithinRel(v, 1/tc.t, rtol), "α=%g t=%g: V[%d,%d] = %g", tc.alpha, tc.t, i, i, v)
			if i == 4 {
				continue
			}
			v, _ = m.At(i, i+1)
			want := math.Sqrt(float64((i+1)*(i+3))) / (tc.t * s)
			require.Truef(t, scalar.EqualWithinRel(v, want, rtol), "α=%g t=%g: V[%d,%d] = %g, want %g", tc.alpha, tc.t, i, i+1, v, want)
		}
	}
}

// TestInfPotentialDistantNucleusWideBasis checks a wide basis at s = 2·10⁸,
// where L_49(-s) alone exceeds the float64 range.
func TestInfPotentialDistantNucleusWideBasis(t *testing.T) {
	const pos = 1e8
	m, err := integrals.InfPotential(newDomain(t, domain.Left, 1, 50), pos)
	require.NoError(t, err)
	requireFinite(t, m)
	for i := 0; i < 50; i++ {
		v, _ := m.At(i, i)
		require.InEpsilonf(t, 1/pos, v, 1e-6, "V[%d,%d]", i, i)
	}
}

// TestInfPotentialOverflowedArgument checks the s = +Inf limit V = I/t.
func TestInfPotentialOverflowedArgument(t *testing.T) {
	const pos = 1e10
	m, err := integrals.InfPotential(newDomain(t, domain.Right, 1e300, 4), pos)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := m.At(i, j)
			if i == j {
				require.Equal(t, 1/pos, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

// TestInfPotentialDiagonalDecreasing checks that the diagonal is positive and
// falls as the nucleus moves away.
func TestInfPotentialDiagonalDecreasing(t *testing.T) {
	d := newDomain(t, domain.Left, 0.9, 30)
	prev, err := integrals.InfPotential(d, 0)
	require.NoError(t, err)
	for _, pos := range []float64{0.001, 0.1, 1, 10, 100} {
		cur, err := integrals.InfPotential(d, pos)
		require.NoError(t, err)
		for i := 0; i < 30; i++ {
			p, _ := prev.At(i, i)
			c, _ := cur.At(i, i)
			require.Greaterf(t, c, 0.0, "t=%g i=%d", pos, i)
			require.Lessf(t, c, p, "t=%g i=%d", pos, i)
		}
		prev = cur
	}
}

func TestBoundaryPotentialCoefficient(t *testing.T) {
	for i := range unscaledPotentialAtZero {
		for j := range unscaledPotentialAtZero[i] {
			got := integrals.BoundaryPotentialCoefficient(i, j)
			require.InEpsilon(t, unscaledPotentialAtZero[i][j], got, rtol)
			require.Equal(t, got, integrals.BoundaryPotentialCoefficient(j, i))
		}
	}
}

func TestInfPotentialErrors(t *testing.T) {
	_, err := integrals.InfPotential(nil, 1)
	require.ErrorIs(t, err, integrals.ErrNilDomain)

	d := newDomain(t, domain.Right, 1, 3)
	for _, pos := range []float64{-1e-300, -2, math.NaN(), math.Inf(1)} {
		_, err = integrals.InfPotential(d, pos)
		require.ErrorIsf(t, err, integrals.ErrInvalidPosition, "t=%g", pos)
	}
}
