package integrals

import (
	"math"

	"github.com/katalvlaran/leglag/special"
)

// laguerreOrder is the generalized Laguerre order of the basis: ψ_i carries
// x·L_i⁽²⁾(2αx)·e^{-αx}, orthogonal under the weight u²e^{-u}.
const laguerreOrder = 2

// normSquares returns Γ(i+3)/i! = (i+1)(i+2) for i = 0..n-1.
func normSquares(n int) []float64 {
	ns := make([]float64, n)
	for i := range ns {
		ns[i] = special.NormSquared(i, laguerreOrder)
	}

	return ns
}

// normRatio returns sqrt(ns_i / ns_j), the ratio of basis normalisation constants.
func normRatio(ns []float64, i, j int) float64 {
	return math.Sqrt(ns[i] / ns[j])
}

// normProduct returns 1/sqrt(ns_i · ns_j) = c_i·c_j.
func normProduct(ns []float64, i, j int) float64 {
	return 1 / math.Sqrt(ns[i]*ns[j])
}

// kineticScale converts the α-independent kinetic coefficient k to T[i,j] = α²/2·k.
// α is applied twice rather than squared so that α² overflowing does not turn
// a representable entry into +Inf.
func kineticScale(alpha, k float64) float64 {
	return alpha * (alpha * (k / 2))
}

// potentialScale converts the α-independent potential coefficient p to V[i,j] = 2α·p.
func potentialScale(alpha, p float64) float64 {
	return alpha * (2 * p)
}
