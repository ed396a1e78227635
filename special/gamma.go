package special

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

const (
	// EulerGamma is the Euler–Mascheroni constant γ.
	EulerGamma = 0.57721566490153286060651209008240243104215933593992

	// cfThreshold separates the power-series (x < 1) and continued-fraction
	// (x ≥ 1) evaluation regimes.
	cfThreshold = 1.0

	// cfReach sets the backward continued-fraction depth: ceil(cfReach/x)+cfExtra
	// terms leave a tail below double precision for every x ≥ 1.
	cfReach = 100.0
	cfExtra = 16

	seriesMaxItr = 200
)

// ExpE1 returns e^x·E1(x) for x > 0, +Inf for x == 0 and NaN otherwise.
//
// x < 1 uses E1(x) = -γ - ln x + Σ_{k≥1} (-1)^(k+1) x^k/(k·k!);
// x ≥ 1 uses the Legendre continued fraction, which yields the scaled value directly.
func ExpE1(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case math.IsInf(x, 1):
		return 0
	case x >= cfThreshold:
		return upperGammaCF(0, x)
	}

	var (
		sum  float64
		term = 1.0 // x^k / k!
		add  float64
	)
	for k := 1; k <= seriesMaxItr; k++ {
		term *= x / float64(k)
		add = term / float64(k)
		if k%2 == 1 {
			sum += add
		} else {
			sum -= add
		}
		if add <= 0x1p-56*math.Abs(sum) {
			break
		}
	}

	return math.Exp(x) * (-EulerGamma - math.Log(x) + sum)
}

// UpperGammaScaled returns G(a, x) = e^x · x^(-a) · Γ(a, x) for x > 0 and any real a.
//
// Regimes:
//   - x ≥ 1 and a < x+1: continued fraction evaluated backward (converges for all a).
//   - a > 0 otherwise: G = e^x x^(-a) Γ(a) Q(a, x), with Q = 1 - GammaIncReg(a, x)
//     while P ≤ ½ and gonum's complement beyond.
//   - a ≤ 0, x < 1: downward recurrence G(b-1) = (x·G(b) - 1)/(b-1), seeded
//     from ExpE1 for integer a and from the fractional shape in (0,1] otherwise.
//
// NaN is returned for x ≤ 0 or NaN inputs.
func UpperGammaScaled(a, x float64) float64 {
	if math.IsNaN(a) || math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	if x >= cfThreshold && a < x+1 {
		return upperGammaCF(a, x)
	}
	if a > 0 {
		return upperGammaReg(a, x)
	}

	var (
		b float64 // current shape
		g float64 // G(b, x)
	)
	if a == math.Trunc(a) {
		b, g = 0, ExpE1(x)
	} else {
		b = a + math.Floor(-a) + 1 // in (0, 1]
		g = upperGammaReg(b, x)
	}
	for b > a {
		g = (x*g - 1) / (b - 1)
		b--
	}

	return g
}

// GammaIncReg returns the regularized lower incomplete gamma P(a, x) for a > 0, x ≥ 0.
func GammaIncReg(a, x float64) float64 {
	if math.IsNaN(a) || math.IsNaN(x) || a <= 0 || x < 0 {
		return math.NaN()
	}

	return mathext.GammaIncReg(a, x)
}

// upperGammaReg evaluates G(a, x) for a > 0 through the regularized
// incomplete gamma; the prefactor is formed in log space.
func upperGammaReg(a, x float64) float64 {
	var q float64
	if p := GammaIncReg(a, x); p <= 0.5 {
		q = 1 - p
	} else {
		q = mathext.GammaIncRegComp(a, x)
	}
	lg, _ := math.Lgamma(a)

	return math.Exp(x-a*math.Log(x)+lg) * q
}

// upperGammaCF evaluates G(a, x) by the continued fraction
//
//	Γ(a,x) = e^(-x) x^a · 1/(x+1-a- 1·(1-a)/(x+3-a- 2·(2-a)/(x+5-a- ...)))
//
// summed from a fixed depth back to the head. Requires x ≥ 1 and x+1-a > 0.
func upperGammaCF(a, x float64) float64 {
	depth := int(math.Ceil(cfReach/x)) + cfExtra
	var tail float64
	for i := depth; i >= 1; i-- {
		fi := float64(i)
		tail = -fi * (fi - a) / (x + 1 - a + 2*fi + tail)
	}

	return 1 / (x + 1 - a + tail)
}
