package special

import (
	"fmt"
	"math"
)

const (
	// LiftLimit is the bound on s·n below which LaguerreStieltjesRatios lifts
	// the order-0 functions to the requested order instead of running the
	// backward sweep.
	LiftLimit = 0.25

	// NegSumLimit is the bound on s·n up to which LaguerreNegRatios sums the
	// explicit series; beyond it the forward ratio recurrence is used.
	NegSumLimit = 1e4

	// millerReach and millerTail size the backward sweep so that
	// sqrt(s·m) - sqrt(s·top) ≥ 10; the neglected tail is below
	// exp(-4·(sqrt(s·m) - sqrt(s·top))).
	millerReach = 20.0
	millerTail  = 100.0
	millerExtra = 16
)

// NormSquared returns the squared norm Γ(n+order+1)/n! of L_n^(order) under
// the weight u^order·e^(-u), as the exact integer product (n+1)…(n+order).
func NormSquared(n, order int) float64 {
	p := 1.0
	for k := 1; k <= order; k++ {
		p *= float64(n + k)
	}

	return p
}

// factorial returns order! as a float64.
func factorial(order int) float64 {
	f := 1.0
	for k := 2; k <= order; k++ {
		f *= float64(k)
	}

	return f
}

// checkArgs validates the common (n, order, s) contract.
func checkArgs(fn string, n, order int, s float64) error {
	if n < 1 || order < 0 || math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return fmt.Errorf("%s(n=%d, order=%d, s=%g): %w", fn, n, order, s, ErrDomain)
	}

	return nil
}

// LaguerreNegRatios returns ρ_0 = 1 and ρ_k = L_k^(order)(-s) / L_(k-1)^(order)(-s)
// for k = 1..n-1.
//
// Ratios stay O(1 + s/k) where the polynomials themselves overflow, so callers
// combine them with the matching Stieltjes ratios before anything is formed.
//
// Implementation:
//   - s·n ≤ NegSumLimit: each L_k from the all-positive sum
//     Σ_m C(k+order, k-m)·s^m/m!, so every value carries only rounding error.
//   - otherwise: ρ_1 = order+1+s and
//     ρ_(k+1) = (2k+order+1+s - (k+order)/ρ_k) / (k+1).
//
// Errors: ErrDomain for n < 1, order < 0, s < 0, NaN or ±Inf.
//
// Complexity: O(n²) on the summed path, O(n) otherwise.
func LaguerreNegRatios(n, order int, s float64) ([]float64, error) {
	if err := checkArgs("LaguerreNegRatios", n, order, s); err != nil {
		return nil, err
	}
	rho := make([]float64, n)
	rho[0] = 1
	if n == 1 {
		return rho, nil
	}

	var k int
	if s*float64(n) <= NegSumLimit {
		var (
			term, sum float64
			prev      = 1.0 // L_(k-1)
		)
		for k = 1; k < n; k++ {
			term = NormSquared(k, order) / factorial(order) // C(k+order, k)
			sum = term
			for m := 0; m < k; m++ {
				term *= s * float64(k-m) / float64((m+1)*(order+m+1))
				sum += term
			}
			rho[k] = sum / prev
			prev = sum
		}

		return rho, nil
	}

	rho[1] = float64(order+1) + s
	for k = 1; k < n-1; k++ {
		rho[k+1] = (float64(2*k+order+1) + s - float64(k+order)/rho[k]) / float64(k+1)
	}

	return rho, nil
}

// LaguerreStieltjesRatios returns r_0 = Q_0(s) and r_k = Q_k(s)/Q_(k-1)(s) for
// k = 1..n-1, where
//
//	Q_k(s) = ∫₀^∞ u^order · e^(-u) · L_k^(order)(u) / (u+s) du,  s > 0,
//
// are the Laguerre functions of the second kind: the minimal solution of the
// Laguerre recurrence at -s, with Q_0 = order!·UpperGammaScaled(-order, s).
//
// Implementation:
//   - s·n < LiftLimit: Q_k of order 0 by forward recurrence from
//     Q_0 = e^s·E1(s), Q_1 = (1+s)·Q_0 - 1, then lifted one order at a time by
//     Q_k^(b) = (b-1)! - s·Σ_(m≤k) Q_m^(b-1).
//   - otherwise: Q_0 absolutely, ratios by a backward sweep on d_k = 1 - r_k,
//     d_k = (s + (k+1)·d_(k+1)) / (k+order + s + (k+1)·d_(k+1)), started from
//     d = 1 deep enough for the tail to fall below double precision.
//
// Errors: ErrDomain for n < 1, order < 0, s ≤ 0, NaN or ±Inf.
//
// Complexity: O(order·n) on the lifted path, O(n + sqrt(n/s) + 1/s) otherwise.
func LaguerreStieltjesRatios(n, order int, s float64) ([]float64, error) {
	if err := checkArgs("LaguerreStieltjesRatios", n, order, s); err != nil {
		return nil, err
	}
	if s == 0 {
		return nil, fmt.Errorf("LaguerreStieltjesRatios(s=0): %w", ErrDomain)
	}

	r := make([]float64, n)
	var k int
	if s*float64(n) < LiftLimit {
		q := liftedStieltjes(n, order, s)
		r[0] = q[0]
		for k = 1; k < n; k++ {
			r[k] = q[k] / q[k-1]
		}

		return r, nil
	}

	r[0] = factorial(order) * UpperGammaScaled(-float64(order), s)
	top := n - 1
	if top == 0 {
		return r, nil
	}
	var (
		d        = 1.0
		num, den float64
	)
	for k = millerDepth(top, s); k >= 1; k-- {
		num = s + float64(k+1)*d
		den = float64(k+order) + num
		d = num / den
		if k <= top {
			r[k] = float64(k+order) / den
		}
	}

	return r, nil
}

// liftedStieltjes returns Q_k^(order)(s), k < n, for small s·n.
func liftedStieltjes(n, order int, s float64) []float64 {
	q := make([]float64, n)
	q[0] = ExpE1(s)
	if n > 1 {
		q[1] = (1+s)*q[0] - 1
	}
	var k int
	for k = 1; k < n-1; k++ {
		q[k+1] = ((float64(2*k+1)+s)*q[k] - float64(k)*q[k-1]) / float64(k+1)
	}

	var f, acc float64
	for b := 1; b <= order; b++ {
		f, acc = factorial(b-1), 0
		for k = range q {
			acc += q[k]
			q[k] = f - s*acc
		}
	}

	return q
}

// millerDepth returns the starting index of the backward sweep for indices up to top.
func millerDepth(top int, s float64) int {
	m := float64(top) + millerReach*math.Sqrt(float64(top)/s) + millerTail/s

	return int(math.Ceil(m)) + millerExtra
}
