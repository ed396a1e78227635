// Package special evaluates the special-function building blocks of
// one-electron integrals over Laguerre bases on a half-line.
//
// 🚀 What's inside?
//
//   - ExpE1: e^x·E1(x), the exponentially scaled exponential integral.
//   - UpperGammaScaled: e^x·x^(-a)·Γ(a, x) for any real shape a, including the
//     negative shapes that arise from 1/(u+s) kernels.
//   - GammaIncReg: the regularized lower incomplete gamma P(a, x).
//   - LaguerreNegRatios: consecutive ratios of the generalized Laguerre
//     polynomials L_k^(a)(-s), k < n.
//   - LaguerreStieltjesRatios: Q_0 and consecutive ratios of the Laguerre
//     functions of the second kind Q_k(s) = ∫₀^∞ u^a e^(-u) L_k^(a)(u) / (u+s) du.
//   - NormSquared: the factorial ratio Γ(n+a+1)/n!.
//
// ✨ Numerics:
//
//	Q_k is the minimal solution of the Laguerre three-term recurrence. Once
//	s·n ≥ LiftLimit its ratios Q_k/Q_(k-1) come from a backward (Miller) sweep
//	started deep enough that the truncated tail is below double precision, and
//	only Q_0 is evaluated absolutely through UpperGammaScaled. Below LiftLimit
//	the sweep would need O(1/s) steps; there the order-0 functions are run
//	forward from e^s·E1(s) and lifted to the requested order by partial sums.
//
//	For large s, L_k(-s) grows like s^k and Q_k(s) decays like s^(-k-1), so both are
//	returned as ratios. Callers multiply them pairwise and never see either
//	factor overflow.
//
// Scaled forms keep every quantity O(1) in s: no e^s or e^(-s) factor is ever
// materialised. Values that genuinely exceed the float64 range overflow to ±Inf
// per IEEE-754; that is not reported as an error.
package special
