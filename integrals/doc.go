// Package integrals builds one-electron integral matrices over the Laguerre
// basis of a semi-infinite domain.
//
// Two evaluators are provided:
//
//	InfKinetic(d)      T[i,j] = ½ ∫ ψ_i'(x) ψ_j'(x) dx
//	InfPotential(d, t) V[i,j] = ∫ ψ_i(x) ψ_j(x) / (x + t) dx
//
// where x is the distance from the domain boundary and t ≥ 0 the distance of a
// unit-charge nucleus from that boundary, on the side away from the domain.
//
// Both return an N×N *matrix.Dense whose lower triangle is a bit-exact mirror
// of the computed upper triangle. The matrices depend on the domain only
// through α and N: the side of the half-line does not change them.
//
// Scaling laws:
//
//	T   = α²/2 · K,   K α-independent
//	V_0 = 2α · P0,    P0 α-independent (nucleus on the boundary)
//	V_t: α enters through s = 2αt inside the special-function kernel.
//
// Overflow at extreme α is reported through ±Inf/NaN entries, never as an error.
package integrals
