// Package domain describes the semi-infinite regions on which Laguerre-type
// basis functions live.
//
// An Inf domain is one half of the real line, bounded at Position and extending
// to -∞ (Left) or +∞ (Right). Its basis is N functions
//
//	ψ_i(x) = N_i · x · L_i⁽²⁾(2αx) · e^{-αx},  i = 0..N-1,
//
// with x measured from the boundary and α > 0 the exponential decay rate.
//
// Domains are immutable once constructed; every integral evaluator only reads them.
package domain
