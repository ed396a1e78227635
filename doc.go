// Package leglag computes one-electron integrals over Laguerre-type basis
// functions on semi-infinite domains of the real line.
//
// Each domain carries N functions
//
//	ψ_i(x) = N_i · x · L_i⁽²⁾(2αx) · e^{-αx}
//
// with x the distance from the domain boundary. The library evaluates the
// kinetic matrix and the potential matrix of a point nucleus outside the
// domain, both in closed form, and assembles them into a core Hamiltonian.
//
// Layout:
//
//	domain/       semi-infinite domain descriptor (Inf) and its validation
//	integrals/    InfKinetic and InfPotential evaluators
//	special/      exponential integral, scaled incomplete gamma, Laguerre kernels
//	matrix/       Dense symmetric storage, validators, elementwise algebra, gonum bridge
//	hamiltonian/  H = T − Σ Z·V and its spectrum
//	examples/     runnable demos
//
// Quick example:
//
//	d, _ := domain.NewInf(0, 0, domain.Right, 1, 1, 8, nil)
//	h, _ := hamiltonian.Core(d, []hamiltonian.Nucleus{{Position: 0, Charge: 1}})
//	ev, _ := hamiltonian.Spectrum(h) // ev[0] == -0.5
//
// All matrices are returned as *matrix.Dense with a bit-exact mirrored lower
// triangle. Functions are pure: no global state, safe for concurrent use.
package leglag
