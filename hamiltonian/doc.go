// Package hamiltonian assembles the one-electron core Hamiltonian of a
// semi-infinite domain surrounded by point nuclei and diagonalises it.
//
//	H = T − Σ_k Z_k · V(t_k)
//
// T is the kinetic matrix and V(t_k) the unit-charge potential matrix of
// nucleus k at distance t_k from the domain boundary (see package integrals).
// Nuclei must lie outside the open domain: inside it the 1/|x − X| integral
// diverges.
package hamiltonian
