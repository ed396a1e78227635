package hamiltonian

import "github.com/katalvlaran/leglag/matrix"

// DefaultSymmetryTolerance bounds |H[i,j] − H[j,i]| accepted by Spectrum.
// Matrices produced by Core are exactly symmetric; the slack is for callers
// that assemble H themselves.
const DefaultSymmetryTolerance = matrix.DefaultEpsilon

// Option configures Spectrum.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	symTol float64
}

// WithSymmetryTolerance overrides DefaultSymmetryTolerance.
// Panics, as matrix.WithEpsilon does, when tol is negative, NaN or infinite.
func WithSymmetryTolerance(tol float64) Option {
	eps := matrix.NewOptions(matrix.WithEpsilon(tol)).Epsilon()

	return func(o *Options) { o.symTol = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{symTol: matrix.NewOptions().Epsilon()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
