// Package ogum implements the densification kinetics of ceramic sintering.
// Its core is a forward solver for the Skorohod–Olevsky (SOVS) law,
//
//	dx/dt = A·exp(−Ea/(R·T))·(1−x)·xⁿ
//
// where x is the relative density fraction of the sintering body, along
// with the analysis routines built on top of it: Arrhenius activation
// energy regression, master curve construction and smoothing filters for
// experimental dilatometry traces.
package ogum

import "math"

// R is the ideal gas constant in J/(mol·K).
const R = 8.314

// Params holds the kinetic parameters of the SOVS law. A Solver owns
// exactly one immutable set of these for its lifetime.
type Params struct {
	Ea float64 // Activation energy in J/mol.
	A  float64 // Pre-exponential factor in 1/s.
	N  float64 // Reaction order exponent, dimensionless, must be ≥ 0.
}

// Valid returns a ValidationError if any parameter is out of range.
func (p Params) Valid() error {
	if p.Ea <= 0 {
		return newValidationError("activation energy must be positive, got %g", p.Ea)
	}
	if p.A <= 0 {
		return newValidationError("pre-exponential factor must be positive, got %g", p.A)
	}
	if p.N < 0 {
		return newValidationError("reaction order must not be negative, got %g", p.N)
	}
	return nil
}

// Rate returns the instantaneous densification rate dx/dt at relative
// density x and absolute temperature T. The rate vanishes exactly at the
// fixed point x=1, and at x=0 whenever N>0 (for N=0 the xⁿ term is 1 by
// convention). A non-positive temperature returns a DomainError.
func (p Params) Rate(x, T float64) (float64, error) {
	if T <= 0 {
		return 0, DomainError{Index: -1, Temperature: T}
	}
	k := p.A * math.Exp(-p.Ea/(R*T))
	return k * (1 - x) * math.Pow(x, p.N), nil
}
