package engine

import "errors"

var (
	// ErrDimensionMismatch indicates a position or velocity buffer whose
	// length does not equal 3*NumParticles.
	ErrDimensionMismatch = errors.New("engine: buffer length does not match system size")

	// ErrNilIntegrator indicates Step was called on a context built
	// without an integrator.
	ErrNilIntegrator = errors.New("engine: context has no integrator")
)
