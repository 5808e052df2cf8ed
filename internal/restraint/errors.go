package restraint

import "errors"

// Contract violations surfaced by the restraint term. None are
// recoverable; they indicate caller bugs, not transient conditions.
var (
	// ErrIndexOutOfRange indicates a bond index >= NumBonds.
	ErrIndexOutOfRange = errors.New("restraint: bond index out of range")

	// ErrCountMismatch indicates a bond whose declared particle count
	// does not equal its chain length.
	ErrCountMismatch = errors.New("restraint: count does not match chain length")

	// ErrParticleOutOfRange indicates a chain entry outside the system's
	// particle range. Detected at context creation, not at AddBond.
	ErrParticleOutOfRange = errors.New("restraint: particle index outside system")

	// ErrStructuralChange indicates the bond count changed between
	// compiling a context and updating its parameters.
	ErrStructuralChange = errors.New("restraint: bond count changed since context creation")

	// ErrDegenerateGeometry indicates two consecutive chain particles at
	// zero separation; the restraint direction is undefined there.
	ErrDegenerateGeometry = errors.New("restraint: zero separation between bonded particles")

	// ErrNoKernel indicates the context's backend has no restraint
	// kernel implementation.
	ErrNoKernel = errors.New("restraint: no kernel for backend")

	// ErrNotAttached indicates an update against a context this force
	// was never compiled into.
	ErrNotAttached = errors.New("restraint: force not compiled into context")
)
