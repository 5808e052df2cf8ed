package restraint

import (
	"fmt"

	"github.com/san-kum/contsim/internal/compute"
	"github.com/san-kum/contsim/internal/engine"
)

// Force is the editable definition of a continuity restraint. It owns
// the bond table and implements engine.Force. Bonds are appended, never
// removed; indices are stable and equal to insertion order.
//
// A Force is not safe for concurrent mutation; the caller serializes
// edits against compiles and updates, as with any engine force term.
type Force struct {
	bonds    []Bond
	compiled map[*engine.Context]*Kernel
}

func NewForce() *Force {
	return &Force{compiled: make(map[*engine.Context]*Kernel)}
}

func (f *Force) NumBonds() int { return len(f.bonds) }

// AddBond appends a restraint over the given particle chain and returns
// its index. count must equal len(particles); chain entries are checked
// against the system only when a context is compiled.
func (f *Force) AddBond(particles []int, count int, length, k float64) (int, error) {
	if count != len(particles) {
		return 0, fmt.Errorf("%w: count=%d, chain has %d", ErrCountMismatch, count, len(particles))
	}
	f.bonds = append(f.bonds, Bond{Particles: particles, Count: count, Length: length, K: k}.clone())
	return len(f.bonds) - 1, nil
}

// GetBondParameters returns a copy of the bond at index.
func (f *Force) GetBondParameters(index int) (Bond, error) {
	if index < 0 || index >= len(f.bonds) {
		return Bond{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(f.bonds))
	}
	return f.bonds[index].clone(), nil
}

// SetBondParameters replaces every field of the bond at index. The table
// itself accepts a new chain here, but a compiled context keeps its own
// topology snapshot: after compiling, only Length and K edits propagate
// (see UpdateParametersInContext), and changing a compiled bond's chain
// is unsupported.
func (f *Force) SetBondParameters(index int, particles []int, count int, length, k float64) error {
	if index < 0 || index >= len(f.bonds) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(f.bonds))
	}
	if count != len(particles) {
		return fmt.Errorf("%w: count=%d, chain has %d", ErrCountMismatch, count, len(particles))
	}
	f.bonds[index] = Bond{Particles: particles, Count: count, Length: length, K: k}.clone()
	return nil
}

// UsesPeriodicBoundaryConditions implements engine.Force. The restraint
// never wraps across periodic boundaries.
func (f *Force) UsesPeriodicBoundaryConditions() bool { return false }

// Compile implements engine.Force. It snapshots the current bond table
// into a kernel for ctx's backend, validating every chain entry against
// the system's particle count. The typed kernel is retained so the
// update path needs no downcast.
func (f *Force) Compile(ctx *engine.Context) (engine.Kernel, error) {
	switch ctx.Backend().Name() {
	case compute.ReferenceName:
		k, err := newKernel(f.bonds, ctx.System().NumParticles())
		if err != nil {
			return nil, err
		}
		f.compiled[ctx] = k
		return k, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoKernel, ctx.Backend().Name())
	}
}

// UpdateParametersInContext copies the current Length and K of every
// bond into the kernel compiled for ctx, without touching topology or
// invalidating the context. The bond count must match the compiled
// snapshot; chains are assumed unchanged and are not re-read.
func (f *Force) UpdateParametersInContext(ctx *engine.Context) error {
	k, ok := f.compiled[ctx]
	if !ok {
		return ErrNotAttached
	}
	return k.SetParameters(f.bonds)
}
