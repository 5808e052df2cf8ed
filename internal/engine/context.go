package engine

import (
	"fmt"

	"github.com/san-kum/contsim/internal/compute"
)

// Force is a term in the system's potential. Compile builds a kernel
// bound to one context; topology validation happens there, not when the
// term is constructed.
type Force interface {
	Compile(ctx *Context) (Kernel, error)
	UsesPeriodicBoundaryConditions() bool
}

// Kernel evaluates one compiled force term. Execute accumulates into the
// shared force buffer when wantForces is set and returns the term's
// potential energy when wantEnergy is set.
type Kernel interface {
	Execute(positions, forces []float64, wantForces, wantEnergy bool) (float64, error)
}

// Integrator advances a context by one timestep.
type Integrator interface {
	Step(ctx *Context, dt float64) error
}

// State retrieval flags.
const (
	WantEnergy = 1 << iota
	WantForces
)

// State is a snapshot of derived quantities at the current positions.
type State struct {
	Time            float64
	PotentialEnergy float64
	Forces          []float64
}

// Context binds a system to a platform backend. Construction compiles
// every force term exactly once; after that, topology is fixed and only
// per-term parameters may change (via each term's own update path).
type Context struct {
	sys        *System
	integ      Integrator
	backend    compute.Backend
	positions  []float64
	velocities []float64
	forces     []float64
	kernels    []Kernel
	time       float64
}

func NewContext(sys *System, integ Integrator, backend compute.Backend) (*Context, error) {
	n := sys.NumParticles()
	ctx := &Context{
		sys:        sys,
		integ:      integ,
		backend:    backend,
		positions:  make([]float64, 3*n),
		velocities: make([]float64, 3*n),
		forces:     make([]float64, 3*n),
	}
	for i, f := range sys.Forces() {
		k, err := f.Compile(ctx)
		if err != nil {
			return nil, fmt.Errorf("compiling force %d: %w", i, err)
		}
		ctx.kernels = append(ctx.kernels, k)
	}
	return ctx, nil
}

func (c *Context) System() *System          { return c.sys }
func (c *Context) Backend() compute.Backend { return c.backend }
func (c *Context) Time() float64            { return c.time }

// Positions returns the live position buffer (x,y,z per particle).
// Integrators mutate it in place.
func (c *Context) Positions() []float64 { return c.positions }

func (c *Context) Velocities() []float64 { return c.velocities }

func (c *Context) SetPositions(pos []float64) error {
	if len(pos) != len(c.positions) {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(pos), len(c.positions))
	}
	copy(c.positions, pos)
	return nil
}

func (c *Context) SetVelocities(vel []float64) error {
	if len(vel) != len(c.velocities) {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vel), len(c.velocities))
	}
	copy(c.velocities, vel)
	return nil
}

// State evaluates every kernel at the current positions and returns the
// requested quantities. The internal force buffer is zeroed first, so
// the result reflects only this call.
func (c *Context) State(flags int) (*State, error) {
	wantForces := flags&WantForces != 0
	wantEnergy := flags&WantEnergy != 0

	for i := range c.forces {
		c.forces[i] = 0
	}

	total := 0.0
	for _, k := range c.kernels {
		e, err := k.Execute(c.positions, c.forces, wantForces, wantEnergy)
		if err != nil {
			return nil, err
		}
		total += e
	}

	st := &State{Time: c.time}
	if wantEnergy {
		st.PotentialEnergy = total
	}
	if wantForces {
		st.Forces = make([]float64, len(c.forces))
		copy(st.Forces, c.forces)
	}
	return st, nil
}

// EvaluateForces fills and returns the internal force buffer. Used by
// integrators; callers must not retain the slice across steps.
func (c *Context) EvaluateForces() ([]float64, error) {
	for i := range c.forces {
		c.forces[i] = 0
	}
	for _, k := range c.kernels {
		if _, err := k.Execute(c.positions, c.forces, true, false); err != nil {
			return nil, err
		}
	}
	return c.forces, nil
}

// Step advances the context n timesteps of size dt.
func (c *Context) Step(n int, dt float64) error {
	if c.integ == nil {
		return ErrNilIntegrator
	}
	for i := 0; i < n; i++ {
		if err := c.integ.Step(c, dt); err != nil {
			return err
		}
		c.time += dt
	}
	return nil
}
