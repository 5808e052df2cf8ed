package integrators

import "github.com/san-kum/contsim/internal/engine"

// VelocityVerlet advances positions and velocities with the standard
// velocity Verlet scheme, evaluating forces twice per step. Scratch
// buffers are reused across steps.
type VelocityVerlet struct {
	acc     []float64
	invMass []float64
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) ensureScratch(ctx *engine.Context) {
	n := len(ctx.Positions())
	if len(v.acc) != n {
		v.acc = make([]float64, n)
		v.invMass = ctx.System().InverseMasses()
	}
}

func (v *VelocityVerlet) Step(ctx *engine.Context, dt float64) error {
	v.ensureScratch(ctx)

	pos := ctx.Positions()
	vel := ctx.Velocities()

	forces, err := ctx.EvaluateForces()
	if err != nil {
		return err
	}
	for i := range pos {
		v.acc[i] = forces[i] * v.invMass[i/3]
		pos[i] += vel[i]*dt + 0.5*v.acc[i]*dt*dt
	}

	forces, err = ctx.EvaluateForces()
	if err != nil {
		return err
	}
	halfDt := 0.5 * dt
	for i := range vel {
		aNew := forces[i] * v.invMass[i/3]
		vel[i] += (v.acc[i] + aNew) * halfDt
	}

	return nil
}
