package restraint_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/contsim/internal/compute"
	"github.com/san-kum/contsim/internal/engine"
	"github.com/san-kum/contsim/internal/restraint"
)

// newContext compiles the force against a system of unit-mass particles
// at the given positions. No integrator: these specs only evaluate.
func newContext(positions [][3]float64, force *restraint.Force) (*engine.Context, error) {
	sys := engine.NewSystem()
	for range positions {
		sys.AddParticle(1.0)
	}
	sys.AddForce(force)

	ctx, err := engine.NewContext(sys, nil, compute.NewReference())
	if err != nil {
		return nil, err
	}
	return ctx, ctx.SetPositions(flatten(positions))
}

func flatten(positions [][3]float64) []float64 {
	flat := make([]float64, 0, 3*len(positions))
	for _, p := range positions {
		flat = append(flat, p[0], p[1], p[2])
	}
	return flat
}

var _ = Describe("Kernel", func() {
	Describe("a ten-particle chain with one strained pair", func() {
		const (
			k      = 17.0
			length = 1.0
		)

		var positions [][3]float64
		var ctx *engine.Context

		BeforeEach(func() {
			positions = nil
			for i := 0; i < 10; i++ {
				z := 0.5
				if i == 9 {
					z = 2.1
				}
				positions = append(positions, [3]float64{float64(i), 0.7, z})
			}

			force := restraint.NewForce()
			_, err := force.AddBond([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10, length, k)
			Expect(err).NotTo(HaveOccurred())

			ctx, err = newContext(positions, force)
			Expect(err).NotTo(HaveOccurred())
		})

		It("computes the energy of the single deviating pair", func() {
			dx := positions[9][0] - positions[8][0]
			dz := positions[9][2] - positions[8][2]
			dr := math.Sqrt(dx*dx+dz*dz) - length
			expected := k * dr * dr

			st, err := ctx.State(engine.WantEnergy)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.PotentialEnergy).To(BeNumerically("~", expected, 1e-5))
		})

		It("matches central finite differences of the energy", func() {
			st, err := ctx.State(engine.WantEnergy | engine.WantForces)
			Expect(err).NotTo(HaveOccurred())

			const h = 1e-3
			base := flatten(positions)
			for i := 0; i < len(positions); i++ {
				for j := 0; j < 3; j++ {
					offset := make([]float64, len(base))

					copy(offset, base)
					offset[i*3+j] -= h
					Expect(ctx.SetPositions(offset)).To(Succeed())
					s1, err := ctx.State(engine.WantEnergy)
					Expect(err).NotTo(HaveOccurred())

					offset[i*3+j] = base[i*3+j] + h
					Expect(ctx.SetPositions(offset)).To(Succeed())
					s2, err := ctx.State(engine.WantEnergy)
					Expect(err).NotTo(HaveOccurred())

					numeric := (s1.PotentialEnergy - s2.PotentialEnergy) / (2 * h)
					Expect(st.Forces[i*3+j]).To(BeNumerically("~", numeric, 1e-2),
						"particle %d axis %d", i, j)
				}
			}
		})
	})

	Describe("a single bonded pair", func() {
		var force *restraint.Force
		var ctx *engine.Context

		BeforeEach(func() {
			force = restraint.NewForce()
			_, err := force.AddBond([]int{0, 1}, 2, 0.5, 1.5)
			Expect(err).NotTo(HaveOccurred())

			ctx, err = newContext([][3]float64{{1, 0, 0}, {2, 0, 0}}, force)
			Expect(err).NotTo(HaveOccurred())
		})

		It("evaluates the harmonic energy", func() {
			st, err := ctx.State(engine.WantEnergy)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.PotentialEnergy).To(BeNumerically("~", 1.5*math.Pow(1.0-0.5, 2), 1e-5))
		})

		It("applies coefficient edits through a live update", func() {
			Expect(force.SetBondParameters(0, []int{0, 1}, 2, 0.9, 2.2)).To(Succeed())
			Expect(force.UpdateParametersInContext(ctx)).To(Succeed())

			st, err := ctx.State(engine.WantEnergy)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.PotentialEnergy).To(BeNumerically("~", 2.2*math.Pow(1.0-0.9, 2), 1e-5))
		})

		It("rejects an update after the table grows", func() {
			_, err := force.AddBond([]int{0, 1}, 2, 0.5, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(force.UpdateParametersInContext(ctx)).To(MatchError(restraint.ErrStructuralChange))
		})

		It("rejects an update against an unattached context", func() {
			other := restraint.NewForce()
			_, err := other.AddBond([]int{0, 1}, 2, 0.5, 1.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(other.UpdateParametersInContext(ctx)).To(MatchError(restraint.ErrNotAttached))
		})
	})

	Describe("two bonds sharing a particle symmetrically", func() {
		It("cancels the net force on the shared particle", func() {
			force := restraint.NewForce()
			_, err := force.AddBond([]int{0, 1}, 2, 0.5, 17)
			Expect(err).NotTo(HaveOccurred())
			_, err = force.AddBond([]int{0, 2}, 2, 0.5, 17)
			Expect(err).NotTo(HaveOccurred())

			ctx, err := newContext([][3]float64{{0, 0, 0}, {-1, 0, 0}, {1, 0, 0}}, force)
			Expect(err).NotTo(HaveOccurred())

			st, err := ctx.State(engine.WantEnergy | engine.WantForces)
			Expect(err).NotTo(HaveOccurred())

			dr := 1.0 - 0.5
			Expect(st.PotentialEnergy).To(BeNumerically("~", 2*17*dr*dr, 1e-5))
			for axis := 0; axis < 3; axis++ {
				Expect(st.Forces[axis]).To(BeNumerically("~", 0.0, 1e-5), "axis %d", axis)
			}
		})
	})

	Describe("degenerate and trivial topologies", func() {
		It("fails on a zero-separation pair instead of producing NaN", func() {
			force := restraint.NewForce()
			_, err := force.AddBond([]int{0, 1}, 2, 0.5, 1.0)
			Expect(err).NotTo(HaveOccurred())

			ctx, err := newContext([][3]float64{{1, 2, 3}, {1, 2, 3}}, force)
			Expect(err).NotTo(HaveOccurred())

			_, err = ctx.State(engine.WantEnergy | engine.WantForces)
			Expect(err).To(MatchError(restraint.ErrDegenerateGeometry))
		})

		It("treats a one-particle chain as inert", func() {
			force := restraint.NewForce()
			_, err := force.AddBond([]int{0}, 1, 0.5, 100.0)
			Expect(err).NotTo(HaveOccurred())

			ctx, err := newContext([][3]float64{{0, 0, 0}, {5, 0, 0}}, force)
			Expect(err).NotTo(HaveOccurred())

			st, err := ctx.State(engine.WantEnergy | engine.WantForces)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.PotentialEnergy).To(BeZero())
			for _, f := range st.Forces {
				Expect(f).To(BeZero())
			}
		})
	})

	Describe("compile-time validation", func() {
		It("rejects chain entries outside the system", func() {
			force := restraint.NewForce()
			_, err := force.AddBond([]int{0, 5}, 2, 0.5, 1.0)
			Expect(err).NotTo(HaveOccurred())

			_, err = newContext([][3]float64{{0, 0, 0}, {1, 0, 0}}, force)
			Expect(err).To(MatchError(restraint.ErrParticleOutOfRange))
		})

		It("rejects a backend with no restraint kernel", func() {
			force := restraint.NewForce()
			_, err := force.AddBond([]int{0, 1}, 2, 0.5, 1.0)
			Expect(err).NotTo(HaveOccurred())

			sys := engine.NewSystem()
			sys.AddParticle(1.0)
			sys.AddParticle(1.0)
			sys.AddForce(force)

			_, err = engine.NewContext(sys, nil, compute.NewCUDA())
			Expect(err).To(MatchError(restraint.ErrNoKernel))
		})
	})

	Describe("periodic boundary conditions", func() {
		It("never wraps", func() {
			force := restraint.NewForce()
			Expect(force.UsesPeriodicBoundaryConditions()).To(BeFalse())

			sys := engine.NewSystem()
			sys.AddForce(force)
			Expect(sys.UsesPeriodicBoundaryConditions()).To(BeFalse())
		})
	})
})
