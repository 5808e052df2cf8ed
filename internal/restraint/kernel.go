package restraint

import (
	"fmt"
	"math"
)

// Kernel is the compiled form of a Force for one context on the
// reference backend. Topology (the chains) is immutable for the life of
// the kernel; coefficients may be replaced wholesale by SetParameters.
type Kernel struct {
	chains  [][]int
	lengths []float64
	ks      []float64
}

func newKernel(bonds []Bond, numParticles int) (*Kernel, error) {
	k := &Kernel{
		chains:  make([][]int, len(bonds)),
		lengths: make([]float64, len(bonds)),
		ks:      make([]float64, len(bonds)),
	}
	for i, b := range bonds {
		if b.Count != len(b.Particles) {
			return nil, fmt.Errorf("%w: bond %d declares %d, chain has %d",
				ErrCountMismatch, i, b.Count, len(b.Particles))
		}
		for _, p := range b.Particles {
			if p < 0 || p >= numParticles {
				return nil, fmt.Errorf("%w: bond %d references particle %d, system has %d",
					ErrParticleOutOfRange, i, p, numParticles)
			}
		}
		chain := make([]int, len(b.Particles))
		copy(chain, b.Particles)
		k.chains[i] = chain
		k.lengths[i] = b.Length
		k.ks[i] = b.K
	}
	return k, nil
}

// SetParameters replaces the coefficient snapshot from the given bond
// table. Only Length and K are read; the table must still have exactly
// as many bonds as were compiled.
func (k *Kernel) SetParameters(bonds []Bond) error {
	if len(bonds) != len(k.chains) {
		return fmt.Errorf("%w: compiled %d bonds, table has %d",
			ErrStructuralChange, len(k.chains), len(bonds))
	}
	for i, b := range bonds {
		k.lengths[i] = b.Length
		k.ks[i] = b.K
	}
	return nil
}

// Execute implements engine.Kernel. For each consecutive pair (a,b) in
// each chain, the pair contributes energy k*(r-L)^2 and forces of
// magnitude 2k*(r-L)/r along the separation vector, equal and opposite
// on the two particles. Contributions accumulate additively, so a
// particle shared by several pairs receives their sum. A chain of one
// particle contributes nothing.
func (k *Kernel) Execute(positions, forces []float64, wantForces, wantEnergy bool) (float64, error) {
	energy := 0.0
	for bi, chain := range k.chains {
		length := k.lengths[bi]
		kb := k.ks[bi]
		for i := 0; i+1 < len(chain); i++ {
			a, b := chain[i], chain[i+1]
			dx := positions[b*3] - positions[a*3]
			dy := positions[b*3+1] - positions[a*3+1]
			dz := positions[b*3+2] - positions[a*3+2]
			r := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if r == 0 {
				return 0, fmt.Errorf("%w: bond %d, pair (%d,%d)",
					ErrDegenerateGeometry, bi, a, b)
			}
			dr := r - length
			if wantEnergy {
				energy += kb * dr * dr
			}
			if wantForces {
				// -dE/dr along the unit separation vector.
				fmag := 2 * kb * dr / r
				forces[a*3] += fmag * dx
				forces[a*3+1] += fmag * dy
				forces[a*3+2] += fmag * dz
				forces[b*3] -= fmag * dx
				forces[b*3+1] -= fmag * dy
				forces[b*3+2] -= fmag * dz
			}
		}
	}
	return energy, nil
}
