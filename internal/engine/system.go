package engine

// System describes the particles being simulated and the force terms
// acting on them. Particle indices are assigned in insertion order.
type System struct {
	masses []float64
	forces []Force
}

func NewSystem() *System {
	return &System{}
}

// AddParticle appends a particle with the given mass (amu) and returns
// its index.
func (s *System) AddParticle(mass float64) int {
	s.masses = append(s.masses, mass)
	return len(s.masses) - 1
}

func (s *System) NumParticles() int { return len(s.masses) }

func (s *System) ParticleMass(i int) float64 { return s.masses[i] }

// InverseMasses returns 1/m per particle. A zero mass yields zero,
// freezing that particle during integration.
func (s *System) InverseMasses() []float64 {
	inv := make([]float64, len(s.masses))
	for i, m := range s.masses {
		if m != 0 {
			inv[i] = 1.0 / m
		}
	}
	return inv
}

func (s *System) AddForce(f Force) { s.forces = append(s.forces, f) }

func (s *System) Forces() []Force { return s.forces }

// UsesPeriodicBoundaryConditions reports whether any force term wraps
// across periodic boundaries.
func (s *System) UsesPeriodicBoundaryConditions() bool {
	for _, f := range s.forces {
		if f.UsesPeriodicBoundaryConditions() {
			return true
		}
	}
	return false
}
