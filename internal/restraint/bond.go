package restraint

// Bond is one continuity term: an ordered chain of particle indices
// whose consecutive pairs are restrained toward a shared equilibrium
// spacing. Count caches len(Particles) and is validated against it.
// After a bond is added, only Length and K may change; the chain itself
// is fixed once a context has been compiled.
type Bond struct {
	Particles []int
	Count     int
	Length    float64 // equilibrium spacing, nm
	K         float64 // force constant, kJ/mol/nm^2
}

func (b Bond) clone() Bond {
	chain := make([]int, len(b.Particles))
	copy(chain, b.Particles)
	b.Particles = chain
	return b
}
