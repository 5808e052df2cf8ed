package metrics

import "math"

// PotentialEnergy reports the mean potential energy over a run.
type PotentialEnergy struct {
	samples int
	total   float64
}

func NewPotentialEnergy() *PotentialEnergy {
	return &PotentialEnergy{}
}

func (p *PotentialEnergy) Name() string { return "potential_energy" }

func (p *PotentialEnergy) Observe(_ []float64, energy, _ float64) {
	p.total += energy
	p.samples++
}

func (p *PotentialEnergy) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.total / float64(p.samples)
}

func (p *PotentialEnergy) Reset() {
	p.total = 0
	p.samples = 0
}

// EnergyDrift reports the maximum relative deviation of potential energy
// from its value at the first sample.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(_ []float64, energy, _ float64) {
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
