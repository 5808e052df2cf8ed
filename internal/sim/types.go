package sim

import "fmt"

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(positions []float64, energy, t float64)
	Value() float64
	Reset()
}

// Observer is notified once per recorded step.
type Observer interface {
	OnStep(positions []float64, energy, t float64)
}

type Config struct {
	Dt              float64
	Duration        float64
	RecordPositions bool
}

func DefaultConfig() Config {
	return Config{
		Dt:       0.001,
		Duration: 1.0,
	}
}

type Result struct {
	Times      []float64
	Energies   []float64
	Positions  [][]float64
	Metrics    map[string]float64
	StepsTaken int
}

// SimError marks where in a run an evaluation or integration failure
// happened, without hiding the underlying cause.
type SimError struct {
	Time    float64
	Step    int
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e SimError) Unwrap() error { return e.Wrapped }
