package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/contsim/internal/engine"
)

// Runner drives a compiled context through a fixed-step run, sampling
// potential energy before each step and feeding metrics and observers.
type Runner struct {
	ctx       *engine.Context
	metrics   []Metric
	observers []Observer
}

func New(ctx *engine.Context) *Runner {
	return &Runner{ctx: ctx}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(goCtx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:    make([]float64, 0, steps+1),
		Energies: make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
	}
	if cfg.RecordPositions {
		result.Positions = make([][]float64, 0, steps+1)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-goCtx.Done():
			return result, goCtx.Err()
		default:
		}

		if err := r.sample(cfg, result); err != nil {
			return result, err
		}

		if err := r.ctx.Step(1, cfg.Dt); err != nil {
			return result, SimError{Time: r.ctx.Time(), Step: i, Wrapped: err}
		}
		result.StepsTaken++
	}

	if err := r.sample(cfg, result); err != nil {
		return result, err
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) sample(cfg Config, result *Result) error {
	st, err := r.ctx.State(engine.WantEnergy)
	if err != nil {
		return err
	}

	pos := r.ctx.Positions()
	for _, m := range r.metrics {
		m.Observe(pos, st.PotentialEnergy, st.Time)
	}
	for _, o := range r.observers {
		o.OnStep(pos, st.PotentialEnergy, st.Time)
	}

	result.Times = append(result.Times, st.Time)
	result.Energies = append(result.Energies, st.PotentialEnergy)
	if cfg.RecordPositions {
		snap := make([]float64, len(pos))
		copy(snap, pos)
		result.Positions = append(result.Positions, snap)
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
