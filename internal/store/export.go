package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/contsim/internal/sim"
)

type ExportData struct {
	Scenario    string             `json:"scenario"`
	Backend     string             `json:"backend"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Steps       int                `json:"steps"`
	Times       []float64          `json:"times"`
	Energies    []float64          `json:"energies"`
	FinalForces []float64          `json:"final_forces,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

func buildExport(scenario, backend string, dt, duration float64, result *sim.Result, finalForces []float64) ExportData {
	return ExportData{
		Scenario:    scenario,
		Backend:     backend,
		Dt:          dt,
		Duration:    duration,
		Steps:       result.StepsTaken,
		Times:       result.Times,
		Energies:    result.Energies,
		FinalForces: finalForces,
		Metrics:     result.Metrics,
	}
}

func ExportJSON(path, scenario, backend string, dt, duration float64, result *sim.Result, finalForces []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeExport(file, buildExport(scenario, backend, dt, duration, result, finalForces))
}

func ExportJSONStdout(scenario, backend string, dt, duration float64, result *sim.Result, finalForces []float64) error {
	return writeExport(os.Stdout, buildExport(scenario, backend, dt, duration, result, finalForces))
}

func writeExport(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
