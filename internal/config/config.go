package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/contsim/internal/engine"
	"github.com/san-kum/contsim/internal/restraint"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 1.0
	DefaultBackend  = "reference"
)

type Config struct {
	Name      string     `yaml:"name"`
	Backend   string     `yaml:"backend"`
	Dt        float64    `yaml:"dt"`
	Duration  float64    `yaml:"duration"`
	Particles []Particle `yaml:"particles"`
	Bonds     []BondSpec `yaml:"bonds"`
}

type Particle struct {
	Mass     float64   `yaml:"mass"`
	Position []float64 `yaml:"position"`
}

type BondSpec struct {
	Particles []int   `yaml:"particles"`
	Length    float64 `yaml:"length"`
	K         float64 `yaml:"k"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "custom",
		Backend:  DefaultBackend,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSystem constructs the particle system and its restraint force
// from the scenario. Particle indices in bond chains are validated at
// context creation, not here.
func (c *Config) BuildSystem() (*engine.System, *restraint.Force, error) {
	sys := engine.NewSystem()
	for i, p := range c.Particles {
		if len(p.Position) != 3 {
			return nil, nil, fmt.Errorf("particle %d: position needs 3 components, got %d", i, len(p.Position))
		}
		mass := p.Mass
		if mass == 0 {
			mass = 1.0
		}
		sys.AddParticle(mass)
	}

	force := restraint.NewForce()
	for i, b := range c.Bonds {
		if _, err := force.AddBond(b.Particles, len(b.Particles), b.Length, b.K); err != nil {
			return nil, nil, fmt.Errorf("bond %d: %w", i, err)
		}
	}
	sys.AddForce(force)
	return sys, force, nil
}

// InitialPositions flattens particle positions into the x,y,z buffer a
// context expects.
func (c *Config) InitialPositions() []float64 {
	pos := make([]float64, 0, 3*len(c.Particles))
	for _, p := range c.Particles {
		pos = append(pos, p.Position...)
	}
	return pos
}
