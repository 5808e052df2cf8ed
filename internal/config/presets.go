package config

import "fmt"

// Preset returns a named built-in scenario.
func Preset(name string) (*Config, error) {
	switch name {
	case "chain10":
		return chain10(), nil
	case "pair":
		return pair(), nil
	case "fork":
		return fork(), nil
	default:
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
}

func ListPresets() []string {
	return []string{"chain10", "pair", "fork"}
}

// chain10: ten particles one nm apart along x, with the last displaced in
// z so only the final pair is strained.
func chain10() *Config {
	cfg := DefaultConfig()
	cfg.Name = "chain10"
	chain := make([]int, 10)
	for i := 0; i < 10; i++ {
		z := 0.5
		if i == 9 {
			z = 2.1
		}
		cfg.Particles = append(cfg.Particles, Particle{Mass: 1.0, Position: []float64{float64(i), 0.7, z}})
		chain[i] = i
	}
	cfg.Bonds = []BondSpec{{Particles: chain, Length: 1.0, K: 17}}
	return cfg
}

// pair: two particles one nm apart restrained toward half that.
func pair() *Config {
	cfg := DefaultConfig()
	cfg.Name = "pair"
	cfg.Particles = []Particle{
		{Mass: 1.0, Position: []float64{1, 0, 0}},
		{Mass: 1.0, Position: []float64{2, 0, 0}},
	}
	cfg.Bonds = []BondSpec{{Particles: []int{0, 1}, Length: 0.5, K: 1.5}}
	return cfg
}

// fork: a central particle bonded symmetrically to two neighbors; the
// net force on the center starts at zero.
func fork() *Config {
	cfg := DefaultConfig()
	cfg.Name = "fork"
	cfg.Particles = []Particle{
		{Mass: 1.0, Position: []float64{0, 0, 0}},
		{Mass: 1.0, Position: []float64{-1, 0, 0}},
		{Mass: 1.0, Position: []float64{1, 0, 0}},
	}
	cfg.Bonds = []BondSpec{
		{Particles: []int{0, 1}, Length: 0.5, K: 17},
		{Particles: []int{0, 2}, Length: 0.5, K: 17},
	}
	return cfg
}
