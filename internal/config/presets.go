package config

import "sort"

var Presets = map[string]map[string]*Config{
	"multnorm": {
		"correlated": DefaultConfig("multnorm"),
		"isotropic": withMultNorm(DefaultConfig("multnorm"), MultNormConfig{
			Mean: []float64{0, 0}, Cov: [][]float64{{1, 0}, {0, 1}},
		}),
		"shifted": withMultNorm(DefaultConfig("multnorm"), MultNormConfig{
			Mean: []float64{1, -0.5}, Cov: [][]float64{{0.5, -0.3}, {-0.3, 1}},
		}),
	},
	"bimodal": {
		"default": DefaultConfig("bimodal"),
		"bb8": withSize(withBimodal(DefaultConfig("bimodal"), BimodalConfig{
			Mode1: ModeConfig{A: 0, Mean: []float64{0, 1.5}, Cov: [][]float64{{0.2, 0}, {0, 0.2}}},
			Mode2: ModeConfig{A: 1.5, Mean: []float64{0, -0.7}, Cov: [][]float64{{1, 0}, {0, 1}}},
		}), 3),
	},
	"donut": {
		"default": DefaultConfig("donut"),
		"thin": withDonut(DefaultConfig("donut"), DonutConfig{Mean: 2.5, Variance: 0.15}),
	},
	"donut_min": {
		"default": DefaultConfig("donut_min"),
	},
	"rosenbrock": {
		"banana": DefaultConfig("rosenbrock"),
		"shallow": withRosenbrock(DefaultConfig("rosenbrock"), RosenbrockConfig{A: 1, B: 5}),
	},
}

// GetPreset returns a copy of the named preset, or nil if either the
// target or the preset is unknown.
func GetPreset(target, name string) *Config {
	targetPresets, ok := Presets[target]
	if !ok {
		return nil
	}
	cfg, ok := targetPresets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(target string) []string {
	targetPresets, ok := Presets[target]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(targetPresets))
	for name := range targetPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func withSize(c *Config, size float64) *Config {
	c.Size = size
	return c
}

func withMultNorm(c *Config, m MultNormConfig) *Config {
	c.MultNorm = m
	return c
}

func withBimodal(c *Config, b BimodalConfig) *Config {
	c.Bimodal = b
	return c
}

func withDonut(c *Config, d DonutConfig) *Config {
	c.Donut = d
	return c
}

func withRosenbrock(c *Config, r RosenbrockConfig) *Config {
	c.Rosenbrock = r
	return c
}
