package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCmap = "Viridis"

	DefaultMultNormSize   = 3.0
	DefaultBimodalSize    = 6.0
	DefaultDonutSize      = 4.0
	DefaultRosenbrockSize = 2.0

	DefaultDonutMean     = 2.0
	DefaultDonutVariance = 0.4
	DefaultRosenbrockA   = 0.0
	DefaultRosenbrockB   = 20.0
)

// Config describes one target. Only the block matching Target is read.
type Config struct {
	Target     string           `yaml:"target"`
	Size       float64          `yaml:"size"`
	Cmap       string           `yaml:"cmap"`
	MultNorm   MultNormConfig   `yaml:"multnorm"`
	Bimodal    BimodalConfig    `yaml:"bimodal"`
	Donut      DonutConfig      `yaml:"donut"`
	Rosenbrock RosenbrockConfig `yaml:"rosenbrock"`
}

type MultNormConfig struct {
	Mean []float64   `yaml:"mean"`
	Cov  [][]float64 `yaml:"cov"`
}

type ModeConfig struct {
	A    float64     `yaml:"a"`
	Mean []float64   `yaml:"mean"`
	Cov  [][]float64 `yaml:"cov"`
}

type BimodalConfig struct {
	Mode1 ModeConfig `yaml:"mode1"`
	Mode2 ModeConfig `yaml:"mode2"`
}

// DonutConfig is shared by donut and donut_min.
type DonutConfig struct {
	Mean     float64 `yaml:"mean"`
	Variance float64 `yaml:"variance"`
}

type RosenbrockConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// DefaultSize returns the grid half-width a target is shown with by default.
func DefaultSize(target string) float64 {
	switch target {
	case "bimodal":
		return DefaultBimodalSize
	case "donut", "donut_min":
		return DefaultDonutSize
	case "rosenbrock":
		return DefaultRosenbrockSize
	default:
		return DefaultMultNormSize
	}
}

func DefaultConfig(target string) *Config {
	return &Config{
		Target: target,
		Size:   DefaultSize(target),
		Cmap:   DefaultCmap,
		MultNorm: MultNormConfig{
			Mean: []float64{0, 0},
			Cov:  [][]float64{{1, 0.99}, {0.99, 1}},
		},
		Bimodal: BimodalConfig{
			Mode1: ModeConfig{A: 0, Mean: []float64{2, 3}, Cov: [][]float64{{1, 0.1}, {0.1, 1}}},
			Mode2: ModeConfig{A: 0, Mean: []float64{-2, -2}, Cov: [][]float64{{1.5, 0}, {0, 1.5}}},
		},
		Donut: DonutConfig{
			Mean:     DefaultDonutMean,
			Variance: DefaultDonutVariance,
		},
		Rosenbrock: RosenbrockConfig{
			A: DefaultRosenbrockA,
			B: DefaultRosenbrockB,
		},
	}
}

// Load reads a YAML config on top of the defaults for target. A file that
// names its own target keeps it, and a missing size falls back to the
// default for the resulting target.
func Load(path, target string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig(target)
	cfg.Size = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultSize(cfg.Target)
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

// Clone returns a deep copy so callers can adjust presets freely.
func (c *Config) Clone() *Config {
	out := *c
	out.MultNorm = MultNormConfig{Mean: cloneVec(c.MultNorm.Mean), Cov: cloneMat(c.MultNorm.Cov)}
	out.Bimodal.Mode1 = c.Bimodal.Mode1.clone()
	out.Bimodal.Mode2 = c.Bimodal.Mode2.clone()
	return &out
}

func (m ModeConfig) clone() ModeConfig {
	return ModeConfig{A: m.A, Mean: cloneVec(m.Mean), Cov: cloneMat(m.Cov)}
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}

func cloneMat(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = cloneVec(m[i])
	}
	return out
}
