package targets

import (
	"fmt"
	"sort"

	"github.com/san-kum/targets/internal/config"
)

// Registry builds targets by name from a config.
type Registry struct {
	targets map[string]func(*config.Config) (Target, error)
}

func NewRegistry() *Registry {
	r := &Registry{targets: make(map[string]func(*config.Config) (Target, error))}

	r.targets["multnorm"] = func(c *config.Config) (Target, error) {
		return NewMultNorm(c.Size, c.MultNorm.Mean, c.MultNorm.Cov, c.Cmap)
	}
	r.targets["bimodal"] = func(c *config.Config) (Target, error) {
		return NewBimodMultNorm(c.Size, modeFromConfig(c.Bimodal.Mode1), modeFromConfig(c.Bimodal.Mode2), c.Cmap)
	}
	r.targets["donut"] = func(c *config.Config) (Target, error) {
		return NewDonut(c.Size, c.Donut.Mean, c.Donut.Variance, c.Cmap)
	}
	r.targets["donut_min"] = func(c *config.Config) (Target, error) {
		return NewDonutMin(c.Size, c.Donut.Mean, c.Donut.Variance, c.Cmap)
	}
	r.targets["rosenbrock"] = func(c *config.Config) (Target, error) {
		return NewRosenbrock(c.Size, c.Rosenbrock.A, c.Rosenbrock.B, c.Cmap)
	}

	return r
}

// Build constructs the target named by cfg.Target.
func (r *Registry) Build(cfg *config.Config) (Target, error) {
	fn, ok := r.targets[cfg.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, cfg.Target)
	}
	return fn(cfg)
}

// GetTarget constructs a target with its default parameters.
func (r *Registry) GetTarget(name string) (Target, error) {
	return r.Build(config.DefaultConfig(name))
}

func (r *Registry) ListTargets() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func modeFromConfig(m config.ModeConfig) Mode {
	return Mode{A: m.A, Mean: m.Mean, Cov: m.Cov}
}
