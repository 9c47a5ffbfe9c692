package targets

import "github.com/san-kum/targets/internal/distr"

// Mode is one weighted component of a BimodMultNorm.
type Mode struct {
	// A is added to the component's log-density, so exp(A) scales its mass.
	A    float64
	Mean []float64
	Cov  [][]float64
}

// BimodMultNorm mixes two bivariate normals in the log domain:
// log(exp(a1 + log p1) + exp(a2 + log p2)).
type BimodMultNorm struct {
	Base
	Mode1, Mode2 Mode

	mod1, mod2 *distr.Norm2D
}

func NewBimodMultNorm(size float64, m1, m2 Mode, cmap string) (*BimodMultNorm, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	d1, err := distr.NewNorm2D(m1.Mean, m1.Cov)
	if err != nil {
		return nil, normErr("bimodal: mode 1", err)
	}
	d2, err := distr.NewNorm2D(m2.Mean, m2.Cov)
	if err != nil {
		return nil, normErr("bimodal: mode 2", err)
	}

	b := &BimodMultNorm{
		Mode1: Mode{A: m1.A, Mean: append([]float64(nil), d1.Mean[:]...), Cov: copyCov(m1.Cov)},
		Mode2: Mode{A: m2.A, Mean: append([]float64(nil), d2.Mean[:]...), Cov: copyCov(m2.Cov)},
		mod1:  d1,
		mod2:  d2,
	}
	b.Init(b, size, cmapOrDefault(cmap))
	return b, nil
}

func (b *BimodMultNorm) Name() string { return "bimodal" }

func (b *BimodMultNorm) Value(xy []float64) float64 {
	return logAddExp(b.Mode1.A+b.mod1.LogPDF(xy), b.Mode2.A+b.mod2.LogPDF(xy))
}

func (b *BimodMultNorm) Params() map[string]float64 {
	return map[string]float64{
		"a1": b.Mode1.A, "mean1_x": b.Mode1.Mean[0], "mean1_y": b.Mode1.Mean[1],
		"a2": b.Mode2.A, "mean2_x": b.Mode2.Mean[0], "mean2_y": b.Mode2.Mean[1],
	}
}
