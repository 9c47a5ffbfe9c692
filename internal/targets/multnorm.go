package targets

import (
	"errors"
	"fmt"

	"github.com/san-kum/targets/internal/distr"
)

// MultNorm is a bivariate normal target.
type MultNorm struct {
	Base
	Mean []float64
	Cov  [][]float64

	distr *distr.Norm2D
}

func NewMultNorm(size float64, mean []float64, cov [][]float64, cmap string) (*MultNorm, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	d, err := distr.NewNorm2D(mean, cov)
	if err != nil {
		return nil, normErr("multnorm", err)
	}
	m := &MultNorm{Mean: append([]float64(nil), d.Mean[:]...), Cov: copyCov(cov), distr: d}
	m.Init(m, size, cmapOrDefault(cmap))
	return m, nil
}

func (m *MultNorm) Name() string { return "multnorm" }

func (m *MultNorm) Value(xy []float64) float64 {
	return m.distr.LogPDF(xy)
}

// Grad is the closed-form gradient -Σ⁻¹(xy - mean), with the off-diagonal
// terms symmetrised.
func (m *MultNorm) Grad(xy []float64) []float64 {
	inv := m.distr.CovInv
	dx := xy[0] - m.Mean[0]
	dy := xy[1] - m.Mean[1]
	off := (inv[0][1] + inv[1][0]) / 2
	return []float64{
		-inv[0][0]*dx - off*dy,
		-inv[1][1]*dy - off*dx,
	}
}

func (m *MultNorm) Params() map[string]float64 {
	return map[string]float64{
		"mean_x": m.Mean[0], "mean_y": m.Mean[1],
		"cov_xx": m.Cov[0][0], "cov_xy": m.Cov[0][1],
		"cov_yx": m.Cov[1][0], "cov_yy": m.Cov[1][1],
	}
}

// normErr reports shape errors from distr as ErrInvalidParameter.
func normErr(prefix string, err error) error {
	if errors.Is(err, distr.ErrDimension) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidParameter, prefix, err)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func copyCov(cov [][]float64) [][]float64 {
	c := make([][]float64, len(cov))
	for i := range cov {
		c[i] = append([]float64(nil), cov[i]...)
	}
	return c
}
