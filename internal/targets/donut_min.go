package targets

import (
	"math"

	"github.com/san-kum/targets/internal/distr"
)

// CenterVariance is the isotropic covariance of DonutMin's centre term.
const CenterVariance = 0.5

// DonutMin is a donut whose hole is partly filled by a centre term.
//
// The centre term enters the mixture as the reciprocal of a bivariate
// normal log-density rather than as a log-density. The formula is kept as
// is; since the centre log-density never exceeds about -1.14, the term stays
// in (-0.88, 0) and the surface has no singularity.
type DonutMin struct {
	Base
	Mean     float64
	Variance float64

	radial *distr.Norm
	center *distr.Norm2D
}

func NewDonutMin(size, mean, variance float64, cmap string) (*DonutMin, error) {
	if err := checkRadial(size, variance); err != nil {
		return nil, err
	}
	center, err := distr.NewNorm2D([]float64{0, 0}, [][]float64{{CenterVariance, 0}, {0, CenterVariance}})
	if err != nil {
		return nil, err
	}
	d := &DonutMin{
		Mean:     mean,
		Variance: variance,
		radial:   distr.NewNorm(mean, variance),
		center:   center,
	}
	d.Init(d, size, cmapOrDefault(cmap))
	return d, nil
}

func (d *DonutMin) Name() string { return "donut_min" }

func (d *DonutMin) Value(xy []float64) float64 {
	return logAddExp(d.radial.LogPDF(math.Hypot(xy[0], xy[1])), 1/d.center.LogPDF(xy))
}

func (d *DonutMin) Params() map[string]float64 {
	return map[string]float64{"mean": d.Mean, "variance": d.Variance, "center_variance": CenterVariance}
}
