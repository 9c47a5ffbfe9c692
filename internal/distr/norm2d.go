package distr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Norm2D is a bivariate normal distribution. The inverse covariance and
// the log normalising constant are computed once in NewNorm2D.
type Norm2D struct {
	Mean   [2]float64
	CovInv [2][2]float64
	Det    float64

	logConst float64
}

// NewNorm2D builds a bivariate normal from a 2-vector mean and a 2×2
// covariance. Positive definiteness is assumed, not checked; a covariance
// that cannot be inverted is rejected with ErrSingularCovariance.
func NewNorm2D(mean []float64, cov [][]float64) (*Norm2D, error) {
	if len(mean) != 2 || len(cov) != 2 || len(cov[0]) != 2 || len(cov[1]) != 2 {
		return nil, ErrDimension
	}

	c := mat.NewDense(2, 2, []float64{cov[0][0], cov[0][1], cov[1][0], cov[1][1]})
	var inv mat.Dense
	if err := inv.Inverse(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularCovariance, err)
	}

	n := &Norm2D{
		Mean: [2]float64{mean[0], mean[1]},
		CovInv: [2][2]float64{
			{inv.At(0, 0), inv.At(0, 1)},
			{inv.At(1, 0), inv.At(1, 1)},
		},
		Det: mat.Det(c),
	}
	n.logConst = -math.Log(2*math.Pi) - 0.5*math.Log(n.Det)
	return n, nil
}

// LogPDF evaluates the log-density at xy. Only xy[0] and xy[1] are read.
func (n *Norm2D) LogPDF(xy []float64) float64 {
	dx := xy[0] - n.Mean[0]
	dy := xy[1] - n.Mean[1]
	q := dx*dx*n.CovInv[0][0] + dy*dy*n.CovInv[1][1] + dx*dy*(n.CovInv[0][1]+n.CovInv[1][0])
	return n.logConst - 0.5*q
}
