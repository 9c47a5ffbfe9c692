package distr

import "gonum.org/v1/gonum/stat/distuv"

// Norm is a univariate normal distribution.
type Norm struct {
	Loc, Scale float64

	d distuv.Normal
}

func NewNorm(loc, scale float64) *Norm {
	return &Norm{Loc: loc, Scale: scale, d: distuv.Normal{Mu: loc, Sigma: scale}}
}

// LogPDF returns -log(scale) - log(2π)/2 - (x-loc)²/(2·scale²).
func (n *Norm) LogPDF(x float64) float64 {
	return n.d.LogProb(x)
}
