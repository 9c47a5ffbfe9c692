package targets

import (
	"fmt"
	"math"

	"github.com/san-kum/targets/internal/distr"
)

// Donut places a normal density on the distance from the origin, giving a
// ring of high density at radius Mean.
type Donut struct {
	Base
	Mean float64
	// Variance is used as the standard deviation of the radial normal.
	Variance float64

	radial *distr.Norm
}

func NewDonut(size, mean, variance float64, cmap string) (*Donut, error) {
	if err := checkRadial(size, variance); err != nil {
		return nil, err
	}
	d := &Donut{Mean: mean, Variance: variance, radial: distr.NewNorm(mean, variance)}
	d.Init(d, size, cmapOrDefault(cmap))
	return d, nil
}

func (d *Donut) Name() string { return "donut" }

func (d *Donut) Value(xy []float64) float64 {
	return d.radial.LogPDF(math.Hypot(xy[0], xy[1]))
}

// Grad is analytic everywhere except the origin, where the radius is not
// differentiable and the numeric estimate is returned instead.
func (d *Donut) Grad(xy []float64) []float64 {
	r := math.Hypot(xy[0], xy[1])
	if r == 0 {
		return NumericGrad(d, xy)
	}
	temp := -(1 - d.Mean/r) / (d.Variance * d.Variance)
	return []float64{xy[0] * temp, xy[1] * temp}
}

func (d *Donut) Params() map[string]float64 {
	return map[string]float64{"mean": d.Mean, "variance": d.Variance}
}

func checkRadial(size, variance float64) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if !(variance > 0) {
		return fmt.Errorf("%w: variance must be positive, got %g", ErrInvalidParameter, variance)
	}
	return nil
}
