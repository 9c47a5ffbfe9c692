package targets

// Rosenbrock is the negated Rosenbrock function -((a-x)² + b(y-x²)²),
// with its global maximum of 0 at (a, a²).
type Rosenbrock struct {
	Base
	A, B float64
}

func NewRosenbrock(size, a, b float64, cmap string) (*Rosenbrock, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	r := &Rosenbrock{A: a, B: b}
	r.Init(r, size, cmapOrDefault(cmap))
	return r, nil
}

func (r *Rosenbrock) Name() string { return "rosenbrock" }

func (r *Rosenbrock) Value(xy []float64) float64 {
	x, y := xy[0], xy[1]
	return -((r.A-x)*(r.A-x) + r.B*(y-x*x)*(y-x*x))
}

// AnalyticGrad is the closed-form gradient. It grows as x³ away from the
// valley and makes explicit steppers unstable, so Grad keeps the numeric
// estimate.
func (r *Rosenbrock) AnalyticGrad(xy []float64) []float64 {
	x, y := xy[0], xy[1]
	return []float64{
		2*(r.A-x) + 4*r.B*x*(y-x*x),
		-2 * r.B * (y - x*x),
	}
}

func (r *Rosenbrock) Params() map[string]float64 {
	return map[string]float64{"a": r.A, "b": r.B}
}
