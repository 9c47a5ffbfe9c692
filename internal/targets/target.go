package targets

import (
	"fmt"
	"math"

	"github.com/san-kum/targets/internal/logging"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

const (
	// GridSize is the number of grid points per axis.
	GridSize = 200

	// GradStep is the full width of the central difference used by Base.Grad.
	GradStep = 1e-4

	DefaultCmap = "Viridis"
)

// LogDensity is the one capability every target must supply.
type LogDensity interface {
	// Value returns the log-density at xy.
	Value(xy []float64) float64
}

// Target is the contract consumed by plotting, export and exploration code.
type Target interface {
	LogDensity
	Name() string
	Grad(xy []float64) []float64
	ExpValue(xy []float64) float64
	Surface() Surface
	ValueGrid() Surface
	Size() float64
	Cmap() string
	Params() map[string]float64
}

// Surface is a grid with one value per node. Z is indexed [row][col] with
// rows following Y and columns following X.
type Surface struct {
	X []float64   `json:"x"`
	Y []float64   `json:"y"`
	Z [][]float64 `json:"z"`
}

func (s Surface) Clone() Surface {
	c := Surface{
		X: append([]float64(nil), s.X...),
		Y: append([]float64(nil), s.Y...),
		Z: make([][]float64, len(s.Z)),
	}
	for i, row := range s.Z {
		c.Z[i] = append([]float64(nil), row...)
	}
	return c
}

// Range returns the smallest and largest Z value.
func (s Surface) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range s.Z {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

// Base owns the evaluation grid and the cached exp-value surface.
// Concrete targets embed it and call Init once their parameters are set.
type Base struct {
	density LogDensity
	size    float64
	cmap    string
	surface Surface
}

// Init builds a GridSize×GridSize grid over [-size, size]² and evaluates
// d.ExpValue on every node. d is normally the embedding target itself and
// must define its own Value.
func (b *Base) Init(d LogDensity, size float64, cmap string) {
	b.density = d
	b.size = size
	b.cmap = cmap

	x := floats.Span(make([]float64, GridSize), -size, size)
	y := floats.Span(make([]float64, GridSize), -size, size)
	b.surface = Surface{X: x, Y: y, Z: b.evalGrid(x, y, b.ExpValue)}

	name := "target"
	if n, ok := d.(interface{ Name() string }); ok {
		name = n.Name()
	}
	lo, hi := b.surface.Range()
	logging.Diagf("%s: %dx%d grid over [%g, %g], surface range [%.4g, %.4g]",
		name, GridSize, GridSize, -size, size, lo, hi)
}

func (b *Base) evalGrid(x, y []float64, f func([]float64) float64) [][]float64 {
	z := make([][]float64, len(y))
	pt := make([]float64, 2)
	for i, yv := range y {
		z[i] = make([]float64, len(x))
		for j, xv := range x {
			pt[0], pt[1] = xv, yv
			z[i][j] = f(pt)
		}
	}
	return z
}

// Value delegates to the attached log-density. It panics with
// ErrNotSupported when nothing is attached.
func (b *Base) Value(xy []float64) float64 {
	if b.density == nil {
		panic(ErrNotSupported)
	}
	return b.density.Value(xy)
}

// ExpValue returns exp(Value(xy)), the unnormalised density used for display.
func (b *Base) ExpValue(xy []float64) float64 {
	return math.Exp(b.Value(xy))
}

// Grad approximates the gradient of Value numerically.
func (b *Base) Grad(xy []float64) []float64 {
	if b.density == nil {
		panic(ErrNotSupported)
	}
	return NumericGrad(b.density, xy)
}

// Surface returns a copy of the cached exp-value surface.
func (b *Base) Surface() Surface {
	return b.surface.Clone()
}

// ValueGrid evaluates Value over the cached grid without exponentiating.
func (b *Base) ValueGrid() Surface {
	return Surface{
		X: append([]float64(nil), b.surface.X...),
		Y: append([]float64(nil), b.surface.Y...),
		Z: b.evalGrid(b.surface.X, b.surface.Y, b.Value),
	}
}

func (b *Base) Size() float64 { return b.size }
func (b *Base) Cmap() string  { return b.cmap }

// NumericGrad returns the central finite difference
// (f(x+h·e_i) - f(x-h·e_i)) / 2h with h = GradStep/2 for every coordinate.
func NumericGrad(d LogDensity, xy []float64) []float64 {
	g := fd.Gradient(nil, d.Value, xy, &fd.Settings{
		Formula: fd.Central,
		Step:    GradStep / 2,
	})
	logging.Tracef("numeric grad at (%g, %g) = (%g, %g)", xy[0], xy[1], g[0], g[1])
	return g
}

// logAddExp returns log(exp(a) + exp(b)) without overflow.
func logAddExp(a, b float64) float64 {
	return floats.LogSumExp([]float64{a, b})
}

func checkSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: size must be positive and finite, got %g", ErrInvalidParameter, size)
	}
	return nil
}

func cmapOrDefault(cmap string) string {
	if cmap == "" {
		return DefaultCmap
	}
	return cmap
}
