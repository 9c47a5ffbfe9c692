package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/targets/internal/targets"
)

// SliceValues evaluates t.Value along the grid's x axis at fixed y.
func SliceValues(t targets.Target, y float64) (xs, vs []float64) {
	xs = t.Surface().X
	vs = make([]float64, len(xs))
	pt := []float64{0, y}
	for i, x := range xs {
		pt[0] = x
		vs[i] = t.Value(pt)
	}
	return xs, vs
}

// Slice plots the log-density cross-section at fixed y as an ASCII chart.
func Slice(t targets.Target, y float64, width, height int) string {
	xs, vs := SliceValues(t, y)
	return asciigraph.Plot(vs,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s log-density at y=%.2f, x in [%.2f, %.2f]", t.Name(), y, xs[0], xs[len(xs)-1])),
	)
}
