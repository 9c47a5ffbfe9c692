package chart

import (
	"fmt"
	"image/color"

	"github.com/san-kum/targets/internal/targets"
	"github.com/san-kum/targets/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

const paletteSize = 256

// surfaceGrid adapts a Surface to plotter.GridXYZ.
type surfaceGrid struct {
	s targets.Surface
}

func (g surfaceGrid) Dims() (c, r int)   { return len(g.s.X), len(g.s.Y) }
func (g surfaceGrid) Z(c, r int) float64 { return g.s.Z[r][c] }
func (g surfaceGrid) X(c int) float64    { return g.s.X[c] }
func (g surfaceGrid) Y(r int) float64    { return g.s.Y[r] }

// colormapPalette adapts a Colormap to palette.Palette.
type colormapPalette struct {
	colors []color.Color
}

func (p colormapPalette) Colors() []color.Color { return p.colors }

func newImage(t targets.Target, s targets.Surface, cmap viz.Colormap) (*plot.Plot, error) {
	if len(s.X) < 2 || len(s.Y) < 2 {
		return nil, fmt.Errorf("chart: surface of %s is too small to plot", t.Name())
	}
	lo, hi := cmap.Domain(s.Range())
	if hi <= lo {
		hi = lo + 1
	}

	pal := colormapPalette{colors: cmap.Colors(paletteSize)}
	h := plotter.NewHeatMap(surfaceGrid{s: s}, pal)
	h.Min, h.Max = lo, hi
	h.Underflow = pal.colors[0]
	h.Overflow = pal.colors[len(pal.colors)-1]
	h.Rasterized = true

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (size=%g, %s)", t.Name(), t.Size(), cmap.Name)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = -t.Size(), t.Size()
	p.Y.Min, p.Y.Max = -t.Size(), t.Size()
	p.X.Tick.Marker = linearTicks(t.Size())
	p.Y.Tick.Marker = linearTicks(t.Size())
	p.Add(h)
	return p, nil
}

// linearTicks places AxisTicks labelled ticks evenly over [-size, size].
func linearTicks(size float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, AxisTicks)
	for i := range ticks {
		v := -size + 2*size*float64(i)/float64(AxisTicks-1)
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%.2g", v)}
	}
	return ticks
}
