package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/targets"
	"github.com/san-kum/targets/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultCanvasFile = "canvas.png"

	// CanvasSize matches the 600px square page layout at 96 dpi.
	CanvasSize = 6.25 * vg.Inch
	AxisTicks  = 7
)

// Canvas is the chart handle produced by PlotSurface.
type Canvas struct {
	Page  *charts.HeatMap
	Image *plot.Plot
}

type Figure struct {
	target  targets.Target
	display io.Writer
	canvas  *Canvas
}

func NewFigure(t targets.Target, display io.Writer) *Figure {
	return &Figure{target: t, display: display}
}

// Plot writes a quick-look heatmap of the cached surface to the display.
func (f *Figure) Plot() error {
	return f.quickLook(f.target.Surface(), "exp value")
}

// PlotValue writes a quick-look heatmap of the log-density to the display.
func (f *Figure) PlotValue() error {
	return f.quickLook(f.target.ValueGrid(), "log-density")
}

// quick looks always use Viridis, independent of the target's colormap
func (f *Figure) quickLook(s targets.Surface, what string) error {
	if _, err := fmt.Fprintf(f.display, "%s (%s)\n", f.target.Name(), what); err != nil {
		return err
	}
	_, err := io.WriteString(f.display, viz.RenderHeatmap(s, viz.CmapViridis, viz.HeatmapOptions{}))
	return err
}

// PlotSurface builds the canvas for the target's colormap and writes the
// interactive page to the display.
func (f *Figure) PlotSurface() error {
	cmap, err := viz.LookupColormap(f.target.Cmap())
	if err != nil {
		return err
	}

	s := f.target.Surface()
	page := newPage(f.target, s, cmap)
	img, err := newImage(f.target, s, cmap)
	if err != nil {
		return err
	}
	f.canvas = &Canvas{Page: page, Image: img}

	logging.Diagf("%s: canvas built with %s colormap", f.target.Name(), cmap.Name)
	return page.Render(f.display)
}

// Canvas returns the handle built by the last PlotSurface, or nil.
func (f *Figure) Canvas() *Canvas {
	return f.canvas
}

// SaveCanvas writes the canvas to filename; ".html" keeps the interactive
// page, other extensions are rasterised or vectorised by gonum/plot. Without
// a canvas it logs a diagnostic and does nothing.
func (f *Figure) SaveCanvas(filename string) error {
	if filename == "" {
		filename = DefaultCanvasFile
	}
	if f.canvas == nil {
		logging.Opsf("cannot find the canvas for %s; check that it was created by PlotSurface", f.target.Name())
		return nil
	}

	if strings.EqualFold(filepath.Ext(filename), ".html") {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := f.canvas.Page.Render(file); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
		return nil
	}

	if err := f.canvas.Image.Save(CanvasSize, CanvasSize, filename); err != nil {
		return fmt.Errorf("save canvas: %w", err)
	}
	logging.Diagf("%s: canvas saved to %s", f.target.Name(), filename)
	return nil
}
