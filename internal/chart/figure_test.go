package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/targets"
	"github.com/san-kum/targets/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosenbrock(t *testing.T, cmap string) targets.Target {
	t.Helper()
	r, err := targets.NewRosenbrock(2, 0, 20, cmap)
	require.NoError(t, err)
	return r
}

func TestFigure_Plot(t *testing.T) {
	var buf bytes.Buffer
	f := NewFigure(newRosenbrock(t, "Viridis"), &buf)

	require.NoError(t, f.Plot())
	assert.Contains(t, buf.String(), "rosenbrock (exp value)")

	buf.Reset()
	require.NoError(t, f.PlotValue())
	assert.Contains(t, buf.String(), "rosenbrock (log-density)")
	assert.Nil(t, f.Canvas(), "quick looks do not create a canvas")
}

func TestFigure_PlotSurface(t *testing.T) {
	for _, name := range viz.ColormapNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			f := NewFigure(newRosenbrock(t, name), &buf)

			require.NoError(t, f.PlotSurface())
			require.NotNil(t, f.Canvas())
			assert.NotNil(t, f.Canvas().Page)
			assert.NotNil(t, f.Canvas().Image)
			assert.Contains(t, buf.String(), "echarts")
			assert.Contains(t, buf.String(), "rosenbrock")
		})
	}
}

func TestFigure_UnknownColormap(t *testing.T) {
	var buf bytes.Buffer
	f := NewFigure(newRosenbrock(t, "Jet"), &buf)

	err := f.PlotSurface()
	assert.ErrorIs(t, err, viz.ErrUnknownColormap)
	assert.Nil(t, f.Canvas())
	assert.Zero(t, buf.Len())
}

func TestFigure_SaveWithoutCanvas(t *testing.T) {
	var ops bytes.Buffer
	logging.SetLogWriters(logging.LogWriters{Ops: &ops})
	t.Cleanup(func() { logging.SetLogWriters(logging.LogWriters{}) })

	path := filepath.Join(t.TempDir(), "out.png")
	f := NewFigure(newRosenbrock(t, "Viridis"), &bytes.Buffer{})

	require.NoError(t, f.SaveCanvas(path))
	assert.Contains(t, ops.String(), "cannot find the canvas")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFigure_SaveCanvas(t *testing.T) {
	d, err := targets.NewDonut(4, 2, 0.4, "Blues")
	require.NoError(t, err)
	f := NewFigure(d, &bytes.Buffer{})
	require.NoError(t, f.PlotSurface())

	dir := t.TempDir()
	for _, name := range []string{"donut.png", "donut.svg", "donut.html"} {
		path := filepath.Join(dir, name)
		require.NoError(t, f.SaveCanvas(path), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	assert.Error(t, f.SaveCanvas(filepath.Join(dir, "donut.unknown")))
}

func TestLinearTicks(t *testing.T) {
	ticks := linearTicks(3)
	require.Len(t, ticks, AxisTicks)
	assert.Equal(t, -3.0, ticks[0].Value)
	assert.Equal(t, 0.0, ticks[3].Value)
	assert.Equal(t, 3.0, ticks[6].Value)
}

func TestSurfaceGrid(t *testing.T) {
	s := newRosenbrock(t, "").Surface()
	g := surfaceGrid{s: s}

	c, r := g.Dims()
	assert.Equal(t, targets.GridSize, c)
	assert.Equal(t, targets.GridSize, r)
	assert.Equal(t, s.Z[5][7], g.Z(7, 5))
	assert.Equal(t, s.X[7], g.X(7))
	assert.Equal(t, s.Y[5], g.Y(5))
}

func TestAxisInterval(t *testing.T) {
	interval := axisInterval(targets.GridSize)
	assert.Equal(t, 32, interval)

	shown := 0
	for i := 0; i < targets.GridSize; i += interval + 1 {
		shown++
	}
	assert.Equal(t, AxisTicks, shown, "same tick count as the image canvas")
	assert.Len(t, linearTicks(2), shown)

	assert.Equal(t, 0, axisInterval(3))
}
