package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/san-kum/targets/internal/targets"
	"github.com/san-kum/targets/internal/viz"
)

// newPage builds an ECharts heatmap over the surface grid. ECharts draws
// heatmaps on category axes, so the evenly spaced grid coordinates are used
// as labels.
func newPage(t targets.Target, s targets.Surface, cmap viz.Colormap) *charts.HeatMap {
	lo, hi := cmap.Domain(s.Range())

	xLabels := axisLabels(s.X)
	yLabels := axisLabels(s.Y)
	data := make([]opts.HeatMapData, 0, len(s.X)*len(s.Y))
	for i := range s.Y {
		for j := range s.X {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, s.Z[i][j]}})
		}
	}

	interval := axisInterval(len(s.X))
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: t.Name(), Width: "600px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: t.Name(), Subtitle: fmt.Sprintf("size=%g cmap=%s", t.Size(), cmap.Name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      xLabels,
			Name:      "x",
			AxisLabel: &opts.AxisLabel{Interval: fmt.Sprint(interval)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      yLabels,
			Name:      "y",
			AxisLabel: &opts.AxisLabel{Interval: fmt.Sprint(interval)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: cmap.Stops},
		}),
	)
	hm.AddSeries(t.Name(), data)
	return hm
}

// axisInterval is the ECharts label interval that shows AxisTicks labels
// out of n categories. ECharts labels every (interval+1)th category from 0.
func axisInterval(n int) int {
	return max(0, (n-1)/(AxisTicks-1)-1)
}

func axisLabels(vs []float64) []string {
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = fmt.Sprintf("%.2f", v)
	}
	return labels
}
