// Package chart renders target surfaces to a display and to files.
//
// A [Figure] is bound to one target and one display writer. Plot and
// PlotValue write quick terminal heatmaps; PlotSurface builds the canvas,
// an ECharts heatmap page written to the display plus a gonum/plot heatmap
// kept for image export, which SaveCanvas then writes to disk.
package chart
