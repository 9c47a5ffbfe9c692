package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/targets/internal/targets"
)

const (
	DefaultHeatmapWidth  = 60
	DefaultHeatmapHeight = 30
)

// Cell addresses one character of a terminal heatmap, row 0 at the top.
type Cell struct {
	Col, Row int
}

// HeatmapOptions controls RenderHeatmap. Zero sizes fall back to the defaults.
type HeatmapOptions struct {
	Width, Height int
	Cursor        *Cell
}

var (
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Bold(true)
)

// GridIndex maps a terminal cell coordinate to the nearest of n grid nodes.
func GridIndex(cell, cells, n int) int {
	if cells <= 1 || n <= 1 {
		return 0
	}
	idx := (cell*(n-1) + (cells-1)/2) / (cells - 1)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (o HeatmapOptions) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultHeatmapWidth
	}
	if h <= 0 {
		h = DefaultHeatmapHeight
	}
	return w, h
}

// RenderHeatmap draws a surface as coloured blocks, y increasing upwards,
// followed by a colour bar. Terminals without colour support get plain
// blocks.
func RenderHeatmap(s targets.Surface, cmap Colormap, opts HeatmapOptions) string {
	w, h := opts.size()
	lo, hi := cmap.Domain(s.Range())
	if len(s.X) == 0 || len(s.Y) == 0 {
		return ""
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		i := GridIndex(h-1-row, h, len(s.Y))
		label := "        "
		switch row {
		case 0:
			label = fmt.Sprintf("%7.2f ", s.Y[len(s.Y)-1])
		case h - 1:
			label = fmt.Sprintf("%7.2f ", s.Y[0])
		}
		b.WriteString(axisStyle.Render(label))

		for col := 0; col < w; col++ {
			if opts.Cursor != nil && opts.Cursor.Col == col && opts.Cursor.Row == row {
				b.WriteString(cursorStyle.Render("+"))
				continue
			}
			j := GridIndex(col, w, len(s.X))
			t := Normalize(s.Z[i][j], lo, hi)
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cmap.Hex(t))).Render("█"))
		}
		b.WriteString("\n")
	}

	xAxis := fmt.Sprintf("%-*.2f%*.2f", w/2, s.X[0], w-w/2, s.X[len(s.X)-1])
	b.WriteString(axisStyle.Render("        " + xAxis))
	b.WriteString("\n")
	b.WriteString(ColorBar(cmap, lo, hi, w))
	return b.String()
}

// ColorBar renders a horizontal gradient with the domain end points.
func ColorBar(cmap Colormap, lo, hi float64, width int) string {
	if width < 2 {
		width = 2
	}
	var b strings.Builder
	b.WriteString(axisStyle.Render(fmt.Sprintf("%7.3g ", lo)))
	for i := 0; i < width; i++ {
		t := float64(i) / float64(width-1)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cmap.Hex(t))).Render("▬"))
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf(" %.3g", hi)))
	b.WriteString("\n")
	return b.String()
}
