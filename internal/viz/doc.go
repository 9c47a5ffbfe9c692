// Package viz renders target surfaces in the terminal.
//
//   - [RenderHeatmap]: coloured block heatmap with a colour bar
//   - [Slice]: ASCII line chart of a log-density cross-section
//   - [Explorer]: interactive cursor over a heatmap (Bubble Tea)
//
// Colours come from the named [Colormap]s shared with the chart package.
//
// # Key Bindings
//
//	h/j/k/l - Move the cursor
//	u       - Step one cell uphill along the gradient
//	v       - Toggle exp value / log-density view
//	g       - Show the numeric gradient next to Grad
//	q       - Quit
package viz
