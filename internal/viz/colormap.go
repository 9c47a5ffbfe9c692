package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrUnknownColormap is returned for a colormap name outside Colormaps.
var ErrUnknownColormap = errors.New("viz: unknown colormap")

// Colormap maps normalised values in [0, 1] onto a piecewise-linear
// gradient between hex colour stops.
type Colormap struct {
	Name  string
	Stops []string
	// Max pins the top of the colour domain. Zero means use the data maximum.
	Max float64
}

var (
	CmapBlues = Colormap{
		Name:  "Blues",
		Stops: []string{"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"},
	}

	CmapRosenblues = Colormap{
		Name:  "Rosenblues",
		Stops: []string{"#3182bd", "#9ecae1", "#deebf7"},
		Max:   10,
	}

	CmapViridis = Colormap{
		Name:  "Viridis",
		Stops: []string{"#440154", "#358779", "#fde725"},
	}

	Colormaps = []Colormap{
		CmapBlues,
		CmapRosenblues,
		CmapViridis,
	}
)

// LookupColormap returns the colormap with the given name.
func LookupColormap(name string) (Colormap, error) {
	for _, c := range Colormaps {
		if c.Name == name {
			return c, nil
		}
	}
	return Colormap{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownColormap, name, ColormapNames())
}

func ColormapNames() []string {
	names := make([]string, len(Colormaps))
	for i, c := range Colormaps {
		names[i] = c.Name
	}
	return names
}

// Domain returns the value range the colour scale spans for data in [lo, hi].
func (c Colormap) Domain(lo, hi float64) (float64, float64) {
	if c.Max > 0 {
		hi = c.Max
	}
	return lo, hi
}

// Normalize maps v into [0, 1] relative to [lo, hi], clamping outliers.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo || math.IsNaN(v) {
		return 0
	}
	t := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, t))
}

// At returns the colour at position t in [0, 1].
func (c Colormap) At(t float64) color.RGBA {
	if len(c.Stops) == 0 {
		return color.RGBA{A: 255}
	}
	if len(c.Stops) == 1 {
		r, g, b := parseHex(c.Stops[0])
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(c.Stops)-1)
	i := int(pos)
	if i >= len(c.Stops)-1 {
		i = len(c.Stops) - 2
	}
	frac := pos - float64(i)

	sr, sg, sb := parseHex(c.Stops[i])
	er, eg, eb := parseHex(c.Stops[i+1])
	return color.RGBA{
		R: lerpByte(sr, er, frac),
		G: lerpByte(sg, eg, frac),
		B: lerpByte(sb, eb, frac),
		A: 255,
	}
}

// Hex is At formatted as #rrggbb.
func (c Colormap) Hex(t float64) string {
	rgba := c.At(t)
	return hexColor(int(rgba.R), int(rgba.G), int(rgba.B))
}

// Colors samples n evenly spaced colours from the gradient.
func (c Colormap) Colors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = c.At(t)
	}
	return out
}

func lerpByte(a, b int, t float64) uint8 {
	return uint8(math.Round(float64(a) + t*float64(b-a)))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
