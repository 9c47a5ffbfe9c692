package viz

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/targets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupColormap(t *testing.T) {
	for _, name := range []string{"Blues", "Rosenblues", "Viridis"} {
		c, err := LookupColormap(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name)
	}

	_, err := LookupColormap("Jet")
	assert.ErrorIs(t, err, ErrUnknownColormap)
}

func TestColormap_At(t *testing.T) {
	c := CmapViridis

	assert.Equal(t, color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 255}, c.At(0))
	assert.Equal(t, color.RGBA{R: 0x35, G: 0x87, B: 0x79, A: 255}, c.At(0.5))
	assert.Equal(t, color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 255}, c.At(1))
	assert.Equal(t, c.At(1), c.At(7), "clamped above")
	assert.Equal(t, c.At(0), c.At(-1), "clamped below")
	assert.Equal(t, "#fde725", c.Hex(1))
}

func TestColormap_Domain(t *testing.T) {
	lo, hi := CmapViridis.Domain(0, 0.3)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.3, hi)

	_, hi = CmapRosenblues.Domain(0, 0.3)
	assert.Equal(t, 10.0, hi)
}

func TestColormap_Colors(t *testing.T) {
	cs := CmapBlues.Colors(5)
	require.Len(t, cs, 5)
	assert.Equal(t, CmapBlues.At(0), cs[0])
	assert.Equal(t, CmapBlues.At(1), cs[4])
	assert.Nil(t, CmapBlues.Colors(0))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 0.5},
		{-1, 0, 10, 0},
		{11, 0, 10, 1},
		{3, 3, 3, 0},
	}
	for _, tt := range tests {
		if got := Normalize(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestGridIndex(t *testing.T) {
	assert.Equal(t, 0, GridIndex(0, 60, 200))
	assert.Equal(t, 199, GridIndex(59, 60, 200))
	assert.Equal(t, 0, GridIndex(5, 1, 200))
	mid := GridIndex(30, 61, 201)
	assert.Equal(t, 100, mid)
}

func newDonut(t *testing.T) targets.Target {
	t.Helper()
	d, err := targets.NewDonut(4, 2, 0.4, "Viridis")
	require.NoError(t, err)
	return d
}

func TestRenderHeatmap(t *testing.T) {
	d := newDonut(t)
	out := RenderHeatmap(d.Surface(), CmapViridis, HeatmapOptions{Width: 20, Height: 10, Cursor: &Cell{Col: 3, Row: 4}})

	assert.Equal(t, 12, strings.Count(out, "\n"), "rows, x axis and colour bar")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "-4.00")
}

func TestRenderHeatmap_Defaults(t *testing.T) {
	out := RenderHeatmap(newDonut(t).Surface(), CmapBlues, HeatmapOptions{})
	assert.Equal(t, DefaultHeatmapHeight+2, strings.Count(out, "\n"))
	assert.Empty(t, RenderHeatmap(targets.Surface{}, CmapBlues, HeatmapOptions{}))
}

func TestSlice(t *testing.T) {
	d := newDonut(t)
	xs, vs := SliceValues(d, 0)
	require.Len(t, vs, targets.GridSize)
	assert.Len(t, xs, targets.GridSize)

	out := Slice(d, 0, 60, 8)
	assert.Contains(t, out, "donut log-density at y=0.00")
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExplorer_Move(t *testing.T) {
	m := NewExplorer(newDonut(t), CmapViridis)
	start := m.cursor

	next, cmd := m.Update(key("l"))
	assert.Nil(t, cmd)
	m = next.(Explorer)
	assert.Equal(t, start.Col+1, m.cursor.Col)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Explorer)
	assert.Equal(t, start.Row-1, m.cursor.Row)

	for i := 0; i < 3*DefaultHeatmapWidth; i++ {
		next, _ = m.Update(key("h"))
		m = next.(Explorer)
	}
	assert.Equal(t, 0, m.cursor.Col, "clamped at the left edge")
	assert.InDelta(t, -4, m.Point()[0], 1e-12)
}

func TestExplorer_Uphill(t *testing.T) {
	m := NewExplorer(newDonut(t), CmapViridis)
	m.cursor = Cell{Col: DefaultHeatmapWidth - 1, Row: DefaultHeatmapHeight / 2}
	before := m.Point()

	next, _ := m.Update(key("u"))
	after := next.(Explorer).Point()

	// Outside the ring the density rises towards the origin.
	assert.Less(t, after[0], before[0])
}

func TestExplorer_View(t *testing.T) {
	m := NewExplorer(newDonut(t), CmapViridis)

	view := m.View()
	assert.Contains(t, view, "DONUT")
	assert.Contains(t, view, "exp value")
	assert.Contains(t, view, "variance=0.4")

	next, _ := m.Update(key("v"))
	next, _ = next.(Explorer).Update(key("g"))
	view = next.View()
	assert.Contains(t, view, "log-density")
	assert.Contains(t, view, "numeric grad")
}

func TestExplorer_Quit(t *testing.T) {
	m := NewExplorer(newDonut(t), CmapViridis)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestExplorer_Resize(t *testing.T) {
	m := NewExplorer(newDonut(t), CmapViridis)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	m = next.(Explorer)
	assert.Equal(t, 20, m.width)
	assert.Equal(t, 5, m.height)
	assert.Less(t, m.cursor.Col, m.width)
	assert.Less(t, m.cursor.Row, m.height)
}

func TestExplorer_TraceCursor(t *testing.T) {
	var trace bytes.Buffer
	logging.SetLogWriters(logging.LogWriters{Trace: &trace})
	t.Cleanup(func() { logging.SetLogWriters(logging.LogWriters{}) })

	m := NewExplorer(newDonut(t), CmapViridis)
	m.Update(key("l"))
	assert.Contains(t, trace.String(), "explorer l: cursor")
}
