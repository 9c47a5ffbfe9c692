package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/targets/internal/logging"
	"github.com/san-kum/targets/internal/targets"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
)

// Explorer is a bubbletea model that moves a cursor over a target's
// heatmap and reports the log-density and gradient under it.
type Explorer struct {
	target          targets.Target
	cmap            Colormap
	surface, values targets.Surface

	cursor        Cell
	width, height int
	showValue     bool
	showNumeric   bool
}

func NewExplorer(t targets.Target, cmap Colormap) Explorer {
	return Explorer{
		target:  t,
		cmap:    cmap,
		surface: t.Surface(),
		values:  t.ValueGrid(),
		cursor:  Cell{Col: DefaultHeatmapWidth / 2, Row: DefaultHeatmapHeight / 2},
		width:   DefaultHeatmapWidth,
		height:  DefaultHeatmapHeight,
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor.Row = max(0, m.cursor.Row-1)
		case "down", "j":
			m.cursor.Row = min(m.height-1, m.cursor.Row+1)
		case "left", "h":
			m.cursor.Col = max(0, m.cursor.Col-1)
		case "right", "l":
			m.cursor.Col = min(m.width-1, m.cursor.Col+1)
		case "v":
			m.showValue = !m.showValue
		case "g":
			m.showNumeric = !m.showNumeric
		case "u":
			m = m.uphill()
		}
		p := m.Point()
		logging.Tracef("explorer %s: cursor (%d, %d) at (%g, %g)", msg.String(), m.cursor.Col, m.cursor.Row, p[0], p[1])
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

// uphill moves the cursor one cell along the sign of the gradient.
func (m Explorer) uphill() Explorer {
	g := m.target.Grad(m.Point())
	if g[0] > 0 {
		m.cursor.Col = min(m.width-1, m.cursor.Col+1)
	} else if g[0] < 0 {
		m.cursor.Col = max(0, m.cursor.Col-1)
	}
	if g[1] > 0 {
		m.cursor.Row = max(0, m.cursor.Row-1)
	} else if g[1] < 0 {
		m.cursor.Row = min(m.height-1, m.cursor.Row+1)
	}
	return m
}

func (m Explorer) resize(w, h int) Explorer {
	// label column, status and colour bar lines
	m.width = clamp(w-10, 10, 2*DefaultHeatmapWidth)
	m.height = clamp(h-8, 5, 2*DefaultHeatmapHeight)
	m.cursor.Col = min(m.cursor.Col, m.width-1)
	m.cursor.Row = min(m.cursor.Row, m.height-1)
	return m
}

// Point returns the grid coordinates under the cursor.
func (m Explorer) Point() []float64 {
	j := GridIndex(m.cursor.Col, m.width, len(m.surface.X))
	i := GridIndex(m.height-1-m.cursor.Row, m.height, len(m.surface.Y))
	return []float64{m.surface.X[j], m.surface.Y[i]}
}

func (m Explorer) View() string {
	var b strings.Builder

	mode := "exp value"
	s := m.surface
	if m.showValue {
		mode, s = "log-density", m.values
	}
	b.WriteString(titleStyle.Render(strings.ToUpper(m.target.Name())) + "  " + hintStyle.Render(mode+"  "+m.paramString()) + "\n")
	b.WriteString(RenderHeatmap(s, m.cmap, HeatmapOptions{Width: m.width, Height: m.height, Cursor: &m.cursor}))

	p := m.Point()
	g := m.target.Grad(p)
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s\n",
		labelStyle.Render("xy"), valueStyle.Render(fmt.Sprintf("(%.3f, %.3f)", p[0], p[1])),
		labelStyle.Render("value"), valueStyle.Render(fmt.Sprintf("%.4f", m.target.Value(p))),
		labelStyle.Render("exp"), valueStyle.Render(fmt.Sprintf("%.4g", m.target.ExpValue(p))),
		labelStyle.Render("grad"), valueStyle.Render(fmt.Sprintf("(%.4f, %.4f) |%.4f|", g[0], g[1], math.Hypot(g[0], g[1]))),
	))
	if m.showNumeric {
		ng := targets.NumericGrad(m.target, p)
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("numeric grad"),
			valueStyle.Render(fmt.Sprintf("(%.4f, %.4f) |Δ| %.2e", ng[0], ng[1], math.Hypot(ng[0]-g[0], ng[1]-g[1]))),
		))
	}
	b.WriteString(keyStyle.Render("hjkl") + hintStyle.Render(" move  ") +
		keyStyle.Render("u") + hintStyle.Render(" uphill  ") +
		keyStyle.Render("v") + hintStyle.Render(" value/surface  ") +
		keyStyle.Render("g") + hintStyle.Render(" numeric grad  ") +
		keyStyle.Render("q") + hintStyle.Render(" quit") + "\n")
	return b.String()
}

func (m Explorer) paramString() string {
	params := m.target.Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, params[name])
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// RunExplorer starts the explorer on the alternate screen and blocks until
// the user quits.
func RunExplorer(t targets.Target, cmap Colormap) error {
	_, err := tea.NewProgram(NewExplorer(t, cmap), tea.WithAltScreen()).Run()
	return err
}
