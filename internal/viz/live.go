package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"equilib/internal/analysis"
	"equilib/internal/dynamics"
	"equilib/internal/potential"
)

const (
	liveWidth    = 72
	liveHeight   = 16
	liveDt       = 0.005
	stepsPerTick = 8
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle      = lipgloss.NewStyle().Padding(0, 2)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	stableStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	unstableStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Explorer is the interactive Bubble Tea model: a damped particle
// rolling on the potential surface with live parameter adjustment.
type Explorer struct {
	field    potential.Field
	finder   *analysis.Finder
	particle *dynamics.Particle
	integ    dynamics.Integrator

	state   dynamics.State
	initial dynamics.State
	t       float64
	running bool

	points    []analysis.Point
	canvas    *Canvas
	paramKeys []string
	selected  int
}

func NewExplorer(field potential.Field, finder *analysis.Finder, x0 float64) *Explorer {
	e := &Explorer{
		field:    field,
		finder:   finder,
		particle: dynamics.NewParticle(field),
		integ:    dynamics.NewRK4(),
		state:    dynamics.State{x0, 0},
		initial:  dynamics.State{x0, 0},
		running:  true,
		canvas:   NewCanvas(liveWidth, liveHeight),
	}
	if tunable, ok := field.(potential.Configurable); ok {
		for k := range tunable.GetParams() {
			e.paramKeys = append(e.paramKeys, k)
		}
		sort.Strings(e.paramKeys)
	}
	e.refreshEquilibria()
	return e
}

func (e *Explorer) refreshEquilibria() {
	seeds := potential.DefaultSeeds(e.field, 9)
	e.points = e.finder.FindEquilibria(e.field, seeds)
}

func (e *Explorer) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if e.running {
			for i := 0; i < stepsPerTick; i++ {
				e.state = e.integ.Step(e.particle, e.state, e.t, liveDt)
				e.t += liveDt
			}
		}
		return e, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case " ":
			e.running = !e.running
		case "r":
			e.state = e.initial
			e.t = 0
		case "n":
			e.state[0] += 0.15
		case "up":
			if e.selected > 0 {
				e.selected--
			}
		case "down":
			if e.selected < len(e.paramKeys)-1 {
				e.selected++
			}
		case "left", "right":
			e.adjustParam(msg.String() == "right")
		}
	}
	return e, nil
}

func (e *Explorer) adjustParam(up bool) {
	tunable, ok := e.field.(potential.Configurable)
	if !ok || len(e.paramKeys) == 0 {
		return
	}
	key := e.paramKeys[e.selected]
	val := tunable.GetParams()[key]
	delta := 0.1
	if !up {
		delta = -delta
	}
	if err := tunable.SetParam(key, val+delta); err != nil {
		return
	}
	e.refreshEquilibria()
}

func (e *Explorer) View() string {
	xMin, xMax := e.field.Domain()
	yMin, yMax := yRange(e.field.Energy, xMin, xMax)

	e.canvas.Clear()
	e.canvas.SetWindow(xMin, xMax, yMin, yMax)
	e.canvas.PlotFunc(e.field.Energy)
	for _, pt := range e.points {
		e.canvas.Marker(pt.Position, pt.Energy)
	}
	// The ball rides slightly above the surface.
	ballY := e.field.Energy(e.state[0]) + 0.04*(yMax-yMin)
	e.canvas.Marker(e.state[0], ballY)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("equilib live — %s", e.field.Name())))
	b.WriteByte('\n')
	b.WriteString(canvasStyle.Render(e.canvas.String()))
	b.WriteByte('\n')
	b.WriteString(e.statsView())
	b.WriteString(helpStyle.Render("space pause · r reset · n nudge · ↑/↓ param · ←/→ adjust · q quit"))
	return b.String()
}

func (e *Explorer) statsView() string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}
	row("time", fmt.Sprintf("%.2f s", e.t))
	row("position", fmt.Sprintf("%+.4f", e.state[0]))
	row("velocity", fmt.Sprintf("%+.4f", e.state[1]))
	row("energy", fmt.Sprintf("%.4f", e.particle.Energy(e.state)))

	if pt, ok := e.nearest(); ok {
		style := stableStyle
		if pt.Stability == analysis.Unstable {
			style = unstableStyle
		}
		row("nearest eq", fmt.Sprintf("x=%+.4f %s", pt.Position, style.Render(string(pt.Stability))))
	}

	for i, key := range e.paramKeys {
		val := 0.0
		if tunable, ok := e.field.(potential.Configurable); ok {
			val = tunable.GetParams()[key]
		}
		line := fmt.Sprintf("%s = %.2f", key, val)
		if i == e.selected {
			line = activeParamStyle.Render("▸ " + line)
		} else {
			line = valueStyle.Render("  " + line)
		}
		b.WriteString(labelStyle.Render("param"))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (e *Explorer) nearest() (analysis.Point, bool) {
	if len(e.points) == 0 {
		return analysis.Point{}, false
	}
	best := e.points[0]
	for _, pt := range e.points[1:] {
		if math.Abs(pt.Position-e.state[0]) < math.Abs(best.Position-e.state[0]) {
			best = pt
		}
	}
	return best, true
}
