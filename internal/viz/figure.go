package viz

import (
	"math"

	"equilib/internal/analysis"
	"equilib/internal/potential"
)

// Panel is one plot of the figure: a rendered canvas plus the marker
// positions in world coordinates, kept for exporters that re-draw them.
type Panel struct {
	Title   string
	Canvas  *Canvas
	Markers []PanelMarker
}

type PanelMarker struct {
	X, Y      float64
	Stability analysis.Stability
}

// Figure is the three-panel equilibrium lesson figure: potential curve,
// force curve, and the ball-on-surface interpretation.
type Figure struct {
	Field  potential.Field
	Points []analysis.Point
	Panels [3]Panel
}

// NewFigure samples the field over [xMin, xMax] and builds all three
// panels at the given per-panel canvas size.
func NewFigure(field potential.Field, points []analysis.Point, xMin, xMax float64, w, h int) *Figure {
	if xMax <= xMin {
		xMin, xMax = field.Domain()
	}
	f := &Figure{Field: field, Points: points}
	f.Panels[0] = potentialPanel(field, points, xMin, xMax, w, h)
	f.Panels[1] = forcePanel(field, points, xMin, xMax, w, h)
	f.Panels[2] = ballPanel(field, points, xMin, xMax, w, h)
	return f
}

func yRange(f func(float64) float64, xMin, xMax float64) (float64, float64) {
	const samples = 256
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := 0; i < samples; i++ {
		y := f(xMin + (xMax-xMin)*float64(i)/float64(samples-1))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
	}
	if math.IsInf(yMin, 1) {
		return -1, 1
	}
	pad := 0.1 * (yMax - yMin)
	if pad == 0 {
		pad = 1
	}
	return yMin - pad, yMax + pad
}

func potentialPanel(field potential.Field, points []analysis.Point, xMin, xMax float64, w, h int) Panel {
	c := NewCanvas(w, h)
	yMin, yMax := yRange(field.Energy, xMin, xMax)
	c.SetWindow(xMin, xMax, yMin, yMax)
	c.HLine(0)
	c.PlotFunc(field.Energy)

	p := Panel{Title: "Potential Energy U(x)", Canvas: c}
	for _, pt := range points {
		c.Marker(pt.Position, pt.Energy)
		p.Markers = append(p.Markers, PanelMarker{pt.Position, pt.Energy, pt.Stability})
	}
	return p
}

func forcePanel(field potential.Field, points []analysis.Point, xMin, xMax float64, w, h int) Panel {
	c := NewCanvas(w, h)
	yMin, yMax := yRange(field.Force, xMin, xMax)
	c.SetWindow(xMin, xMax, yMin, yMax)
	c.HLine(0)
	c.PlotFunc(field.Force)

	p := Panel{Title: "Force F(x) = -dU/dx", Canvas: c}
	for _, pt := range points {
		// Equilibria sit on the zero-force axis.
		c.Marker(pt.Position, 0)
		p.Markers = append(p.Markers, PanelMarker{pt.Position, 0, pt.Stability})
	}
	return p
}

func ballPanel(field potential.Field, points []analysis.Point, xMin, xMax float64, w, h int) Panel {
	c := NewCanvas(w, h)
	yMin, yMax := yRange(field.Energy, xMin, xMax)
	c.SetWindow(xMin, xMax, yMin, yMax)
	c.PlotFunc(field.Energy)

	p := Panel{Title: "Ball on Energy Surface", Canvas: c}
	offset := 0.06 * (yMax - yMin)
	for _, pt := range points {
		// Stable balls rest in the valley, unstable balls perch on top.
		y := pt.Energy - offset
		if pt.Stability == analysis.Unstable {
			y = pt.Energy + offset
		}
		c.Marker(pt.Position, y)
		p.Markers = append(p.Markers, PanelMarker{pt.Position, y, pt.Stability})
	}
	return p
}
