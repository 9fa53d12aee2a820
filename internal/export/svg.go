package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"equilib/internal/analysis"
	"equilib/internal/viz"
)

const (
	svgPanelWidth  = 640
	svgPanelHeight = 220
	svgPadding     = 20
)

func stabilityColor(s analysis.Stability) string {
	switch s {
	case analysis.Stable:
		return "#22cc66"
	case analysis.Unstable:
		return "#ee4444"
	default:
		return "#aaaaaa"
	}
}

// FigureToSVG renders the three-panel figure as stacked vector panels:
// each curve as a polyline path, equilibria as colored circles.
func FigureToSVG(fig *viz.Figure, xMin, xMax float64) string {
	totalH := 3*svgPanelHeight + 4*svgPadding
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgPanelWidth, totalH, svgPanelWidth, totalH))

	curves := []func(float64) float64{fig.Field.Energy, fig.Field.Force, fig.Field.Energy}
	for i, panel := range fig.Panels {
		top := svgPadding + i*(svgPanelHeight+svgPadding)
		writePanel(&sb, panel, curves[i], xMin, xMax, top)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePanel(sb *strings.Builder, panel viz.Panel, f func(float64) float64, xMin, xMax float64, top int) {
	const samples = 400

	yMin, yMax := math.Inf(1), math.Inf(-1)
	ys := make([]float64, samples)
	for i := 0; i < samples; i++ {
		x := xMin + (xMax-xMin)*float64(i)/float64(samples-1)
		ys[i] = f(x)
		yMin = math.Min(yMin, ys[i])
		yMax = math.Max(yMax, ys[i])
	}
	for _, m := range panel.Markers {
		yMin = math.Min(yMin, m.Y)
		yMax = math.Max(yMax, m.Y)
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	pad := 0.1 * (yMax - yMin)
	yMin -= pad
	yMax += pad

	toX := func(x float64) float64 {
		return (x - xMin) / (xMax - xMin) * float64(svgPanelWidth)
	}
	toY := func(y float64) float64 {
		return float64(top) + float64(svgPanelHeight)*(1-(y-yMin)/(yMax-yMin))
	}

	fmt.Fprintf(sb, `<text x="8" y="%d" fill="#cccccc" font-family="monospace" font-size="13">%s</text>
`, top+14, panel.Title)

	if yMin < 0 && yMax > 0 {
		fmt.Fprintf(sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#555555" stroke-dasharray="4 3"/>
`, toY(0), svgPanelWidth, toY(0))
	}

	sb.WriteString(`<path fill="none" stroke="#4488ff" stroke-width="1.5" d="M`)
	for i, y := range ys {
		x := xMin + (xMax-xMin)*float64(i)/float64(samples-1)
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", toX(x), toY(y))
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", toX(x), toY(y))
		}
	}
	sb.WriteString("\"/>\n")

	for _, m := range panel.Markers {
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>
`, toX(m.X), toY(m.Y), stabilityColor(m.Stability))
	}
}

// WriteSVG renders the figure and writes it to path.
func WriteSVG(path string, fig *viz.Figure, xMin, xMax float64) error {
	return os.WriteFile(path, []byte(FigureToSVG(fig, xMin, xMax)), 0644)
}
