package viz

import (
	"testing"

	"equilib/internal/analysis"
	"equilib/internal/potential"
)

func textbookFigure() *Figure {
	q := potential.NewQuartic()
	finder := analysis.NewFinder(nil)
	points := finder.FindEquilibria(q, []float64{-2, 0, 2})
	return NewFigure(q, points, -2.5, 2.5, 60, 12)
}

func TestFigureHasThreePanels(t *testing.T) {
	fig := textbookFigure()
	titles := []string{
		"Potential Energy U(x)",
		"Force F(x) = -dU/dx",
		"Ball on Energy Surface",
	}
	for i, p := range fig.Panels {
		if p.Title != titles[i] {
			t.Errorf("panel %d: expected title %q, got %q", i, titles[i], p.Title)
		}
		if p.Canvas == nil {
			t.Fatalf("panel %d: missing canvas", i)
		}
		if len(p.Markers) != 3 {
			t.Errorf("panel %d: expected 3 markers, got %d", i, len(p.Markers))
		}
	}
}

func TestForcePanelMarkersOnAxis(t *testing.T) {
	fig := textbookFigure()
	for _, m := range fig.Panels[1].Markers {
		if m.Y != 0 {
			t.Errorf("force-panel marker at y=%f, want 0", m.Y)
		}
	}
}

func TestBallPanelOffsets(t *testing.T) {
	fig := textbookFigure()
	for i, m := range fig.Panels[2].Markers {
		pt := fig.Points[i]
		if pt.Stability == analysis.Stable && m.Y >= pt.Energy {
			t.Errorf("stable ball should sit below the curve, got y=%f at U=%f", m.Y, pt.Energy)
		}
		if pt.Stability == analysis.Unstable && m.Y <= pt.Energy {
			t.Errorf("unstable ball should sit above the curve, got y=%f at U=%f", m.Y, pt.Energy)
		}
	}
}

func TestFigureNoPoints(t *testing.T) {
	q := potential.NewQuartic()
	fig := NewFigure(q, nil, 0, 0, 40, 8) // degenerate range falls back to the domain
	for i, p := range fig.Panels {
		if len(p.Markers) != 0 {
			t.Errorf("panel %d: expected no markers, got %d", i, len(p.Markers))
		}
	}
}
