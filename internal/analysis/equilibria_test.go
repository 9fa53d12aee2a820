package analysis

import (
	"math"
	"reflect"
	"testing"

	"equilib/internal/potential"
	"equilib/internal/solver"
)

func textbookPoints(t *testing.T) []Point {
	t.Helper()
	q := potential.NewQuartic()
	finder := NewFinder(nil)
	return finder.FindEquilibria(q, []float64{-2, 0, 2})
}

func TestFindEquilibriaTextbook(t *testing.T) {
	points := textbookPoints(t)

	if len(points) != 3 {
		t.Fatalf("expected 3 equilibria, got %d", len(points))
	}

	want := []float64{-1.4730, 0.1260, 1.3470}
	for i, p := range points {
		if math.Abs(p.Position-want[i]) > 1e-3 {
			t.Errorf("point %d: expected position ~%.4f, got %.6f", i, want[i], p.Position)
		}
	}

	// Outer wells stable, middle hump unstable (curvature 12x² - 8).
	if points[0].Stability != Stable || points[2].Stability != Stable {
		t.Errorf("expected outer equilibria stable, got %s / %s",
			points[0].Stability, points[2].Stability)
	}
	if points[1].Stability != Unstable {
		t.Errorf("expected middle equilibrium unstable, got %s", points[1].Stability)
	}
}

func TestFoundPositionsAreRoots(t *testing.T) {
	q := potential.NewQuartic()
	for _, p := range textbookPoints(t) {
		if math.Abs(q.Force(p.Position)) >= 1e-6 {
			t.Errorf("position %.6f: |force| = %g, want < 1e-6",
				p.Position, math.Abs(q.Force(p.Position)))
		}
	}
}

func TestFoundPositionsDistinct(t *testing.T) {
	points := textbookPoints(t)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if math.Abs(points[i].Position-points[j].Position) <= 0.1 {
				t.Errorf("positions %.4f and %.4f within distinctness tolerance",
					points[i].Position, points[j].Position)
			}
		}
	}
}

func TestFindEquilibriaDeterministic(t *testing.T) {
	a := textbookPoints(t)
	b := textbookPoints(t)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated runs with fixed seeds disagree")
	}
}

func TestFindEquilibriaDuplicateSeeds(t *testing.T) {
	q := potential.NewQuartic()
	finder := NewFinder(nil)

	// All seeds fall into the same basin; only one root survives.
	points := finder.FindEquilibria(q, []float64{1.9, 2.0, 2.1})
	if len(points) != 1 {
		t.Fatalf("expected 1 equilibrium, got %d", len(points))
	}
}

func TestFindEquilibriaEmptySeeds(t *testing.T) {
	q := potential.NewQuartic()
	finder := NewFinder(nil)

	points := finder.FindEquilibria(q, nil)
	if len(points) != 0 {
		t.Errorf("expected empty result for empty seeds, got %d points", len(points))
	}
}

func TestFindEquilibriaSwallowsFailures(t *testing.T) {
	// A harmonic field has one root; a seed can never fail here, so use
	// a solver that always errors and check nothing leaks out.
	h := potential.NewHarmonic()
	finder := NewFinder(failingSolver{})

	points := finder.FindEquilibria(h, []float64{-1, 0, 1})
	if len(points) != 0 {
		t.Errorf("expected no points from a failing solver, got %d", len(points))
	}
}

type failingSolver struct{}

func (failingSolver) Solve(_, _ solver.Func, x0 float64) (float64, error) {
	return 0, errAlways
}

var errAlways = &solverError{}

type solverError struct{}

func (*solverError) Error() string { return "search failed" }

func TestClassify(t *testing.T) {
	q := potential.NewQuartic()

	label, curv := Classify(q, 0)
	if label != Unstable || curv != -8.0 {
		t.Errorf("expected (unstable, -8) at origin, got (%s, %f)", label, curv)
	}

	label, curv = Classify(q, 2)
	if label != Stable || curv != 40.0 {
		t.Errorf("expected (stable, 40) at x=2, got (%s, %f)", label, curv)
	}
}

func TestClassifyNeutral(t *testing.T) {
	// Pure quartic: curvature 12x² is exactly zero at the origin.
	q := &potential.Quartic{A4: 1}
	label, curv := Classify(q, 0)
	if label != Neutral || curv != 0 {
		t.Errorf("expected (neutral, 0), got (%s, %f)", label, curv)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	q := potential.NewQuartic()
	l1, c1 := Classify(q, 1.347)
	l2, c2 := Classify(q, 1.347)
	if l1 != l2 || c1 != c2 {
		t.Errorf("classify not idempotent: (%s, %f) vs (%s, %f)", l1, c1, l2, c2)
	}
}
