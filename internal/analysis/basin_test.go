package analysis

import (
	"testing"

	"equilib/internal/potential"
)

func TestBasinsDoubleWell(t *testing.T) {
	d := potential.NewDoubleWell()
	finder := NewFinder(nil)
	points := finder.FindEquilibria(d, []float64{-2, 0, 2})
	if len(points) != 3 {
		t.Fatalf("expected 3 equilibria, got %d", len(points))
	}

	cells := Basins(d, finder, points, 41)
	if len(cells) != 41 {
		t.Fatalf("expected 41 cells, got %d", len(cells))
	}

	// Ends of the domain belong to the outer wells.
	if cells[0].Target != 0 {
		t.Errorf("leftmost start should reach the left well, got target %d", cells[0].Target)
	}
	if cells[len(cells)-1].Target != 2 {
		t.Errorf("rightmost start should reach the right well, got target %d", cells[len(cells)-1].Target)
	}

	for _, c := range cells {
		if c.Target < -1 || c.Target >= len(points) {
			t.Errorf("start %.3f: target %d out of range", c.Start, c.Target)
		}
	}
}
