package analysis

import (
	"math"
	"strings"
	"testing"

	"equilib/internal/potential"
)

func TestBranchesPitchfork(t *testing.T) {
	d := potential.NewDoubleWell()
	finder := NewFinder(nil)
	seeds := []float64{-2, -1, 0, 1, 2}

	// Sweeping B through zero: single well below, double well above.
	data, err := Branches(d, finder, "B", -0.5, 1.0, 7, seeds)
	if err != nil {
		t.Fatalf("branches failed: %v", err)
	}
	if len(data) != 7 {
		t.Fatalf("expected 7 branch points, got %d", len(data))
	}

	first := data[0]
	if len(first.Points) != 1 || first.Points[0].Stability != Stable {
		t.Errorf("B=%.2f: expected single stable equilibrium, got %+v", first.Param, first.Points)
	}

	last := data[len(data)-1]
	if len(last.Points) != 3 {
		t.Fatalf("B=%.2f: expected 3 equilibria, got %d", last.Param, len(last.Points))
	}
	if last.Points[1].Stability != Unstable {
		t.Errorf("expected unstable hump at origin, got %s", last.Points[1].Stability)
	}
	if math.Abs(last.Points[2].Position-1.0) > 1e-3 {
		t.Errorf("expected well at +1 for B=1, got %.4f", last.Points[2].Position)
	}

	// The sweep must not leave the field mutated.
	if d.B != 1.0 {
		t.Errorf("expected B restored to 1.0, got %f", d.B)
	}
}

func TestBranchesUnknownParam(t *testing.T) {
	d := potential.NewDoubleWell()
	if _, err := Branches(d, NewFinder(nil), "gamma", 0, 1, 3, []float64{0}); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestBranchesToASCII(t *testing.T) {
	d := potential.NewDoubleWell()
	data, err := Branches(d, NewFinder(nil), "B", 0.5, 2.0, 10, []float64{-2, 0, 2})
	if err != nil {
		t.Fatalf("branches failed: %v", err)
	}

	art := BranchesToASCII(data, 40, 12)
	if art == "" {
		t.Fatal("expected non-empty diagram")
	}
	if !strings.ContainsRune(art, '●') {
		t.Error("expected stable branch markers")
	}
	if !strings.ContainsRune(art, '○') {
		t.Error("expected unstable branch markers")
	}
}

func TestBranchesToASCIIEmpty(t *testing.T) {
	if BranchesToASCII(nil, 40, 12) != "" {
		t.Error("expected empty string for no data")
	}
}
