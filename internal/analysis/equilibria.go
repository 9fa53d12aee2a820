package analysis

import (
	"math"
	"sort"

	"equilib/internal/potential"
	"equilib/internal/solver"
)

type Stability string

const (
	Stable   Stability = "stable"
	Unstable Stability = "unstable"
	Neutral  Stability = "neutral"
)

// Point is one equilibrium of a potential field.
type Point struct {
	Position  float64   `json:"position"`
	Energy    float64   `json:"energy"`
	Curvature float64   `json:"curvature"`
	Stability Stability `json:"stability"`
}

// Finder runs a local root search over the force function from every
// seed and keeps the distinct converged roots.
type Finder struct {
	Solver      solver.Solver
	TolRoot     float64
	TolDistinct float64
}

func NewFinder(s solver.Solver) *Finder {
	if s == nil {
		s = solver.NewNewton()
	}
	return &Finder{
		Solver:      s,
		TolRoot:     1e-6,
		TolDistinct: 0.1,
	}
}

// FindEquilibria returns the equilibria reached from the given seeds,
// classified and sorted by position. A seed whose search fails or
// wanders off contributes nothing; equilibria outside every seed's basin
// are missed.
func (f *Finder) FindEquilibria(field potential.Field, seeds []float64) []Point {
	force := field.Force
	// Newton iterates on F, so the slope is F'(x) = -U''(x).
	dforce := func(x float64) float64 { return -field.Curvature(x) }

	roots := make([]float64, 0, len(seeds))
	for _, seed := range seeds {
		x, err := f.Solver.Solve(force, dforce, seed)
		if err != nil {
			continue
		}
		if math.Abs(force(x)) >= f.TolRoot {
			continue
		}
		if !distinct(x, roots, f.TolDistinct) {
			continue
		}
		roots = append(roots, x)
	}
	sort.Float64s(roots)

	points := make([]Point, len(roots))
	for i, x := range roots {
		stability, curv := Classify(field, x)
		points[i] = Point{
			Position:  x,
			Energy:    field.Energy(x),
			Curvature: curv,
			Stability: stability,
		}
	}
	return points
}

func distinct(x float64, accepted []float64, tol float64) bool {
	for _, r := range accepted {
		if math.Abs(x-r) <= tol {
			return false
		}
	}
	return true
}

// Classify returns the stability of a position from the curvature sign.
// The neutral branch fires only on an exact zero; generic roots never
// land there, but degenerate potentials (U = x⁴ at the origin) do.
func Classify(field potential.Field, x float64) (Stability, float64) {
	curv := field.Curvature(x)
	switch {
	case curv > 0:
		return Stable, curv
	case curv < 0:
		return Unstable, curv
	default:
		return Neutral, curv
	}
}
