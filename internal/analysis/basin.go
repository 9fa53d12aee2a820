package analysis

import (
	"math"

	"equilib/internal/potential"
)

// BasinCell maps a starting position to the equilibrium the root search
// converged to. Target is the index into the accompanying point slice,
// or -1 when the search failed or left the known set.
type BasinCell struct {
	Start  float64
	Target int
}

// Basins scans n starting positions across the field's domain and records
// which equilibrium each one is attracted to under the finder's solver.
// The points slice fixes the target indexing; pass the output of
// FindEquilibria over the same field.
func Basins(field potential.Field, finder *Finder, points []Point, n int) []BasinCell {
	if n < 2 {
		n = 2
	}
	min, max := field.Domain()
	step := (max - min) / float64(n-1)

	force := field.Force
	dforce := func(x float64) float64 { return -field.Curvature(x) }

	cells := make([]BasinCell, n)
	for i := 0; i < n; i++ {
		start := min + float64(i)*step
		cells[i] = BasinCell{Start: start, Target: -1}

		x, err := finder.Solver.Solve(force, dforce, start)
		if err != nil {
			continue
		}
		for j, pt := range points {
			if math.Abs(x-pt.Position) <= finder.TolDistinct {
				cells[i].Target = j
				break
			}
		}
	}
	return cells
}
