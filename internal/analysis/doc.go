// Package analysis locates and characterizes equilibria of 1-D potentials.
//
//   - [Finder]: multi-start root search over the force function
//   - [Classify]: stability from the sign of the curvature
//   - [Branches]: equilibrium positions swept over one potential parameter
//   - [Basins]: which equilibrium each starting point converges to
//
// A positive curvature at an equilibrium means a local minimum of the
// potential, so a displaced particle is pushed back:
//
//	pts := analysis.NewFinder(nil).FindEquilibria(field, seeds)
//	for _, p := range pts {
//	    // p.Stability is Stable, Unstable, or Neutral
//	}
package analysis
