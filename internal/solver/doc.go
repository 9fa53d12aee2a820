// Package solver provides scalar root-finding iterations used to locate
// zeros of the force function.
//
//   - [Newton]: analytic-derivative Newton iteration, the default
//   - [Secant]: derivative-free secant iteration
//   - [Bisection]: bracket expansion around the seed, then bisection
//
// All solvers are local: they converge to a root in the seed's basin of
// attraction or return an error.
package solver
