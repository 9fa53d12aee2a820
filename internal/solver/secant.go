package solver

import (
	"fmt"
	"math"
)

type Secant struct {
	Tol     float64
	MaxIter int
	Spread  float64
}

func NewSecant() *Secant {
	return &Secant{
		Tol:     1e-12,
		MaxIter: 200,
		Spread:  1e-4,
	}
}

func (s *Secant) Solve(f, _ Func, x0 float64) (float64, error) {
	a := x0
	b := x0 + s.Spread
	fa, fb := f(a), f(b)

	for i := 0; i < s.MaxIter; i++ {
		if math.Abs(fb) < s.Tol {
			return b, nil
		}
		if math.IsNaN(fb) || math.IsInf(fb, 0) {
			return 0, fmt.Errorf("secant: f diverged at x=%g", b)
		}
		if fb == fa {
			return 0, fmt.Errorf("secant: flat secant at x=%g", b)
		}

		next := b - fb*(b-a)/(fb-fa)
		a, fa = b, fb
		b, fb = next, f(next)
	}
	return 0, fmt.Errorf("secant: no convergence from x0=%g after %d iterations", x0, s.MaxIter)
}
