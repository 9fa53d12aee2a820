package solver

import (
	"fmt"
	"math"
)

// Bisection expands a bracket around the seed until f changes sign, then
// bisects. Slower than Newton but immune to bad derivatives.
type Bisection struct {
	Tol        float64
	MaxIter    int
	InitialGap float64
	MaxExpand  int
}

func NewBisection() *Bisection {
	return &Bisection{
		Tol:        1e-12,
		MaxIter:    200,
		InitialGap: 0.1,
		MaxExpand:  40,
	}
}

func (b *Bisection) Solve(f, _ Func, x0 float64) (float64, error) {
	lo, hi, err := b.bracket(f, x0)
	if err != nil {
		return 0, err
	}

	flo := f(lo)
	for i := 0; i < b.MaxIter; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if math.Abs(fmid) < b.Tol || hi-lo < b.Tol {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

func (b *Bisection) bracket(f Func, x0 float64) (float64, float64, error) {
	gap := b.InitialGap
	f0 := f(x0)
	if f0 == 0 {
		return x0, x0, nil
	}

	for i := 0; i < b.MaxExpand; i++ {
		lo, hi := x0-gap, x0+gap
		flo, fhi := f(lo), f(hi)
		if math.IsNaN(flo) || math.IsNaN(fhi) {
			return 0, 0, fmt.Errorf("bisection: f diverged while bracketing x0=%g", x0)
		}
		if math.Signbit(flo) != math.Signbit(f0) {
			return lo, x0, nil
		}
		if math.Signbit(fhi) != math.Signbit(f0) {
			return x0, hi, nil
		}
		gap *= 1.6
	}
	return 0, 0, fmt.Errorf("bisection: no sign change near x0=%g", x0)
}
