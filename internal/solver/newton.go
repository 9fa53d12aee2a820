package solver

import (
	"fmt"
	"math"
)

type Newton struct {
	Tol      float64
	MaxIter  int
	MaxStep  float64
	MinSlope float64
}

func NewNewton() *Newton {
	return &Newton{
		Tol:      1e-12,
		MaxIter:  100,
		MaxStep:  10.0,
		MinSlope: 1e-14,
	}
}

func (n *Newton) Solve(f, df Func, x0 float64) (float64, error) {
	x := x0
	for i := 0; i < n.MaxIter; i++ {
		fx := f(x)
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			return 0, fmt.Errorf("newton: f diverged at x=%g", x)
		}
		if math.Abs(fx) < n.Tol {
			return x, nil
		}

		slope := df(x)
		if math.Abs(slope) < n.MinSlope {
			return 0, fmt.Errorf("newton: derivative vanished at x=%g", x)
		}

		step := fx / slope
		// Clamp runaway steps so a near-flat region cannot throw the
		// iterate out of the seed's basin.
		if math.Abs(step) > n.MaxStep {
			step = math.Copysign(n.MaxStep, step)
		}
		x -= step
	}
	return 0, fmt.Errorf("newton: no convergence from x0=%g after %d iterations", x0, n.MaxIter)
}
