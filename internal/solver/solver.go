package solver

import "fmt"

// Func is a scalar function of one real variable.
type Func func(x float64) float64

// Solver finds a root of f near the seed x0. df is the analytic
// derivative of f; derivative-free solvers ignore it.
type Solver interface {
	Solve(f, df Func, x0 float64) (float64, error)
}

var builders = map[string]func() Solver{
	"newton":    func() Solver { return NewNewton() },
	"secant":    func() Solver { return NewSecant() },
	"bisection": func() Solver { return NewBisection() },
}

func Get(name string) (Solver, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}
