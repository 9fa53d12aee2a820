package potential

import "fmt"

// Field is a smooth one-dimensional potential energy function with
// hand-coded first and second derivatives.
type Field interface {
	Name() string
	Energy(x float64) float64
	// Force returns -dU/dx.
	Force(x float64) float64
	// Curvature returns d²U/dx². Its sign classifies equilibria.
	Curvature(x float64) float64
	// Domain returns the default range of interest for plotting and seeding.
	Domain() (min, max float64)
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// DefaultSeeds returns root-search seed positions for a field: evenly
// spaced starting points spanning its domain.
func DefaultSeeds(f Field, n int) []float64 {
	if n < 2 {
		n = 2
	}
	min, max := f.Domain()
	seeds := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range seeds {
		seeds[i] = min + float64(i)*step
	}
	return seeds
}

var builders = map[string]func() Field{
	"quartic":    func() Field { return NewQuartic() },
	"doublewell": func() Field { return NewDoubleWell() },
	"harmonic":   func() Field { return NewHarmonic() },
	"cosine":     func() Field { return NewCosine() },
}

func Get(name string) (Field, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown potential: %s", name)
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
