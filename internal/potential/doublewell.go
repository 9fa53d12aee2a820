package potential

import (
	"fmt"
	"math"
)

// DoubleWell is the symmetric bistable potential U(x) = A(x² - B)².
// Minima sit at x = ±√B with a hump at the origin.
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{1.0, 1.0}
}

func (d *DoubleWell) Name() string { return "doublewell" }

func (d *DoubleWell) Energy(x float64) float64 {
	return d.A * math.Pow(x*x-d.B, 2)
}

func (d *DoubleWell) Force(x float64) float64 {
	return -4 * d.A * x * (x*x - d.B)
}

func (d *DoubleWell) Curvature(x float64) float64 {
	return 4 * d.A * (3*x*x - d.B)
}

func (d *DoubleWell) Domain() (float64, float64) {
	r := 1.8 * math.Sqrt(math.Max(d.B, 1))
	return -r, r
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B}
}

func (d *DoubleWell) SetParam(name string, v float64) error {
	switch name {
	case "A":
		d.A = v
	case "B":
		d.B = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
