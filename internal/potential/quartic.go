package potential

import "fmt"

// Quartic is the general quartic potential
// U(x) = a4·x⁴ + a3·x³ + a2·x² + a1·x + a0.
//
// The default coefficients give the textbook example U(x) = x⁴ - 4x² + x:
// two unequal wells separated by a hump near the origin.
type Quartic struct {
	A4, A3, A2, A1, A0 float64
}

func NewQuartic() *Quartic {
	return &Quartic{A4: 1.0, A2: -4.0, A1: 1.0}
}

func (q *Quartic) Name() string { return "quartic" }

func (q *Quartic) Energy(x float64) float64 {
	return q.A4*x*x*x*x + q.A3*x*x*x + q.A2*x*x + q.A1*x + q.A0
}

func (q *Quartic) Force(x float64) float64 {
	// F = -dU/dx
	return -(4*q.A4*x*x*x + 3*q.A3*x*x + 2*q.A2*x + q.A1)
}

func (q *Quartic) Curvature(x float64) float64 {
	return 12*q.A4*x*x + 6*q.A3*x + 2*q.A2
}

func (q *Quartic) Domain() (float64, float64) { return -2.5, 2.5 }

func (q *Quartic) GetParams() map[string]float64 {
	return map[string]float64{"a4": q.A4, "a3": q.A3, "a2": q.A2, "a1": q.A1, "a0": q.A0}
}

func (q *Quartic) SetParam(name string, v float64) error {
	switch name {
	case "a4":
		q.A4 = v
	case "a3":
		q.A3 = v
	case "a2":
		q.A2 = v
	case "a1":
		q.A1 = v
	case "a0":
		q.A0 = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
