package potential

import "fmt"

// Harmonic is the spring potential U(x) = ½k(x - c)², a single stable
// equilibrium at x = c.
type Harmonic struct {
	K, Center float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{K: 1.0}
}

func (h *Harmonic) Name() string { return "harmonic" }

func (h *Harmonic) Energy(x float64) float64 {
	d := x - h.Center
	return 0.5 * h.K * d * d
}

func (h *Harmonic) Force(x float64) float64 {
	return -h.K * (x - h.Center)
}

func (h *Harmonic) Curvature(x float64) float64 { return h.K }

func (h *Harmonic) Domain() (float64, float64) {
	return h.Center - 3, h.Center + 3
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"k": h.K, "center": h.Center}
}

func (h *Harmonic) SetParam(name string, v float64) error {
	switch name {
	case "k":
		h.K = v
	case "center":
		h.Center = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
