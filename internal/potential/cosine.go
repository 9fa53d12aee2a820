package potential

import (
	"fmt"
	"math"
)

// Cosine is the pendulum potential U(x) = mgl(1 - cos x): stable at
// x = 0, ±2π, ... and unstable at x = ±π, ±3π, ...
type Cosine struct {
	Mass, Length, Gravity float64
}

func NewCosine() *Cosine {
	return &Cosine{Mass: 1.0, Length: 1.0, Gravity: 9.81}
}

func (c *Cosine) Name() string { return "cosine" }

func (c *Cosine) scale() float64 { return c.Mass * c.Gravity * c.Length }

func (c *Cosine) Energy(x float64) float64 {
	return c.scale() * (1 - math.Cos(x))
}

func (c *Cosine) Force(x float64) float64 {
	return -c.scale() * math.Sin(x)
}

func (c *Cosine) Curvature(x float64) float64 {
	return c.scale() * math.Cos(x)
}

func (c *Cosine) Domain() (float64, float64) { return -1.5 * math.Pi, 1.5 * math.Pi }

func (c *Cosine) GetParams() map[string]float64 {
	return map[string]float64{"mass": c.Mass, "length": c.Length, "gravity": c.Gravity}
}

func (c *Cosine) SetParam(name string, v float64) error {
	switch name {
	case "mass":
		c.Mass = v
	case "length":
		c.Length = v
	case "gravity":
		c.Gravity = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
