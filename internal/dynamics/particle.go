// Package dynamics simulates a damped particle moving in a potential
// field, used to demonstrate how displacements relax toward stable
// equilibria and flee unstable ones.
package dynamics

import (
	"equilib/internal/potential"
)

// State is (position, velocity).
type State [2]float64

// Particle is a point mass in a 1-D potential with viscous damping:
// m·x″ = F(x) - c·x′.
type Particle struct {
	Field   potential.Field
	Mass    float64
	Damping float64
}

func NewParticle(field potential.Field) *Particle {
	return &Particle{Field: field, Mass: 1.0, Damping: 0.5}
}

func (p *Particle) Derive(s State, _ float64) State {
	x, v := s[0], s[1]
	return State{v, (p.Field.Force(x) - p.Damping*v) / p.Mass}
}

// Energy is kinetic plus potential.
func (p *Particle) Energy(s State) float64 {
	x, v := s[0], s[1]
	return 0.5*p.Mass*v*v + p.Field.Energy(x)
}
