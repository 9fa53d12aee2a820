package dynamics

import "fmt"

// Integrator advances the particle state by one timestep.
type Integrator interface {
	Step(p *Particle, s State, t, dt float64) State
}

type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(p *Particle, s State, t, dt float64) State {
	d := p.Derive(s, t)
	return State{s[0] + dt*d[0], s[1] + dt*d[1]}
}

type RK4 struct{}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Step(p *Particle, s State, t, dt float64) State {
	k1 := p.Derive(s, t)
	k2 := p.Derive(shift(s, k1, dt/2), t+dt/2)
	k3 := p.Derive(shift(s, k2, dt/2), t+dt/2)
	k4 := p.Derive(shift(s, k3, dt), t+dt)

	return State{
		s[0] + dt/6*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		s[1] + dt/6*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
	}
}

func shift(s, d State, h float64) State {
	return State{s[0] + h*d[0], s[1] + h*d[1]}
}

func GetIntegrator(name string) (Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
