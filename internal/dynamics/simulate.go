package dynamics

import (
	"context"
	"fmt"
	"math"
)

type Config struct {
	Dt       float64
	Duration float64
	// SettleTol stops the run early once both |v| and |F(x)| drop below
	// it; zero disables early stopping.
	SettleTol float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.01, Duration: 20.0, SettleTol: 1e-5}
}

// Trajectory records a relaxation run.
type Trajectory struct {
	Times      []float64
	Positions  []float64
	Velocities []float64
	Energies   []float64
	Settled    bool
}

// Final returns the last recorded position.
func (tr *Trajectory) Final() float64 {
	if len(tr.Positions) == 0 {
		return math.NaN()
	}
	return tr.Positions[len(tr.Positions)-1]
}

// Simulate integrates the particle forward from (x0, v0), sampling every
// step. The context cancels long runs.
func Simulate(ctx context.Context, p *Particle, integ Integrator, x0, v0 float64, cfg Config) (*Trajectory, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	tr := &Trajectory{
		Times:      make([]float64, 0, steps+1),
		Positions:  make([]float64, 0, steps+1),
		Velocities: make([]float64, 0, steps+1),
		Energies:   make([]float64, 0, steps+1),
	}

	s := State{x0, v0}
	t := 0.0
	tr.record(t, s, p)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return tr, ctx.Err()
		default:
		}

		s = integ.Step(p, s, t, cfg.Dt)
		t += cfg.Dt

		if math.IsNaN(s[0]) || math.IsInf(s[0], 0) {
			return tr, fmt.Errorf("state diverged at t=%.4f", t)
		}
		tr.record(t, s, p)

		if cfg.SettleTol > 0 &&
			math.Abs(s[1]) < cfg.SettleTol &&
			math.Abs(p.Field.Force(s[0])) < cfg.SettleTol {
			tr.Settled = true
			break
		}
	}
	return tr, nil
}

func (tr *Trajectory) record(t float64, s State, p *Particle) {
	tr.Times = append(tr.Times, t)
	tr.Positions = append(tr.Positions, s[0])
	tr.Velocities = append(tr.Velocities, s[1])
	tr.Energies = append(tr.Energies, p.Energy(s))
}
