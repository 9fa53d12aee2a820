package dynamics

import (
	"context"
	"math"
	"testing"

	"equilib/internal/potential"
)

func TestRelaxationIntoWell(t *testing.T) {
	p := NewParticle(potential.NewDoubleWell())
	p.Damping = 1.0

	cfg := Config{Dt: 0.01, Duration: 60.0, SettleTol: 1e-6}
	tr, err := Simulate(context.Background(), p, NewRK4(), 1.5, 0, cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if !tr.Settled {
		t.Error("expected particle to settle")
	}
	if math.Abs(tr.Final()-1.0) > 1e-3 {
		t.Errorf("expected settling near x=1, got %f", tr.Final())
	}
}

func TestUnstableHumpRepels(t *testing.T) {
	p := NewParticle(potential.NewDoubleWell())
	p.Damping = 1.0

	// A nudge off the central hump must end in one of the wells, not
	// back on the hump.
	cfg := Config{Dt: 0.01, Duration: 60.0, SettleTol: 1e-6}
	tr, err := Simulate(context.Background(), p, NewRK4(), 0.05, 0, cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if math.Abs(tr.Final()) < 0.5 {
		t.Errorf("expected escape from the hump, final position %f", tr.Final())
	}
}

func TestEnergyDecaysUnderDamping(t *testing.T) {
	p := NewParticle(potential.NewHarmonic())
	p.Damping = 0.3

	tr, err := Simulate(context.Background(), p, NewRK4(), 2.0, 0, Config{Dt: 0.01, Duration: 5.0})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	first := tr.Energies[0]
	last := tr.Energies[len(tr.Energies)-1]
	if last >= first {
		t.Errorf("expected energy decay, got %f -> %f", first, last)
	}
}

func TestSimulateInvalidConfig(t *testing.T) {
	p := NewParticle(potential.NewHarmonic())
	for _, cfg := range []Config{
		{Dt: 0, Duration: 1},
		{Dt: -0.1, Duration: 1},
		{Dt: 0.01, Duration: 0},
	} {
		if _, err := Simulate(context.Background(), p, NewEuler(), 1, 0, cfg); err == nil {
			t.Errorf("expected error for config %+v", cfg)
		}
	}
}

func TestSimulateCancellation(t *testing.T) {
	p := NewParticle(potential.NewHarmonic())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, p, NewRK4(), 1, 0, Config{Dt: 0.001, Duration: 100})
	if err == nil {
		t.Error("expected context error")
	}
}

func TestRK4MoreAccurateThanEuler(t *testing.T) {
	// Undamped harmonic oscillator: x(t) = cos(t) for k=m=1, x0=1.
	mk := func() *Particle {
		p := NewParticle(potential.NewHarmonic())
		p.Damping = 0
		return p
	}
	cfg := Config{Dt: 0.05, Duration: 10.0}

	rk, err := Simulate(context.Background(), mk(), NewRK4(), 1, 0, cfg)
	if err != nil {
		t.Fatalf("rk4 failed: %v", err)
	}
	eu, err := Simulate(context.Background(), mk(), NewEuler(), 1, 0, cfg)
	if err != nil {
		t.Fatalf("euler failed: %v", err)
	}

	exact := math.Cos(10.0)
	rkErr := math.Abs(rk.Final() - exact)
	euErr := math.Abs(eu.Final() - exact)
	if rkErr >= euErr {
		t.Errorf("rk4 error %g not better than euler error %g", rkErr, euErr)
	}
	if rkErr > 1e-4 {
		t.Errorf("rk4 error too large: %g", rkErr)
	}
}

func TestGetIntegrator(t *testing.T) {
	if _, err := GetIntegrator("rk4"); err != nil {
		t.Errorf("rk4 should exist: %v", err)
	}
	if _, err := GetIntegrator("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
