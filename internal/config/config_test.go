package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Potential != "quartic" {
		t.Errorf("expected potential quartic, got %s", cfg.Potential)
	}
	if cfg.Solver != "newton" {
		t.Errorf("expected solver newton, got %s", cfg.Solver)
	}
	if cfg.Tolerance.Root != 1e-6 {
		t.Errorf("expected root tolerance 1e-6, got %g", cfg.Tolerance.Root)
	}
	if cfg.Tolerance.Distinct != 0.1 {
		t.Errorf("expected distinctness tolerance 0.1, got %g", cfg.Tolerance.Distinct)
	}
	if len(cfg.Seeds) != 3 {
		t.Errorf("expected 3 default seeds, got %d", len(cfg.Seeds))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Potential = "doublewell"
	cfg.Params = map[string]float64{"A": 2, "B": 0.5}
	cfg.Seeds = []float64{-1, 1}
	cfg.Plot.SVG = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Potential != "doublewell" {
		t.Errorf("expected doublewell, got %s", loaded.Potential)
	}
	if loaded.Params["B"] != 0.5 {
		t.Errorf("expected B=0.5, got %f", loaded.Params["B"])
	}
	if !loaded.Plot.SVG {
		t.Error("expected svg flag preserved")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("potential: harmonic\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Potential != "harmonic" {
		t.Errorf("expected harmonic, got %s", loaded.Potential)
	}
	// Fields absent from the file keep their defaults.
	if loaded.Tolerance.Root != 1e-6 {
		t.Errorf("expected default root tolerance, got %g", loaded.Tolerance.Root)
	}
	if loaded.Solver != "newton" {
		t.Errorf("expected default solver, got %s", loaded.Solver)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/run.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quartic", "textbook")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["a2"] != -4 {
		t.Errorf("expected a2=-4, got %f", cfg.Params["a2"])
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("quartic", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "textbook") != nil {
		t.Error("expected nil for nonexistent potential")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("doublewell")) == 0 {
		t.Error("expected presets for doublewell")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent potential")
	}
}
