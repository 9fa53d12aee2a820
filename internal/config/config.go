package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTolRoot     = 1e-6
	DefaultTolDistinct = 0.1
	DefaultSamples     = 1000
	DefaultSeedCount   = 7
	DefaultOutput      = "equilibrium.png"
)

type Config struct {
	Potential string             `yaml:"potential"`
	Solver    string             `yaml:"solver"`
	Params    map[string]float64 `yaml:"params"`
	Seeds     []float64          `yaml:"seeds"`
	Tolerance ToleranceConfig    `yaml:"tolerance"`
	Plot      PlotConfig         `yaml:"plot"`
	Output    string             `yaml:"output"`
}

type ToleranceConfig struct {
	Root     float64 `yaml:"root"`
	Distinct float64 `yaml:"distinct"`
}

type PlotConfig struct {
	XMin    float64 `yaml:"xmin"`
	XMax    float64 `yaml:"xmax"`
	Samples int     `yaml:"samples"`
	SVG     bool    `yaml:"svg"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: "quartic",
		Solver:    "newton",
		Seeds:     []float64{-2, 0, 2},
		Tolerance: ToleranceConfig{
			Root:     DefaultTolRoot,
			Distinct: DefaultTolDistinct,
		},
		Plot: PlotConfig{
			Samples: DefaultSamples,
		},
		Output: DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
