package config

var Presets = map[string]map[string]*Config{
	"quartic": {
		"textbook": {
			Potential: "quartic", Solver: "newton",
			Params: map[string]float64{"a4": 1, "a2": -4, "a1": 1},
			Seeds:  []float64{-2, 0, 2},
		},
		"symmetric": {
			Potential: "quartic", Solver: "newton",
			Params: map[string]float64{"a4": 1, "a2": -4},
			Seeds:  []float64{-2, 0, 2},
		},
		"singlewell": {
			Potential: "quartic", Solver: "newton",
			Params: map[string]float64{"a4": 1, "a2": 2},
			Seeds:  []float64{-1, 0, 1},
		},
	},
	"doublewell": {
		"classic": {
			Potential: "doublewell", Solver: "newton",
			Params: map[string]float64{"A": 1, "B": 1},
			Seeds:  []float64{-2, 0, 2},
		},
		"wide": {
			Potential: "doublewell", Solver: "newton",
			Params: map[string]float64{"A": 0.5, "B": 4},
			Seeds:  []float64{-3, 0, 3},
		},
	},
	"harmonic": {
		"unit": {
			Potential: "harmonic", Solver: "newton",
			Params: map[string]float64{"k": 1},
			Seeds:  []float64{-1, 1},
		},
	},
	"cosine": {
		"pendulum": {
			Potential: "cosine", Solver: "newton",
			Params: map[string]float64{"mass": 1, "length": 1, "gravity": 9.81},
			Seeds:  []float64{-4, -2, 0, 2, 4},
		},
	},
}

func GetPreset(pot, preset string) *Config {
	potPresets, ok := Presets[pot]
	if !ok {
		return nil
	}
	cfg, ok := potPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(pot string) []string {
	potPresets, ok := Presets[pot]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(potPresets))
	for name := range potPresets {
		names = append(names, name)
	}
	return names
}
