package config

var Presets = map[string]map[string]*Config{
	"tess": {
		"twin": {
			Mission: "TESS", Law: "quad",
			System: SystemConfig{
				Period: 2.5, OmegaDeg: 90, IncDeg: 89.5,
				SumRadii: 0.18, RadiusRatio: 1.0, LumRatio: 1.0,
				LD1: [2]float64{0.33, 0.21}, LD2: [2]float64{0.33, 0.21},
			},
		},
		"unequal": {
			Mission: "TESS", Law: "quad",
			System: SystemConfig{
				Period: 4.0, OmegaDeg: 90, IncDeg: 88.5,
				SumRadii: 0.15, RadiusRatio: 0.6, LumRatio: 0.25,
				LD1: [2]float64{0.30, 0.22}, LD2: [2]float64{0.42, 0.18},
			},
		},
		"eccentric": {
			Mission: "TESS", Law: "quad",
			System: SystemConfig{
				Period: 8.0, Ecc: 0.25, OmegaDeg: 60, IncDeg: 89.0,
				SumRadii: 0.08, RadiusRatio: 0.8, LumRatio: 0.5,
				LD1: [2]float64{0.31, 0.21}, LD2: [2]float64{0.36, 0.20},
			},
		},
		"grazing": {
			Mission: "TESS", Law: "quad",
			System: SystemConfig{
				Period: 1.8, OmegaDeg: 90, IncDeg: 84.0,
				SumRadii: 0.22, RadiusRatio: 0.9, LumRatio: 0.8,
				LD1: [2]float64{0.33, 0.21}, LD2: [2]float64{0.34, 0.21},
			},
		},
	},
	"kepler": {
		"twin": {
			Mission: "Kepler", Law: "quad",
			System: SystemConfig{
				Period: 3.2, OmegaDeg: 90, IncDeg: 89.3,
				SumRadii: 0.16, RadiusRatio: 1.0, LumRatio: 1.0,
				LD1: [2]float64{0.41, 0.24}, LD2: [2]float64{0.41, 0.24},
			},
		},
		"shallow": {
			Mission: "Kepler", Law: "quad",
			System: SystemConfig{
				Period: 6.5, OmegaDeg: 90, IncDeg: 87.8,
				SumRadii: 0.10, RadiusRatio: 0.4, LumRatio: 0.05,
				LD1: [2]float64{0.38, 0.25}, LD2: [2]float64{0.55, 0.15},
			},
		},
		"eccentric": {
			Mission: "Kepler", Law: "quad",
			System: SystemConfig{
				Period: 12.0, Ecc: 0.4, OmegaDeg: 120, IncDeg: 89.5,
				SumRadii: 0.05, RadiusRatio: 0.7, LumRatio: 0.3,
				LD1: [2]float64{0.40, 0.24}, LD2: [2]float64{0.47, 0.20},
			},
		},
	},
}

func GetPreset(mission, preset string) *Config {
	missionPresets, ok := Presets[mission]
	if !ok {
		return nil
	}
	cfg, ok := missionPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mission string) []string {
	missionPresets, ok := Presets[mission]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(missionPresets))
	for name := range missionPresets {
		names = append(names, name)
	}
	return names
}
