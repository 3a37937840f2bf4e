package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmorven/deborbit/internal/fit"
)

const (
	DefaultPeriod        = 1.0
	DefaultIncDeg        = 89.0
	DefaultOmegaDeg      = 90.0
	DefaultSumRadii      = 0.2
	DefaultRadiusRatio   = 1.0
	DefaultLumRatio      = 1.0
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 200
	DefaultSamples       = 500
	DefaultNoise         = 0.001
)

type Config struct {
	Mission string       `yaml:"mission"`
	Law     string       `yaml:"law"`
	Flat    bool         `yaml:"flat_geometry"`
	System  SystemConfig `yaml:"system"`
	Fit     FitConfig    `yaml:"fit"`
	Synth   SynthConfig  `yaml:"synth"`
}

// SystemConfig holds the binary parameters. Angles are degrees here and
// radians everywhere inside the model.
type SystemConfig struct {
	Period      float64    `yaml:"period"`
	Epoch       float64    `yaml:"epoch"`
	Ecc         float64    `yaml:"ecc"`
	OmegaDeg    float64    `yaml:"omega_deg"`
	IncDeg      float64    `yaml:"inc_deg"`
	SumRadii    float64    `yaml:"sum_radii"`
	RadiusRatio float64    `yaml:"radius_ratio"`
	LumRatio    float64    `yaml:"lum_ratio"`
	LD1         [2]float64 `yaml:"ld1"`
	LD2         [2]float64 `yaml:"ld2"`
}

type FitConfig struct {
	Tolerance     float64  `yaml:"tolerance"`
	MaxIterations int      `yaml:"max_iterations"`
	Fixed         []string `yaml:"fixed"`
}

type SynthConfig struct {
	Samples int     `yaml:"samples"`
	Noise   float64 `yaml:"noise"`
	Seed    int64   `yaml:"seed"`
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`
}

func DefaultConfig() *Config {
	return &Config{
		Mission: "TESS",
		Law:     "quad",
		System: SystemConfig{
			Period:      DefaultPeriod,
			OmegaDeg:    DefaultOmegaDeg,
			IncDeg:      DefaultIncDeg,
			SumRadii:    DefaultSumRadii,
			RadiusRatio: DefaultRadiusRatio,
			LumRatio:    DefaultLumRatio,
			LD1:         [2]float64{0.3, 0.2},
			LD2:         [2]float64{0.3, 0.2},
		},
		Fit: FitConfig{
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultMaxIterations,
		},
		Synth: SynthConfig{
			Samples: DefaultSamples,
			Noise:   DefaultNoise,
			End:     DefaultPeriod,
		},
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

// Params converts the system section to the estimator's
// parameterization, degrees to radians.
func (c *Config) Params() fit.Params {
	return fit.Params{
		Period:      c.System.Period,
		Epoch:       c.System.Epoch,
		Ecc:         c.System.Ecc,
		Omega:       c.System.OmegaDeg * math.Pi / 180,
		Inc:         c.System.IncDeg * math.Pi / 180,
		SumRadii:    c.System.SumRadii,
		RadiusRatio: c.System.RadiusRatio,
		LumRatio:    c.System.LumRatio,
		LD1:         c.System.LD1,
		LD2:         c.System.LD2,
	}
}

// Options converts the fit section to estimator options.
func (c *Config) Options() fit.Options {
	return fit.Options{
		Law:           c.Law,
		FlatGeometry:  c.Flat,
		Tolerance:     c.Fit.Tolerance,
		MaxIterations: c.Fit.MaxIterations,
		Fixed:         c.Fit.Fixed,
	}
}
