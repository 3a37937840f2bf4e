package fit

import (
	"fmt"
	"math"

	"github.com/kmorven/deborbit/internal/lightcurve"
	"github.com/kmorven/deborbit/internal/limbdark"
	"github.com/kmorven/deborbit/internal/orbit"
)

// Parameter names, used to select free/fixed parameters and to label
// results.
const (
	ParamPeriod      = "period"   // orbital period [days]
	ParamEpoch       = "epoch"    // time of periastron [days]
	ParamEcc         = "ecc"      // eccentricity
	ParamOmega       = "omega"    // argument of periastron [rad]
	ParamInc         = "inc"      // inclination [rad]
	ParamSumRadii    = "sumradii" // (r1+r2)/a
	ParamRadiusRatio = "ratio"    // r2/r1
	ParamLumRatio    = "lumratio" // L2/L1
	ParamLD1A        = "ld1a"     // primary first LD coefficient
	ParamLD1B        = "ld1b"     // primary second LD coefficient
	ParamLD2A        = "ld2a"     // secondary first LD coefficient
	ParamLD2B        = "ld2b"     // secondary second LD coefficient
)

// AllParams lists every fittable parameter in vector order.
var AllParams = []string{
	ParamPeriod, ParamEpoch, ParamEcc, ParamOmega, ParamInc,
	ParamSumRadii, ParamRadiusRatio, ParamLumRatio,
	ParamLD1A, ParamLD1B, ParamLD2A, ParamLD2B,
}

// Params is the full model parameterization used by the estimator, in
// the photometric parameterization common for detached systems: radii
// as a fractional sum and ratio, luminosities as a ratio.
type Params struct {
	Period      float64
	Epoch       float64
	Ecc         float64
	Omega       float64
	Inc         float64
	SumRadii    float64
	RadiusRatio float64
	LumRatio    float64
	LD1         [2]float64
	LD2         [2]float64
}

func (p Params) value(name string) float64 {
	switch name {
	case ParamPeriod:
		return p.Period
	case ParamEpoch:
		return p.Epoch
	case ParamEcc:
		return p.Ecc
	case ParamOmega:
		return p.Omega
	case ParamInc:
		return p.Inc
	case ParamSumRadii:
		return p.SumRadii
	case ParamRadiusRatio:
		return p.RadiusRatio
	case ParamLumRatio:
		return p.LumRatio
	case ParamLD1A:
		return p.LD1[0]
	case ParamLD1B:
		return p.LD1[1]
	case ParamLD2A:
		return p.LD2[0]
	case ParamLD2B:
		return p.LD2[1]
	}
	return math.NaN()
}

func (p *Params) setValue(name string, v float64) {
	switch name {
	case ParamPeriod:
		p.Period = v
	case ParamEpoch:
		p.Epoch = v
	case ParamEcc:
		p.Ecc = v
	case ParamOmega:
		p.Omega = v
	case ParamInc:
		p.Inc = v
	case ParamSumRadii:
		p.SumRadii = v
	case ParamRadiusRatio:
		p.RadiusRatio = v
	case ParamLumRatio:
		p.LumRatio = v
	case ParamLD1A:
		p.LD1[0] = v
	case ParamLD1B:
		p.LD1[1] = v
	case ParamLD2A:
		p.LD2[0] = v
	case ParamLD2B:
		p.LD2[1] = v
	}
}

// clamp constrains parameters to their physically valid ranges so an
// aggressive step cannot leave the model's domain.
func (p *Params) clamp() {
	p.Ecc = math.Max(0, math.Min(0.99, p.Ecc))
	p.Inc = math.Max(1e-6, math.Min(math.Pi/2, p.Inc))
	p.SumRadii = math.Max(1e-6, math.Min(0.99, p.SumRadii))
	p.RadiusRatio = math.Max(1e-6, p.RadiusRatio)
	p.LumRatio = math.Max(0, p.LumRatio)
	p.Period = math.Max(1e-9, p.Period)
}

// Map returns the parameters keyed by name, in the form results are
// persisted and reported.
func (p Params) Map() map[string]float64 {
	out := make(map[string]float64, len(AllParams))
	for _, name := range AllParams {
		out[name] = p.value(name)
	}
	return out
}

// Radii converts the (sum, ratio) parameterization to the individual
// fractional radii.
func (p Params) Radii() (r1, r2 float64) {
	r1 = p.SumRadii / (1 + p.RadiusRatio)
	return r1, p.SumRadii - r1
}

// Luminosities converts the luminosity ratio to the two flux fractions.
func (p Params) Luminosities() (l1, l2 float64) {
	l1 = 1 / (1 + p.LumRatio)
	return l1, 1 - l1
}

// Model builds the forward model for these parameters with the given
// limb-darkening law name.
func (p Params) Model(law string, flat bool, solver orbit.SolverConfig) (*lightcurve.Model, error) {
	el, err := orbit.NewElements(p.Period, p.Epoch, p.Ecc, p.Omega, p.Inc, 1)
	if err != nil {
		return nil, err
	}

	law1, err := limbdark.Parse(law, p.LD1[:])
	if err != nil {
		return nil, err
	}
	law2, err := limbdark.Parse(law, p.LD2[:])
	if err != nil {
		return nil, err
	}

	r1, r2 := p.Radii()
	l1, l2 := p.Luminosities()

	m, err := lightcurve.NewModel(el, lightcurve.Pair{
		Primary:   lightcurve.Component{Radius: r1, Law: law1, Luminosity: l1},
		Secondary: lightcurve.Component{Radius: r2, Law: law2, Luminosity: l2},
	})
	if err != nil {
		return nil, err
	}
	m.Solver = solver
	m.FlatGeometry = flat
	return m, nil
}

// Validate checks that the parameterization can produce a model.
func (p Params) Validate() error {
	if p.SumRadii <= 0 || p.SumRadii >= 1 {
		return fmt.Errorf("fit: sum of radii %g outside (0,1)", p.SumRadii)
	}
	if p.RadiusRatio <= 0 {
		return fmt.Errorf("fit: radius ratio %g must be positive", p.RadiusRatio)
	}
	if p.LumRatio < 0 {
		return fmt.Errorf("fit: luminosity ratio %g must be non-negative", p.LumRatio)
	}
	return nil
}
