package orbit

import (
	"fmt"
	"math"
)

// Elements describes a bound Keplerian orbit. Angles are in radians,
// times in days and the semi-major axis in whatever length unit the
// caller uses for stellar radii (commonly 1.0, so radii are fractional).
type Elements struct {
	Period    float64 // orbital period [days]
	Epoch     float64 // time of periastron passage [days]
	Ecc       float64 // eccentricity, in [0, 1)
	Omega     float64 // argument of periastron [rad]
	Inc       float64 // inclination [rad], pi/2 is edge-on
	SemiMajor float64 // semi-major axis [separation units]
}

// NewElements validates and returns orbital elements.
// Eccentricity outside [0, 1) or a non-positive period is a construction
// error: the model only handles bound orbits.
func NewElements(period, epoch, ecc, omega, inc, semiMajor float64) (Elements, error) {
	el := Elements{
		Period:    period,
		Epoch:     epoch,
		Ecc:       ecc,
		Omega:     omega,
		Inc:       inc,
		SemiMajor: semiMajor,
	}
	if err := el.Validate(); err != nil {
		return Elements{}, err
	}
	return el, nil
}

func (el Elements) Validate() error {
	switch {
	case math.IsNaN(el.Period) || el.Period <= 0:
		return fmt.Errorf("%w: period %g", ErrElements, el.Period)
	case math.IsNaN(el.Ecc) || el.Ecc < 0 || el.Ecc >= 1:
		return fmt.Errorf("%w: eccentricity %g outside [0,1)", ErrEccentricity, el.Ecc)
	case math.IsNaN(el.Inc) || el.Inc < 0 || el.Inc > math.Pi/2:
		return fmt.Errorf("%w: inclination %g outside [0,pi/2]", ErrElements, el.Inc)
	case math.IsNaN(el.SemiMajor) || el.SemiMajor <= 0:
		return fmt.Errorf("%w: semi-major axis %g", ErrElements, el.SemiMajor)
	}
	return nil
}

// MeanAnomalyAt returns the mean anomaly at time t [days], normalized
// to [0, 2*pi).
func (el Elements) MeanAnomalyAt(t float64) float64 {
	m := 2 * math.Pi * (t - el.Epoch) / el.Period
	m = math.Mod(m, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}

// Position is the instantaneous sky-plane geometry of the secondary
// relative to the primary.
type Position struct {
	TrueAnomaly float64 // [rad]
	Separation  float64 // projected sky-plane separation [semi-major units]
	LOS         float64 // line-of-sight coordinate, positive toward observer
}

// InFront reports true when the secondary is nearer the observer than
// the primary, so the primary disk is the one being occulted. The sign
// matches the radial-velocity convention: a positive LOS coordinate
// means the secondary is approaching conjunction in front.
func (p Position) InFront() bool {
	return p.LOS > 0
}

// PositionAt solves the orbit at time t and projects it onto the sky.
//
// The projected separation is r*sqrt(cos²(ν+ω) + sin²(ν+ω)cos²i) with
// r = a(1-e²)/(1+e·cos ν). For a face-on orbit (i = 0) the projection
// degenerates to the full orbital radius, which never drops below
// a(1-e), so the geometry naturally reports "no eclipse" downstream
// rather than failing.
func (el Elements) PositionAt(t float64, cfg SolverConfig) (Position, error) {
	ea, err := SolveKepler(el.MeanAnomalyAt(t), el.Ecc, cfg)
	if err != nil {
		return Position{}, err
	}

	nu := TrueAnomaly(ea, el.Ecc)
	r := el.SemiMajor * (1 - el.Ecc*el.Ecc) / (1 + el.Ecc*math.Cos(nu))

	sinU, cosU := math.Sincos(nu + el.Omega)
	cosI := math.Cos(el.Inc)
	sinI := math.Sin(el.Inc)

	return Position{
		TrueAnomaly: nu,
		Separation:  r * math.Sqrt(cosU*cosU+sinU*sinU*cosI*cosI),
		LOS:         r * sinU * sinI,
	}, nil
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly.
func TrueAnomaly(ea, ecc float64) float64 {
	sinHalf, cosHalf := math.Sincos(ea / 2)
	return 2 * math.Atan2(math.Sqrt(1+ecc)*sinHalf, math.Sqrt(1-ecc)*cosHalf)
}
