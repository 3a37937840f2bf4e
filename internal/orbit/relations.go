package orbit

import (
	"math"

	"github.com/kmorven/deborbit/internal/phys"
	"github.com/kmorven/deborbit/internal/uncert"
)

// Closed-form orbital relations over uncertainty-carrying values.
// Because G carries an uncertainty, results derived from it always do too.

const fourPiSquared = 4 * math.Pi * math.Pi

// OrbitalPeriod computes the period from the component masses and the
// semi-major axis via Kepler's third law: P² = 4π²a³ / G(m1+m2).
// Masses in kg, a in m, result in seconds.
func OrbitalPeriod(m1, m2, a uncert.Value) uncert.Value {
	return a.Pow(3).Scale(fourPiSquared).Div(phys.G.Mul(m1.Add(m2))).Pow(0.5)
}

// SemiMajorAxis inverts Kepler's third law: a³ = G(m1+m2)P² / 4π².
// Masses in kg, period in s, result in m.
func SemiMajorAxis(m1, m2, period uncert.Value) uncert.Value {
	return phys.G.Mul(m1.Add(m2)).Mul(period.Pow(2)).Scale(1 / fourPiSquared).Pow(1.0 / 3)
}

// ImpactParameter computes the primary (or, when secondary is true, the
// secondary) eclipse impact parameter from the primary star's fractional
// radius r1, the inclination [deg], the eccentricity and the e·sin(ω)
// Poincaré element:
//
//	b_pri = (1/r1)·cos(i)·(1-e²)/(1+esinw)
//	b_sec = (1/r1)·cos(i)·(1-e²)/(1-esinw)
func ImpactParameter(r1, inc, e, esinw uncert.Value, secondary bool) uncert.Value {
	dividend := uncert.Exact(1).Div(r1).
		Mul(uncert.Cos(uncert.Radians(inc))).
		Mul(uncert.Exact(1).Sub(e.Pow(2)))
	if secondary {
		return dividend.Div(uncert.Exact(1).Sub(esinw))
	}
	return dividend.Div(uncert.Exact(1).Add(esinw))
}

// OrbitalInclination recovers the inclination [deg] from an impact
// parameter, inverting ImpactParameter for the chosen eclipse.
func OrbitalInclination(r1, b, e, esinw uncert.Value, secondary bool) uncert.Value {
	dividend := uncert.Exact(1).Sub(esinw)
	if !secondary {
		dividend = uncert.Exact(1).Add(esinw)
	}
	arg := b.Mul(r1).Mul(dividend).Div(uncert.Exact(1).Sub(e.Pow(2)))
	return uncert.Degrees(uncert.Acos(arg))
}

// RatioOfEclipseDuration approximates the ratio of eclipse durations
// dS/dP from e·sin(ω). Hilditch (2001) eqn 5.69 reworked for dS/dP.
func RatioOfEclipseDuration(esinw uncert.Value) uncert.Value {
	return esinw.Add(uncert.Exact(1)).Div(uncert.Exact(1).Sub(esinw))
}

// PhaseOfSecondaryEclipse gives the expected normalized phase of the
// secondary eclipse from e·cos(ω) and the eccentricity. Hilditch (2001)
// eqns 5.67/5.68 with P=1 and the primary at phase 0:
//
//	phi_sec = (X - sin X)/2π, X = π + 2·atan(ecosw/√(1-e²))
func PhaseOfSecondaryEclipse(ecosw, e uncert.Value) uncert.Value {
	x := uncert.Atan(ecosw.Div(uncert.Exact(1).Sub(e.Pow(2)).Pow(0.5))).
		Scale(2).Add(uncert.Exact(math.Pi))
	return x.Sub(uncert.Sin(x)).Scale(1 / (2 * math.Pi))
}
