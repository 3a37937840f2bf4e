// Package stellar provides relations between bulk stellar properties
// and the observables the light-curve model consumes.
package stellar

import (
	"math"

	"github.com/kmorven/deborbit/internal/phys"
	"github.com/kmorven/deborbit/internal/uncert"
)

// CODATA 2018 defining constants (exact in SI).
const (
	planck    = 6.62607015e-34 // J s
	lightSpd  = 2.99792458e8   // m/s
	boltzmann = 1.380649e-23   // J/K
)

// LogG computes the surface gravity log10(g [cgs]) of a body from its
// mass [kg] and radius [m]. G carries a measured uncertainty, so the
// result always has a non-zero standard error even for exact inputs.
func LogG(mass, radius uncert.Value) uncert.Value {
	// g = Gm/r^2 [m/s^2], converted to cgs [cm/s^2] before the log.
	g := phys.G.Mul(mass).Div(radius.Mul(radius)).Scale(100)
	return uncert.Log10(g)
}

// BlackBodySpectralRadiance evaluates Planck's law for a black body of
// effective temperature teff [K] at wavelength lambda [nm], returning
// the spectral radiance [W sr^-1 m^-3].
func BlackBodySpectralRadiance(teff uncert.Value, lambdaNM float64) uncert.Value {
	lm := lambdaNM * 1e-9

	c1 := 2 * planck * lightSpd * lightSpd / math.Pow(lm, 5)
	c2 := planck * lightSpd / (lm * boltzmann)

	denom := uncert.Exp(uncert.Exact(c2).Div(teff)).Sub(uncert.Exact(1))
	return uncert.Exact(c1).Div(denom)
}
