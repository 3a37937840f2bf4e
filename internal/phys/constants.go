// Package phys holds physical constants from the IAU 2015 recommendations.
//
// Constants with a measured uncertainty (such as G) are expressed as
// uncert.Value so the uncertainty propagates into every derived quantity.
package phys

import "github.com/kmorven/deborbit/internal/uncert"

var (
	// G is the Newtonian constant of gravitation [m^3 kg^-1 s^-2]
	// (CODATA 2018 value and standard uncertainty).
	G = uncert.New(6.67430e-11, 1.5e-15)

	// MSun is the nominal solar mass [kg]: the IAU 2015 nominal solar
	// mass parameter GM divided by the CODATA G.
	MSun = uncert.New(1.98841e30, 4.5e25)

	// RSun is the nominal solar radius [m].
	RSun = uncert.New(6.957e8, 1.4e5)
)

const (
	// AU is the astronomical unit [m] (exact by IAU 2012 definition).
	AU = 1.495978707e11

	// SecondsPerDay converts days to SI seconds.
	SecondsPerDay = 86400.0
)
