// Package lightcurve defines photometric light-curve data types and the
// forward model that predicts the normalized flux of an eclipsing
// binary from orbital elements and stellar parameters.
//
// The forward model composes the orbit solver (projected separation and
// line-of-sight ordering), the eclipse geometry (disk overlap) and the
// limb-darkening flux integral:
//
//	m, _ := lightcurve.NewModel(elements, pair)
//	flux, _ := m.Flux(t)
//
// Models are immutable after construction and safe to evaluate from
// multiple goroutines.
package lightcurve
