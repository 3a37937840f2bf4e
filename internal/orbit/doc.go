// Package orbit solves Keplerian orbital motion for eclipsing binary
// modeling: Kepler's equation, anomaly conversions, projected sky-plane
// separation and line-of-sight ordering of the two components.
//
// It also publishes the closed-form orbital relations used to translate
// between observable and physical quantities (Kepler's third law, impact
// parameters, eclipse timing), expressed over [uncert.Value] so that
// measurement uncertainties propagate through automatically.
package orbit
