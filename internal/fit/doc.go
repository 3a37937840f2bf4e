// Package fit estimates eclipsing-binary parameters from observed
// light curves by weighted nonlinear least squares.
//
// The estimator wraps the forward model of [lightcurve] in a
// Levenberg-Marquardt refinement loop: at each iteration the model is
// evaluated at every sample time, residuals are weighted by the inverse
// flux variance and a damped Gauss-Newton step updates the free
// parameters. 1-sigma parameter uncertainties come from the covariance
// of the fit.
//
// Running out of iterations is a reported terminal state, not an
// error; malformed samples and singular normal equations are errors
// carrying diagnostics. Fits are deterministic: identical inputs give
// identical results.
package fit
