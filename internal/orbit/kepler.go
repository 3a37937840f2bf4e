package orbit

import (
	"fmt"
	"math"
)

// SolverConfig bounds the Kepler iteration. Tolerances are passed
// explicitly per call so concurrent fits with different settings
// cannot interfere.
type SolverConfig struct {
	Tolerance     float64 // convergence threshold on |E - e·sinE - M| [rad]
	MaxIterations int
}

func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     1e-10,
		MaxIterations: 50,
	}
}

func (c SolverConfig) withDefaults() SolverConfig {
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-10
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 50
	}
	return c
}

// ConvergenceError reports a Kepler iteration that failed to reach the
// configured tolerance, including the bisection fallback.
type ConvergenceError struct {
	MeanAnomaly  float64
	Eccentricity float64
	Residual     float64
	Iterations   int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("orbit: Kepler solver did not converge for M=%.6f e=%.6f after %d iterations (residual %.3e)",
		e.MeanAnomaly, e.Eccentricity, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the
// eccentric anomaly E by Newton-Raphson from E0 = M + e·sin(M). If the
// iteration stalls it falls back to bisection over [M-e, M+e], where
// the residual function is monotone, before surfacing a
// *ConvergenceError.
func SolveKepler(m, ecc float64, cfg SolverConfig) (float64, error) {
	cfg = cfg.withDefaults()

	m = math.Mod(m, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}

	if ecc == 0 {
		return m, nil
	}

	e := m + ecc*math.Sin(m)
	residual := math.Inf(1)
	for i := 0; i < cfg.MaxIterations; i++ {
		f := e - ecc*math.Sin(e) - m
		residual = math.Abs(f)
		if residual < cfg.Tolerance {
			return e, nil
		}
		e -= f / (1 - ecc*math.Cos(e))
	}

	if e, ok := bisectKepler(m, ecc, cfg.Tolerance); ok {
		return e, nil
	}

	return e, &ConvergenceError{
		MeanAnomaly:  m,
		Eccentricity: ecc,
		Residual:     residual,
		Iterations:   cfg.MaxIterations,
	}
}

// bisectKepler brackets E in [M-e, M+e]; f(E) = E - e·sinE - M is
// strictly increasing there so the bracket always contains the root.
func bisectKepler(m, ecc, tol float64) (float64, bool) {
	lo, hi := m-ecc, m+ecc
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		f := mid - ecc*math.Sin(mid) - m
		if math.Abs(f) < tol {
			return mid, true
		}
		if f < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, false
}
