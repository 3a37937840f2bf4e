package orbit

import "errors"

// Domain errors for orbital computations.
var (
	// ErrConvergence indicates the Kepler solver failed to converge.
	ErrConvergence = errors.New("orbit: Kepler solver convergence failure")

	// ErrEccentricity indicates an eccentricity outside [0, 1).
	ErrEccentricity = errors.New("orbit: unbound orbit")

	// ErrElements indicates orbital elements that fail validation.
	ErrElements = errors.New("orbit: invalid orbital elements")
)
