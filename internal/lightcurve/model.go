package lightcurve

import (
	"errors"
	"fmt"
	"math"

	"github.com/kmorven/deborbit/internal/eclipse"
	"github.com/kmorven/deborbit/internal/limbdark"
	"github.com/kmorven/deborbit/internal/orbit"
)

// ErrPair indicates a stellar pair that fails validation.
var ErrPair = errors.New("lightcurve: invalid stellar pair")

// Component is one star of the binary. Radius shares the unit of the
// orbital semi-major axis; Luminosity is the star's fraction of the
// combined out-of-eclipse flux.
type Component struct {
	Radius     float64
	Law        limbdark.Law
	Luminosity float64
}

// Pair is the two stellar components: index 0 is the primary (the
// brighter star by convention). Immutable once handed to a Model.
type Pair struct {
	Primary   Component
	Secondary Component
}

func (p Pair) Validate() error {
	if p.Primary.Radius <= 0 || p.Secondary.Radius <= 0 {
		return fmt.Errorf("%w: radii must be positive", ErrPair)
	}
	if p.Primary.Luminosity < 0 || p.Secondary.Luminosity < 0 {
		return fmt.Errorf("%w: luminosities must be non-negative", ErrPair)
	}
	if sum := p.Primary.Luminosity + p.Secondary.Luminosity; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: luminosities sum to %g, want 1", ErrPair, sum)
	}
	if p.Primary.Law == nil || p.Secondary.Law == nil {
		return fmt.Errorf("%w: missing limb-darkening law", ErrPair)
	}
	return nil
}

// Model is the forward light-curve model: orbital elements plus the
// stellar pair. A Model is immutable and safe for concurrent use.
type Model struct {
	Elements orbit.Elements
	Pair     Pair
	Solver   orbit.SolverConfig

	// FlatGeometry replaces both limb-darkening laws with a uniform
	// disk for speed. It must be selected explicitly; the model never
	// falls back to it on its own.
	FlatGeometry bool
}

// NewModel validates the inputs and returns a forward model.
func NewModel(el orbit.Elements, pair Pair) (*Model, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	return &Model{Elements: el, Pair: pair, Solver: orbit.DefaultSolverConfig()}, nil
}

// EventAt returns the eclipse geometry at time t: which kind of eclipse
// (if any) is in progress and how much of the occulted disk is covered.
func (m *Model) EventAt(t float64) (eclipse.Event, orbit.Position, error) {
	pos, err := m.Elements.PositionAt(t, m.Solver)
	if err != nil {
		return eclipse.Event{}, orbit.Position{}, err
	}

	occ, fore := m.occultedAt(pos)
	return eclipse.Overlap(pos.Separation, occ.Radius, fore.Radius), pos, nil
}

// Flux evaluates the normalized system flux at time t. Out of eclipse
// the flux is exactly 1; during eclipse the occulted star's blocked
// flux, weighted by its luminosity fraction, is subtracted.
func (m *Model) Flux(t float64) (float64, error) {
	pos, err := m.Elements.PositionAt(t, m.Solver)
	if err != nil {
		return 0, err
	}

	occ, fore := m.occultedAt(pos)
	if pos.Separation >= occ.Radius+fore.Radius {
		return 1, nil
	}

	law := occ.Law
	if m.FlatGeometry {
		law = limbdark.Uniform{}
	}

	blocked := limbdark.BlockedFlux(law, pos.Separation, occ.Radius, fore.Radius)
	return 1 - blocked*occ.Luminosity, nil
}

// occultedAt picks the occulted and foreground components from the
// line-of-sight ordering: when the secondary is in front the primary
// is eclipsed (a primary eclipse), and vice versa.
func (m *Model) occultedAt(pos orbit.Position) (occ, fore Component) {
	if pos.InFront() {
		return m.Pair.Primary, m.Pair.Secondary
	}
	return m.Pair.Secondary, m.Pair.Primary
}

// Evaluate computes the model flux at every time, parallelizing across
// samples for large curves. The per-sample evaluations are independent.
func (m *Model) Evaluate(times []float64) ([]float64, error) {
	fluxes := make([]float64, len(times))
	errs := make([]error, len(times))

	parallelFor(len(times), 256, func(start, end int) {
		for i := start; i < end; i++ {
			fluxes[i], errs[i] = m.Flux(times[i])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return fluxes, nil
}
