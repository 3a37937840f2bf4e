package lightcurve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrOrder indicates light-curve samples whose times are not
// non-decreasing.
var ErrOrder = errors.New("lightcurve: sample times must be non-decreasing")

// Sample is one photometric observation: time [days], normalized flux
// and its 1-sigma uncertainty.
type Sample struct {
	Time    float64
	Flux    float64
	FluxErr float64
}

// Curve is an ordered sequence of samples. It is consumed read-only by
// the estimator; callers own the backing slice.
type Curve []Sample

func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Validate checks the ordering invariant. Per-sample value checks
// (finite flux, positive uncertainty) belong to the consumer, which
// reports the offending index.
func (c Curve) Validate() error {
	for i := 1; i < len(c); i++ {
		if c[i].Time < c[i-1].Time {
			return fmt.Errorf("%w: sample %d at t=%g after t=%g", ErrOrder, i, c[i].Time, c[i-1].Time)
		}
	}
	return nil
}

func (c Curve) Times() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.Time
	}
	return out
}

func (c Curve) Fluxes() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.Flux
	}
	return out
}

// Fold converts sample times to orbital phase in [0, 1) for the given
// period and epoch, returning a phase-sorted copy. Useful for
// inspecting eclipse shapes regardless of when the samples were taken.
func (c Curve) Fold(period, epoch float64) Curve {
	folded := c.Clone()
	for i := range folded {
		ph := math.Mod((folded[i].Time-epoch)/period, 1)
		if ph < 0 {
			ph += 1
		}
		// A whole number of periods from the epoch leaves a phase a few
		// ulps under 1; that is phase 0, not the end of the cycle.
		if 1-ph < 1e-9 {
			ph = 0
		}
		folded[i].Time = ph
	}

	sort.Slice(folded, func(i, j int) bool { return folded[i].Time < folded[j].Time })
	return folded
}
