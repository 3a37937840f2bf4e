package fit

import (
	"context"
	"math"

	"github.com/kmorven/deborbit/internal/lightcurve"
)

// Scan evaluates the forward model over a parameter grid and returns
// the chi-square-best combination. It is the coarse seeding stage run
// before Fit when the initial guess is poor: grid values replace the
// named parameters of base one combination at a time.
func Scan(ctx context.Context, base Params, curve lightcurve.Curve, opts Options,
	names []string, ranges [][]float64) (Params, float64, error) {

	opts = opts.withDefaults()
	if err := validateCurve(curve); err != nil {
		return Params{}, 0, err
	}

	st := lmState{curve: curve, opts: opts}

	best := base
	bestChi2 := math.Inf(1)

	var walk func(depth int, current Params) error
	walk = func(depth int, current Params) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if depth == len(names) {
			current.clamp()
			chi2, err := st.chiSquare(current)
			if err != nil || math.IsNaN(chi2) {
				// An unphysical grid point is skipped, not fatal.
				return nil
			}
			if chi2 < bestChi2 {
				bestChi2 = chi2
				best = current
			}
			return nil
		}
		for _, v := range ranges[depth] {
			next := current
			next.setValue(names[depth], v)
			if err := walk(depth+1, next); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(0, base); err != nil {
		return Params{}, 0, err
	}
	return best, bestChi2, nil
}
