// Package analysis provides period search over observed photometry.
package analysis

import (
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/kmorven/deborbit/internal/lightcurve"
)

var ErrPeriodRange = errors.New("analysis: invalid period search range")

// Periodogram is the result of a phase-dispersion scan: one theta
// statistic per trial period. Lower theta means the fold at that period
// orders the samples into a cleaner curve.
type Periodogram struct {
	Periods []float64
	Theta   []float64
}

// Best returns the trial period with the lowest dispersion statistic.
func (p *Periodogram) Best() (period, theta float64) {
	period, theta = p.Periods[0], p.Theta[0]
	for i := range p.Periods {
		if p.Theta[i] < theta {
			period, theta = p.Periods[i], p.Theta[i]
		}
	}
	return period, theta
}

// SearchPeriod scans trial periods between minPeriod and maxPeriod by
// phase dispersion minimization: each trial folds the curve, bins the
// phases, and compares the within-bin flux variance to the overall
// variance. Trial periods are independent, so the scan runs across all
// CPUs.
func SearchPeriod(curve lightcurve.Curve, minPeriod, maxPeriod float64, steps, bins int) (*Periodogram, error) {
	if len(curve) < 4 {
		return nil, errors.New("analysis: too few samples for a period search")
	}
	if minPeriod <= 0 || maxPeriod <= minPeriod || steps < 2 {
		return nil, ErrPeriodRange
	}
	if bins < 2 {
		bins = 10
	}

	pg := &Periodogram{
		Periods: make([]float64, steps),
		Theta:   make([]float64, steps),
	}
	step := (maxPeriod - minPeriod) / float64(steps-1)
	for i := range pg.Periods {
		pg.Periods[i] = minPeriod + float64(i)*step
	}

	total := totalVariance(curve)
	if total == 0 {
		return nil, errors.New("analysis: constant flux carries no period signal")
	}

	workers := runtime.NumCPU()
	if workers > steps {
		workers = steps
	}
	chunk := (steps + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > steps {
			end = steps
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				pg.Theta[i] = dispersion(curve, pg.Periods[i], bins) / total
			}
		}(start, end)
	}
	wg.Wait()

	return pg, nil
}

func totalVariance(curve lightcurve.Curve) float64 {
	var mean float64
	for _, s := range curve {
		mean += s.Flux
	}
	mean /= float64(len(curve))

	var sum float64
	for _, s := range curve {
		d := s.Flux - mean
		sum += d * d
	}
	return sum / float64(len(curve)-1)
}

// dispersion is the pooled within-bin variance of the flux after
// folding at the trial period.
func dispersion(curve lightcurve.Curve, period float64, bins int) float64 {
	sums := make([]float64, bins)
	sqSums := make([]float64, bins)
	counts := make([]int, bins)

	for _, s := range curve {
		ph := math.Mod(s.Time/period, 1)
		if ph < 0 {
			ph += 1
		}
		b := int(ph * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		sums[b] += s.Flux
		sqSums[b] += s.Flux * s.Flux
		counts[b]++
	}

	var pooled float64
	var dof int
	for b := 0; b < bins; b++ {
		if counts[b] < 2 {
			continue
		}
		n := float64(counts[b])
		pooled += sqSums[b] - sums[b]*sums[b]/n
		dof += counts[b] - 1
	}
	if dof == 0 {
		return math.Inf(1)
	}
	return pooled / float64(dof)
}
