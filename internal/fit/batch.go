package fit

import (
	"context"
	"sync"

	"github.com/kmorven/deborbit/internal/lightcurve"
)

// Job pairs one light curve with its initial guess and options.
type Job struct {
	Guess Params
	Curve lightcurve.Curve
	Opts  Options
}

// FitBatch runs independent fits concurrently, one goroutine per
// curve. Fit runs share no state, so batching many binaries is
// embarrassingly parallel. Results and errors are positional; a failed
// job does not abort its siblings.
func FitBatch(ctx context.Context, jobs []Job) ([]*Result, []error) {
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = Fit(ctx, jobs[idx].Guess, jobs[idx].Curve, jobs[idx].Opts)
		}(i)
	}
	wg.Wait()

	return results, errs
}
