package fit_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kmorven/deborbit/internal/fit"
	"github.com/kmorven/deborbit/internal/lightcurve"
	"github.com/kmorven/deborbit/internal/orbit"
)

// trueParams is an asymmetric detached pair: unequal radii and
// luminosities so the geometric parameters are well separated.
func trueParams() fit.Params {
	return fit.Params{
		Period:      1,
		Epoch:       0,
		Ecc:         0,
		Omega:       math.Pi / 2,
		Inc:         89 * math.Pi / 180,
		SumRadii:    0.2,
		RadiusRatio: 0.8,
		LumRatio:    0.4,
		LD1:         [2]float64{0.5, 0},
		LD2:         [2]float64{0.45, 0},
	}
}

func linearOpts() fit.Options {
	return fit.Options{
		Law: "linear",
		Fixed: []string{
			fit.ParamPeriod, fit.ParamEpoch, fit.ParamEcc, fit.ParamOmega,
			fit.ParamLD1A, fit.ParamLD2A,
		},
	}
}

// synthCurve generates an observed curve from the true parameters.
func synthCurve(noise float64, seed int64, sigma float64) lightcurve.Curve {
	p := trueParams()
	model, err := p.Model("linear", false, orbit.DefaultSolverConfig())
	Expect(err).NotTo(HaveOccurred())

	times := lightcurve.UniformTimes(0, 1, 400)
	curve, err := lightcurve.Synthesize(model, times, noise, seed)
	Expect(err).NotTo(HaveOccurred())

	if sigma > 0 {
		for i := range curve {
			curve[i].FluxErr = sigma
		}
	}
	return curve
}

var _ = Describe("Fit", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("zero-noise round trip", func() {
		It("recovers the true parameters from a near-true guess", func() {
			curve := synthCurve(0, 1, 1e-4)

			guess := trueParams()
			guess.Inc += 0.3 * math.Pi / 180
			guess.SumRadii = 0.21
			guess.RadiusRatio = 0.85
			guess.LumRatio = 0.45

			res, err := fit.Fit(ctx, guess, curve, linearOpts())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(fit.Converged))

			truth := trueParams()
			Expect(res.Params.Inc).To(BeNumerically("~", truth.Inc, 1e-3))
			Expect(res.Params.SumRadii).To(BeNumerically("~", truth.SumRadii, 1e-3))
			Expect(res.Params.RadiusRatio).To(BeNumerically("~", truth.RadiusRatio, 5e-3))
			Expect(res.Params.LumRatio).To(BeNumerically("~", truth.LumRatio, 5e-3))
		})
	})

	Describe("determinism", func() {
		It("returns identical results for identical inputs", func() {
			curve := synthCurve(0.002, 7, 0.002)
			guess := trueParams()
			guess.SumRadii = 0.22

			first, err := fit.Fit(ctx, guess, curve, linearOpts())
			Expect(err).NotTo(HaveOccurred())
			second, err := fit.Fit(ctx, guess, curve, linearOpts())
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Params).To(Equal(first.Params))
			Expect(second.Sigma).To(Equal(first.Sigma))
			Expect(second.ReducedChiSq).To(Equal(first.ReducedChiSq))
			Expect(second.Iterations).To(Equal(first.Iterations))
		})
	})

	Describe("noisy data", func() {
		It("converges and reports positive uncertainties for free parameters", func() {
			curve := synthCurve(0.002, 11, 0.002)
			guess := trueParams()
			guess.Inc -= 0.5 * math.Pi / 180
			guess.SumRadii = 0.19

			res, err := fit.Fit(ctx, guess, curve, linearOpts())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(fit.Converged))

			for _, name := range res.Free {
				Expect(res.Sigma[name]).To(BeNumerically(">", 0),
					"expected positive sigma for %s", name)
			}

			// chi-square per degree of freedom should be near 1 when the
			// stated uncertainty matches the injected noise.
			Expect(res.ReducedChiSq).To(BeNumerically("~", 1.0, 0.4))
		})
	})

	Describe("input validation", func() {
		It("rejects a sample with zero flux uncertainty, naming the index", func() {
			curve := synthCurve(0, 1, 1e-4)
			curve[7].FluxErr = 0

			_, err := fit.Fit(ctx, trueParams(), curve, linearOpts())
			Expect(err).To(MatchError(fit.ErrInvalidSample))

			var ise *fit.InvalidSampleError
			Expect(errors.As(err, &ise)).To(BeTrue())
			Expect(ise.Index).To(Equal(7))
		})

		It("rejects non-finite flux", func() {
			curve := synthCurve(0, 1, 1e-4)
			curve[3].Flux = math.NaN()

			_, err := fit.Fit(ctx, trueParams(), curve, linearOpts())
			Expect(err).To(MatchError(fit.ErrInvalidSample))

			var ise *fit.InvalidSampleError
			Expect(errors.As(err, &ise)).To(BeTrue())
			Expect(ise.Index).To(Equal(3))
		})

		It("rejects out-of-order sample times", func() {
			curve := synthCurve(0, 1, 1e-4)
			curve[10].Time = curve[9].Time - 0.1

			_, err := fit.Fit(ctx, trueParams(), curve, linearOpts())
			Expect(err).To(MatchError(lightcurve.ErrOrder))
		})

		It("rejects an unknown fixed-parameter name", func() {
			curve := synthCurve(0, 1, 1e-4)
			opts := linearOpts()
			opts.Fixed = append(opts.Fixed, "albedo")

			_, err := fit.Fit(ctx, trueParams(), curve, opts)
			Expect(err).To(MatchError(fit.ErrUnknownParam))
		})

		It("fails when every parameter is fixed", func() {
			curve := synthCurve(0, 1, 1e-4)
			opts := linearOpts()
			opts.Fixed = fit.AllParams

			_, err := fit.Fit(ctx, trueParams(), curve, opts)
			Expect(err).To(MatchError(fit.ErrNoFreeParams))
		})
	})

	Describe("iteration budget", func() {
		It("reports MaxIterations as a terminal state, not an error", func() {
			curve := synthCurve(0.005, 3, 0.005)
			guess := trueParams()
			guess.SumRadii = 0.25
			guess.Inc -= 1.5 * math.Pi / 180

			opts := linearOpts()
			opts.MaxIterations = 1

			res, err := fit.Fit(ctx, guess, curve, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(fit.MaxIterations))
			Expect(res.Iterations).To(Equal(1))
		})
	})

	Describe("degenerate geometry", func() {
		It("surfaces a singular system when the curve carries no eclipse information", func() {
			// Nearly face-on: no eclipses, so the shape parameters have
			// zero sensitivity and the normal matrix has no rank.
			p := trueParams()
			p.Inc = 0.2

			model, err := p.Model("linear", false, orbit.DefaultSolverConfig())
			Expect(err).NotTo(HaveOccurred())
			curve, err := lightcurve.Synthesize(model, lightcurve.UniformTimes(0, 1, 100), 0, 5)
			Expect(err).NotTo(HaveOccurred())

			guess := p
			_, err = fit.Fit(ctx, guess, curve, linearOpts())
			Expect(err).To(MatchError(fit.ErrSingular))

			var sse *fit.SingularSystemError
			Expect(errors.As(err, &sse)).To(BeTrue())
			Expect(sse.Condition).To(BeNumerically(">", 0))
		})
	})

	Describe("cancellation", func() {
		It("stops between iterations when the context is canceled", func() {
			curve := synthCurve(0.002, 9, 0.002)
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := fit.Fit(canceled, trueParams(), curve, linearOpts())
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})

var _ = Describe("Scan", func() {
	It("seeds the fit near the chi-square minimum", func() {
		curve := synthCurve(0.001, 13, 0.001)

		base := trueParams()
		base.SumRadii = 0.1 // deliberately poor
		base.Inc = 80 * math.Pi / 180

		best, chi2, err := fit.Scan(context.Background(), base, curve, linearOpts(),
			[]string{fit.ParamSumRadii, fit.ParamInc},
			[][]float64{
				{0.1, 0.15, 0.2, 0.25},
				{80 * math.Pi / 180, 85 * math.Pi / 180, 89 * math.Pi / 180},
			})
		Expect(err).NotTo(HaveOccurred())

		Expect(best.SumRadii).To(Equal(0.2))
		Expect(best.Inc).To(Equal(89 * math.Pi / 180))
		Expect(chi2).To(BeNumerically(">", 0))
	})
})

var _ = Describe("FitBatch", func() {
	It("fits independent curves concurrently with positional results", func() {
		good := synthCurve(0.002, 21, 0.002)
		bad := synthCurve(0, 1, 1e-4)
		bad[0].FluxErr = 0

		jobs := []fit.Job{
			{Guess: trueParams(), Curve: good, Opts: linearOpts()},
			{Guess: trueParams(), Curve: bad, Opts: linearOpts()},
		}

		results, errs := fit.FitBatch(context.Background(), jobs)
		Expect(results).To(HaveLen(2))

		Expect(errs[0]).NotTo(HaveOccurred())
		Expect(results[0].Status).To(Equal(fit.Converged))

		Expect(errs[1]).To(MatchError(fit.ErrInvalidSample))
		Expect(results[1]).To(BeNil())
	})
})
