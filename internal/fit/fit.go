package fit

import (
	"context"
	"fmt"
	"math"

	"github.com/kmorven/deborbit/internal/lightcurve"
	"github.com/kmorven/deborbit/internal/orbit"
)

// Status is the terminal state of an estimation run.
type Status int

const (
	Converged Status = iota
	MaxIterations
	Failed
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterations:
		return "maxIterationsReached"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures an estimation run. Zero values receive defaults.
type Options struct {
	Law           string   // limb-darkening law name; default "none"
	FlatGeometry  bool     // explicit uniform-disk mode
	Tolerance     float64  // relative reduced-chi-square change; default 1e-6
	MaxIterations int      // default 200
	Fixed         []string // parameter names held constant
	Kepler        orbit.SolverConfig

	// OnIteration, when set, observes each accepted step. The callback
	// runs on the fitting goroutine and should return quickly.
	OnIteration func(iteration int, chiSq float64, current Params)
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-6
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 200
	}
	if o.Law == "" {
		o.Law = "none"
	}
	if o.Kepler == (orbit.SolverConfig{}) {
		o.Kepler = orbit.DefaultSolverConfig()
	}
	return o
}

// Result is the immutable outcome of one estimation run.
type Result struct {
	Params       Params
	Sigma        map[string]float64 // 1-sigma uncertainty per free parameter
	ReducedChiSq float64
	Iterations   int
	Status       Status
	Free         []string
}

// Fit refines the initial guess against the observed curve by damped
// Gauss-Newton (Levenberg-Marquardt) iteration on the weighted
// residuals. Parameter uncertainties come from the diagonal of the
// inverse weighted normal matrix at the solution, scaled by the reduced
// chi-square.
//
// Exhausting the iteration budget is not an error: the Result comes
// back with Status MaxIterations and the caller decides. Malformed
// samples and singular systems are errors and carry diagnostics.
func Fit(ctx context.Context, guess Params, curve lightcurve.Curve, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := validateCurve(curve); err != nil {
		return nil, err
	}
	if err := guess.Validate(); err != nil {
		return nil, err
	}

	free, err := freeParams(opts)
	if err != nil {
		return nil, err
	}

	st := lmState{
		params: guess,
		free:   free,
		curve:  curve,
		opts:   opts,
		lambda: 1e-3,
	}
	st.params.clamp()

	chi2, err := st.chiSquare(st.params)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(chi2) || math.IsInf(chi2, 0) {
		return &Result{Params: st.params, Status: Failed, Free: free}, nil
	}

	status := MaxIterations
	iters := 0
	for iter := 0; iter < opts.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iters = iter + 1

		improved, newChi2, err := st.step(chi2)
		if err != nil {
			return nil, err
		}
		if !improved {
			// No downhill step exists at any damping: a local minimum
			// to numerical precision.
			status = Converged
			break
		}

		rel := math.Abs(chi2-newChi2) / math.Max(chi2, 1e-300)
		chi2 = newChi2
		if opts.OnIteration != nil {
			opts.OnIteration(iters, chi2, st.params)
		}
		if rel < opts.Tolerance {
			status = Converged
			break
		}
	}

	dof := len(curve) - len(free)
	if dof < 1 {
		dof = 1
	}
	redChi2 := chi2 / float64(dof)

	sigma, err := st.uncertainties(redChi2)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params:       st.params,
		Sigma:        sigma,
		ReducedChiSq: redChi2,
		Iterations:   iters,
		Status:       status,
		Free:         free,
	}, nil
}

// lmState is the explicit sequential state of one refinement run:
// current estimate and damping factor.
type lmState struct {
	params Params
	free   []string
	curve  lightcurve.Curve
	opts   Options
	lambda float64
}

// chiSquare evaluates the weighted residual sum for candidate params.
func (st *lmState) chiSquare(p Params) (float64, error) {
	res, err := st.residuals(p)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, r := range res {
		sum += r * r
	}
	return sum, nil
}

// residuals returns (obs - model)/sigma per sample.
func (st *lmState) residuals(p Params) ([]float64, error) {
	model, err := p.Model(st.opts.Law, st.opts.FlatGeometry, st.opts.Kepler)
	if err != nil {
		return nil, err
	}
	pred, err := model.Evaluate(st.curve.Times())
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(st.curve))
	for i, s := range st.curve {
		res[i] = (s.Flux - pred[i]) / s.FluxErr
	}
	return res, nil
}

// step performs one damped Gauss-Newton update: build the weighted
// Jacobian by central differences, then walk the damping ladder until a
// trial point improves chi-square. Reports improved=false when no
// damping level produces a downhill step.
func (st *lmState) step(chi2 float64) (improved bool, newChi2 float64, err error) {
	k := len(st.free)
	n := len(st.curve)

	res, err := st.residuals(st.params)
	if err != nil {
		return false, 0, err
	}

	jac, err := st.jacobian()
	if err != nil {
		return false, 0, err
	}

	// Normal equations: A = JᵀJ, g = Jᵀr.
	a := make([]float64, k*k)
	g := make([]float64, k)
	for i := 0; i < n; i++ {
		for c1 := 0; c1 < k; c1++ {
			g[c1] += jac[i*k+c1] * res[i]
			for c2 := c1; c2 < k; c2++ {
				a[c1*k+c2] += jac[i*k+c1] * jac[i*k+c2]
			}
		}
	}
	for c1 := 0; c1 < k; c1++ {
		for c2 := 0; c2 < c1; c2++ {
			a[c1*k+c2] = a[c2*k+c1]
		}
	}

	var lastSolveErr error
	for st.lambda <= 1e12 {
		damped := make([]float64, k*k)
		copy(damped, a)
		for c := 0; c < k; c++ {
			damped[c*k+c] += st.lambda * math.Max(a[c*k+c], 1e-12)
		}

		delta, err := solve(damped, g, k)
		if err != nil {
			lastSolveErr = err
			st.lambda *= 10
			continue
		}

		trial := st.params
		for c, name := range st.free {
			trial.setValue(name, trial.value(name)+delta[c])
		}
		trial.clamp()

		trialChi2, err := st.chiSquare(trial)
		if err != nil || math.IsNaN(trialChi2) {
			// A step outside the model's numerically healthy region:
			// damp harder rather than surfacing a transient.
			st.lambda *= 10
			continue
		}

		if trialChi2 < chi2 {
			st.params = trial
			st.lambda = math.Max(st.lambda/10, 1e-12)
			return true, trialChi2, nil
		}
		st.lambda *= 10
	}

	if lastSolveErr != nil {
		return false, 0, lastSolveErr
	}
	return false, chi2, nil
}

// jacobian builds the weighted Jacobian d(model_i/sigma_i)/d(theta_c)
// by central differences. Perturbed points are clamped to the valid
// domain and the realized step re-measured, so parameters at a boundary
// degrade to one-sided differences instead of stepping outside.
func (st *lmState) jacobian() ([]float64, error) {
	k := len(st.free)
	n := len(st.curve)
	jac := make([]float64, n*k)

	for c, name := range st.free {
		v := st.params.value(name)
		h := 1e-6 * math.Max(math.Abs(v), 1e-3)

		plus := st.params
		plus.setValue(name, v+h)
		plus.clamp()
		minus := st.params
		minus.setValue(name, v-h)
		minus.clamp()

		span := plus.value(name) - minus.value(name)
		if span == 0 {
			return nil, fmt.Errorf("fit: parameter %q pinned at boundary %g", name, v)
		}

		fPlus, err := st.modelFluxes(plus)
		if err != nil {
			return nil, err
		}
		fMinus, err := st.modelFluxes(minus)
		if err != nil {
			return nil, err
		}

		for i := 0; i < n; i++ {
			jac[i*k+c] = (fPlus[i] - fMinus[i]) / span / st.curve[i].FluxErr
		}
	}
	return jac, nil
}

func (st *lmState) modelFluxes(p Params) ([]float64, error) {
	model, err := p.Model(st.opts.Law, st.opts.FlatGeometry, st.opts.Kepler)
	if err != nil {
		return nil, err
	}
	return model.Evaluate(st.curve.Times())
}

// uncertainties derives 1-sigma parameter errors from the covariance
// (JᵀWJ)⁻¹ scaled by the reduced chi-square. The Jacobian is rebuilt at
// the accepted parameters, never at an earlier iterate.
func (st *lmState) uncertainties(redChi2 float64) (map[string]float64, error) {
	k := len(st.free)
	jac, err := st.jacobian()
	if err != nil {
		return nil, err
	}
	a := make([]float64, k*k)
	for i := 0; i < len(st.curve); i++ {
		for c1 := 0; c1 < k; c1++ {
			for c2 := 0; c2 < k; c2++ {
				a[c1*k+c2] += jac[i*k+c1] * jac[i*k+c2]
			}
		}
	}

	cov, err := invert(a, k)
	if err != nil {
		return nil, err
	}

	sigma := make(map[string]float64, k)
	for c, name := range st.free {
		v := cov[c*k+c] * redChi2
		if v < 0 {
			v = 0
		}
		sigma[name] = math.Sqrt(v)
	}
	return sigma, nil
}

func validateCurve(curve lightcurve.Curve) error {
	if len(curve) == 0 {
		return &InvalidSampleError{Index: 0, Reason: "empty light curve"}
	}
	if err := curve.Validate(); err != nil {
		return err
	}
	for i, s := range curve {
		switch {
		case math.IsNaN(s.Flux) || math.IsInf(s.Flux, 0):
			return &InvalidSampleError{Index: i, Reason: "non-finite flux"}
		case math.IsNaN(s.Time) || math.IsInf(s.Time, 0):
			return &InvalidSampleError{Index: i, Reason: "non-finite time"}
		case s.FluxErr <= 0 || math.IsNaN(s.FluxErr) || math.IsInf(s.FluxErr, 0):
			return &InvalidSampleError{Index: i, Reason: "flux uncertainty must be positive and finite"}
		}
	}
	return nil
}

// freeParams resolves the free-parameter list: everything not named in
// Fixed, minus limb-darkening coefficients the chosen law does not use.
func freeParams(opts Options) ([]string, error) {
	fixed := make(map[string]bool, len(opts.Fixed))
	valid := make(map[string]bool, len(AllParams))
	for _, name := range AllParams {
		valid[name] = true
	}
	for _, name := range opts.Fixed {
		if !valid[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		fixed[name] = true
	}

	// Unused coefficients would contribute zero Jacobian columns.
	switch opts.Law {
	case "none":
		fixed[ParamLD1A], fixed[ParamLD1B] = true, true
		fixed[ParamLD2A], fixed[ParamLD2B] = true, true
	case "linear":
		fixed[ParamLD1B], fixed[ParamLD2B] = true, true
	}
	if opts.FlatGeometry {
		fixed[ParamLD1A], fixed[ParamLD1B] = true, true
		fixed[ParamLD2A], fixed[ParamLD2B] = true, true
	}

	free := make([]string, 0, len(AllParams))
	for _, name := range AllParams {
		if !fixed[name] {
			free = append(free, name)
		}
	}
	if len(free) == 0 {
		return nil, ErrNoFreeParams
	}
	return free, nil
}
