package lightcurve

import "math/rand"

// Synthesize generates an observed-looking curve from a model: the
// model flux at each time plus zero-mean Gaussian noise of the given
// standard deviation. The seed makes generation reproducible; noise 0
// yields the exact forward model with the noise level still recorded
// as the per-sample uncertainty floor of 1e-6 so weights stay finite.
func Synthesize(m *Model, times []float64, noise float64, seed int64) (Curve, error) {
	fluxes, err := m.Evaluate(times)
	if err != nil {
		return nil, err
	}

	sigma := noise
	if sigma <= 0 {
		sigma = 1e-6
	}

	rng := rand.New(rand.NewSource(seed))
	curve := make(Curve, len(times))
	for i, t := range times {
		f := fluxes[i]
		if noise > 0 {
			f += rng.NormFloat64() * noise
		}
		curve[i] = Sample{Time: t, Flux: f, FluxErr: sigma}
	}
	return curve, nil
}

// UniformTimes returns n evenly spaced sample times over [t0, t1).
func UniformTimes(t0, t1 float64, n int) []float64 {
	times := make([]float64, n)
	dt := (t1 - t0) / float64(n)
	for i := range times {
		times[i] = t0 + float64(i)*dt
	}
	return times
}
