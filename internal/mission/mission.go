// Package mission describes the photometric characteristics of survey
// missions. A mission's spectral response lets the model predict the
// surface-brightness ratio of a binary from the component temperatures,
// the usual source of an initial luminosity-ratio guess.
package mission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kmorven/deborbit/internal/stellar"
	"github.com/kmorven/deborbit/internal/uncert"
)

// ErrUnknownMission indicates a lookup name matching no mission.
var ErrUnknownMission = errors.New("mission: unknown mission")

// Bandpass is an inclusive wavelength range [nm].
type Bandpass struct {
	Lo float64
	Hi float64
}

// ResponsePoint is one sample of a mission's spectral response:
// wavelength [nm] against throughput coefficient.
type ResponsePoint struct {
	Lambda      float64
	Coefficient float64
}

// Mission is an immutable description of one survey instrument.
type Mission struct {
	name     string
	bandpass Bandpass
	response []ResponsePoint
}

func (m *Mission) Name() string { return m.name }

// DefaultBandpass is the wavelength range used when the caller does not
// supply one.
func (m *Mission) DefaultBandpass() Bandpass { return m.bandpass }

// ResponseFunction returns a copy of the response samples in ascending
// wavelength order.
func (m *Mission) ResponseFunction() []ResponsePoint {
	out := make([]ResponsePoint, len(m.response))
	copy(out, m.response)
	return out
}

// ExpectedBrightnessRatio predicts the secondary/primary surface
// brightness ratio for black bodies of the given effective temperatures
// [K], weighting Planck radiance by the mission response over the
// bandpass. A zero-value bandpass selects the mission default.
func (m *Mission) ExpectedBrightnessRatio(teff1, teff2 uncert.Value, band Bandpass) (uncert.Value, error) {
	if band == (Bandpass{}) {
		band = m.bandpass
	}
	lo, hi := band.Lo, band.Hi
	if lo > hi {
		lo, hi = hi, lo
	}

	s1 := m.weightedRadiances(teff1, lo, hi)
	if len(s1) == 0 {
		return uncert.Value{}, fmt.Errorf("mission %s: no response samples in bandpass [%g, %g] nm", m.name, lo, hi)
	}
	s2 := m.weightedRadiances(teff2, lo, hi)
	return sum(s2).Div(sum(s1)), nil
}

// weightedRadiances samples the Planck radiance at each response
// wavelength inside [lo, hi], weighted by the throughput coefficient.
func (m *Mission) weightedRadiances(teff uncert.Value, lo, hi float64) uncert.Series {
	var out uncert.Series
	for _, p := range m.response {
		if p.Lambda < lo || p.Lambda > hi {
			continue
		}
		out = append(out, stellar.BlackBodySpectralRadiance(teff, p.Lambda).Scale(p.Coefficient))
	}
	return out
}

func sum(s uncert.Series) uncert.Value {
	total := uncert.Exact(0)
	for _, v := range s {
		total = total.Add(v)
	}
	return total
}

// Get resolves a mission by name. Matching is case-insensitive on a
// substring, so "TES" or "tess" both select TESS.
func Get(name string) (*Mission, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key != "" {
		for _, m := range registry {
			if strings.Contains(strings.ToLower(m.name), key) {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMission, name)
}

// Names lists the registered missions.
func Names() []string {
	out := make([]string, len(registry))
	for i, m := range registry {
		out[i] = m.name
	}
	return out
}

var registry = []*Mission{tess, kepler}
