package orbit

import (
	"math"
	"testing"

	"github.com/kmorven/deborbit/internal/phys"
	"github.com/kmorven/deborbit/internal/uncert"
)

const (
	mEarth = 5.9722e24 // kg
	year   = 3.1557e7  // s (Julian year)
)

func TestOrbitalPeriodSunEarth(t *testing.T) {
	p := OrbitalPeriod(phys.MSun, uncert.Exact(mEarth), uncert.Exact(phys.AU))
	days := p.Nom / phys.SecondsPerDay
	if math.Abs(days-365.256) > 0.01 {
		t.Errorf("expected ~365.256 d, got %f", days)
	}
	if p.Std == 0 {
		t.Error("period derived from G must carry an uncertainty")
	}
}

func TestSemiMajorAxisSunEarth(t *testing.T) {
	a := SemiMajorAxis(phys.MSun, uncert.Exact(mEarth), uncert.Exact(year))
	if math.Abs(a.Nom/phys.AU-1) > 1e-3 {
		t.Errorf("expected ~1 AU, got %f", a.Nom/phys.AU)
	}
	if a.Std == 0 {
		t.Error("axis derived from G must carry an uncertainty")
	}
}

func TestPeriodAxisRoundTrip(t *testing.T) {
	m1 := phys.MSun
	m2 := phys.MSun.Scale(0.8)
	a0 := uncert.Exact(10 * phys.RSun.Nom)

	p := OrbitalPeriod(m1, m2, a0)
	a := SemiMajorAxis(m1, m2, p)
	if math.Abs(a.Nom/a0.Nom-1) > 1e-9 {
		t.Errorf("round trip changed axis by %g", a.Nom/a0.Nom-1)
	}
}

func TestImpactParameterEdgeOn(t *testing.T) {
	r1 := uncert.Exact(phys.RSun.Nom / phys.AU)
	inc := uncert.Exact(90)
	zero := uncert.Exact(0)

	for _, secondary := range []bool{false, true} {
		b := ImpactParameter(r1, inc, zero, zero, secondary)
		if math.Abs(b.Nom) > 1e-12 {
			t.Errorf("secondary=%v: edge-on circular orbit should give b=0, got %g", secondary, b.Nom)
		}
	}

	// With uncertain inputs the result keeps an uncertainty.
	b := ImpactParameter(uncert.New(r1.Nom, 1e-4), uncert.New(90, 1e-3), zero, zero, false)
	if b.Std == 0 {
		t.Error("uncertain inputs should yield uncertain impact parameter")
	}
}

func TestOrbitalInclinationFromZeroImpact(t *testing.T) {
	r1 := uncert.Exact(phys.RSun.Nom / phys.AU)
	zero := uncert.Exact(0)

	for _, secondary := range []bool{false, true} {
		inc := OrbitalInclination(r1, zero, zero, zero, secondary)
		if inc.Nom != 90 {
			t.Errorf("secondary=%v: expected 90 deg, got %f", secondary, inc.Nom)
		}
	}
}

func TestImpactInclinationRoundTrip(t *testing.T) {
	r1 := uncert.Exact(0.1)
	inc := uncert.Exact(88.5)
	e := uncert.Exact(0.2)
	esinw := uncert.Exact(0.12)

	for _, secondary := range []bool{false, true} {
		b := ImpactParameter(r1, inc, e, esinw, secondary)
		back := OrbitalInclination(r1, b, e, esinw, secondary)
		if math.Abs(back.Nom-88.5) > 1e-9 {
			t.Errorf("secondary=%v: round trip gave %f", secondary, back.Nom)
		}
	}
}

func TestRatioOfEclipseDuration(t *testing.T) {
	if r := RatioOfEclipseDuration(uncert.Exact(0)); r.Nom != 1 {
		t.Errorf("circular orbit should give equal durations, got %f", r.Nom)
	}
	if r := RatioOfEclipseDuration(uncert.Exact(0.2)); math.Abs(r.Nom-1.5) > 1e-12 {
		t.Errorf("expected 1.2/0.8 = 1.5, got %f", r.Nom)
	}
}

func TestPhaseOfSecondaryEclipse(t *testing.T) {
	// Circular orbit: secondary eclipse at phase 0.5 exactly.
	ph := PhaseOfSecondaryEclipse(uncert.Exact(0), uncert.Exact(0))
	if math.Abs(ph.Nom-0.5) > 1e-12 {
		t.Errorf("expected phase 0.5, got %f", ph.Nom)
	}

	// Positive ecosw pushes the secondary eclipse later.
	ph = PhaseOfSecondaryEclipse(uncert.Exact(0.1), uncert.Exact(0.15))
	if ph.Nom <= 0.5 {
		t.Errorf("positive ecosw should push phase past 0.5, got %f", ph.Nom)
	}
}
