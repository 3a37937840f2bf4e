package stellar

import (
	"math"
	"testing"

	"github.com/kmorven/deborbit/internal/phys"
	"github.com/kmorven/deborbit/internal/uncert"
)

func TestLogGSun(t *testing.T) {
	logg := LogG(phys.MSun, phys.RSun)

	if math.Abs(logg.Nom-4.44) > 0.01 {
		t.Errorf("solar log(g) = %v, want about 4.44", logg)
	}
	if logg.Std <= 0 {
		t.Error("log(g) should carry uncertainty from G and the inputs")
	}
}

func TestLogGExactInputsStillUncertain(t *testing.T) {
	// G is measured, not defined, so even exact mass and radius give an
	// uncertain surface gravity.
	logg := LogG(uncert.Exact(phys.MSun.Nom), uncert.Exact(phys.RSun.Nom))
	if logg.Std <= 0 {
		t.Error("expected non-zero uncertainty from G alone")
	}
}

func TestLogGScalesWithRadius(t *testing.T) {
	// Doubling the radius at fixed mass quarters g: log(g) drops by
	// log10(4).
	base := LogG(phys.MSun, phys.RSun)
	wide := LogG(phys.MSun, phys.RSun.Scale(2))

	if diff := base.Nom - wide.Nom; math.Abs(diff-math.Log10(4)) > 1e-9 {
		t.Errorf("log(g) drop = %g, want %g", diff, math.Log10(4))
	}
}

func TestBlackBodyRadianceSolarPeak(t *testing.T) {
	// Wien's displacement law: a 5772 K black body peaks near 502 nm.
	teff := uncert.Exact(5772)

	peak := BlackBodySpectralRadiance(teff, 502)
	for _, lm := range []float64{300, 400, 700, 1000} {
		b := BlackBodySpectralRadiance(teff, lm)
		if b.Nom >= peak.Nom {
			t.Errorf("radiance at %g nm (%g) exceeds the Wien peak (%g)", lm, b.Nom, peak.Nom)
		}
	}
}

func TestBlackBodyRadianceHotterIsBrighter(t *testing.T) {
	for _, lm := range []float64{400, 600, 800, 1000} {
		cool := BlackBodySpectralRadiance(uncert.Exact(4000), lm)
		hot := BlackBodySpectralRadiance(uncert.Exact(8000), lm)
		if hot.Nom <= cool.Nom {
			t.Errorf("at %g nm hot radiance %g not above cool %g", lm, hot.Nom, cool.Nom)
		}
	}
}

func TestBlackBodyRadiancePropagatesTeffUncertainty(t *testing.T) {
	exact := BlackBodySpectralRadiance(uncert.Exact(6000), 750)
	fuzzy := BlackBodySpectralRadiance(uncert.New(6000, 100), 750)

	if exact.Std != 0 {
		t.Errorf("exact temperature should give exact radiance, got std %g", exact.Std)
	}
	if fuzzy.Std <= 0 {
		t.Error("uncertain temperature should give uncertain radiance")
	}
	if fuzzy.Nom != exact.Nom {
		t.Errorf("nominal radiance should not depend on the uncertainty: %g vs %g", fuzzy.Nom, exact.Nom)
	}
}
