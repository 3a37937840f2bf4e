package limbdark

import (
	"math"
	"testing"
)

func TestIntensityAtCenterAndLimb(t *testing.T) {
	laws := []Law{
		Uniform{},
		Linear{U: 0.5},
		Quadratic{A: 0.4, B: 0.2},
		Power2{G: 0.6, H: 0.8},
	}

	for _, law := range laws {
		if got := law.Intensity(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s: center intensity should be 1, got %f", law.Name(), got)
		}
		if got := law.Intensity(0); got > 1 {
			t.Errorf("%s: limb should not be brighter than center, got %f", law.Name(), got)
		}
	}

	if got := (Linear{U: 0.5}).Intensity(0); got != 0.5 {
		t.Errorf("linear limb intensity: expected 0.5, got %f", got)
	}
	if got := (Quadratic{A: 0.4, B: 0.2}).Intensity(0); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("quadratic limb intensity: expected 0.4, got %f", got)
	}
}

func TestMeanIntensityMatchesQuadrature(t *testing.T) {
	laws := []Law{
		Uniform{},
		Linear{U: 0.6},
		Quadratic{A: 0.3, B: 0.25},
		Power2{G: 0.65, H: 0.85},
	}

	// Numerically integrate I(mu(rho))·2·rho over [0,1] and compare with
	// the closed forms.
	const n = 4000
	for _, law := range laws {
		var sum float64
		for i := 0; i < n; i++ {
			rho := (float64(i) + 0.5) / n
			mu := math.Sqrt(1 - rho*rho)
			sum += law.Intensity(mu) * 2 * rho / n
		}
		if math.Abs(sum-law.MeanIntensity()) > 1e-5 {
			t.Errorf("%s: quadrature %f vs analytic %f", law.Name(), sum, law.MeanIntensity())
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		want   string
		ok     bool
	}{
		{"none", nil, "none", true},
		{"", nil, "none", true},
		{"linear", []float64{0.5}, "linear", true},
		{"linear", nil, "", false},
		{"quadratic", []float64{0.4, 0.2}, "quadratic", true},
		{"quad", []float64{0.4, 0.2}, "quadratic", true},
		{"quadratic", []float64{0.4}, "", false},
		{"power2", []float64{0.6, 0.8}, "power2", true},
		{"pow2", []float64{0.6, 0.8}, "power2", true},
		{"pow2", []float64{0.6}, "", false},
		{"claret4", []float64{1, 2, 3, 4}, "", false},
	}

	for _, tt := range tests {
		law, err := Parse(tt.name, tt.coeffs)
		if tt.ok {
			if err != nil {
				t.Errorf("Parse(%q, %v): unexpected error %v", tt.name, tt.coeffs, err)
				continue
			}
			if law.Name() != tt.want {
				t.Errorf("Parse(%q): got law %q", tt.name, law.Name())
			}
		} else if err == nil {
			t.Errorf("Parse(%q, %v): expected error", tt.name, tt.coeffs)
		}
	}
}
