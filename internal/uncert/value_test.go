package uncert

import (
	"math"
	"testing"
)

func TestAddSubQuadrature(t *testing.T) {
	a := New(10, 3)
	b := New(4, 4)

	sum := a.Add(b)
	if sum.Nom != 14 {
		t.Errorf("expected nominal 14, got %f", sum.Nom)
	}
	if math.Abs(sum.Std-5) > 1e-12 {
		t.Errorf("expected std 5 (3-4-5 quadrature), got %f", sum.Std)
	}

	diff := a.Sub(b)
	if diff.Nom != 6 {
		t.Errorf("expected nominal 6, got %f", diff.Nom)
	}
	if math.Abs(diff.Std-5) > 1e-12 {
		t.Errorf("subtraction should add uncertainties in quadrature, got %f", diff.Std)
	}
}

func TestMulDivRelative(t *testing.T) {
	a := New(100, 1)
	b := New(2, 0.02)

	prod := a.Mul(b)
	if prod.Nom != 200 {
		t.Errorf("expected nominal 200, got %f", prod.Nom)
	}
	// relative errors 1% each -> sqrt(2)% of 200
	want := 200 * math.Sqrt(2) / 100
	if math.Abs(prod.Std-want) > 1e-9 {
		t.Errorf("expected std %f, got %f", want, prod.Std)
	}

	quot := a.Div(b)
	if quot.Nom != 50 {
		t.Errorf("expected nominal 50, got %f", quot.Nom)
	}
	want = 50 * math.Sqrt(2) / 100
	if math.Abs(quot.Std-want) > 1e-9 {
		t.Errorf("expected std %f, got %f", want, quot.Std)
	}
}

func TestExactHasNoUncertainty(t *testing.T) {
	v := Exact(3.5)
	if v.Std != 0 {
		t.Errorf("exact value should carry zero std, got %f", v.Std)
	}

	// But combining with an uncertain value keeps the uncertainty.
	u := v.Mul(New(2, 0.1))
	if u.Std == 0 {
		t.Error("uncertainty dropped in multiplication with exact value")
	}
}

func TestPow(t *testing.T) {
	v := New(4, 0.1)
	sq := v.Pow(2)
	if sq.Nom != 16 {
		t.Errorf("expected 16, got %f", sq.Nom)
	}
	// d/dx x^2 = 2x = 8 -> std 0.8
	if math.Abs(sq.Std-0.8) > 1e-12 {
		t.Errorf("expected std 0.8, got %f", sq.Std)
	}

	root := Sqrt(New(16, 0.8))
	if root.Nom != 4 {
		t.Errorf("expected 4, got %f", root.Nom)
	}
	// d/dx sqrt(x) = 1/(2*4) = 0.125 -> std 0.1
	if math.Abs(root.Std-0.1) > 1e-12 {
		t.Errorf("expected std 0.1, got %f", root.Std)
	}
}

func TestTrigDerivatives(t *testing.T) {
	tests := []struct {
		name string
		f    func(Value) Value
		at   float64
		dfdx float64
	}{
		{"sin", Sin, 0.3, math.Cos(0.3)},
		{"cos", Cos, 0.3, math.Sin(0.3)},
		{"tan", Tan, 0.3, 1 + math.Tan(0.3)*math.Tan(0.3)},
		{"asin", Asin, 0.3, 1 / math.Sqrt(1-0.09)},
		{"acos", Acos, 0.3, 1 / math.Sqrt(1-0.09)},
		{"atan", Atan, 0.3, 1 / 1.09},
	}

	const std = 1e-3
	for _, tt := range tests {
		got := tt.f(New(tt.at, std))
		want := math.Abs(tt.dfdx) * std
		if math.Abs(got.Std-want) > 1e-15 {
			t.Errorf("%s: expected std %g, got %g", tt.name, want, got.Std)
		}
	}
}

func TestDegreesRadiansRoundTrip(t *testing.T) {
	v := New(90, 0.5)
	back := Degrees(Radians(v))
	if math.Abs(back.Nom-90) > 1e-12 || math.Abs(back.Std-0.5) > 1e-12 {
		t.Errorf("round trip changed value: %v", back)
	}
}

func TestSeries(t *testing.T) {
	s := Series{New(1, 0.1), New(2, 0.2), New(3, 0.3)}

	if !s.IsValid() {
		t.Error("series should be valid")
	}

	noms := s.Nominals()
	if len(noms) != 3 || noms[1] != 2 {
		t.Errorf("unexpected nominals %v", noms)
	}

	stds := s.Stds()
	if stds[2] != 0.3 {
		t.Errorf("unexpected stds %v", stds)
	}

	bad := Series{New(math.NaN(), 0)}
	if bad.IsValid() {
		t.Error("NaN nominal should invalidate series")
	}

	c := s.Clone()
	c[0] = Exact(9)
	if s[0].Nom == 9 {
		t.Error("clone aliases original")
	}
}
