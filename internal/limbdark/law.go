package limbdark

import (
	"fmt"
	"math"
)

// Law is a limb-darkening law giving the specific intensity of a
// stellar disk relative to its center, I(mu)/I(0), where mu is the
// cosine of the angle between the line of sight and the local surface
// normal (mu = 1 at disk center, 0 at the limb).
type Law interface {
	Name() string
	// Intensity returns I(mu)/I(0).
	Intensity(mu float64) float64
	// MeanIntensity returns the disk-averaged intensity relative to the
	// center, i.e. the analytic integral of Intensity over the disk
	// divided by the disk area.
	MeanIntensity() float64
}

// Uniform is the flat-disk law: no darkening toward the limb. It is
// only ever used when explicitly selected, never as a silent fallback.
type Uniform struct{}

func (Uniform) Name() string { return "none" }

func (Uniform) Intensity(float64) float64 { return 1 }

func (Uniform) MeanIntensity() float64 { return 1 }

// Linear is the one-coefficient law I(mu) = 1 - u(1-mu).
type Linear struct {
	U float64
}

func (Linear) Name() string { return "linear" }

func (l Linear) Intensity(mu float64) float64 {
	return 1 - l.U*(1-mu)
}

func (l Linear) MeanIntensity() float64 {
	return 1 - l.U/3
}

// Quadratic is the two-coefficient law I(mu) = 1 - a(1-mu) - b(1-mu)².
type Quadratic struct {
	A float64
	B float64
}

func (Quadratic) Name() string { return "quadratic" }

func (q Quadratic) Intensity(mu float64) float64 {
	d := 1 - mu
	return 1 - q.A*d - q.B*d*d
}

func (q Quadratic) MeanIntensity() float64 {
	return 1 - q.A/3 - q.B/6
}

// Power2 is the power-2 law I(mu) = 1 - g(1 - mu^h) of Maxted (2018),
// whose coefficients the Claret power-2 tables provide.
type Power2 struct {
	G float64
	H float64
}

func (Power2) Name() string { return "power2" }

func (p Power2) Intensity(mu float64) float64 {
	return 1 - p.G*(1-math.Pow(mu, p.H))
}

func (p Power2) MeanIntensity() float64 {
	// integral of mu^h over the unit disk is 2/(h+2) of the disk area
	return 1 - p.G*p.H/(p.H+2)
}

// Parse builds a Law from a name and coefficient list, as configured in
// yaml or on the command line. Recognized names: none, linear,
// quadratic (quad), power2 (pow2).
func Parse(name string, coeffs []float64) (Law, error) {
	switch name {
	case "", "none":
		return Uniform{}, nil
	case "linear":
		if len(coeffs) < 1 {
			return nil, fmt.Errorf("limbdark: linear law needs 1 coefficient, got %d", len(coeffs))
		}
		return Linear{U: coeffs[0]}, nil
	case "quad", "quadratic":
		if len(coeffs) < 2 {
			return nil, fmt.Errorf("limbdark: quadratic law needs 2 coefficients, got %d", len(coeffs))
		}
		return Quadratic{A: coeffs[0], B: coeffs[1]}, nil
	case "pow2", "power2":
		if len(coeffs) < 2 {
			return nil, fmt.Errorf("limbdark: power2 law needs 2 coefficients, got %d", len(coeffs))
		}
		return Power2{G: coeffs[0], H: coeffs[1]}, nil
	default:
		return nil, fmt.Errorf("limbdark: unknown law %q", name)
	}
}
