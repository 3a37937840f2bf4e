package uncert

import (
	"fmt"
	"math"
)

// Value is a scalar carrying a nominal value and a propagated 1-sigma
// uncertainty. Arithmetic propagates uncertainty by first-order linear
// error propagation assuming independent inputs:
//
//	f(x±Δx, y±Δy) = f(x,y) ± sqrt((∂f/∂x·Δx)² + (∂f/∂y·Δy)²)
//
// Correlations between values are not tracked.
type Value struct {
	Nom float64
	Std float64
}

// New returns a Value with the given nominal value and 1-sigma uncertainty.
// A negative std is folded to its absolute value.
func New(nom, std float64) Value {
	return Value{Nom: nom, Std: math.Abs(std)}
}

// Exact returns a Value with zero uncertainty.
func Exact(nom float64) Value {
	return Value{Nom: nom}
}

func (v Value) IsValid() bool {
	return !math.IsNaN(v.Nom) && !math.IsInf(v.Nom, 0) &&
		!math.IsNaN(v.Std) && !math.IsInf(v.Std, 0)
}

func (v Value) String() string {
	if v.Std == 0 {
		return fmt.Sprintf("%g", v.Nom)
	}
	return fmt.Sprintf("%g ± %g", v.Nom, v.Std)
}

func (v Value) Add(o Value) Value {
	return Value{Nom: v.Nom + o.Nom, Std: math.Hypot(v.Std, o.Std)}
}

func (v Value) Sub(o Value) Value {
	return Value{Nom: v.Nom - o.Nom, Std: math.Hypot(v.Std, o.Std)}
}

func (v Value) Mul(o Value) Value {
	return Value{
		Nom: v.Nom * o.Nom,
		Std: math.Hypot(o.Nom*v.Std, v.Nom*o.Std),
	}
}

func (v Value) Div(o Value) Value {
	nom := v.Nom / o.Nom
	return Value{
		Nom: nom,
		Std: math.Hypot(v.Std/o.Nom, v.Nom*o.Std/(o.Nom*o.Nom)),
	}
}

// Scale multiplies by an exact constant.
func (v Value) Scale(c float64) Value {
	return Value{Nom: c * v.Nom, Std: math.Abs(c) * v.Std}
}

func (v Value) Neg() Value {
	return Value{Nom: -v.Nom, Std: v.Std}
}

// Pow raises v to an exact power p.
// d/dx x^p = p·x^(p-1).
func (v Value) Pow(p float64) Value {
	nom := math.Pow(v.Nom, p)
	return Value{Nom: nom, Std: math.Abs(p*math.Pow(v.Nom, p-1)) * v.Std}
}
