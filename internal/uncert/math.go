package uncert

import "math"

// Unary functions over Value, each propagating the input uncertainty
// through the function's derivative: f(x±Δ) = f(x) ± |f'(x)|·Δ.

func apply(v Value, f, dfdx func(float64) float64) Value {
	return Value{Nom: f(v.Nom), Std: math.Abs(dfdx(v.Nom)) * v.Std}
}

// Sin of v [rad].
func Sin(v Value) Value {
	return apply(v, math.Sin, math.Cos)
}

// Cos of v [rad].
func Cos(v Value) Value {
	return apply(v, math.Cos, math.Sin)
}

// Tan of v [rad].
func Tan(v Value) Value {
	return apply(v, math.Tan, func(x float64) float64 {
		t := math.Tan(x)
		return 1 + t*t
	})
}

func Asin(v Value) Value {
	return apply(v, math.Asin, func(x float64) float64 {
		return 1 / math.Sqrt(1-x*x)
	})
}

func Acos(v Value) Value {
	return apply(v, math.Acos, func(x float64) float64 {
		return -1 / math.Sqrt(1-x*x)
	})
}

func Atan(v Value) Value {
	return apply(v, math.Atan, func(x float64) float64 {
		return 1 / (1 + x*x)
	})
}

func Exp(v Value) Value {
	return apply(v, math.Exp, math.Exp)
}

func Log10(v Value) Value {
	return apply(v, math.Log10, func(x float64) float64 {
		return 1 / (x * math.Ln10)
	})
}

func Sqrt(v Value) Value {
	return v.Pow(0.5)
}

// Degrees converts radians to degrees.
func Degrees(v Value) Value {
	return v.Scale(180 / math.Pi)
}

// Radians converts degrees to radians.
func Radians(v Value) Value {
	return v.Scale(math.Pi / 180)
}
