package uncert

// Series is a slice of uncertainty-carrying values.
type Series []Value

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if !v.IsValid() {
			return false
		}
	}
	return true
}

// Nominals returns the nominal values.
func (s Series) Nominals() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Nom
	}
	return out
}

// Stds returns the 1-sigma uncertainties.
func (s Series) Stds() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Std
	}
	return out
}

// Map applies f to every element.
func (s Series) Map(f func(Value) Value) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
