package fit

import "math"

// Small dense linear algebra for the normal equations. The free
// parameter vector never exceeds len(AllParams), so a pivoted Gaussian
// elimination is all the machinery the solver needs.

// solve solves A·x = b by Gaussian elimination with partial pivoting.
// A is row-major n×n and is not modified. A vanishing or badly scaled
// pivot surfaces as *SingularSystemError with the pivot-ratio
// diagnostic.
func solve(a []float64, b []float64, n int) ([]float64, error) {
	m := make([]float64, len(a))
	copy(m, a)
	x := make([]float64, n)
	copy(x, b)

	maxPivot, minPivot := 0.0, math.Inf(1)

	for col := 0; col < n; col++ {
		// Partial pivot.
		pivRow := col
		pivVal := math.Abs(m[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(m[r*n+col]); v > pivVal {
				pivVal, pivRow = v, r
			}
		}
		if pivVal == 0 {
			return nil, &SingularSystemError{Condition: math.Inf(1)}
		}
		if pivRow != col {
			for c := 0; c < n; c++ {
				m[col*n+c], m[pivRow*n+c] = m[pivRow*n+c], m[col*n+c]
			}
			x[col], x[pivRow] = x[pivRow], x[col]
		}

		maxPivot = math.Max(maxPivot, pivVal)
		minPivot = math.Min(minPivot, pivVal)

		inv := 1 / m[col*n+col]
		for r := col + 1; r < n; r++ {
			f := m[r*n+col] * inv
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m[r*n+c] -= f * m[col*n+c]
			}
			x[r] -= f * x[col]
		}
	}

	const maxCondition = 1e14
	if cond := maxPivot / minPivot; cond > maxCondition {
		return nil, &SingularSystemError{Condition: cond}
	}

	// Back substitution.
	for r := n - 1; r >= 0; r-- {
		sum := x[r]
		for c := r + 1; c < n; c++ {
			sum -= m[r*n+c] * x[c]
		}
		x[r] = sum / m[r*n+r]
	}
	return x, nil
}

// invert computes A⁻¹ column by column. Used once per fit to turn the
// final normal matrix into the parameter covariance.
func invert(a []float64, n int) ([]float64, error) {
	inv := make([]float64, n*n)
	e := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x, err := solve(a, e, n)
		if err != nil {
			return nil, err
		}
		for row := 0; row < n; row++ {
			inv[row*n+col] = x[row]
		}
	}
	return inv, nil
}
