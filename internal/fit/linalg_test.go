package fit

import (
	"errors"
	"math"
	"testing"
)

func TestSolveKnownSystem(t *testing.T) {
	// 2x + y = 5, x + 3y = 10 has the solution x = 1, y = 3.
	a := []float64{2, 1, 1, 3}
	b := []float64{5, 10}

	x, err := solve(a, b, 2)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if math.Abs(x[0]-1) > 1e-12 || math.Abs(x[1]-3) > 1e-12 {
		t.Errorf("got solution (%g, %g), want (1, 3)", x[0], x[1])
	}
}

func TestSolveRequiresPivoting(t *testing.T) {
	// Zero in the leading position forces a row swap.
	a := []float64{0, 1, 1, 0}
	b := []float64{2, 7}

	x, err := solve(a, b, 2)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if math.Abs(x[0]-7) > 1e-12 || math.Abs(x[1]-2) > 1e-12 {
		t.Errorf("got solution (%g, %g), want (7, 2)", x[0], x[1])
	}
}

func TestSolveDoesNotModifyInputs(t *testing.T) {
	a := []float64{4, 1, 2, 3}
	b := []float64{1, 1}

	if _, err := solve(a, b, 2); err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if a[0] != 4 || a[1] != 1 || a[2] != 2 || a[3] != 3 {
		t.Errorf("matrix modified: %v", a)
	}
	if b[0] != 1 || b[1] != 1 {
		t.Errorf("right-hand side modified: %v", b)
	}
}

func TestSolveRankDeficient(t *testing.T) {
	// Second row is a multiple of the first.
	a := []float64{1, 2, 2, 4}
	b := []float64{1, 2}

	_, err := solve(a, b, 2)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular, got %v", err)
	}

	var sse *SingularSystemError
	if !errors.As(err, &sse) {
		t.Fatalf("expected *SingularSystemError, got %T", err)
	}
	if !math.IsInf(sse.Condition, 1) {
		t.Errorf("vanished pivot should report infinite condition, got %g", sse.Condition)
	}
}

func TestSolveIllConditioned(t *testing.T) {
	// Pivot ratio far beyond the acceptance threshold.
	a := []float64{1, 0, 0, 1e-16}
	b := []float64{1, 1}

	_, err := solve(a, b, 2)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular, got %v", err)
	}

	var sse *SingularSystemError
	if !errors.As(err, &sse) {
		t.Fatalf("expected *SingularSystemError, got %T", err)
	}
	if sse.Condition <= 1e14 {
		t.Errorf("condition diagnostic %g should exceed the threshold", sse.Condition)
	}
}

func TestInvertDiagonal(t *testing.T) {
	a := []float64{2, 0, 0, 0, 4, 0, 0, 0, 8}

	inv, err := invert(a, 3)
	if err != nil {
		t.Fatalf("invert failed: %v", err)
	}

	want := []float64{0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125}
	for i := range want {
		if math.Abs(inv[i]-want[i]) > 1e-12 {
			t.Errorf("inv[%d] = %g, want %g", i, inv[i], want[i])
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	// A symmetric positive-definite matrix, like a normal matrix.
	a := []float64{4, 1, 1, 1, 3, 0, 1, 0, 2}

	inv, err := invert(a, 3)
	if err != nil {
		t.Fatalf("invert failed: %v", err)
	}

	// A·A⁻¹ should be the identity.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[r*3+k] * inv[k*3+c]
			}
			want := 0.0
			if r == c {
				want = 1
			}
			if math.Abs(sum-want) > 1e-12 {
				t.Errorf("(A·inv)[%d,%d] = %g, want %g", r, c, sum, want)
			}
		}
	}
}
