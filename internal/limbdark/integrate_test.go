package limbdark

import (
	"math"
	"testing"
)

func TestBlockedFluxBounds(t *testing.T) {
	law := Linear{U: 0.5}

	if got := BlockedFlux(law, 0.5, 0.1, 0.1); got != 0 {
		t.Errorf("separated disks should block nothing, got %g", got)
	}
	if got := BlockedFlux(law, 0, 0.1, 0.2); math.Abs(got-1) > 1e-9 {
		t.Errorf("fully covered disk should block everything, got %g", got)
	}

	for sep := 0.0; sep < 0.25; sep += 0.005 {
		got := BlockedFlux(law, sep, 0.1, 0.12)
		if got < 0 || got > 1 {
			t.Fatalf("sep=%f: blocked flux %g outside [0,1]", sep, got)
		}
	}
}

func TestUniformMatchesGeometricOverlap(t *testing.T) {
	// For a flat disk the blocked flux is exactly the covered area
	// fraction: equal disks at one radius separation give the classic
	// lens fraction 2/pi·(pi/3 - sqrt(3)/4)... expressed per occulted
	// disk area below.
	r := 0.1
	want := 2 * r * r * (math.Pi/3 - math.Sqrt(3)/4) / (math.Pi * r * r)
	got := BlockedFlux(Uniform{}, r, r, r)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestQuadratureAgreesWithUniformGeometry(t *testing.T) {
	// A limb-darkened law with zero coefficients is a uniform disk. With
	// constant ring weights the annulus lens areas telescope, so the
	// quadrature must reproduce the closed-form lens area exactly.
	for _, sep := range []float64{0.02, 0.08, 0.15, 0.19} {
		analytic := BlockedFlux(Uniform{}, sep, 0.1, 0.1)
		quadrature := BlockedFlux(Linear{U: 0}, sep, 0.1, 0.1)
		if math.Abs(analytic-quadrature) > 1e-12 {
			t.Errorf("sep=%f: quadrature %g vs analytic %g", sep, quadrature, analytic)
		}
	}
}

func TestCentralTransitDarkenedBlocksMore(t *testing.T) {
	// A small disk crossing the bright center of a limb-darkened star
	// removes more flux than the same transit of a uniform disk.
	uniform := BlockedFlux(Uniform{}, 0, 0.2, 0.05)
	darkened := BlockedFlux(Linear{U: 0.6}, 0, 0.2, 0.05)
	if darkened <= uniform {
		t.Errorf("central transit: darkened %g should exceed uniform %g", darkened, uniform)
	}

	// Near the limb the relation reverses.
	uniform = BlockedFlux(Uniform{}, 0.19, 0.2, 0.05)
	darkened = BlockedFlux(Linear{U: 0.6}, 0.19, 0.2, 0.05)
	if darkened >= uniform {
		t.Errorf("grazing transit: darkened %g should be below uniform %g", darkened, uniform)
	}
}

func TestBlockedFluxMonotoneDuringIngress(t *testing.T) {
	law := Quadratic{A: 0.4, B: 0.2}
	prev := math.Inf(1)
	for sep := 0.0; sep <= 0.3; sep += 0.002 {
		got := BlockedFlux(law, sep, 0.15, 0.12)
		if got > prev+1e-9 {
			t.Fatalf("blocked flux increased with separation at sep=%f", sep)
		}
		prev = got
	}
}

func TestIntersectArea(t *testing.T) {
	// Containment: the smaller disk's full area, regardless of order.
	if got, want := intersectArea(0.01, 0.1, 0.02), math.Pi*0.02*0.02; math.Abs(got-want) > 1e-15 {
		t.Errorf("contained disk: expected %g, got %g", want, got)
	}
	if got, want := intersectArea(0.01, 0.02, 0.1), math.Pi*0.02*0.02; math.Abs(got-want) > 1e-15 {
		t.Errorf("contained disk: expected %g, got %g", want, got)
	}
	// Disjoint.
	if got := intersectArea(0.5, 0.1, 0.2); got != 0 {
		t.Errorf("disjoint disks: expected 0, got %g", got)
	}
	// Equal disks with centers one radius apart: 2r²(π/3 - √3/4).
	r := 0.1
	want := 2 * r * r * (math.Pi/3 - math.Sqrt(3)/4)
	if got := intersectArea(r, r, r); math.Abs(got-want) > 1e-15 {
		t.Errorf("lens area: expected %g, got %g", want, got)
	}
}

func TestBlockedFluxSmoothNearInnerTangency(t *testing.T) {
	// The annulus-area rule leaves no discretization step where the
	// foreground disk slips out of full containment.
	law := Quadratic{A: 0.4, B: 0.2}
	inside := BlockedFlux(law, 0, 0.15, 0.12)
	slipped := BlockedFlux(law, 0.002, 0.15, 0.12)
	if slipped > inside {
		t.Errorf("blocked flux grew with separation: %g at 0 vs %g at 0.002", inside, slipped)
	}
	if inside-slipped > 1e-3 {
		t.Errorf("blocked flux jumped across containment: %g vs %g", inside, slipped)
	}
}
