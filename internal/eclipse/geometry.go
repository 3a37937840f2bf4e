package eclipse

import "math"

// Kind classifies the instantaneous eclipse geometry. The set is closed
// and mutually exclusive, so it is a tagged value alongside the overlap
// fraction rather than a type hierarchy.
type Kind int

const (
	None Kind = iota
	Partial
	Annular // foreground disk fully inside the larger background disk
	Total   // background disk fully covered
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Partial:
		return "partial"
	case Annular:
		return "annular"
	case Total:
		return "total"
	default:
		return "unknown"
	}
}

// Event is the ephemeral per-sample eclipse state: how much of the
// occulted disk is covered and what the geometry looks like.
type Event struct {
	Fraction float64 // covered fraction of the occulted disk, in [0, 1]
	Kind     Kind
}

// Overlap computes the fraction of the occulted disk (radius rOcc)
// covered by the foreground disk (radius rFore) at the given projected
// center separation. All three lengths share one unit.
//
// sep >= rOcc+rFore is exactly no overlap; sep <= |rOcc-rFore| is full
// containment, total if the foreground disk is at least as large as the
// occulted one and annular otherwise. The intermediate case uses the
// two-circle lens area. acos arguments are clamped to [-1,1] so grazing
// geometries can never produce a domain error.
func Overlap(sep, rOcc, rFore float64) Event {
	if rOcc <= 0 || rFore <= 0 {
		return Event{Kind: None}
	}
	if sep >= rOcc+rFore {
		return Event{Fraction: 0, Kind: None}
	}

	// Separations arrive with float residue from the orbit solve, so an
	// exactly-central conjunction can compute to ~1e-16 rather than 0.
	// Containment is therefore judged with a tolerance on the disk scale.
	tol := 1e-12 * (rOcc + rFore)
	if sep <= math.Abs(rOcc-rFore)+tol {
		if rFore >= rOcc {
			return Event{Fraction: 1, Kind: Total}
		}
		// Smaller disk transiting the larger: covered area is the whole
		// foreground disk.
		f := (rFore * rFore) / (rOcc * rOcc)
		return Event{Fraction: clamp01(f), Kind: Annular}
	}

	area := lensArea(sep, rOcc, rFore)
	f := area / (math.Pi * rOcc * rOcc)
	return Event{Fraction: clamp01(f), Kind: Partial}
}

// lensArea is the intersection area of two partially overlapping circles
// with center distance d: the sum of the two circular segments minus the
// kite formed by the centers and intersection points (expressed via
// Heron's formula).
func lensArea(d, ra, rb float64) float64 {
	argA := clampUnit((d*d + ra*ra - rb*rb) / (2 * d * ra))
	argB := clampUnit((d*d + rb*rb - ra*ra) / (2 * d * rb))

	segA := ra * ra * math.Acos(argA)
	segB := rb * rb * math.Acos(argB)

	k := (-d + ra + rb) * (d + ra - rb) * (d - ra + rb) * (d + ra + rb)
	if k < 0 {
		k = 0 // float overshoot at near-tangent geometry
	}
	return segA + segB - 0.5*math.Sqrt(k)
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
