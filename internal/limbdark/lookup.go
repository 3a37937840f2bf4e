package limbdark

import (
	"fmt"
	"math"
)

// Coefficient lookup in the manner of the Claret tables (quad:
// A/A&A/618/A20, power-2: A/A&A/674/A63): nearest-cell match on
// log g and Teff. log g is tabulated in 0.5 dex steps, so the request
// is rounded to the nearest 0.5 and clamped to the table range before
// the nearest-Teff row is chosen. The grids here are coarse embedded
// extracts, intended for seeding fit guesses rather than reproducing
// the full catalogs.

type coeffRow struct {
	logg, teff float64
	c1, c2     float64
}

// Quadratic (a, b) coefficients, TESS passband.
var quadTESS = []coeffRow{
	{3.0, 3000, 0.452, 0.265}, {3.0, 4000, 0.431, 0.228}, {3.0, 5000, 0.517, 0.175},
	{3.0, 6000, 0.387, 0.221}, {3.0, 7000, 0.311, 0.253}, {3.0, 8000, 0.248, 0.274},
	{3.0, 10000, 0.169, 0.281}, {3.0, 12000, 0.131, 0.272},
	{4.0, 3000, 0.486, 0.243}, {4.0, 4000, 0.457, 0.219}, {4.0, 5000, 0.443, 0.186},
	{4.0, 6000, 0.351, 0.234}, {4.0, 7000, 0.282, 0.261}, {4.0, 8000, 0.224, 0.277},
	{4.0, 10000, 0.152, 0.283}, {4.0, 12000, 0.119, 0.275},
	{5.0, 3000, 0.511, 0.221}, {5.0, 4000, 0.478, 0.207}, {5.0, 5000, 0.415, 0.198},
	{5.0, 6000, 0.329, 0.242}, {5.0, 7000, 0.262, 0.268}, {5.0, 8000, 0.207, 0.281},
	{5.0, 10000, 0.141, 0.286}, {5.0, 12000, 0.108, 0.278},
}

// Quadratic (a, b) coefficients, Kepler passband.
var quadKepler = []coeffRow{
	{3.0, 3000, 0.663, 0.201}, {3.0, 4000, 0.641, 0.172}, {3.0, 5000, 0.598, 0.148},
	{3.0, 6000, 0.471, 0.219}, {3.0, 7000, 0.374, 0.267}, {3.0, 8000, 0.296, 0.295},
	{3.0, 10000, 0.201, 0.304}, {3.0, 12000, 0.154, 0.293},
	{4.0, 3000, 0.695, 0.181}, {4.0, 4000, 0.668, 0.159}, {4.0, 5000, 0.562, 0.167},
	{4.0, 6000, 0.437, 0.234}, {4.0, 7000, 0.343, 0.278}, {4.0, 8000, 0.271, 0.301},
	{4.0, 10000, 0.183, 0.308}, {4.0, 12000, 0.140, 0.296},
	{5.0, 3000, 0.722, 0.162}, {5.0, 4000, 0.689, 0.149}, {5.0, 5000, 0.531, 0.182},
	{5.0, 6000, 0.412, 0.243}, {5.0, 7000, 0.321, 0.286}, {5.0, 8000, 0.252, 0.306},
	{5.0, 10000, 0.170, 0.312}, {5.0, 12000, 0.129, 0.299},
}

// Power-2 (g, h) coefficients, TESS passband.
var pow2TESS = []coeffRow{
	{3.0, 3000, 0.721, 0.624}, {3.0, 4000, 0.689, 0.671}, {3.0, 5000, 0.674, 0.735},
	{3.0, 6000, 0.612, 0.821}, {3.0, 7000, 0.557, 0.894}, {3.0, 8000, 0.511, 0.953},
	{3.0, 10000, 0.438, 1.034}, {3.0, 12000, 0.391, 1.082},
	{4.0, 3000, 0.748, 0.598}, {4.0, 4000, 0.711, 0.652}, {4.0, 5000, 0.641, 0.758},
	{4.0, 6000, 0.584, 0.842}, {4.0, 7000, 0.531, 0.912}, {4.0, 8000, 0.487, 0.968},
	{4.0, 10000, 0.417, 1.046}, {4.0, 12000, 0.372, 1.091},
	{5.0, 3000, 0.771, 0.574}, {5.0, 4000, 0.729, 0.636}, {5.0, 5000, 0.613, 0.779},
	{5.0, 6000, 0.559, 0.861}, {5.0, 7000, 0.508, 0.928}, {5.0, 8000, 0.466, 0.981},
	{5.0, 10000, 0.398, 1.057}, {5.0, 12000, 0.355, 1.099},
}

// Power-2 (g, h) coefficients, Kepler passband.
var pow2Kepler = []coeffRow{
	{3.0, 3000, 0.834, 0.512}, {3.0, 4000, 0.801, 0.563}, {3.0, 5000, 0.752, 0.648},
	{3.0, 6000, 0.684, 0.741}, {3.0, 7000, 0.621, 0.822}, {3.0, 8000, 0.568, 0.887},
	{3.0, 10000, 0.486, 0.974}, {3.0, 12000, 0.432, 1.025},
	{4.0, 3000, 0.862, 0.489}, {4.0, 4000, 0.824, 0.546}, {4.0, 5000, 0.717, 0.672},
	{4.0, 6000, 0.653, 0.763}, {4.0, 7000, 0.592, 0.841}, {4.0, 8000, 0.541, 0.903},
	{4.0, 10000, 0.462, 0.986}, {4.0, 12000, 0.411, 1.035},
	{5.0, 3000, 0.887, 0.467}, {5.0, 4000, 0.843, 0.531}, {5.0, 5000, 0.686, 0.694},
	{5.0, 6000, 0.625, 0.783}, {5.0, 7000, 0.567, 0.858}, {5.0, 8000, 0.518, 0.917},
	{5.0, 10000, 0.442, 0.997}, {5.0, 12000, 0.394, 1.044},
}

// QuadCoefficients returns the quadratic limb-darkening coefficients
// (a, b) nearest the requested surface gravity and effective
// temperature for the given mission passband ("TESS" or "Kepler").
func QuadCoefficients(logg, teff float64, mission string) (a, b float64, err error) {
	table, err := selectTable(mission, quadTESS, quadKepler)
	if err != nil {
		return 0, 0, err
	}
	row := nearestRow(table, logg, teff)
	return row.c1, row.c2, nil
}

// Pow2Coefficients returns the power-2 law coefficients (g, h) nearest
// the requested surface gravity and effective temperature.
func Pow2Coefficients(logg, teff float64, mission string) (g, h float64, err error) {
	table, err := selectTable(mission, pow2TESS, pow2Kepler)
	if err != nil {
		return 0, 0, err
	}
	row := nearestRow(table, logg, teff)
	return row.c1, row.c2, nil
}

func selectTable(mission string, tess, kepler []coeffRow) ([]coeffRow, error) {
	switch mission {
	case "TESS", "tess":
		return tess, nil
	case "Kepler", "kepler":
		return kepler, nil
	default:
		return nil, fmt.Errorf("limbdark: no coefficient table for mission %q", mission)
	}
}

func nearestRow(table []coeffRow, logg, teff float64) coeffRow {
	logg = roundToNearest(logg, 0.5)

	// Clamp to the tabulated log g range.
	minG, maxG := table[0].logg, table[0].logg
	for _, r := range table {
		minG = math.Min(minG, r.logg)
		maxG = math.Max(maxG, r.logg)
	}
	logg = math.Max(minG, math.Min(maxG, logg))

	// Nearest tabulated log g, then nearest Teff within it.
	best := table[0]
	bestGap := math.Inf(1)
	for _, r := range table {
		gGap := math.Abs(r.logg - logg)
		tGap := math.Abs(r.teff - teff)
		if gGap < bestGap-1e-9 || (math.Abs(gGap-bestGap) < 1e-9 && tGap < math.Abs(best.teff-teff)) {
			if gGap < bestGap-1e-9 {
				bestGap = gGap
			}
			best = r
		}
	}
	return best
}

// roundToNearest rounds value to the closest multiple of step, e.g.
// roundToNearest(4.24, 0.5) = 4.0 and roundToNearest(4.26, 0.5) = 4.5.
func roundToNearest(value, step float64) float64 {
	return math.Round(value/step) * step
}
