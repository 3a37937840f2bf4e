package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kmorven/deborbit/internal/lightcurve"
)

var (
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	scatterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// PlotFlux renders the flux series as a line chart. The sample order is
// preserved, so pass a folded curve to see the eclipse profile.
func PlotFlux(curve lightcurve.Curve, width, height int) string {
	if len(curve) < 2 {
		return ""
	}
	chart := asciigraph.Plot(curve.Fluxes(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("normalized flux"),
	)
	return graphStyle.Render(chart)
}

// PlotModel renders predicted model fluxes against the sample index.
func PlotModel(fluxes []float64, width, height int, caption string) string {
	if len(fluxes) < 2 {
		return ""
	}
	chart := asciigraph.Plot(fluxes,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(chart)
}

// Braille cells pack 2x4 dots per character, offset from U+2800.
var dotMask = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// ScatterFolded renders the phase-folded samples as a braille scatter,
// one dot per observation. Unlike the line chart this keeps overlapping
// phases visible, which is what shows scatter around the eclipse.
func ScatterFolded(curve lightcurve.Curve, period, epoch float64, width, height int) string {
	folded := curve.Fold(period, epoch)
	if len(folded) < 2 {
		return ""
	}

	minFlux, maxFlux := folded[0].Flux, folded[0].Flux
	for _, s := range folded {
		minFlux = math.Min(minFlux, s.Flux)
		maxFlux = math.Max(maxFlux, s.Flux)
	}
	span := maxFlux - minFlux
	if span == 0 {
		span = 1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = 0x2800
		}
	}

	subW := width * 2
	subH := height * 4
	for _, s := range folded {
		x := int(s.Time * float64(subW-1))
		y := int((maxFlux - s.Flux) / span * float64(subH-1))
		if x < 0 || y < 0 || x >= subW || y >= subH {
			continue
		}
		grid[y/4][x/2] |= rune(dotMask[y%4][x%2])
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row) + "\n")
	}
	return scatterStyle.Render(b.String())
}
