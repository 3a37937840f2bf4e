// Package export renders light curves to standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/kmorven/deborbit/internal/lightcurve"
)

// CurveToSVG draws observed samples as dots and, when model has the
// same length as the curve, overlays the model flux as a path. The
// vertical axis is flux with 10% padding around the data range.
func CurveToSVG(curve lightcurve.Curve, model []float64, width, height int) string {
	if len(curve) < 2 {
		return ""
	}

	minT, maxT := curve[0].Time, curve[len(curve)-1].Time
	minF, maxF := curve[0].Flux, curve[0].Flux
	for _, s := range curve {
		if s.Flux < minF {
			minF = s.Flux
		}
		if s.Flux > maxF {
			maxF = s.Flux
		}
	}
	for _, f := range model {
		if f < minF {
			minF = f
		}
		if f > maxF {
			maxF = f
		}
	}

	rangeT := maxT - minT
	rangeF := maxF - minF
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeF == 0 {
		rangeF = 1
	}
	minF -= rangeF * 0.1
	maxF += rangeF * 0.1
	rangeF = maxF - minF

	toX := func(t float64) float64 { return (t - minT) / rangeT * float64(width) }
	toY := func(f float64) float64 { return float64(height) - (f-minF)/rangeF*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#5fd7ff">
`, width, height, width, height))

	for _, s := range curve {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, toX(s.Time), toY(s.Flux)))
	}
	sb.WriteString("</g>\n")

	if len(model) == len(curve) {
		sb.WriteString(`<path fill="none" stroke="#ffaf00" stroke-width="1.5" d="M`)
		for i, s := range curve {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(s.Time), toY(model[i])))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(s.Time), toY(model[i])))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
