package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmorven/deborbit/internal/fit"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// FitReport renders a fit result as a styled parameter table. Free
// parameters are highlighted and carry their 1-sigma uncertainty.
func FitReport(result *fit.Result) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Fit Result") + "\n")
	s.WriteString(labelStyle.Render("Status") + statusStyle(result.Status).Render(result.Status.String()) + "\n")
	s.WriteString(labelStyle.Render("Iterations") + valueStyle.Render(fmt.Sprintf("%d", result.Iterations)) + "\n")
	s.WriteString(labelStyle.Render("Chi²/dof") + valueStyle.Render(fmt.Sprintf("%.4g", result.ReducedChiSq)) + "\n\n")

	free := make(map[string]bool, len(result.Free))
	for _, name := range result.Free {
		free[name] = true
	}

	values := result.Params.Map()
	for _, name := range fit.AllParams {
		label := labelStyle.Render(name)
		if free[name] {
			s.WriteString(label + freeStyle.Render(fmt.Sprintf("%.6g ± %.2g", values[name], result.Sigma[name])) + "\n")
		} else {
			s.WriteString(label + valueStyle.Render(fmt.Sprintf("%.6g", values[name])) + "\n")
		}
	}

	return s.String()
}

func statusStyle(st fit.Status) lipgloss.Style {
	switch st {
	case fit.Converged:
		return okStyle
	case fit.MaxIterations:
		return warnStyle
	default:
		return failStyle
	}
}
