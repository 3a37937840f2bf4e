package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/kmorven/deborbit/internal/fit"
	"github.com/kmorven/deborbit/internal/lightcurve"
)

type ExportData struct {
	Mission      string             `json:"mission"`
	Law          string             `json:"law"`
	Status       string             `json:"status"`
	Iterations   int                `json:"iterations"`
	ReducedChiSq float64            `json:"reduced_chi_sq"`
	Samples      int                `json:"samples"`
	Times        []float64          `json:"times"`
	Fluxes       []float64          `json:"fluxes"`
	FluxErrs     []float64          `json:"flux_errs"`
	Model        []float64          `json:"model,omitempty"`
	Params       map[string]float64 `json:"params"`
	Sigma        map[string]float64 `json:"sigma"`
}

func buildExport(mission, law string, curve lightcurve.Curve, model []float64, result *fit.Result) ExportData {
	data := ExportData{
		Mission:      mission,
		Law:          law,
		Status:       result.Status.String(),
		Iterations:   result.Iterations,
		ReducedChiSq: result.ReducedChiSq,
		Samples:      len(curve),
		Times:        curve.Times(),
		Fluxes:       curve.Fluxes(),
		FluxErrs:     make([]float64, len(curve)),
		Model:        model,
		Params:       result.Params.Map(),
		Sigma:        result.Sigma,
	}
	for i, s := range curve {
		data.FluxErrs[i] = s.FluxErr
	}
	return data
}

func exportTo(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path, mission, law string, curve lightcurve.Curve, model []float64, result *fit.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportTo(file, buildExport(mission, law, curve, model, result))
}

func ExportJSONStdout(mission, law string, curve lightcurve.Curve, model []float64, result *fit.Result) error {
	return exportTo(os.Stdout, buildExport(mission, law, curve, model, result))
}

// Export re-emits a persisted run as the same JSON document the fit
// command produces.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	curve, model, err := s.LoadCurve(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Mission:      meta.Mission,
		Law:          meta.Law,
		Status:       meta.Status,
		Iterations:   meta.Iterations,
		ReducedChiSq: meta.ReducedChiSq,
		Samples:      len(curve),
		Times:        curve.Times(),
		Fluxes:       curve.Fluxes(),
		FluxErrs:     make([]float64, len(curve)),
		Model:        model,
		Params:       meta.Params,
		Sigma:        meta.Sigma,
	}
	for i, sample := range curve {
		data.FluxErrs[i] = sample.FluxErr
	}
	return exportTo(w, data)
}
