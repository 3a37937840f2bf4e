package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kmorven/deborbit/internal/fit"
	"github.com/kmorven/deborbit/internal/lightcurve"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Mission      string             `json:"mission"`
	Law          string             `json:"law"`
	Timestamp    time.Time          `json:"timestamp"`
	Status       string             `json:"status"`
	Iterations   int                `json:"iterations"`
	ReducedChiSq float64            `json:"reduced_chi_sq"`
	Params       map[string]float64 `json:"params"`
	Sigma        map[string]float64 `json:"sigma"`
}

// Save persists one fit run: metadata.json plus curve.csv holding the
// observed samples and the best-fit model flux per sample.
func (s *Store) Save(mission, law string, curve lightcurve.Curve, model []float64, result *fit.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", mission, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Mission:      mission,
		Law:          law,
		Timestamp:    time.Now(),
		Status:       result.Status.String(),
		Iterations:   result.Iterations,
		ReducedChiSq: result.ReducedChiSq,
		Params:       result.Params.Map(),
		Sigma:        result.Sigma,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "curve.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "flux", "flux_err"}
	if len(model) == len(curve) {
		header = append(header, "model")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, sample := range curve {
		row := []string{
			strconv.FormatFloat(sample.Time, 'f', 8, 64),
			strconv.FormatFloat(sample.Flux, 'f', 8, 64),
			strconv.FormatFloat(sample.FluxErr, 'f', 8, 64),
		}
		if len(model) == len(curve) {
			row = append(row, strconv.FormatFloat(model[i], 'f', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurve reads back the persisted samples and, when present, the
// model flux column.
func (s *Store) LoadCurve(runID string) (lightcurve.Curve, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "curve.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return lightcurve.Curve{}, nil, nil
	}

	hasModel := len(records[0]) > 3

	curve := make(lightcurve.Curve, 0, len(records)-1)
	var model []float64
	if hasModel {
		model = make([]float64, 0, len(records)-1)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		flux, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		fluxErr, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		curve = append(curve, lightcurve.Sample{Time: t, Flux: flux, FluxErr: fluxErr})

		if hasModel && len(record) > 3 {
			m, err := strconv.ParseFloat(record[3], 64)
			if err == nil {
				model = append(model, m)
			}
		}
	}

	return curve, model, nil
}
