package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"equilib/internal/analysis"
)

// Store persists analysis runs under a base directory, one subdirectory
// per run: metadata.json plus equilibria.csv.
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
	ID          string    `json:"id"`
	Potential   string    `json:"potential"`
	Solver      string    `json:"solver"`
	Timestamp   time.Time `json:"timestamp"`
	Seeds       []float64 `json:"seeds"`
	TolRoot     float64   `json:"tol_root"`
	TolDistinct float64   `json:"tol_distinct"`
	NumFound    int       `json:"num_found"`
}

func (s *Store) Save(pot, solverName string, seeds []float64, tolRoot, tolDistinct float64, points []analysis.Point) (string, error) {
	runID := fmt.Sprintf("%s_%d", pot, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Potential:   pot,
		Solver:      solverName,
		Timestamp:   time.Now(),
		Seeds:       seeds,
		TolRoot:     tolRoot,
		TolDistinct: tolDistinct,
		NumFound:    len(points),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "equilibria.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"position", "energy", "curvature", "stability"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Position, 'f', 8, 64),
			strconv.FormatFloat(p.Energy, 'f', 8, 64),
			strconv.FormatFloat(p.Curvature, 'f', 8, 64),
			string(p.Stability),
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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]analysis.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "equilibria.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []analysis.Point{}, nil
	}

	points := make([]analysis.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		pos, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		energy, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		curv, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		points = append(points, analysis.Point{
			Position:  pos,
			Energy:    energy,
			Curvature: curv,
			Stability: analysis.Stability(record[3]),
		})
	}
	return points, nil
}

// ExportJSON writes a run (metadata plus points) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, points []analysis.Point) error {
	payload := struct {
		RunMetadata
		Points []analysis.Point `json:"points"`
	}{*meta, points}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
