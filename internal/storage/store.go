package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

// Store persists simulation runs under a base directory, one subdirectory
// per run holding metadata.json and trajectory.csv.
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
	ID        string             `json:"id"`
	Game      string             `json:"game"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Horizon   float64            `json:"horizon"`
	Labels    []string           `json:"labels"`
	Final     map[string]float64 `json:"final"`
}

// Save writes one run to disk and returns its id. The CSV layout is one row
// per sample: time, state components (named per labels), then derived series.
func (s *Store) Save(game string, horizon float64, labels []string, traj *dynamics.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", game, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	final := make(map[string]float64, len(labels))
	for i, label := range labels {
		final[label] = traj.Final()[i]
	}

	meta := RunMetadata{
		ID:        runID,
		Game:      game,
		Timestamp: time.Now(),
		Samples:   traj.Len(),
		Horizon:   horizon,
		Labels:    labels,
		Final:     final,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, labels...)
	header = append(header, traj.AuxNames()...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < traj.Len(); i++ {
		row := []string{strconv.FormatFloat(traj.Times[i], 'f', 6, 64)}
		for _, val := range traj.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		for _, name := range traj.AuxNames() {
			row = append(row, strconv.FormatFloat(traj.Aux[name][i], 'f', 6, 64))
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

// LoadSeries reads a run's CSV back as named columns plus the time grid.
func (s *Store) LoadSeries(runID string) (times []float64, series map[string][]float64, order []string, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, map[string][]float64{}, nil, nil
	}

	header := records[0]
	order = header[1:]
	series = make(map[string][]float64, len(order))
	for _, name := range order {
		series[name] = make([]float64, 0, len(records)-1)
	}
	times = make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for j, name := range order {
			val, _ := strconv.ParseFloat(record[j+1], 64)
			series[name] = append(series[name], val)
		}
	}

	return times, series, order, nil
}
