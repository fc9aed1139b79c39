package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

type RunData struct {
	Game    string               `json:"game"`
	Horizon float64              `json:"horizon"`
	Samples int                  `json:"samples"`
	Times   []float64            `json:"times"`
	Series  map[string][]float64 `json:"series"`
}

// BuildRunData flattens a trajectory into named series keyed by the state
// labels and derived-series names.
func BuildRunData(game string, horizon float64, labels []string, traj *dynamics.Trajectory) RunData {
	series := make(map[string][]float64, len(labels)+len(traj.AuxNames()))
	for i, label := range labels {
		series[label] = traj.Column(i)
	}
	for _, name := range traj.AuxNames() {
		series[name] = traj.Aux[name]
	}
	return RunData{
		Game:    game,
		Horizon: horizon,
		Samples: traj.Len(),
		Times:   traj.Times,
		Series:  series,
	}
}

func WriteJSON(w io.Writer, data RunData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSON(path string, data RunData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
