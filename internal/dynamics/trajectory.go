package dynamics

// Trajectory is the output of one run: a uniform time grid with the state at
// every sample plus any derived series the system reports. All slices have
// the same length and the value is immutable once returned.
type Trajectory struct {
	Times  []float64
	States []State
	Aux    map[string][]float64

	auxNames []string
}

func newTrajectory(n int, auxNames []string) *Trajectory {
	tr := &Trajectory{
		Times:    make([]float64, n),
		States:   make([]State, n),
		Aux:      make(map[string][]float64, len(auxNames)),
		auxNames: auxNames,
	}
	for _, name := range auxNames {
		tr.Aux[name] = make([]float64, n)
	}
	return tr
}

func (tr *Trajectory) record(i int, t float64, x State, aux []float64) {
	tr.Times[i] = t
	tr.States[i] = x.Clone()
	for j, name := range tr.auxNames {
		tr.Aux[name][i] = aux[j]
	}
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// Column extracts the idx-th state component as a flat series.
func (tr *Trajectory) Column(idx int) []float64 {
	col := make([]float64, len(tr.States))
	for i, s := range tr.States {
		col[i] = s[idx]
	}
	return col
}

// Series returns a derived series by name, or nil if the system did not
// report it.
func (tr *Trajectory) Series(name string) []float64 {
	return tr.Aux[name]
}

// AuxNames returns the derived series names in recording order.
func (tr *Trajectory) AuxNames() []string {
	return tr.auxNames
}

// Final returns the state at the last sample.
func (tr *Trajectory) Final() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}
