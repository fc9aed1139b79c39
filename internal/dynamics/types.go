package dynamics

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is the derivative rule of a game: dX/dt at the current state.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Clamper restricts each updated state to its valid region after an Euler
// step. Clamping here is a property of the dynamics, not input validation:
// a game that clamps keeps strategy shares inside [0,1] no matter how coarse
// the timestep.
type Clamper interface {
	Clamp(x State) State
}

// Observable reports named derived quantities at a state, recorded once per
// sample alongside the state itself.
type Observable interface {
	AuxNames() []string
	Aux(x State, t float64) []float64
}

// Validator checks an initial condition before any stepping happens.
type Validator interface {
	ValidateInit(x State) error
}

// Labeled names the state components, for plot captions and CSV headers.
type Labeled interface {
	StateLabels() []string
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
