package dynamics

import (
	"context"
	"fmt"
)

// DefaultSamples is the reference grid resolution: 1000 points including
// both endpoints.
const DefaultSamples = 1000

// Stepper marches a system forward with fixed-step explicit Euler over a
// uniform grid of Samples points, dt = horizon/(Samples-1). The method is
// deliberately first-order: the club game's boundary clipping is defined in
// terms of this exact update, so no higher-order or adaptive scheme belongs
// here.
type Stepper struct {
	Samples int
}

func NewStepper() *Stepper {
	return &Stepper{Samples: DefaultSamples}
}

// Run integrates sys from x0 over [0, horizon] and returns the full
// trajectory. The computation is pure: identical inputs produce bit-for-bit
// identical trajectories. State and derived series are recorded at the start
// of every step; the final sample's derived values come from one extra
// evaluation at the terminal state, not from extrapolation.
func (s *Stepper) Run(ctx context.Context, sys System, x0 State, horizon float64) (*Trajectory, error) {
	n := s.Samples
	if n == 0 {
		n = DefaultSamples
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, n)
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidHorizon, horizon)
	}
	if len(x0) != sys.StateDim() {
		return nil, fmt.Errorf("%w: state has %d components, system wants %d",
			ErrDimensionMismatch, len(x0), sys.StateDim())
	}
	if !x0.IsValid() {
		return nil, fmt.Errorf("%w: initial state", ErrNotFinite)
	}
	if v, ok := sys.(Validator); ok {
		if err := v.ValidateInit(x0); err != nil {
			return nil, err
		}
	}

	var auxNames []string
	obs, _ := sys.(Observable)
	if obs != nil {
		auxNames = obs.AuxNames()
	}
	clamper, _ := sys.(Clamper)

	dt := horizon / float64(n-1)
	traj := newTrajectory(n, auxNames)

	x := x0.Clone()
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		t := float64(i) * dt
		var aux []float64
		if obs != nil {
			aux = obs.Aux(x, t)
		}
		traj.record(i, t, x, aux)

		if i == n-1 {
			break
		}

		dx := sys.Derive(x, t)
		next := make(State, len(x))
		for j := range x {
			next[j] = x[j] + dt*dx[j]
		}
		if clamper != nil {
			next = clamper.Clamp(next)
		}
		x = next
	}

	return traj, nil
}
