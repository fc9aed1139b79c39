package dynamics

import (
	"context"
	"errors"
	"math"
	"testing"
)

type decaySystem struct{}

func (d *decaySystem) Derive(x State, t float64) State {
	return State{-x[0]}
}

func (d *decaySystem) StateDim() int { return 1 }

type clampedSystem struct {
	decaySystem
}

func (c *clampedSystem) Clamp(x State) State {
	if x[0] < 0.5 {
		return State{0.5}
	}
	return x
}

type observedSystem struct {
	decaySystem
	evals int
}

func (o *observedSystem) AuxNames() []string { return []string{"double"} }

func (o *observedSystem) Aux(x State, t float64) []float64 {
	o.evals++
	return []float64{2 * x[0]}
}

func TestStepperRun(t *testing.T) {
	s := &Stepper{Samples: 101}

	traj, err := s.Run(context.Background(), &decaySystem{}, State{1.0}, 1.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if traj.Len() != 101 {
		t.Errorf("expected 101 samples, got %d", traj.Len())
	}

	if traj.Times[0] != 0 {
		t.Errorf("expected t0=0, got %f", traj.Times[0])
	}
	if math.Abs(traj.Times[100]-1.0) > 1e-12 {
		t.Errorf("expected final time 1.0, got %f", traj.Times[100])
	}

	dt := traj.Times[1] - traj.Times[0]
	for i := 1; i < traj.Len(); i++ {
		if math.Abs((traj.Times[i]-traj.Times[i-1])-dt) > 1e-12 {
			t.Fatalf("non-uniform grid at %d", i)
		}
	}

	// Euler on dx=-x converges to exp(-t) as dt shrinks.
	final := traj.Final()[0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 0.01 {
		t.Errorf("expected final ~%.4f, got %.4f", expected, final)
	}
}

func TestStepperDefaultSamples(t *testing.T) {
	s := NewStepper()

	traj, err := s.Run(context.Background(), &decaySystem{}, State{1.0}, 10.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if traj.Len() != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, traj.Len())
	}
}

func TestStepperInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		x0      State
		horizon float64
		wantErr error
	}{
		{"zero horizon", 100, State{1}, 0, ErrInvalidHorizon},
		{"negative horizon", 100, State{1}, -5, ErrInvalidHorizon},
		{"one sample", 1, State{1}, 1, ErrInvalidSamples},
		{"dimension mismatch", 100, State{1, 2}, 1, ErrDimensionMismatch},
		{"nan initial state", 100, State{math.NaN()}, 1, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stepper{Samples: tt.samples}
			_, err := s.Run(context.Background(), &decaySystem{}, tt.x0, tt.horizon)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStepperDeterminism(t *testing.T) {
	s := NewStepper()

	a, err := s.Run(context.Background(), &decaySystem{}, State{0.7}, 10.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := s.Run(context.Background(), &decaySystem{}, State{0.7}, 10.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := 0; i < a.Len(); i++ {
		if a.States[i][0] != b.States[i][0] || a.Times[i] != b.Times[i] {
			t.Fatalf("trajectories differ at sample %d", i)
		}
	}
}

func TestStepperClamping(t *testing.T) {
	s := &Stepper{Samples: 50}

	traj, err := s.Run(context.Background(), &clampedSystem{}, State{1.0}, 10.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, x := range traj.States {
		if x[0] < 0.5 {
			t.Fatalf("clamp bypassed at sample %d: %f", i, x[0])
		}
	}
	if traj.Final()[0] != 0.5 {
		t.Errorf("expected decay to stop at clamp floor, got %f", traj.Final()[0])
	}
}

func TestStepperAuxRecording(t *testing.T) {
	sys := &observedSystem{}
	s := &Stepper{Samples: 10}

	traj, err := s.Run(context.Background(), sys, State{1.0}, 1.0)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	series := traj.Series("double")
	if len(series) != 10 {
		t.Fatalf("expected 10 aux values, got %d", len(series))
	}

	// One evaluation per sample, including the terminal state.
	if sys.evals != 10 {
		t.Errorf("expected 10 aux evaluations, got %d", sys.evals)
	}

	for i := range series {
		if series[i] != 2*traj.States[i][0] {
			t.Errorf("aux mismatch at %d: %f vs state %f", i, series[i], traj.States[i][0])
		}
	}
}

func TestStepperContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStepper()
	_, err := s.Run(ctx, &decaySystem{}, State{1.0}, 10.0)
	if err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestTrajectoryColumn(t *testing.T) {
	tr := newTrajectory(3, nil)
	tr.record(0, 0, State{1, 10}, nil)
	tr.record(1, 1, State{2, 20}, nil)
	tr.record(2, 2, State{3, 30}, nil)

	col := tr.Column(1)
	if col[0] != 10 || col[1] != 20 || col[2] != 30 {
		t.Errorf("unexpected column: %v", col)
	}
}
