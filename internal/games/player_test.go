package games

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

func TestPlayerDimensions(t *testing.T) {
	g := NewPlayerGame()

	if g.StateDim() != 1 {
		t.Errorf("expected state dim 1, got %d", g.StateDim())
	}
}

func TestPlayerBoundaryFixedPoints(t *testing.T) {
	s := &dynamics.Stepper{Samples: 500}

	for _, x0 := range []float64{0, 1} {
		traj, err := s.Run(context.Background(), NewPlayerGame(), dynamics.State{x0}, 20)
		if err != nil {
			t.Fatalf("run failed at %v: %v", x0, err)
		}
		for i, x := range traj.States {
			if x[0] != x0 {
				t.Fatalf("boundary %v drifted at sample %d: %f", x0, i, x[0])
			}
		}
	}
}

func TestPlayerReferenceScenario(t *testing.T) {
	// a0=2.5, pGrow=1.0, x0=0.6: a = 2.5 + 0.6 = 3.1
	// d0=2.0, mGrow=5.0:         d = 2.0 + 5.0*0.4 = 4.0
	// fP = 3.1*0.6 + 1.4*0.4 = 2.42
	// fM = 1.4*0.6 + 4.0*0.4 = 2.44
	g := NewPlayerGame()
	s := dynamics.NewStepper()

	traj, err := s.Run(context.Background(), g, dynamics.State{0.6}, 10)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if traj.Len() != 1000 {
		t.Fatalf("expected 1000 samples, got %d", traj.Len())
	}
	if traj.States[0][0] != 0.6 {
		t.Errorf("expected x[0]=0.6, got %f", traj.States[0][0])
	}

	tol := 1e-9
	if math.Abs(traj.Series("avg_prestige")[0]-2.42) > tol {
		t.Errorf("expected fP[0]=2.42, got %.12f", traj.Series("avg_prestige")[0])
	}
	if math.Abs(traj.Series("avg_money")[0]-2.44) > tol {
		t.Errorf("expected fM[0]=2.44, got %.12f", traj.Series("avg_money")[0])
	}
	if math.Abs(traj.Series("pvp")[0]-3.1) > tol {
		t.Errorf("expected a[0]=3.1, got %.12f", traj.Series("pvp")[0])
	}
	if math.Abs(traj.Series("mvm")[0]-4.0) > tol {
		t.Errorf("expected d[0]=4.0, got %.12f", traj.Series("mvm")[0])
	}
}

func TestPlayerFinalAuxMatchesTerminalState(t *testing.T) {
	g := NewPlayerGame()
	s := &dynamics.Stepper{Samples: 100}

	traj, err := s.Run(context.Background(), g, dynamics.State{0.6}, 10)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// The last sample's payoffs come from evaluating at the terminal x,
	// not from extrapolating the previous step.
	last := traj.Len() - 1
	want := g.Aux(traj.Final(), 0)
	for i, name := range g.AuxNames() {
		if traj.Aux[name][last] != want[i] {
			t.Errorf("%s[last] = %f, want %f", name, traj.Aux[name][last], want[i])
		}
	}
}

func TestPlayerUnclampedState(t *testing.T) {
	// The player game deliberately skips clamping: with a coarse grid the
	// Euler step can push x outside [0,1].
	if _, ok := interface{}(NewPlayerGame()).(dynamics.Clamper); ok {
		t.Fatal("player game must not implement Clamper")
	}

	g := &PlayerGame{A0: 0.1, D0: 5.0, B: 0.1, PGrow: 0.1, MGrow: 10.0}
	s := &dynamics.Stepper{Samples: 5}

	traj, err := s.Run(context.Background(), g, dynamics.State{0.5}, 50)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	escaped := false
	for _, x := range traj.States {
		if x[0] < 0 || x[0] > 1 {
			escaped = true
			break
		}
	}
	if !escaped {
		t.Error("expected coarse-grid state to leave [0,1]")
	}
}

func TestPlayerRejectsBadInputs(t *testing.T) {
	s := dynamics.NewStepper()

	if _, err := s.Run(context.Background(), NewPlayerGame(), dynamics.State{1.2}, 10); !errors.Is(err, dynamics.ErrInitOutOfRange) {
		t.Errorf("expected out-of-range error, got %v", err)
	}

	bad := NewPlayerGame()
	bad.MGrow = math.Inf(1)
	if _, err := s.Run(context.Background(), bad, dynamics.State{0.5}, 10); !errors.Is(err, dynamics.ErrNotFinite) {
		t.Errorf("expected not-finite error, got %v", err)
	}

	if _, err := s.Run(context.Background(), NewPlayerGame(), dynamics.State{0.5}, 0); !errors.Is(err, dynamics.ErrInvalidHorizon) {
		t.Errorf("expected horizon error, got %v", err)
	}
}

func TestPlayerSetParam(t *testing.T) {
	g := NewPlayerGame()

	if err := g.SetParam("m_grow", 7.5); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if g.MGrow != 7.5 {
		t.Errorf("expected m_grow 7.5, got %f", g.MGrow)
	}

	if err := g.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}

	params := g.GetParams()
	if params["m_grow"] != 7.5 {
		t.Errorf("GetParams out of sync: %v", params)
	}
}
