// Package sweep batch-runs a game over a grid of parameter values and
// reports the terminal strategy shares, mapping how the long-run outcome
// depends on initial conditions and payoff coefficients.
package sweep

import (
	"context"
	"fmt"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

// Builder constructs a fresh game, initial state and horizon for one grid
// point. A fresh system per point keeps runs independent.
type Builder func(params map[string]float64) (dynamics.System, dynamics.State, float64, error)

// Point is the outcome at one grid point: the parameter values used and the
// terminal value of each labeled state component.
type Point struct {
	Params map[string]float64
	Final  map[string]float64
}

type Grid struct {
	names  []string
	values [][]float64
}

func NewGrid(names []string, values [][]float64) *Grid {
	return &Grid{names: names, values: values}
}

// Range enumerates min..max inclusive in increments of step. A non-positive
// step yields no values rather than a loop that never advances.
func Range(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	vals := make([]float64, 0)
	for v := min; v <= max+step/2; v += step {
		vals = append(vals, v)
	}
	return vals
}

// Run evaluates every grid point with a full simulation.
func (g *Grid) Run(ctx context.Context, build Builder, samples int) ([]Point, error) {
	points := make([]Point, 0)
	err := g.runRecursive(ctx, 0, make(map[string]float64), build, samples, &points)
	return points, err
}

func (g *Grid) runRecursive(ctx context.Context, depth int, current map[string]float64, build Builder, samples int, out *[]Point) error {
	if depth == len(g.names) {
		sys, x0, horizon, err := build(current)
		if err != nil {
			return err
		}

		stepper := &dynamics.Stepper{Samples: samples}
		traj, err := stepper.Run(ctx, sys, x0, horizon)
		if err != nil {
			return err
		}

		labels := stateLabels(sys, len(x0))
		final := make(map[string]float64, len(labels))
		for i, label := range labels {
			final[label] = traj.Final()[i]
		}

		params := make(map[string]float64, len(current))
		for k, v := range current {
			params[k] = v
		}
		*out = append(*out, Point{Params: params, Final: final})
		return nil
	}

	name := g.names[depth]
	for _, val := range g.values[depth] {
		current[name] = val
		if err := g.runRecursive(ctx, depth+1, current, build, samples, out); err != nil {
			return err
		}
	}
	delete(current, name)
	return nil
}

func stateLabels(sys dynamics.System, dim int) []string {
	if l, ok := sys.(dynamics.Labeled); ok {
		return l.StateLabels()
	}
	labels := make([]string, dim)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i)
	}
	return labels
}
