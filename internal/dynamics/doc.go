// Package dynamics provides the core primitives for evolutionary-game
// simulation under replicator dynamics.
//
// The package defines the types shared by every game model:
//
//   - [State]: vector of strategy shares
//   - [System]: interface for the per-game derivative rule (dX/dt = f(X, t))
//   - [Stepper]: fixed-step explicit Euler integrator over a uniform grid
//   - [Trajectory]: the immutable output of a run
//
// # Example
//
//	game := games.NewClubGame()
//	step := dynamics.NewStepper()
//	traj, _ := step.Run(ctx, game, dynamics.State{0.5, 0.5}, 10)
//
// Systems may opt into extra behavior through capability interfaces:
// [Clamper] for per-step state clamping, [Observable] for derived per-step
// series, [Validator] for initial-condition checks, and [Configurable] for
// live parameter editing.
//
// # Thread Safety
//
// Stepper instances are stateless apart from the sample count and may be
// shared; each Run produces a fresh Trajectory.
package dynamics
