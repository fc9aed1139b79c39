package dynamics

import "errors"

// Domain errors for simulation runs.
var (
	// ErrInvalidHorizon indicates a non-positive time horizon.
	ErrInvalidHorizon = errors.New("dynamics: horizon must be positive")

	// ErrInvalidSamples indicates a sample grid too small to integrate over.
	ErrInvalidSamples = errors.New("dynamics: need at least 2 samples")

	// ErrDimensionMismatch indicates an initial state whose length does not
	// match the system.
	ErrDimensionMismatch = errors.New("dynamics: state dimension mismatch")

	// ErrInitOutOfRange indicates an initial condition outside the game's
	// valid region (strategy shares must start in [0,1]).
	ErrInitOutOfRange = errors.New("dynamics: initial state out of range")

	// ErrNotFinite indicates a NaN or Inf parameter or initial value.
	ErrNotFinite = errors.New("dynamics: value is not finite")
)
