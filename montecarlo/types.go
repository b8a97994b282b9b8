// Package montecarlo defines the simulation options and sentinel errors.
package montecarlo

import "errors"

// Sentinel errors returned by the simulation layer.
var (
	// ErrNilProcess indicates a nil process engine.
	ErrNilProcess = errors.New("montecarlo: process is nil")

	// ErrBadGrid indicates a degenerate time grid.
	ErrBadGrid = errors.New("montecarlo: time grid needs a positive horizon and at least one step")

	// ErrBadOptions indicates an invalid simulation configuration.
	ErrBadOptions = errors.New("montecarlo: Paths and Steps must be >= 1 and Horizon > 0")
)

// Options configures a multi-path simulation.
//
//	Paths   — number of independent paths to simulate.
//	Steps   — number of uniform time steps per path.
//	Horizon — simulation horizon in year fractions.
//	Seed    — base RNG seed; path i uses a source derived from Seed and i.
//	Workers — maximum concurrent paths; ≤ 0 means GOMAXPROCS.
type Options struct {
	Paths   int
	Steps   int
	Horizon float64
	Seed    uint64
	Workers int
}

// DefaultOptions returns a sensible starting configuration: one year of
// daily steps over a thousand paths, fixed seed, GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Paths:   1000,
		Steps:   252,
		Horizon: 1.0,
		Seed:    42,
		Workers: 0,
	}
}
