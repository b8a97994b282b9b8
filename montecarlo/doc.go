// Package montecarlo orchestrates path simulation on top of the heston
// process engine: uniform time grids, single-path generation, concurrent
// multi-path fan-out and terminal-value statistics.
//
// 🚀 How it fits together:
//
//	TimeGrid builds the step schedule, GeneratePath walks one path by
//	feeding the engine a fresh pair of independent standard-normal shocks
//	per step, and Simulate fans paths out across a bounded worker pool with
//	one deterministic RNG source per path. Results land in a Paths×(Steps+1)
//	dense matrix so terminal statistics reduce to column operations.
//
// Determinism:
//
//	Each path derives its own source from Options.Seed and its row index, so
//	a run is reproducible regardless of scheduling order or worker count.
//
// Errors (sentinel):
//
//   - ErrNilProcess — a nil engine was supplied.
//   - ErrBadGrid    — a degenerate time grid (fewer than two points, or a
//     non-positive horizon/step count at construction).
//   - ErrBadOptions — Paths or Steps below one, or a non-positive Horizon.
//
// Example:
//
//	res, err := montecarlo.Simulate(proc, montecarlo.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary().Mean)
package montecarlo
