package montecarlo

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stokhos/heston"
)

// seedStride decorrelates per-path sources derived from the base seed
// (golden-ratio increment, the usual splitmix64 stride).
const seedStride = 0x9e3779b97f4a7c15

// Result holds a completed simulation: one price path per matrix row over
// the shared time grid.
type Result struct {
	// Paths is the Paths×(Steps+1) price matrix; row i is path i.
	Paths *mat.Dense

	// Grid is the time axis shared by every row.
	Grid []float64
}

// Summary condenses the terminal price distribution.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	P05    float64
	P50    float64
	P95    float64
}

// Simulate runs opts.Paths independent paths of the engine concurrently.
//
// Fan-out discipline:
//   - one goroutine per path, gated by a semaphore of opts.Workers slots
//     (GOMAXPROCS when ≤ 0);
//   - path i draws from its own source seeded as Seed + i·stride, so runs
//     are reproducible under any scheduling;
//   - the first evolution error wins and fails the whole run.
func Simulate(p *heston.Process, opts Options) (*Result, error) {
	// 1) Validate configuration before allocating anything.
	if p == nil {
		return nil, ErrNilProcess
	}
	if opts.Paths < 1 || opts.Steps < 1 || opts.Horizon <= 0 {
		return nil, ErrBadOptions
	}

	// 2) Build the shared grid.
	grid, err := TimeGrid(opts.Horizon, opts.Steps)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 3) Fan out, one row per path.
	paths := mat.NewDense(opts.Paths, opts.Steps+1, nil)
	sem := make(chan struct{}, workers)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for i := 0; i < opts.Paths; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			src := rand.NewSource(opts.Seed + uint64(row)*seedStride)
			path, pathErr := GeneratePath(p, grid, src)
			if pathErr != nil {
				errOnce.Do(func() { firstErr = pathErr })

				return
			}
			paths.SetRow(row, path)
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &Result{Paths: paths, Grid: grid}, nil
}

// TerminalPrices returns a copy of the final grid-point column.
func (r *Result) TerminalPrices() []float64 {
	rows, cols := r.Paths.Dims()
	out := make([]float64, rows)
	mat.Col(out, cols-1, r.Paths)

	return out
}

// Summary reduces the terminal price distribution to its headline
// statistics. Quantiles are empirical over the sorted terminal column.
func (r *Result) Summary() Summary {
	term := r.TerminalPrices()

	sorted := append([]float64(nil), term...)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(term, nil),
		StdDev: stat.StdDev(term, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		P05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P50:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
