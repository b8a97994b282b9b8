package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stokhos/heston"
	"github.com/katalvlaran/stokhos/market"
	"github.com/katalvlaran/stokhos/montecarlo"
)

// maxChartPaths caps the number of individual paths drawn on the fan chart.
const maxChartPaths = 24

var runOpts struct {
	spot     float64
	rate     float64
	dividend float64

	v0    float64
	kappa float64
	theta float64
	sigma float64
	rho   float64

	scheme  string
	horizon float64
	steps   int
	paths   int
	workers int
	seed    uint64
	pngPath string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Monte-Carlo simulation and report terminal statistics",
	RunE: func(_ *cobra.Command, _ []string) error {
		scheme, err := heston.ParseScheme(runOpts.scheme)
		if err != nil {
			return fmt.Errorf("%w: %q", err, runOpts.scheme)
		}

		ref := time.Now().UTC()
		riskFree, err := market.NewFlatForward(ref, runOpts.rate, market.Actual365Fixed)
		if err != nil {
			return err
		}
		dividend, err := market.NewFlatForward(ref, runOpts.dividend, market.Actual365Fixed)
		if err != nil {
			return err
		}

		proc, err := heston.New(riskFree, dividend, market.NewSimpleQuote(runOpts.spot), heston.Params{
			V0:    runOpts.v0,
			Kappa: runOpts.kappa,
			Theta: runOpts.theta,
			Sigma: runOpts.sigma,
			Rho:   runOpts.rho,
		}, scheme)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := montecarlo.Simulate(proc, montecarlo.Options{
			Paths:   runOpts.paths,
			Steps:   runOpts.steps,
			Horizon: runOpts.horizon,
			Seed:    runOpts.seed,
			Workers: runOpts.workers,
		})
		if err != nil {
			return err
		}

		s := res.Summary()
		logger.Info().
			Str("scheme", scheme.String()).
			Int("paths", runOpts.paths).
			Int("steps", runOpts.steps).
			Dur("elapsed", time.Since(start)).
			Float64("mean", s.Mean).
			Float64("stddev", s.StdDev).
			Float64("p05", s.P05).
			Float64("p50", s.P50).
			Float64("p95", s.P95).
			Msg("simulation complete")

		if runOpts.pngPath != "" {
			if err := writeFanChart(runOpts.pngPath, res); err != nil {
				return err
			}
			logger.Info().Str("path", runOpts.pngPath).Msg("chart written")
		}

		return nil
	},
}

func init() {
	flags := runCmd.Flags()
	flags.Float64Var(&runOpts.spot, "spot", 100, "initial spot level")
	flags.Float64Var(&runOpts.rate, "rate", 0.03, "flat risk-free rate (continuous compounding)")
	flags.Float64Var(&runOpts.dividend, "dividend", 0, "flat dividend yield (continuous compounding)")
	flags.Float64Var(&runOpts.v0, "v0", 0.04, "initial variance")
	flags.Float64Var(&runOpts.kappa, "kappa", 1, "mean-reversion speed")
	flags.Float64Var(&runOpts.theta, "theta", 0.04, "long-run variance")
	flags.Float64Var(&runOpts.sigma, "sigma", 0.2, "volatility of variance")
	flags.Float64Var(&runOpts.rho, "rho", -0.5, "price/variance correlation")
	flags.StringVar(&runOpts.scheme, "scheme", heston.FullTruncation.String(), "discretization scheme")
	flags.Float64Var(&runOpts.horizon, "horizon", 1, "simulation horizon in years")
	flags.IntVar(&runOpts.steps, "steps", 252, "time steps per path")
	flags.IntVar(&runOpts.paths, "paths", 10000, "number of paths")
	flags.IntVar(&runOpts.workers, "workers", 0, "max concurrent paths (0 = GOMAXPROCS)")
	flags.Uint64Var(&runOpts.seed, "seed", 42, "base RNG seed")
	flags.StringVar(&runOpts.pngPath, "png", "", "render a fan chart PNG to this path")
}

// writeFanChart renders a few sample paths in grey plus the cross-sectional
// mean path in blue.
func writeFanChart(path string, res *montecarlo.Result) error {
	rows, cols := res.Paths.Dims()

	n := rows
	if n > maxChartPaths {
		n = maxChartPaths
	}

	series := make([]chart.Series, 0, n+1)
	for i := 0; i < n; i++ {
		row := make([]float64, cols)
		mat.Row(row, i, res.Paths)
		series = append(series, chart.ContinuousSeries{
			XValues: res.Grid,
			YValues: row,
			Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1},
		})
	}

	mean := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, res.Paths)
		mean[j] = stat.Mean(col, nil)
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "mean",
		XValues: res.Grid,
		YValues: mean,
		Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
	})

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis:  chart.XAxis{Name: "time (years)"},
		YAxis:  chart.YAxis{Name: "price"},
		Series: series,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
