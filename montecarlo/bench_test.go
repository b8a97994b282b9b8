package montecarlo_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/stokhos/heston"
	"github.com/katalvlaran/stokhos/market"
	"github.com/katalvlaran/stokhos/montecarlo"
)

// BenchmarkSimulate_Daily measures a year of daily steps across a small
// batch of paths under the cheap truncation scheme.
func BenchmarkSimulate_Daily(b *testing.B) {
	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	curve, err := market.NewFlatForward(ref, 0.03, market.Actual365Fixed)
	if err != nil {
		b.Fatal(err)
	}
	proc, err := heston.New(curve, curve, market.NewSimpleQuote(100),
		heston.Params{V0: 0.04, Kappa: 1.0, Theta: 0.04, Sigma: 0.2, Rho: -0.5},
		heston.FullTruncation)
	if err != nil {
		b.Fatal(err)
	}

	opts := montecarlo.Options{Paths: 64, Steps: 252, Horizon: 1, Seed: 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.Simulate(proc, opts); err != nil {
			b.Fatal(err)
		}
	}
}
