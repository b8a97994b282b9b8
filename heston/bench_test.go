package heston_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/stokhos/heston"
	"github.com/katalvlaran/stokhos/market"
)

// benchProcess builds a process for benchmarking, bypassing testing.T.
func benchProcess(b *testing.B, scheme heston.Discretization) *heston.Process {
	b.Helper()

	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	riskFree, err := market.NewFlatForward(ref, 0.03, market.Actual365Fixed)
	if err != nil {
		b.Fatal(err)
	}
	dividend, err := market.NewFlatForward(ref, 0.01, market.Actual365Fixed)
	if err != nil {
		b.Fatal(err)
	}

	proc, err := heston.New(riskFree, dividend, market.NewSimpleQuote(100),
		heston.Params{V0: 0.04, Kappa: 1.0, Theta: 0.04, Sigma: 0.2, Rho: -0.5}, scheme)
	if err != nil {
		b.Fatal(err)
	}

	return proc
}

// BenchmarkEvolve_PartialTruncation measures the cheap closed-form step.
func BenchmarkEvolve_PartialTruncation(b *testing.B) {
	proc := benchProcess(b, heston.PartialTruncation)
	x := proc.InitialState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := proc.Evolve(0, x, 1.0/252, 0.3, -0.2)
		if err != nil {
			b.Fatal(err)
		}
		x = next
	}
}

// BenchmarkEvolve_ExactVariance measures the exact scheme, dominated by the
// non-central chi-squared quantile inversion.
func BenchmarkEvolve_ExactVariance(b *testing.B) {
	proc := benchProcess(b, heston.ExactVariance)
	x0 := proc.InitialState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := proc.Evolve(0, x0, 1.0/252, 0.3, -0.2); err != nil {
			b.Fatal(err)
		}
	}
}
