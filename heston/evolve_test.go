package heston_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stokhos/heston"
)

// allSchemes enumerates the closed discretization set.
var allSchemes = []heston.Discretization{
	heston.Euler,
	heston.PartialTruncation,
	heston.FullTruncation,
	heston.Reflection,
	heston.ExactVariance,
}

// TestEvolve_ZeroStepIdentity verifies that Δt = 0 with positive variance
// returns the input state unchanged under every scheme. Under ExactVariance
// this is the degenerate non-central chi-squared law.
func TestEvolve_ZeroStepIdentity(t *testing.T) {
	x0 := heston.State{Price: 100, Variance: 0.04}

	for _, scheme := range allSchemes {
		proc := newTestProcess(t, 0.05, 0.01, 100, defaultParams, scheme)

		next, err := proc.Evolve(0.25, x0, 0, 0.7, -1.3)
		require.NoError(t, err, "scheme %v", scheme)
		assert.Equal(t, x0.Price, next.Price, "price must be unchanged under %v", scheme)
		// Reflection rebuilds the variance as √v·√v, which may differ from
		// v by one ulp; the identity is numerical, not bitwise.
		assert.InDelta(t, x0.Variance, next.Variance, 1e-16, "variance must be unchanged under %v", scheme)
	}
}

// TestEvolve_PricePositivity drives each scheme with a violent downside
// shock; the exponential map must keep the price strictly positive.
func TestEvolve_PricePositivity(t *testing.T) {
	x0 := heston.State{Price: 100, Variance: 0.04}

	for _, scheme := range allSchemes {
		proc := newTestProcess(t, 0.0, 0.0, 100, defaultParams, scheme)

		next, err := proc.Evolve(0, x0, 0.5, -8, -8)
		require.NoError(t, err, "scheme %v", scheme)
		assert.Greater(t, next.Price, 0.0, "price must stay strictly positive under %v", scheme)
	}
}

// TestEvolve_PartialTruncation_FlatZeroCurves is the reference scenario:
// flat zero rate and dividend curves, zero shocks; only the −½vol²Δt term
// moves the price and the variance drift collapses at v = θ.
func TestEvolve_PartialTruncation_FlatZeroCurves(t *testing.T) {
	proc := newTestProcess(t, 0, 0, 100, defaultParams, heston.PartialTruncation)
	dt := 1.0 / 252

	next, err := proc.Evolve(0, proc.InitialState(), dt, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100*math.Exp(-0.5*0.04*dt), next.Price, 1e-12)
	assert.InDelta(t, 0.04, next.Variance, 1e-15, "variance drift vanishes at v = θ")
}

// TestEvolve_PartialTruncation_KnownStep pins a full PartialTruncation step
// with non-trivial shocks against hand-computed values.
func TestEvolve_PartialTruncation_KnownStep(t *testing.T) {
	params := heston.Params{V0: 0.04, Kappa: 2.0, Theta: 0.09, Sigma: 0.3, Rho: -0.7}
	proc := newTestProcess(t, 0, 0, 100, params, heston.PartialTruncation)

	// vol = 0.2, sdt = 0.1, mu = −0.02, nu = 0.1,
	// variance term = σ·vol·sdt·(ρ·dw0 + √(1−ρ²)·dw1)
	next, err := proc.Evolve(0, heston.State{Price: 100, Variance: 0.04}, 0.01, 0.5, -0.25)
	require.NoError(t, err)
	assert.InDelta(t, 100*math.Exp(0.0098), next.Price, 1e-9)
	assert.InDelta(t, 0.037828785735719, next.Variance, 1e-12)
}

// TestEvolve_TruncationSchemesAgreeOnPositiveVariance checks that Partial
// and Full truncation coincide while the variance is positive (vol² equals
// the raw variance there) and diverge once it is not.
func TestEvolve_TruncationSchemesAgreeOnPositiveVariance(t *testing.T) {
	partial := newTestProcess(t, 0.03, 0.01, 100, defaultParams, heston.PartialTruncation)
	full := newTestProcess(t, 0.03, 0.01, 100, defaultParams, heston.FullTruncation)

	x0 := heston.State{Price: 100, Variance: 0.04}
	fromPartial, err := partial.Evolve(0, x0, 0.01, 0.8, -0.4)
	require.NoError(t, err)
	fromFull, err := full.Evolve(0, x0, 0.01, 0.8, -0.4)
	require.NoError(t, err)

	assert.InDelta(t, fromPartial.Price, fromFull.Price, 1e-12)
	assert.InDelta(t, fromPartial.Variance, fromFull.Variance, 1e-14,
		"schemes coincide while vol² = x0.Variance")

	// Negative variance: the mean-reversion targets differ (raw v vs 0).
	xNeg := heston.State{Price: 100, Variance: -0.02}
	fromPartial, err = partial.Evolve(0, xNeg, 0.01, 0, 0)
	require.NoError(t, err)
	fromFull, err = full.Evolve(0, xNeg, 0.01, 0, 0)
	require.NoError(t, err)

	assert.NotEqual(t, fromPartial.Variance, fromFull.Variance,
		"schemes must diverge once x0.Variance ≠ vol²")
}

// TestEvolve_Reflection_NegativeVariance verifies the next variance is built
// from the reflected vol², which is non-negative regardless of the sign of
// the incoming variance.
func TestEvolve_Reflection_NegativeVariance(t *testing.T) {
	params := heston.Params{V0: 0.04, Kappa: 1.0, Theta: 0.04, Sigma: 0.2, Rho: -0.5}
	proc := newTestProcess(t, 0, 0, 100, params, heston.Reflection)

	dt := 1.0 / 252
	next, err := proc.Evolve(0, heston.State{Price: 100, Variance: -0.02}, dt, 0, 0)
	require.NoError(t, err)

	// vol² = |−0.02|; with zero shocks the update is vol² + κ(θ−vol²)Δt.
	assert.InDelta(t, 0.02+1.0*(0.04-0.02)*dt, next.Variance, 1e-15)
	assert.Greater(t, next.Price, 0.0)

	// The price leg also uses the reflected vol in its −½vol² correction.
	assert.InDelta(t, 100*math.Exp(-0.5*0.02*dt), next.Price, 1e-12)
}

// TestEvolve_Euler_ZeroShocks pins the generic first-order step: drift-only
// update through the exponential map.
func TestEvolve_Euler_ZeroShocks(t *testing.T) {
	params := heston.Params{V0: 0.04, Kappa: 2.0, Theta: 0.09, Sigma: 0.3, Rho: -0.7}
	proc := newTestProcess(t, 0, 0, 100, params, heston.Euler)

	next, err := proc.Evolve(0, heston.State{Price: 100, Variance: 0.04}, 0.01, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 100*math.Exp(-0.5*0.04*0.01), next.Price, 1e-12)
	assert.InDelta(t, 0.04+2.0*(0.09-0.04)*0.01, next.Variance, 1e-15)
}

// TestEvolve_ExactVariance_Sampling checks the exact scheme keeps the
// variance on the non-negative support and responds monotonically to the
// second shock (which drives the chi-squared quantile).
func TestEvolve_ExactVariance_Sampling(t *testing.T) {
	proc := newTestProcess(t, 0, 0, 100, defaultParams, heston.ExactVariance)
	x0 := heston.State{Price: 100, Variance: 0.04}
	dt := 1.0 / 12

	lower, err := proc.Evolve(0, x0, dt, 0, -3)
	require.NoError(t, err)
	median, err := proc.Evolve(0, x0, dt, 0, 0)
	require.NoError(t, err)
	upper, err := proc.Evolve(0, x0, dt, 0, 3)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, lower.Variance, 0.0, "exact variance lives on [0, ∞)")
	assert.Less(t, lower.Variance, median.Variance, "quantile must increase with the shock")
	assert.Less(t, median.Variance, upper.Variance, "quantile must increase with the shock")

	for _, st := range []heston.State{lower, median, upper} {
		assert.Greater(t, st.Price, 0.0)
		assert.False(t, math.IsNaN(st.Price) || math.IsNaN(st.Variance))
	}
}

// TestEvolve_ExactVariance_ExtremeShockClamp drives Φ(dw1) to its clamped
// edges; both must produce a state on the support rather than an error.
func TestEvolve_ExactVariance_ExtremeShockClamp(t *testing.T) {
	proc := newTestProcess(t, 0, 0, 100, defaultParams, heston.ExactVariance)
	x0 := heston.State{Price: 100, Variance: 0.04}

	low, err := proc.Evolve(0, x0, 0.25, 0, -40)
	require.NoError(t, err, "Φ underflow clamps to p = 0")
	assert.Equal(t, 0.0, low.Variance, "p = 0 maps to the lower support edge")
	assert.Greater(t, low.Price, 0.0)
}
