// Package heston implements the two-factor Heston stochastic-volatility
// process and its discretization schemes for Monte-Carlo simulation.
//
// 🚀 What is the Heston process?
//
//	A mean-reverting stochastic-volatility model for an asset price S and
//	its instantaneous variance v:
//
//	  dS = (r − q) S dt + √v S dW₁
//	  dv = κ (θ − v) dt + σ √v dW₂,   corr(dW₁, dW₂) = ρ
//
//	The engine advances the state (S, v) over a finite time step given two
//	independent standard-normal shocks, reading forward rates from the
//	injected term structures on every call.
//
// ✨ Discretization schemes:
//
//	The raw SDE permits negative variance excursions once discretized; each
//	scheme trades bias against cost in how it handles them:
//
//	  - Euler             — generic first-order step off Drift/Diffusion and
//	    the exponential log-price map.
//	  - PartialTruncation — variance floored at zero inside the diffusion
//	    only; the mean-reversion drift sees the raw variance.
//	  - FullTruncation    — variance floored at zero in drift and diffusion.
//	  - Reflection        — |variance| is used wherever √v appears and the
//	    updated variance is rebuilt from the reflected value.
//	  - ExactVariance     — the variance transition is sampled exactly from
//	    its scaled non-central chi-squared law; the price leg follows via
//	    the Alan Lewis decorrelation y = log S − (ρ/σ) v.
//
//	For the truncation and reflection schemes see Lord, Koekkoek & van Dijk
//	(2006), "A Comparison of Biased Simulation Schemes for Stochastic
//	Volatility Models". Note the Reflection variance update deliberately
//	reuses FullTruncation's mean-reversion target κ(θ − vol²); validate any
//	change against that reference rather than "fixing" it here.
//
// Concurrency:
//
//	A Process is immutable after construction and every operation is a pure
//	function of its explicit inputs plus read access to the injected market
//	collaborators. Concurrent Evolve calls from independent simulation paths
//	are safe as long as each call supplies its own freshly drawn shocks.
//
// Errors (sentinel):
//
//   - ErrUnsupportedScheme — a Discretization outside the defined set.
//   - ErrNilCurve          — a nil term-structure collaborator.
//   - ErrNilQuote          — a nil spot-quote collaborator.
//
// Example:
//
//	proc, err := heston.New(riskFree, dividend, spot,
//	    heston.Params{V0: 0.04, Kappa: 1, Theta: 0.04, Sigma: 0.2, Rho: -0.5},
//	    heston.PartialTruncation)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	next, err := proc.Evolve(0, proc.InitialState(), 1.0/252, dw0, dw1)
package heston
