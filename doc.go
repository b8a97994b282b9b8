// Package stokhos is a small quantitative-finance toolkit centred on the
// Heston stochastic-volatility process: state evolution, discretization
// schemes, and Monte-Carlo path simulation.
//
// 🚀 What is stokhos?
//
//	A pure-Go library that brings together:
//		• Market collaborators: term structures, spot quotes, day counters
//		• Distribution primitives: Gaussian CDF, non-central chi-squared
//		  CDF and budgeted quantile inversion
//		• The Heston process engine with five discretization schemes
//		  (generic Euler, partial/full truncation, reflection, exact
//		  variance sampling)
//		• Concurrent Monte-Carlo path simulation with terminal statistics
//
// ✨ Why choose stokhos?
//
//   - Faithful numerics – scheme formulas follow the published references
//     (Lord–Koekkoek–van Dijk truncation/reflection, exact chi-squared
//     variance sampling)
//   - Stateless kernels – every step is a pure function of explicit inputs,
//     safe for massive parallel path fan-out
//   - Explicit failure – sentinel errors everywhere, no silent defaults
//
// The packages:
//
//	market/       — yield curves, quotes, day-count conventions
//	distribution/ — normal CDF, non-central chi-squared CDF & quantile
//	heston/       — the process engine and its discretization schemes
//	montecarlo/   — time grids, path generation, concurrent simulation
//	cmd/          — the stokhos-sim demo CLI
package stokhos
