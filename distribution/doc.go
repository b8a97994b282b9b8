// Package distribution provides the numerical distribution primitives the
// process engines depend on: the standard-normal CDF and the non-central
// chi-squared distribution with a budgeted quantile (inverse CDF) inversion.
//
// The non-central chi-squared distribution is the exact transition law of a
// square-root (CIR-type) variance process over a finite time step, which is
// why its quantile function appears in exact-sampling discretization
// schemes. Its CDF is evaluated as the Poisson mixture of central
// chi-squared CDFs:
//
//	F(x; k, λ) = Σ_j  e^(−λ/2) (λ/2)^j / j!  ·  P(k/2 + j, x/2)
//
// where P is the regularized lower incomplete gamma function. The series is
// summed outward from the largest Poisson weight for numerical stability.
//
// The quantile is obtained by monotone bracketing plus bisection under a
// caller-supplied iteration budget; exhausting the budget surfaces
// ErrNonConvergence rather than a silently unconverged value.
//
// Errors (sentinel):
//
//   - ErrBadParameters  — Df ≤ 0 or Ncp < 0.
//   - ErrBadProbability — quantile probability outside [0, 1).
//   - ErrNonConvergence — the iteration budget was exhausted.
package distribution
