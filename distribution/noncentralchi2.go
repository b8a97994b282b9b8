package distribution

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Sentinel errors returned by the non-central chi-squared primitives.
var (
	// ErrBadParameters indicates Df ≤ 0 or Ncp < 0.
	ErrBadParameters = errors.New("distribution: non-central chi-squared requires Df > 0 and Ncp >= 0")

	// ErrBadProbability indicates a quantile probability outside [0, 1).
	ErrBadProbability = errors.New("distribution: quantile probability must lie in [0, 1)")

	// ErrNonConvergence indicates the quantile inversion exhausted its
	// iteration budget before reaching tolerance.
	ErrNonConvergence = errors.New("distribution: quantile inversion did not converge within the iteration budget")
)

const (
	// seriesTol terminates the Poisson-mixture series once a term stops
	// contributing relative to the accumulated sum.
	seriesTol = 1e-14

	// seriesMaxTerms caps the series in either direction.
	seriesMaxTerms = 10000

	// quantileTol is the bisection interval tolerance, relative to the
	// bracket magnitude.
	quantileTol = 1e-8
)

// NonCentralChiSquared is the non-central chi-squared distribution with
// Df degrees of freedom and non-centrality parameter Ncp. The zero Ncp case
// degenerates to the central chi-squared distribution.
type NonCentralChiSquared struct {
	Df  float64
	Ncp float64
}

// CDF returns F(x) = P[X ≤ x]. The support is [0, ∞): x ≤ 0 yields 0.
//
// The Poisson mixture is summed outward from the weight mode j ≈ Ncp/2 so
// that large non-centralities neither underflow the first weight nor
// truncate the dominant terms.
func (d NonCentralChiSquared) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	halfX := 0.5 * x
	if d.Ncp == 0 {
		return mathext.GammaIncReg(0.5*d.Df, halfX)
	}

	// 1) Central Poisson index and its weight, via logs to avoid underflow.
	lambda := 0.5 * d.Ncp
	k := int(lambda)
	lgk, _ := math.Lgamma(float64(k + 1))
	wk := math.Exp(-lambda + float64(k)*math.Log(lambda) - lgk)
	sum := wk * mathext.GammaIncReg(0.5*d.Df+float64(k), halfX)

	// 2) Upward sweep: w_{j+1} = w_j · λ/(j+1).
	w := wk
	for j := k + 1; j <= k+seriesMaxTerms; j++ {
		w *= lambda / float64(j)
		term := w * mathext.GammaIncReg(0.5*d.Df+float64(j), halfX)
		sum += term
		if term < seriesTol*sum {
			break
		}
	}

	// 3) Downward sweep: w_{j-1} = w_j · j/λ.
	w = wk
	for j := k; j > 0 && j > k-seriesMaxTerms; j-- {
		w *= float64(j) / lambda
		term := w * mathext.GammaIncReg(0.5*d.Df+float64(j-1), halfX)
		sum += term
		if term < seriesTol*sum {
			break
		}
	}

	return math.Min(sum, 1)
}

// Quantile inverts the CDF at probability p under an iteration budget shared
// by the bracket expansion and the bisection refinement.
//
// Returns:
//
//   - 0 for p == 0 (lower support edge), without spending budget.
//   - ErrBadParameters / ErrBadProbability on domain violations.
//   - ErrNonConvergence when maxIter iterations did not shrink the bracket
//     below tolerance; no partial result is returned.
func (d NonCentralChiSquared) Quantile(p float64, maxIter int) (float64, error) {
	if d.Df <= 0 || d.Ncp < 0 {
		return 0, ErrBadParameters
	}
	if p < 0 || p >= 1 {
		return 0, ErrBadProbability
	}
	if p == 0 {
		return 0, nil
	}

	// 1) Bracket [0, hi]: start past the mean Df+Ncp and double until the
	//    CDF at hi covers p.
	hi := d.Df + d.Ncp + 10*math.Sqrt(2*(d.Df+2*d.Ncp))
	iter := 0
	for d.CDF(hi) < p {
		iter++
		if iter > maxIter {
			return 0, ErrNonConvergence
		}
		hi *= 2
	}

	// 2) Bisection until the bracket collapses or the budget runs out.
	lo := 0.0
	for hi-lo > quantileTol*math.Max(1, hi) {
		iter++
		if iter > maxIter {
			return 0, ErrNonConvergence
		}
		mid := 0.5 * (lo + hi)
		if d.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi), nil
}
