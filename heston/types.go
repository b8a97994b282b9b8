// Package heston defines the process state, model parameters and the closed
// set of discretization schemes. See doc.go for the model overview.
package heston

import (
	"errors"
	"math"
)

// Sentinel errors returned by process construction and evolution.
var (
	// ErrUnsupportedScheme indicates a Discretization value outside the
	// defined set. The engine refuses to evolve rather than guessing a
	// default.
	ErrUnsupportedScheme = errors.New("heston: unsupported discretization scheme")

	// ErrNilCurve indicates a nil term-structure collaborator.
	ErrNilCurve = errors.New("heston: term structure is nil")

	// ErrNilQuote indicates a nil spot-quote collaborator.
	ErrNilQuote = errors.New("heston: spot quote is nil")
)

// State is the two-factor process state: the asset price and its
// instantaneous variance. States are immutable value objects; every step
// produces a new State. Price stays strictly positive under every scheme
// (the exponential map guarantees it); Variance may go negative under the
// raw SDE, and the configured scheme decides the policy for such excursions.
type State struct {
	Price    float64
	Variance float64
}

// Params holds the five scalar Heston parameters, fixed for the lifetime of
// a Process.
//
//	V0    — initial variance
//	Kappa — mean-reversion speed κ
//	Theta — long-run variance θ
//	Sigma — volatility of variance σ
//	Rho   — correlation ρ between the price and variance shocks
//
// No positivity or Feller-condition validation is performed here; callers
// own model-stability concerns.
type Params struct {
	V0    float64
	Kappa float64
	Theta float64
	Sigma float64
	Rho   float64
}

// Discretization selects the step-evolution scheme. The set is closed:
// unknown values are rejected at construction and again at evolve time.
type Discretization int

const (
	// Euler is the generic first-order scheme off Drift/Diffusion and the
	// exponential log-price map.
	Euler Discretization = iota

	// PartialTruncation floors the variance at zero in the diffusion only.
	PartialTruncation

	// FullTruncation floors the variance at zero in drift and diffusion.
	FullTruncation

	// Reflection uses |variance| wherever √v appears and rebuilds the next
	// variance from the reflected value.
	Reflection

	// ExactVariance samples the variance transition exactly from its scaled
	// non-central chi-squared law.
	ExactVariance
)

// schemeNames is indexed by Discretization; kept in declaration order.
var schemeNames = [...]string{
	Euler:             "Euler",
	PartialTruncation: "PartialTruncation",
	FullTruncation:    "FullTruncation",
	Reflection:        "Reflection",
	ExactVariance:     "ExactVariance",
}

// String returns the scheme name, or "Unknown" outside the defined set.
func (d Discretization) String() string {
	if d < Euler || d > ExactVariance {
		return "Unknown"
	}

	return schemeNames[d]
}

// valid reports whether d belongs to the closed scheme set.
func (d Discretization) valid() bool {
	return d >= Euler && d <= ExactVariance
}

// ParseScheme maps a scheme name (as produced by String) back onto its
// Discretization value. Returns ErrUnsupportedScheme for anything else.
func ParseScheme(name string) (Discretization, error) {
	for d, n := range schemeNames {
		if n == name {
			return Discretization(d), nil
		}
	}

	return 0, ErrUnsupportedScheme
}

// CorrelationRoot returns the second row (ρ, √(1−ρ²)) of the square root of
// the 2×2 correlation matrix
//
//	|  1   ρ |            |  1        0     |
//	|  ρ   1 |  =  L·Lᵀ,  L = |  ρ   √(1−ρ²) |
//
// used to turn two independent normal shocks into a correlated pair.
// Pure function; |ρ| > 1 yields NaN (caller contract, not validated).
func CorrelationRoot(rho float64) (float64, float64) {
	return rho, math.Sqrt(1 - rho*rho)
}
