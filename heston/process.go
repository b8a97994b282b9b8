package heston

import (
	"math"
	"time"

	"github.com/katalvlaran/stokhos/market"
)

// volFloor keeps the diffusion matrix (almost) zero at the variance boundary
// while still exposing correlation information to generic callers.
const volFloor = 1e-8

// Process is the Heston process facade: immutable parameters and scheme,
// plus read-only handles on the market collaborators it re-reads on every
// call. Safe for concurrent use; it carries no mutable state between calls.
type Process struct {
	riskFree market.TermStructure
	dividend market.TermStructure
	spot     market.Quote
	params   Params
	scheme   Discretization
}

// New constructs a Process from its collaborators, parameters and scheme.
//
// Validation (fail fast, in order):
//  1. riskFree and dividend must be non-nil (ErrNilCurve).
//  2. spot must be non-nil (ErrNilQuote).
//  3. scheme must belong to the closed set (ErrUnsupportedScheme).
func New(riskFree, dividend market.TermStructure, spot market.Quote, p Params, scheme Discretization) (*Process, error) {
	if riskFree == nil || dividend == nil {
		return nil, ErrNilCurve
	}
	if spot == nil {
		return nil, ErrNilQuote
	}
	if !scheme.valid() {
		return nil, ErrUnsupportedScheme
	}

	return &Process{
		riskFree: riskFree,
		dividend: dividend,
		spot:     spot,
		params:   p,
		scheme:   scheme,
	}, nil
}

// Dimension returns the number of state factors (price and variance).
func (p *Process) Dimension() int { return 2 }

// InitialState builds the starting state from the current spot level and the
// initial variance parameter.
func (p *Process) InitialState() State {
	return State{Price: p.spot.Value(), Variance: p.params.V0}
}

// Drift returns the instantaneous drift vector at (t, x):
//
//	drift[0] = r(t) − q(t) − ½·vol²       (log-price leg)
//	drift[1] = κ·(θ − X)                  (variance leg)
//
// where vol is √variance for positive variance, −√|variance| under the
// Reflection scheme, and 0 otherwise; X is the raw variance under
// PartialTruncation and vol² for every other scheme. Used by callers that
// drive their own generic first-order scheme.
func (p *Process) Drift(t float64, x State) [2]float64 {
	vol := p.driftVol(x.Variance)

	target := vol * vol
	if p.scheme == PartialTruncation {
		target = x.Variance
	}

	return [2]float64{
		p.riskFree.ForwardRate(t, t) - p.dividend.ForwardRate(t, t) - 0.5*vol*vol,
		p.params.Kappa * (p.params.Theta - target),
	}
}

// Diffusion returns the 2×2 diffusion matrix at (t, x): the correlation
// square root left-multiplied by the factor volatilities (1 for the price
// leg in log space, σ·vol for the variance leg):
//
//	| vol        0           |
//	| ρ·σ·vol    √(1−ρ²)·σ·vol |
//
// At the variance boundary vol is floored at a small positive value instead
// of zero so the correlation structure survives.
func (p *Process) Diffusion(_ float64, x State) [2][2]float64 {
	vol := p.diffusionVol(x.Variance)
	sigma2 := p.params.Sigma * vol
	rho, sqrhov := CorrelationRoot(p.params.Rho)

	return [2][2]float64{
		{vol, 0},
		{rho * sigma2, sqrhov * sigma2},
	}
}

// Apply maps a raw increment (Δlog-price, Δvariance) onto the next absolute
// state. The exponential keeps the price strictly positive for any real
// Δlog-price.
func (p *Process) Apply(x0 State, dx [2]float64) State {
	return State{
		Price:    x0.Price * math.Exp(dx[0]),
		Variance: x0.Variance + dx[1],
	}
}

// Spot returns the spot-quote collaborator.
func (p *Process) Spot() market.Quote { return p.spot }

// RiskFreeRate returns the risk-free curve collaborator.
func (p *Process) RiskFreeRate() market.TermStructure { return p.riskFree }

// DividendYield returns the dividend-yield curve collaborator.
func (p *Process) DividendYield() market.TermStructure { return p.dividend }

// Parameters returns the immutable model parameters.
func (p *Process) Parameters() Params { return p.params }

// Scheme returns the configured discretization scheme.
func (p *Process) Scheme() Discretization { return p.scheme }

// TimeFromDate converts a calendar date into the year-fraction time
// coordinate of the risk-free curve, for callers building time grids.
func (p *Process) TimeFromDate(d time.Time) float64 {
	return p.riskFree.DayCounter().YearFraction(p.riskFree.ReferenceDate(), d)
}

// driftVol is the volatility entering the drift: negative branch under
// Reflection, zero floor otherwise.
func (p *Process) driftVol(variance float64) float64 {
	switch {
	case variance > 0:
		return math.Sqrt(variance)
	case p.scheme == Reflection:
		return -math.Sqrt(-variance)
	default:
		return 0
	}
}

// diffusionVol mirrors driftVol but floors the zero branch at volFloor.
func (p *Process) diffusionVol(variance float64) float64 {
	switch {
	case variance > 0:
		return math.Sqrt(variance)
	case p.scheme == Reflection:
		return -math.Sqrt(-variance)
	default:
		return volFloor
	}
}

// forwardDrift is the risk-free minus dividend forward over [t0, t0+dt].
func (p *Process) forwardDrift(t0, dt float64) float64 {
	return p.riskFree.ForwardRate(t0, t0+dt) - p.dividend.ForwardRate(t0, t0+dt)
}
