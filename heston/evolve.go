package heston

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stokhos/distribution"
)

// quantileBudget bounds the non-central chi-squared inversion inside the
// exact-variance step.
const quantileBudget = 100

// machEps mirrors the upper clamp 1−ε applied to the inversion probability.
const machEps = 2.220446049250313e-16

// Evolve advances the state from x0 at t0 across dt, consuming one pair of
// independent standard-normal shocks (dw0, dw1). The correlation between the
// two driving factors is applied internally via CorrelationRoot.
//
// Each scheme is a single closed-form update (no sub-stepping). dt must be
// non-negative and the shocks finite; neither is validated (caller
// contract). For states with positive variance, dt = 0 returns x0 unchanged
// under every scheme.
func (p *Process) Evolve(t0 float64, x0 State, dt, dw0, dw1 float64) (State, error) {
	switch p.scheme {
	case Euler:
		return p.eulerStep(t0, x0, dt, dw0, dw1), nil
	case PartialTruncation:
		return p.partialTruncationStep(t0, x0, dt, dw0, dw1), nil
	case FullTruncation:
		return p.fullTruncationStep(t0, x0, dt, dw0, dw1), nil
	case Reflection:
		return p.reflectionStep(t0, x0, dt, dw0, dw1), nil
	case ExactVariance:
		return p.exactVarianceStep(t0, x0, dt, dw0, dw1)
	default:
		return State{}, ErrUnsupportedScheme
	}
}

// eulerStep is the generic first-order scheme: correlate the shocks through
// the diffusion matrix, scale by √dt, add the drift and apply the
// exponential map.
func (p *Process) eulerStep(t0 float64, x0 State, dt, dw0, dw1 float64) State {
	sdt := math.Sqrt(dt)
	drift := p.Drift(t0, x0)
	diff := p.Diffusion(t0, x0)

	return p.Apply(x0, [2]float64{
		drift[0]*dt + (diff[0][0]*dw0+diff[0][1]*dw1)*sdt,
		drift[1]*dt + (diff[1][0]*dw0+diff[1][1]*dw1)*sdt,
	})
}

// partialTruncationStep floors the variance at zero in the diffusion term
// only; the mean-reversion drift κ(θ − v) sees the raw, possibly negative,
// variance.
func (p *Process) partialTruncationStep(t0 float64, x0 State, dt, dw0, dw1 float64) State {
	sdt := math.Sqrt(dt)
	rho, sqrhov := CorrelationRoot(p.params.Rho)

	vol := 0.0
	if x0.Variance > 0 {
		vol = math.Sqrt(x0.Variance)
	}
	vol2 := p.params.Sigma * vol
	mu := p.forwardDrift(t0, dt) - 0.5*vol*vol
	nu := p.params.Kappa * (p.params.Theta - x0.Variance)

	return State{
		Price:    x0.Price * math.Exp(mu*dt+vol*dw0*sdt),
		Variance: x0.Variance + nu*dt + vol2*sdt*(rho*dw0+sqrhov*dw1),
	}
}

// fullTruncationStep floors the variance at zero in both the diffusion and
// the mean-reversion drift κ(θ − vol²).
func (p *Process) fullTruncationStep(t0 float64, x0 State, dt, dw0, dw1 float64) State {
	sdt := math.Sqrt(dt)
	rho, sqrhov := CorrelationRoot(p.params.Rho)

	vol := 0.0
	if x0.Variance > 0 {
		vol = math.Sqrt(x0.Variance)
	}
	vol2 := p.params.Sigma * vol
	mu := p.forwardDrift(t0, dt) - 0.5*vol*vol
	nu := p.params.Kappa * (p.params.Theta - vol*vol)

	return State{
		Price:    x0.Price * math.Exp(mu*dt+vol*dw0*sdt),
		Variance: x0.Variance + nu*dt + vol2*sdt*(rho*dw0+sqrhov*dw1),
	}
}

// reflectionStep uses |variance| wherever √v appears and rebuilds the next
// variance from the reflected vol², so the pre-update component is never
// negative. The mean-reversion target κ(θ − vol²) matches FullTruncation;
// see the package doc for the reference caveat.
func (p *Process) reflectionStep(t0 float64, x0 State, dt, dw0, dw1 float64) State {
	sdt := math.Sqrt(dt)
	rho, sqrhov := CorrelationRoot(p.params.Rho)

	vol := math.Sqrt(math.Abs(x0.Variance))
	vol2 := p.params.Sigma * vol
	mu := p.forwardDrift(t0, dt) - 0.5*vol*vol
	nu := p.params.Kappa * (p.params.Theta - vol*vol)

	return State{
		Price:    x0.Price * math.Exp(mu*dt+vol*dw0*sdt),
		Variance: vol*vol + nu*dt + vol2*sdt*(rho*dw0+sqrhov*dw1),
	}
}

// exactVarianceStep advances the variance exactly from its scaled
// non-central chi-squared transition law and the price from its conditional
// Gaussian law, decorrelated via y = log S − (ρ/σ)·v (Alan Lewis):
//
//  1. df  = 4κθ/σ²
//  2. ncp = 4κe^(−κΔt)/(σ²(1 − e^(−κΔt))) · v₀
//  3. p   = Φ(dw1), clamped into [0, 1)
//  4. v₁  = σ²(1 − e^(−κΔt))/(4κ) · Qinv(df, ncp, p)
//  5. dy  = (μ − (ρ/σ)κ(θ − vol²))Δt + vol·√(1−ρ²)·dw0·√Δt
//  6. S₁  = S₀ · exp(dy + (ρ/σ)(v₁ − v₀))
//
// Δt = 0 short-circuits to x0: the transition law is degenerate there and
// the ncp scaling is singular.
func (p *Process) exactVarianceStep(t0 float64, x0 State, dt, dw0, dw1 float64) (State, error) {
	if dt == 0 {
		return x0, nil
	}

	sdt := math.Sqrt(dt)
	rho, sqrhov := CorrelationRoot(p.params.Rho)
	kappa, theta, sigma := p.params.Kappa, p.params.Theta, p.params.Sigma

	vol := 0.0
	if x0.Variance > 0 {
		vol = math.Sqrt(x0.Variance)
	}
	mu := p.forwardDrift(t0, dt) - 0.5*vol*vol

	ekt := math.Exp(-kappa * dt)
	df := 4 * theta * kappa / (sigma * sigma)
	ncp := 4 * kappa * ekt / (sigma * sigma * (1 - ekt)) * x0.Variance

	// Clamp the inversion probability into [0, 1); this is a documented
	// numerical-robustness fallback, not a scheme change.
	prob := distribution.StdNormalCDF(dw1)
	if prob < 0 {
		prob = 0
	} else if prob >= 1 {
		prob = 1 - machEps
	}

	q, err := distribution.NonCentralChiSquared{Df: df, Ncp: ncp}.Quantile(prob, quantileBudget)
	if err != nil {
		return State{}, fmt.Errorf("heston: exact-variance sampling: %w", err)
	}

	nextVariance := sigma * sigma * (1 - ekt) / (4 * kappa) * q
	dy := (mu-rho/sigma*kappa*(theta-vol*vol))*dt + vol*sqrhov*dw0*sdt

	return State{
		Price:    x0.Price * math.Exp(dy+rho/sigma*(nextVariance-x0.Variance)),
		Variance: nextVariance,
	}, nil
}
