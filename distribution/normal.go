package distribution

import "gonum.org/v1/gonum/stat/distuv"

// stdNormal is the shared N(0,1); distuv.Normal is stateless for CDF use.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// StdNormalCDF returns Φ(x), the standard-normal cumulative distribution
// function.
func StdNormalCDF(x float64) float64 {
	return stdNormal.CDF(x)
}
