package montecarlo

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/stokhos/heston"
)

// GeneratePath walks a single price path over grid, starting from the
// engine's initial state and drawing one fresh pair of independent
// standard-normal shocks per step from src. The returned slice holds one
// price per grid point (the variance leg stays internal to the walk).
//
// src must not be shared across concurrent calls; give every path its own
// source.
func GeneratePath(p *heston.Process, grid []float64, src rand.Source) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProcess
	}
	if len(grid) < 2 {
		return nil, ErrBadGrid
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	x := p.InitialState()
	prices := make([]float64, len(grid))
	prices[0] = x.Price

	var err error
	for i := 1; i < len(grid); i++ {
		x, err = p.Evolve(grid[i-1], x, grid[i]-grid[i-1], normal.Rand(), normal.Rand())
		if err != nil {
			return nil, err
		}
		prices[i] = x.Price
	}

	return prices, nil
}
