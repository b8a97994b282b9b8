package montecarlo

// TimeGrid returns the uniform grid {0, h, 2h, …, horizon} with
// h = horizon/steps, i.e. steps+1 points. The final point is pinned to the
// horizon exactly rather than accumulated, so rounding drift cannot shorten
// the last step's complement.
func TimeGrid(horizon float64, steps int) ([]float64, error) {
	if steps < 1 || horizon <= 0 {
		return nil, ErrBadGrid
	}

	h := horizon / float64(steps)
	grid := make([]float64, steps+1)
	for i := 1; i < steps; i++ {
		grid[i] = float64(i) * h
	}
	grid[steps] = horizon

	return grid, nil
}
