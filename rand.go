package im2latex

import "math/rand"

// Random draw helpers used by the stochastic transforms.
// Each falls back to the process-wide source when r is
// nil, so callers seed a *rand.Rand only when they need
// determinism.

func randIntn(r *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if r == nil {
		return rand.Intn(n)
	}
	return r.Intn(n)
}

func randUniform(r *rand.Rand, low, high float64) float64 {
	if high <= low {
		return low
	}
	var f float64
	if r == nil {
		f = rand.Float64()
	} else {
		f = r.Float64()
	}
	return low + (high-low)*f
}

func randNormal(r *rand.Rand, mean, std float64) float64 {
	var n float64
	if r == nil {
		n = rand.NormFloat64()
	} else {
		n = r.NormFloat64()
	}
	return mean + std*n
}

func randShuffle(r *rand.Rand, n int, swap func(i, j int)) {
	if r == nil {
		rand.Shuffle(n, swap)
	} else {
		r.Shuffle(n, swap)
	}
}
