package viz

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// KDE — Gaussian kernel density estimate
// ============================================================================
// Backs the histogram overlay and the violin outlines. Bandwidth follows
// Silverman's rule of thumb, with a floor so degenerate samples (all values
// equal) still produce a drawable curve.
// ============================================================================

const minBandwidth = 0.05

// silvermanBandwidth returns 1.06·σ·n^(-1/5).
func silvermanBandwidth(data []float64) float64 {
	if len(data) < 2 {
		return minBandwidth
	}
	sigma := stat.StdDev(data, nil)
	bw := 1.06 * sigma * math.Pow(float64(len(data)), -0.2)
	if bw < minBandwidth {
		bw = minBandwidth
	}
	return bw
}

// gaussianKDE evaluates the density estimate of data at each grid point.
func gaussianKDE(data []float64, bandwidth float64, grid []float64) []float64 {
	out := make([]float64, len(grid))
	if len(data) == 0 || bandwidth <= 0 {
		return out
	}
	norm := 1 / (float64(len(data)) * bandwidth * math.Sqrt(2*math.Pi))
	for gi, x := range grid {
		var sum float64
		for _, d := range data {
			u := (x - d) / bandwidth
			sum += math.Exp(-0.5 * u * u)
		}
		out[gi] = sum * norm
	}
	return out
}

// kdeGrid builds an evenly spaced evaluation grid spanning the data range
// padded by two bandwidths on each side.
func kdeGrid(data []float64, bandwidth float64, points int) []float64 {
	lo, hi := data[0], data[0]
	for _, d := range data {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	lo -= 2 * bandwidth
	hi += 2 * bandwidth

	grid := make([]float64, points)
	step := (hi - lo) / float64(points-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}
