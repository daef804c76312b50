// Package metrics - generational distance metrics over (f1, f2) fronts.
//
// Design principles:
//   - Pure functions over value slices; no state, no errors on
//     well-formed input (empty fronts yield +Inf by convention).
//   - O(|A|·|B|) nearest-neighbor scans: front sizes here are hundreds,
//     not millions, so no spatial index is warranted.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IGD returns the inverted generational distance from truePF to approx:
// the mean distance from each true-front point to the nearest
// approximation point. Lower is better; +Inf if either front is empty.
//
// Complexity: O(|truePF|·|approx|).
func IGD(truePF, approx [][2]float64) float64 {
	return meanNearest(truePF, approx)
}

// GD returns the generational distance from approx to truePF: the mean
// distance from each approximation point to the nearest true-front
// point. Lower is better; +Inf if either front is empty.
//
// Complexity: O(|approx|·|truePF|).
func GD(approx, truePF [][2]float64) float64 {
	return meanNearest(approx, truePF)
}

// meanNearest averages, over every point of from, the Euclidean
// distance to its nearest neighbor in to.
func meanNearest(from, to [][2]float64) float64 {
	if len(from) == 0 || len(to) == 0 {
		return math.Inf(1)
	}

	var sum float64
	for _, p := range from {
		best := math.Inf(1)
		for _, q := range to {
			if d := floats.Distance(p[:], q[:], 2); d < best {
				best = d
			}
		}
		sum += best
	}

	return sum / float64(len(from))
}
