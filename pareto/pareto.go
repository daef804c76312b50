// Package pareto - dominance relation and non-dominated filtering.
//
// This file holds the pairwise comparator that every other component of
// the optimizer builds on, plus the O(n²) non-dominated filter used for
// global front extraction.
//
// Design principles:
//   - Minimization everywhere: lower objective values are better.
//   - Pure functions, no hidden state, no allocations in Dominates.
//   - Defensive but silent: a length mismatch yields "neither dominates";
//     shape validation belongs to the caller (see evolve.Options).
package pareto

// Dominates reports whether objective vector a dominates b under
// minimization: a is no worse than b in every component (a[i] <= b[i])
// and strictly better in at least one (a[i] < b[i]).
//
// Properties:
//   - Irreflexive: Dominates(a, a) == false.
//   - Asymmetric: Dominates(a, b) && Dominates(b, a) is impossible.
//   - Equal vectors: neither dominates the other.
//
// Vectors of different lengths are mutually non-dominating (returns false).
//
// Complexity: O(M) time, O(1) space.
func Dominates(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	var strictlyBetter bool
	for i := range a {
		if a[i] > b[i] {
			// Worse in objective i: a cannot dominate b.
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}

	return strictlyBetter
}

// FilterNonDominated returns the members of points that are not
// dominated by any other member, preserving input order. The result is
// a fresh slice; the inner vectors are shared with the input (callers
// treat objective vectors as immutable).
//
// Mutually equal vectors are all retained: equality is not dominance.
//
// Complexity: O(n²·M) time, O(n) space for the result.
func FilterNonDominated(points [][]float64) [][]float64 {
	nd := make([][]float64, 0, len(points))

	for i, a := range points {
		dominated := false
		for j, b := range points {
			if i == j {
				continue
			}
			if Dominates(b, a) {
				dominated = true
				break
			}
		}
		if !dominated {
			nd = append(nd, a)
		}
	}

	return nd
}
