// Package pareto - NSGA-II style crowding distance.
//
// Crowding distance approximates local density in objective space:
// boundary members of each objective dimension score +Inf (never the
// first to be pruned, preserving spread extremes), interior members
// accumulate normalized gaps between their sorted neighbors. A lower
// total score means a more crowded, more removable member.
//
// Design principles:
//   - Scores are keyed by index into the input slice, never by value or
//     identity: two equal objective vectors remain distinct members.
//   - A dimension with zero spread (max == min) contributes 0 to every
//     interior member instead of dividing by zero.
//   - Deterministic: sorting ties are resolved by original index.
package pareto

import (
	"math"
	"sort"
)

// CrowdingDistances computes the crowding distance of every member of
// objs, returned as a score slice parallel to the input: scores[i]
// belongs to objs[i]. Input order is not modified.
//
// Contract:
//   - All vectors in objs share the same length M (validated upstream).
//   - len(objs) may be 0 or 1; singletons score +Inf (they are a
//     boundary in every dimension).
//
// Complexity: O(M·n·log n) time, O(n) space.
func CrowdingDistances(objs [][]float64) []float64 {
	n := len(objs)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}
	if n <= 2 {
		// Every member is a boundary member in every dimension.
		for i := range scores {
			scores[i] = math.Inf(1)
		}
		return scores
	}

	m := len(objs[0])

	// order holds member indices, re-sorted once per dimension.
	order := make([]int, n)

	for j := 0; j < m; j++ {
		for i := range order {
			order[i] = i
		}
		dim := j
		sort.SliceStable(order, func(a, b int) bool {
			return objs[order[a]][dim] < objs[order[b]][dim]
		})

		lo := objs[order[0]][dim]
		hi := objs[order[n-1]][dim]

		// Boundary members keep the spread extremes alive.
		scores[order[0]] = math.Inf(1)
		scores[order[n-1]] = math.Inf(1)

		span := hi - lo
		if span == 0 {
			// Degenerate dimension: no density information, contributes 0.
			continue
		}

		for i := 1; i < n-1; i++ {
			prev := objs[order[i-1]][dim]
			next := objs[order[i+1]][dim]
			scores[order[i]] += (next - prev) / span
		}
	}

	return scores
}
