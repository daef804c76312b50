// Package archive - crowding-based capacity pruning.
//
// When an insertion pushes a cell past capacity, the most crowded
// members (lowest crowding distance in objective space) are removed
// until the cell is back at capacity.
//
// Removal-order policy: crowding scores are computed ONCE per prune
// call and the lowest-scoring member is removed repeatedly WITHOUT
// recomputation between removals. Recomputing after every removal is a
// truer iterative crowding policy, but the two only diverge when a
// single insertion must evict more than one member, which Insert's
// prune-at-capacity+1 discipline makes rare.
//
// Scores live in a slice parallel to the member slice (index-keyed):
// two members with equal objective vectors keep distinct scores, and
// ties break deterministically on the lowest index.
package archive

import (
	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/pareto"
)

// pruneByCrowding shrinks set to the archive's capacity by repeatedly
// removing the member with the globally lowest crowding score.
//
// Contract: len(set) > a.capacity >= 1.
//
// Complexity: O(M·k·log k) scoring + O(r·k) removals for r evictions.
func (a *Archive) pruneByCrowding(set []*core.Individual) []*core.Individual {
	objs := make([][]float64, len(set))
	for i, m := range set {
		objs[i] = m.Objectives
	}
	scores := pareto.CrowdingDistances(objs)

	for len(set) > a.capacity {
		worst := 0
		for i := 1; i < len(set); i++ {
			if scores[i] < scores[worst] {
				worst = i
			}
		}

		set = append(set[:worst], set[worst+1:]...)
		scores = append(scores[:worst], scores[worst+1:]...)
		a.size--
	}

	return set
}
