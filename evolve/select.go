// Package evolve - parent selection.
//
// Selection pressure is deliberately mild and global: a best-of-k
// tournament on the raw sum of objective values, drawn uniformly with
// replacement from the pooled members of every cell. It does not weight
// by cell-local elitism — the archive's insertion policy already
// provides the per-cell quality pressure.
package evolve

import (
	"math/rand"

	"github.com/katalvlaran/mome/archive"
	"github.com/katalvlaran/mome/core"
)

// SelectParent picks a parent for variation. If the archive holds no
// individuals, it returns a fresh uniformly random, unevaluated
// Individual so the loop never stalls on an empty pool. Otherwise it
// runs a best-of-k tournament, k = min(tournamentSize, pool size), with
// replacement, scoring by ObjectiveSum (lower is better). The pool is
// archive.All()'s grid-ordered snapshot: index draws from the seeded
// rng land on the same members every run.
//
// Contract: rng != nil; opts validated.
//
// Complexity: O(n) pool collection + O(k·M) tournament.
func SelectParent(rng *rand.Rand, arch *archive.Archive, opts Options) *core.Individual {
	pool := arch.All()
	if len(pool) == 0 {
		return core.RandomIndividual(rng, opts.Dimensions, opts.Bounds, opts.NumObjectives)
	}

	k := tournamentSize
	if len(pool) < k {
		k = len(pool)
	}

	best := pool[rng.Intn(len(pool))]
	bestScore := best.ObjectiveSum()
	for i := 1; i < k; i++ {
		cand := pool[rng.Intn(len(pool))]
		if s := cand.ObjectiveSum(); s < bestScore {
			best = cand
			bestScore = s
		}
	}

	return best
}
