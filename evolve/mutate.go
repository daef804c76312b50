// Package evolve - Gaussian variation.
package evolve

import (
	"math/rand"

	"github.com/katalvlaran/mome/core"
)

// Mutate derives a child from parent by adding independent Gaussian
// noise (mean 0, std dev opts.MutationSigma) to every genome component
// and clamping the result into the decision box. The child's objectives
// are unset (+Inf) until evaluated.
//
// The parent is not modified; a sigma of 0 yields an exact copy.
//
// Contract: rng != nil; parent has a non-empty genome.
//
// Complexity: O(D + M).
func Mutate(rng *rand.Rand, parent *core.Individual, opts Options) *core.Individual {
	g := make([]float64, len(parent.Genome))
	for i, v := range parent.Genome {
		g[i] = opts.Bounds.Clamp(v + rng.NormFloat64()*opts.MutationSigma)
	}

	return core.NewIndividual(g, opts.NumObjectives)
}
