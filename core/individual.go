// Package core - the Individual value holder and its constructors.
//
// Design principles:
//   - Objectives default to +Inf (unevaluated is worse than any finite
//     evaluation) and are attached once via Evaluate.
//   - Constructors deep-copy genomes so callers cannot alias archive
//     state.
//   - Deterministic: randomness enters only through the caller's
//     *rand.Rand (see evolve's rng policy).
package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Individual holds one candidate solution: a decision vector (genome)
// and its evaluated objective vector. Once an Individual is offered to
// an archive it is treated as immutable.
type Individual struct {
	Genome     []float64
	Objectives []float64
}

// NewIndividual builds an Individual from genome with numObjectives
// unevaluated (+Inf) objectives. The genome is deep-copied.
//
// Complexity: O(D + M).
func NewIndividual(genome []float64, numObjectives int) *Individual {
	g := make([]float64, len(genome))
	copy(g, genome)

	objs := make([]float64, numObjectives)
	for i := range objs {
		objs[i] = math.Inf(1)
	}

	return &Individual{Genome: g, Objectives: objs}
}

// RandomIndividual samples a genome uniformly from the decision box
// [b.Lower, b.Upper]^dims and returns it unevaluated.
//
// Contract: rng != nil, dims >= 1, b validated upstream.
//
// Complexity: O(D + M).
func RandomIndividual(rng *rand.Rand, dims int, b Bounds, numObjectives int) *Individual {
	g := make([]float64, dims)
	for i := range g {
		g[i] = b.Lower + rng.Float64()*b.Width()
	}

	return NewIndividual(g, numObjectives)
}

// Evaluate runs eval on the genome and attaches the resulting objective
// vector. Returns the same Individual for chaining.
//
// Contract: eval is pure and total over the decision box (see the
// evaluator convention in the package doc); Evaluate is called exactly
// once, before the Individual is offered to an archive.
func (ind *Individual) Evaluate(eval Evaluator) *Individual {
	ind.Objectives = eval(ind.Genome)

	return ind
}

// Evaluated reports whether every objective component is finite, i.e.
// the Individual has been evaluated.
//
// Complexity: O(M).
func (ind *Individual) Evaluated() bool {
	for _, v := range ind.Objectives {
		if math.IsInf(v, 1) {
			return false
		}
	}

	return true
}

// ObjectiveSum returns the sum of all objective components. Used by
// tournament selection as a scalar quality score (lower is better).
//
// Complexity: O(M).
func (ind *Individual) ObjectiveSum() float64 {
	var s float64
	for _, v := range ind.Objectives {
		s += v
	}

	return s
}

// String renders the genome and objectives for diagnostics.
func (ind *Individual) String() string {
	return fmt.Sprintf("genome=%v objectives=%v", ind.Genome, ind.Objectives)
}
