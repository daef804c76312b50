// Package evolve - the run dispatcher.
//
// Run is the canonical entry point: validate the configuration, build
// the archive, then execute the fixed-budget state machine
// (Seeding -> Evolving -> Done). Strict sentinel errors only; after
// validation succeeds the run cannot fail.
//
// Design principles:
//   - Deterministic: one RNG owned by the run, seeded by policy (rng.go);
//     no time-based randomness.
//   - Sequential: exactly one evaluation at a time, one writer to the
//     archive; iteration order is the reproducibility contract.
//   - Side-effect free beyond the returned archive: no logging, no I/O.
package evolve

import (
	"github.com/katalvlaran/mome/archive"
	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/grid"
)

// Run executes a full MAP-Elites search against eval and returns the
// populated archive.
//
// Contracts:
//   - eval must be non-nil, pure and total over the decision box,
//     returning opts.NumObjectives minimized components.
//   - opts must pass Validate; MaxPerCell is coerced to >= 1 by the
//     archive.
//
// Errors: ErrNilEvaluator or the Options sentinels; nothing else.
//
// Complexity: O(B·k·M) archive work for a budget of
// B = max(1, InitialRandom) + Generations·EvaluationsPerGeneration
// evaluations, plus O(B·n) selection pool scans.
func Run(eval core.Evaluator, opts Options) (*archive.Archive, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Options validation guarantees the indexer constructor cannot fail.
	ix, err := grid.NewIndexer(opts.Bounds.Lower, opts.Bounds.Upper, opts.BinsPerDim)
	if err != nil {
		return nil, err
	}

	arch := archive.New(ix, opts.MaxPerCell)
	rng := rngFromSeed(opts.Seed)

	// --- Seeding.
	// At least one seed: selection must never face an empty archive once
	// the evolving phase begins.
	seeds := opts.InitialRandom
	if seeds < 1 {
		seeds = 1
	}
	for i := 0; i < seeds; i++ {
		ind := core.RandomIndividual(rng, opts.Dimensions, opts.Bounds, opts.NumObjectives)
		ind.Evaluate(eval)
		arch.Insert(ind)
	}
	if opts.Observer != nil {
		opts.Observer(-1, arch.Summary())
	}

	// --- Evolving.
	for gen := 0; gen < opts.Generations; gen++ {
		for ev := 0; ev < opts.EvaluationsPerGeneration; ev++ {
			parent := SelectParent(rng, arch, opts)
			child := Mutate(rng, parent, opts)
			child.Evaluate(eval)
			arch.Insert(child)
		}
		if opts.Observer != nil {
			opts.Observer(gen, arch.Summary())
		}
	}

	// --- Done: the archive is handed to the caller read-only.
	return arch, nil
}
