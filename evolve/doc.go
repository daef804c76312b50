// Package evolve drives the Multi-Objective MAP-Elites search: it seeds
// an archive with random individuals, then repeatedly selects a parent,
// mutates it, evaluates the child against the external objective
// function, and offers the child to the archive.
//
// The run is a fixed-budget state machine:
//
//	Seeding -> Evolving -> Done
//
//   - Seeding: InitialRandom uniform samples (at least one, so the
//     archive is never empty when evolution starts).
//   - Evolving: Generations × EvaluationsPerGeneration iterations of
//     select / mutate / evaluate / insert. No early termination.
//   - Done: the returned archive is readable and no longer mutated.
//
// Determinism: given a fixed Options.Seed and a deterministic
// Evaluator, two runs produce identical archives. All randomness flows
// through one explicit *rand.Rand owned by the run; seed 0 selects a
// fixed default stream.
//
// Selection is a best-of-k tournament (k = min(5, pool size), draws
// with replacement) on the sum of objective values — mild global
// pressure toward low objective magnitude, independent of cell
// occupancy. An empty archive falls back to a fresh random parent, so
// the loop can never stall.
//
// Use Run for the whole pipeline, or SelectParent/Mutate directly to
// compose a custom loop.
package evolve
