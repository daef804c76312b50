// Package core provides the fundamental value types shared by every
// optimizer package: the Individual (genome + objective vector), the
// Bounds of the decision box, and the Evaluator contract that connects
// the search loop to an external objective function.
//
// Conventions:
//   - All objectives are MINIMIZED; an unevaluated objective is +Inf,
//     worse than any finite value.
//   - Genomes are deep-copied on construction; an Individual is never
//     mutated in place once it enters an archive, only removed or
//     replaced.
//   - Every stochastic helper takes an explicit *rand.Rand; there is no
//     package-level randomness.
package core
