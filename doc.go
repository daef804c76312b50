// Package mome is a Multi-Objective MAP-Elites (MO-ME) optimizer: it
// searches a continuous decision space to populate a 2D behavior grid
// with diverse, high-quality solution sets, where quality is Pareto
// optimality rather than a scalar score.
//
// 🚀 What is mome?
//
//	A deterministic optimization library built from small, well-tested
//	packages:
//		• Pareto primitives: dominance, non-dominated filtering, crowding distance
//		• Behavior grid: clamped linear binning of descriptors into cells
//		• Archive: bounded per-cell Pareto sets with crowding-based pruning
//		• Evolutionary loop: seeding, tournament selection, Gaussian mutation
//		• Benchmarks: Schaffer N.1, Fonseca–Fleming, ZDT1/3/6, Kursawe + true fronts
//		• Metrics & viz: IGD/GD quality scores, CSV export, front overlay plots
//
// ✨ Why choose mome?
//
//   - Reproducible – one seeded RNG per run; same seed, same archive
//   - Bounded memory – occupied cells × per-cell capacity, whatever the budget
//   - Pure core – the search loop has no I/O, no logging, no globals
//   - Composable – SelectParent/Mutate/Insert are public for custom loops
//
// Everything is organized under focused subpackages:
//
//	pareto/    — dominance relation, ND filtering, crowding distance
//	grid/      — descriptor binning and the Cell key type
//	core/      — Individual, Bounds, the Evaluator contract
//	archive/   — the MAP-Elites archive: insert, prune, global front
//	evolve/    — Options, RNG policy, selection, mutation, Run
//	benchmark/ — bi-objective test problems and their true fronts
//	metrics/   — IGD/GD metrics and CSV export
//	viz/       — true-vs-found front overlay images
//	cmd/mome/  — CLI driver over the benchmark catalog
//
// Quick sketch of a run:
//
//	arch, err := evolve.Run(benchmark.ZDT1(30), evolve.DefaultOptions())
//	front := arch.FrontPoints() // (f1, f2) pairs, sorted by f1
//
//	go get github.com/katalvlaran/mome
package mome
