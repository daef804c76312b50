// Package benchmark provides classic bi-objective test problems for
// the optimizer, each exposed as a core.Evaluator, together with the
// analytic (or approximated) true Pareto fronts needed by quality
// metrics.
//
// Problems, in rough order of difficulty:
//
//   - SchafferN1      — 1 variable, convex front, bounds ±100.
//   - FonsecaFleming  — n variables, concave front, bounds ±4.
//   - ZDT1            — n variables, convex front, bounds [0,1].
//   - Kursawe         — n variables, disconnected non-convex front, bounds ±5.
//   - ZDT3            — n variables, disconnected front, bounds [0,1].
//   - ZDT6            — n variables, non-uniform concave front, bounds [0,1].
//
// All objectives are minimized. Each evaluator is pure and total over
// its recommended decision box; behavior outside the box is undefined
// in the literature and not guarded here.
//
// The Problem catalog bundles an evaluator with its recommended
// dimensions, bounds and true front so drivers can select a problem by
// name.
package benchmark
