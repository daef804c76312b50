// Package pareto provides the dominance relation and density utilities
// used by multi-objective archives.
//
// It includes three pure building blocks over objective vectors
// ([]float64, minimization convention):
//
//   - Dominates — pairwise Pareto dominance comparator; O(M) for M
//     objectives.
//   - FilterNonDominated — extract the non-dominated subset of a point
//     set; O(n²·M).
//   - CrowdingDistances — NSGA-II style crowding distance per member;
//     O(M·n·log n).
//
// All functions are deterministic, side-effect free, and never panic on
// well-formed input:
//   - Objective vectors of mismatched length are treated as mutually
//     non-dominating rather than causing an error.
//   - A degenerate objective range (max == min) contributes zero to
//     crowding rather than dividing by zero.
//
// Use this package when you need Pareto-set maintenance primitives
// without committing to any particular archive or population layout.
package pareto
