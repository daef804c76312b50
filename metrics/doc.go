// Package metrics measures the quality of an approximated Pareto front
// against a reference (true) front, and exports fronts for external
// tooling.
//
//   - IGD — inverted generational distance: mean Euclidean distance
//     from each true-front point to its nearest approximation point.
//     Penalizes missing regions of the front. Lower is better.
//
//   - GD — generational distance: mean distance from each approximation
//     point to its nearest true-front point. Penalizes points far from
//     the front. Lower is better.
//
//   - WriteCSV / WriteCSVFile — `f1,f2` CSV export of a front, the
//     interchange format consumed by external plotting pipelines.
//
// Both metrics return +Inf when either front is empty: an empty
// approximation has no measurable quality.
package metrics
