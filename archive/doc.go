// Package archive implements the MAP-Elites archive: a mapping from
// grid cells to small, bounded Pareto sets of individuals.
//
// Each occupied cell holds an antichain under the dominance relation —
// no member of a cell dominates another member of the same cell — and
// never more than the configured capacity. Together these two
// invariants bound total memory by
//
//	occupied cells × capacity × O(D + M)
//
// regardless of how many candidates are offered over a run.
//
// Operations:
//
//   - Insert — offer a candidate to its cell: reject if dominated,
//     sweep out newly dominated cell-mates, prune by crowding distance
//     when over capacity. O(k·M) typical, O(M·k·log k) when pruning
//     (k = cell size).
//   - GlobalFront / FrontPoints — extract the archive-wide
//     non-dominated set, the externally reported result of a run.
//     O(n²·M) over n archived individuals.
//   - Summary / Heatmap — occupancy statistics for reporting and
//     coverage visualization.
//
// The archive is not goroutine-safe: the sequential evolutionary loop
// is its single writer. A parallel driver must serialize Insert calls
// per cell (side effects are cell-local).
package archive
