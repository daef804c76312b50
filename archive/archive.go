// Package archive - insertion policy and read paths.
//
// Insert is the only mutating operation; its side effects are confined
// to the single cell the candidate routes to. The policy:
//
//  1. Route the candidate to its cell via the descriptor indexer.
//  2. Reject if any current member dominates it (archive untouched).
//  3. Sweep out members the candidate dominates.
//  4. Append the candidate.
//  5. Prune by crowding distance if the cell exceeds capacity.
//
// Steps 2-4 keep every cell an antichain under dominance; step 5 keeps
// it bounded. Rejection is idempotent: re-offering a dominated
// candidate never changes state.
package archive

import (
	"sort"

	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/grid"
	"github.com/katalvlaran/mome/pareto"
)

// Insert offers ind to its grid cell and reports whether it was
// retained. A false return means the candidate was dominated by an
// existing cell member and discarded without mutating the archive.
//
// Contract:
//   - ind is evaluated (finite objectives) and never mutated afterwards.
//   - len(ind.Genome) >= 1; objective length matches the archive's
//     population (validated upstream by evolve.Options).
//
// Complexity: O(k·M) without pruning, O(M·k·log k) with pruning, for a
// cell of size k.
func (a *Archive) Insert(ind *core.Individual) bool {
	cell := a.indexer.CellOf(ind.Genome)
	set := a.cells[cell]

	// 1) Dominated by any current member -> discard, no state change.
	for _, m := range set {
		if pareto.Dominates(m.Objectives, ind.Objectives) {
			return false
		}
	}

	// 2) Sweep out members the candidate dominates (in-place filter,
	//    preserving order of survivors).
	kept := set[:0]
	for _, m := range set {
		if pareto.Dominates(ind.Objectives, m.Objectives) {
			a.size--
			continue
		}
		kept = append(kept, m)
	}

	// 3) Add the candidate.
	kept = append(kept, ind)
	a.size++

	// 4) Capacity bound.
	if len(kept) > a.capacity {
		kept = a.pruneByCrowding(kept)
	}

	a.cells[cell] = kept

	return true
}

// Len returns the total number of archived individuals.
func (a *Archive) Len() int { return a.size }

// Cells returns the number of occupied cells.
func (a *Archive) Cells() int {
	n := 0
	for _, set := range a.cells {
		if len(set) > 0 {
			n++
		}
	}

	return n
}

// CellMembers returns a copy of the member slice of cell c. Absent and
// empty cells both yield nil.
//
// Complexity: O(k).
func (a *Archive) CellMembers(c grid.Cell) []*core.Individual {
	set := a.cells[c]
	if len(set) == 0 {
		return nil
	}

	out := make([]*core.Individual, len(set))
	copy(out, set)

	return out
}

// All returns a snapshot slice of every archived individual. Cells are
// visited in row-major (Y, X) order and members keep their in-cell
// order, so the snapshot is identical across same-state archives: the
// selection loop draws pool indices from a seeded RNG, and a stable
// pool order is what makes those draws reproducible. Plain map
// iteration here would leak Go's per-run map ordering into the run.
//
// Complexity: O(n + cells·log cells).
func (a *Archive) All() []*core.Individual {
	keys := make([]grid.Cell, 0, len(a.cells))
	for c := range a.cells {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}

		return keys[i].X < keys[j].X
	})

	out := make([]*core.Individual, 0, a.size)
	for _, c := range keys {
		out = append(out, a.cells[c]...)
	}

	return out
}

// Summary computes occupancy statistics over the archive.
//
// Complexity: O(cells).
func (a *Archive) Summary() Summary {
	var s Summary
	for _, set := range a.cells {
		k := len(set)
		if k == 0 {
			continue
		}
		s.OccupiedCells++
		s.Individuals += k
		if k > s.MaxPerCell {
			s.MaxPerCell = k
		}
	}
	if s.OccupiedCells > 0 {
		s.MeanPerCell = float64(s.Individuals) / float64(s.OccupiedCells)
	}

	return s
}

// Heatmap returns per-cell occupancy counts as a bins×bins matrix
// indexed [y][x], for external coverage visualization.
//
// Complexity: O(bins² + cells).
func (a *Archive) Heatmap() [][]int {
	bins := a.indexer.Bins()
	hm := make([][]int, bins)
	for y := range hm {
		hm[y] = make([]int, bins)
	}
	for c, set := range a.cells {
		hm[c.Y][c.X] = len(set)
	}

	return hm
}
