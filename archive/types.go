// Package archive defines the Archive container type and its reporting
// structures.
package archive

import (
	"fmt"

	"github.com/katalvlaran/mome/core"
	"github.com/katalvlaran/mome/grid"
)

// Archive maps grid cells to bounded non-dominated sets of individuals.
// Cells are created lazily on first insertion; an absent key and an
// empty set are indistinguishable through every read path.
type Archive struct {
	indexer  grid.Indexer
	capacity int // per-cell Pareto set bound, always >= 1
	cells    map[grid.Cell][]*core.Individual
	size     int // total archived individuals, kept in step with cells
}

// New constructs an empty Archive over the given indexer. A capacity
// below 1 is coerced to 1: a cell always retains at least its
// best-so-far non-dominated member.
//
// Complexity: O(1).
func New(ix grid.Indexer, maxPerCell int) *Archive {
	if maxPerCell < 1 {
		maxPerCell = 1
	}

	return &Archive{
		indexer:  ix,
		capacity: maxPerCell,
		cells:    make(map[grid.Cell][]*core.Individual),
	}
}

// Capacity returns the per-cell Pareto set bound.
func (a *Archive) Capacity() int { return a.capacity }

// Indexer returns the descriptor indexer the archive routes with.
func (a *Archive) Indexer() grid.Indexer { return a.indexer }

// Summary aggregates occupancy statistics across the archive.
type Summary struct {
	// OccupiedCells is the number of cells holding at least one member.
	OccupiedCells int
	// Individuals is the total number of archived members.
	Individuals int
	// MeanPerCell is Individuals / OccupiedCells (0 for an empty archive).
	MeanPerCell float64
	// MaxPerCell is the largest cell-set size observed.
	MaxPerCell int
}

// String renders the summary in a compact single line.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d individuals=%d mean/cell=%.2f max/cell=%d",
		s.OccupiedCells, s.Individuals, s.MeanPerCell, s.MaxPerCell)
}
