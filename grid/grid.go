// Package grid - clamped linear binning of behavior descriptors.
//
// Design principles:
//   - Total over finite input: values at or beyond either bound land in
//     the boundary bins; no error path exists after construction.
//   - Monotonic: BinIndex is non-decreasing in its value argument.
//   - Pure arithmetic: no state, no allocation, O(1) per call.
package grid

// BinIndex maps value onto an integer bin in [0, bins-1] by linear
// binning of width (upper-lower)/bins, clamped at both ends.
//
// Contract:
//   - bins >= 1 and lower < upper (guaranteed by NewIndexer; free-form
//     callers own the precondition).
//   - Monotonic non-decreasing in value; value == upper maps to bins-1.
//
// Complexity: O(1).
func BinIndex(value, lower, upper float64, bins int) int {
	width := (upper - lower) / float64(bins)
	idx := int((value - lower) / width)
	if idx < 0 {
		idx = 0
	}
	if idx >= bins {
		idx = bins - 1
	}

	return idx
}

// CellOf derives the grid Cell of a genome from its first two
// components. A genome with a single component uses 0.0 as the second
// descriptor, degrading to a single-row grid; the value is clamped like
// any other descriptor.
//
// Contract: len(genome) >= 1 (validated upstream by evolve.Options).
//
// Complexity: O(1).
func (ix Indexer) CellOf(genome []float64) Cell {
	gx := genome[0]
	gy := 0.0
	if len(genome) > 1 {
		gy = genome[1]
	}

	return Cell{
		X: BinIndex(gx, ix.lower, ix.upper, ix.bins),
		Y: BinIndex(gy, ix.lower, ix.upper, ix.bins),
	}
}
