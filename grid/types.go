// Package grid defines the Cell key type, the Indexer configuration,
// and sentinel errors for descriptor binning.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrNoBins indicates a grid resolution below one bin per axis.
	ErrNoBins = errors.New("grid: bins per dimension must be at least 1")
	// ErrBadBounds indicates lower >= upper for the descriptor range.
	ErrBadBounds = errors.New("grid: lower bound must be strictly below upper bound")
)

// Cell identifies one grid bin by its integer bin indices along the two
// descriptor axes. Cell is a comparable value type and is used as the
// archive's map key.
type Cell struct {
	X, Y int
}

// Indexer maps descriptor values onto a bins×bins grid over the square
// [Lower, Upper]². It is immutable once constructed.
type Indexer struct {
	lower, upper float64
	bins         int
}

// NewIndexer validates the descriptor range and resolution and returns
// an Indexer. Returns ErrNoBins when bins < 1, ErrBadBounds when
// lower >= upper.
//
// Complexity: O(1).
func NewIndexer(lower, upper float64, bins int) (Indexer, error) {
	if bins < 1 {
		return Indexer{}, ErrNoBins
	}
	if lower >= upper {
		return Indexer{}, ErrBadBounds
	}

	return Indexer{lower: lower, upper: upper, bins: bins}, nil
}

// Bins returns the grid resolution per axis.
func (ix Indexer) Bins() int { return ix.bins }

// Lower returns the inclusive lower descriptor bound.
func (ix Indexer) Lower() float64 { return ix.lower }

// Upper returns the upper descriptor bound.
func (ix Indexer) Upper() float64 { return ix.upper }
