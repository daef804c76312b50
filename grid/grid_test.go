package grid_test

import (
	"testing"

	"github.com/katalvlaran/mome/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinIndex_Range verifies every result lies in [0, bins-1],
// including at and beyond the exact bounds.
func TestBinIndex_Range(t *testing.T) {
	const bins = 10

	for _, v := range []float64{-100, -0.001, 0, 0.05, 0.5, 0.999, 1, 1.001, 100} {
		idx := grid.BinIndex(v, 0, 1, bins)
		assert.GreaterOrEqual(t, idx, 0, "value %v", v)
		assert.Less(t, idx, bins, "value %v", v)
	}
}

// TestBinIndex_Monotonic verifies the mapping is non-decreasing in its
// value argument.
func TestBinIndex_Monotonic(t *testing.T) {
	const bins = 7

	prev := grid.BinIndex(-2, -1, 1, bins)
	for v := -1.95; v <= 2.0; v += 0.05 {
		idx := grid.BinIndex(v, -1, 1, bins)
		assert.GreaterOrEqual(t, idx, prev, "bin index decreased at value %v", v)
		prev = idx
	}
}

// TestBinIndex_Boundaries verifies exact-bound behavior: lower maps to
// bin 0, upper clamps into the last bin.
func TestBinIndex_Boundaries(t *testing.T) {
	assert.Equal(t, 0, grid.BinIndex(0, 0, 1, 4))
	assert.Equal(t, 3, grid.BinIndex(1, 0, 1, 4), "value == upper clamps to bins-1")
	assert.Equal(t, 0, grid.BinIndex(-5, 0, 1, 4), "below lower clamps to 0")
	assert.Equal(t, 3, grid.BinIndex(5, 0, 1, 4), "above upper clamps to bins-1")
}

// TestBinIndex_InteriorWidths verifies interior values land in the
// expected linear bin.
func TestBinIndex_InteriorWidths(t *testing.T) {
	// [0,1) in 4 bins of width 0.25.
	assert.Equal(t, 0, grid.BinIndex(0.24, 0, 1, 4))
	assert.Equal(t, 1, grid.BinIndex(0.25, 0, 1, 4))
	assert.Equal(t, 2, grid.BinIndex(0.5, 0, 1, 4))
	assert.Equal(t, 3, grid.BinIndex(0.75, 0, 1, 4))
}

// TestNewIndexer_Validation verifies construction sentinels.
func TestNewIndexer_Validation(t *testing.T) {
	_, err := grid.NewIndexer(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrNoBins)

	_, err = grid.NewIndexer(1, 1, 10)
	assert.ErrorIs(t, err, grid.ErrBadBounds)

	_, err = grid.NewIndexer(2, 1, 10)
	assert.ErrorIs(t, err, grid.ErrBadBounds)

	ix, err := grid.NewIndexer(-1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, ix.Bins())
	assert.Equal(t, -1.0, ix.Lower())
	assert.Equal(t, 1.0, ix.Upper())
}

// TestIndexer_CellOf verifies descriptor-to-cell mapping for 2-D and
// higher-dimensional genomes (only the first two components matter).
func TestIndexer_CellOf(t *testing.T) {
	ix, err := grid.NewIndexer(0, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, grid.Cell{X: 0, Y: 0}, ix.CellOf([]float64{0.1, 0.2}))
	assert.Equal(t, grid.Cell{X: 1, Y: 0}, ix.CellOf([]float64{0.9, 0.2}))
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, ix.CellOf([]float64{0.9, 0.8, 0.3, 0.4}),
		"components beyond the second are ignored")
}

// TestIndexer_CellOf_OneDimensional verifies a 1-D genome degrades to a
// single-row grid via the fixed 0.0 second descriptor.
func TestIndexer_CellOf_OneDimensional(t *testing.T) {
	ix, err := grid.NewIndexer(0, 1, 4)
	require.NoError(t, err)

	c := ix.CellOf([]float64{0.6})
	assert.Equal(t, grid.Cell{X: 2, Y: 0}, c)

	// Even with bounds excluding 0.0, the synthetic descriptor clamps.
	ix2, err := grid.NewIndexer(2, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, ix2.CellOf([]float64{3.0}).Y)
}
