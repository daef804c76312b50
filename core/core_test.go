package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mome/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBounds_Validate verifies the degenerate and inverted boxes are
// rejected with the sentinel.
func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, core.Bounds{Lower: 0, Upper: 1}.Validate())
	assert.ErrorIs(t, core.Bounds{Lower: 1, Upper: 1}.Validate(), core.ErrBadBounds)
	assert.ErrorIs(t, core.Bounds{Lower: 2, Upper: 1}.Validate(), core.ErrBadBounds)
}

// TestBounds_Clamp verifies clamping at and beyond both bounds.
func TestBounds_Clamp(t *testing.T) {
	b := core.Bounds{Lower: -1, Upper: 1}

	assert.Equal(t, -1.0, b.Clamp(-5))
	assert.Equal(t, -1.0, b.Clamp(-1))
	assert.Equal(t, 0.25, b.Clamp(0.25))
	assert.Equal(t, 1.0, b.Clamp(1))
	assert.Equal(t, 1.0, b.Clamp(7))
}

// TestNewIndividual_UnevaluatedObjectives verifies fresh individuals
// carry +Inf objectives and a defensive genome copy.
func TestNewIndividual_UnevaluatedObjectives(t *testing.T) {
	genome := []float64{0.1, 0.2}
	ind := core.NewIndividual(genome, 2)

	require.Len(t, ind.Objectives, 2)
	assert.True(t, math.IsInf(ind.Objectives[0], 1))
	assert.True(t, math.IsInf(ind.Objectives[1], 1))
	assert.False(t, ind.Evaluated())

	genome[0] = 99 // mutating the source must not leak into the Individual
	assert.Equal(t, 0.1, ind.Genome[0])
}

// TestIndividual_Evaluate verifies objective attachment and the
// Evaluated predicate.
func TestIndividual_Evaluate(t *testing.T) {
	ind := core.NewIndividual([]float64{0.5, 0.25}, 2)

	ind.Evaluate(func(x []float64) []float64 {
		return []float64{x[0], x[1]}
	})

	assert.True(t, ind.Evaluated())
	assert.Equal(t, []float64{0.5, 0.25}, ind.Objectives)
	assert.InDelta(t, 0.75, ind.ObjectiveSum(), 1e-12)
}

// TestRandomIndividual_InBounds verifies every sampled component lies
// inside the decision box and sampling is deterministic per seed.
func TestRandomIndividual_InBounds(t *testing.T) {
	b := core.Bounds{Lower: -3, Upper: 2}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		ind := core.RandomIndividual(rng, 5, b, 2)
		require.Len(t, ind.Genome, 5)
		for _, g := range ind.Genome {
			assert.GreaterOrEqual(t, g, b.Lower)
			assert.LessOrEqual(t, g, b.Upper)
		}
	}

	a := core.RandomIndividual(rand.New(rand.NewSource(7)), 4, b, 2)
	c := core.RandomIndividual(rand.New(rand.NewSource(7)), 4, b, 2)
	assert.Equal(t, a.Genome, c.Genome, "same seed must sample the same genome")
}
