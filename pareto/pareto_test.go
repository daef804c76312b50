package pareto_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mome/pareto"
	"github.com/stretchr/testify/assert"
)

// TestDominates_StrictDominance verifies a vector better in both
// components dominates, and only in that direction.
func TestDominates_StrictDominance(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{2, 3}

	assert.True(t, pareto.Dominates(a, b), "a is better in both objectives")
	assert.False(t, pareto.Dominates(b, a), "dominance is asymmetric")
}

// TestDominates_EqualVectors verifies equality is not dominance in
// either direction.
func TestDominates_EqualVectors(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 2}

	assert.False(t, pareto.Dominates(a, b), "equal vectors must not dominate")
	assert.False(t, pareto.Dominates(b, a), "equal vectors must not dominate")
}

// TestDominates_MutuallyNonDominated verifies a trade-off pair yields
// false both ways.
func TestDominates_MutuallyNonDominated(t *testing.T) {
	a := []float64{1, 3}
	b := []float64{2, 2}

	assert.False(t, pareto.Dominates(a, b), "a loses on objective 1")
	assert.False(t, pareto.Dominates(b, a), "b loses on objective 0")
}

// TestDominates_PartialImprovement verifies "no worse everywhere plus
// strictly better somewhere" is sufficient.
func TestDominates_PartialImprovement(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 3}

	assert.True(t, pareto.Dominates(a, b), "equal in obj 0, better in obj 1")
	assert.False(t, pareto.Dominates(b, a))
}

// TestDominates_Irreflexive verifies a vector never dominates itself.
func TestDominates_Irreflexive(t *testing.T) {
	a := []float64{0.5, -1.5, 3}
	assert.False(t, pareto.Dominates(a, a))
}

// TestDominates_LengthMismatch verifies mismatched shapes are treated
// as mutually non-dominating rather than panicking.
func TestDominates_LengthMismatch(t *testing.T) {
	assert.False(t, pareto.Dominates([]float64{1}, []float64{1, 2}))
	assert.False(t, pareto.Dominates([]float64{1, 2}, []float64{1}))
}

// TestFilterNonDominated_Basic verifies dominated members are removed
// and input order of survivors is preserved.
func TestFilterNonDominated_Basic(t *testing.T) {
	pts := [][]float64{
		{1, 3},   // kept: trade-off with {2, 2} and {0.5, 4}
		{2, 2},   // kept
		{3, 3},   // dominated by {1, 3} and {2, 2}
		{0.5, 4}, // kept
	}

	nd := pareto.FilterNonDominated(pts)

	assert.Equal(t, [][]float64{{1, 3}, {2, 2}, {0.5, 4}}, nd)
}

// TestFilterNonDominated_PairwiseProperty verifies the output contains
// no dominating pair, whatever the input.
func TestFilterNonDominated_PairwiseProperty(t *testing.T) {
	pts := [][]float64{
		{1, 1}, {1, 2}, {2, 1}, {0, 3}, {3, 0}, {2, 2}, {0.5, 0.5},
	}

	nd := pareto.FilterNonDominated(pts)

	for i, a := range nd {
		for j, b := range nd {
			if i == j {
				continue
			}
			assert.False(t, pareto.Dominates(a, b),
				"front member %v must not dominate %v", a, b)
		}
	}
}

// TestFilterNonDominated_EqualDuplicates verifies equal vectors are all
// retained: equality is not dominance.
func TestFilterNonDominated_EqualDuplicates(t *testing.T) {
	pts := [][]float64{{1, 1}, {1, 1}, {2, 2}}

	nd := pareto.FilterNonDominated(pts)

	assert.Len(t, nd, 2, "both copies of the minimal point survive")
}

// TestFilterNonDominated_Empty verifies the empty set maps to an empty
// front.
func TestFilterNonDominated_Empty(t *testing.T) {
	assert.Empty(t, pareto.FilterNonDominated(nil))
}

// TestCrowdingDistances_BoundariesInfinite verifies per-dimension
// extremes receive +Inf.
func TestCrowdingDistances_BoundariesInfinite(t *testing.T) {
	objs := [][]float64{
		{0, 4},
		{1, 3},
		{2, 2},
		{3, 1},
		{4, 0},
	}

	scores := pareto.CrowdingDistances(objs)

	assert.True(t, math.IsInf(scores[0], 1), "min of obj 0 is a boundary")
	assert.True(t, math.IsInf(scores[4], 1), "max of obj 0 is a boundary")
}

// TestCrowdingDistances_InteriorAccumulation verifies an interior
// member's score is the sum of normalized neighbor gaps over all
// dimensions.
func TestCrowdingDistances_InteriorAccumulation(t *testing.T) {
	objs := [][]float64{
		{0, 4},
		{1, 3},
		{2, 2},
		{3, 1},
		{4, 0},
	}

	scores := pareto.CrowdingDistances(objs)

	// Member 2 is interior in both dimensions: (3-1)/4 per dimension.
	assert.InDelta(t, 1.0, scores[2], 1e-12)
}

// TestCrowdingDistances_DegenerateDimension verifies a zero-spread
// dimension contributes zero instead of NaN.
func TestCrowdingDistances_DegenerateDimension(t *testing.T) {
	objs := [][]float64{
		{0, 7},
		{1, 7},
		{2, 7},
	}

	scores := pareto.CrowdingDistances(objs)

	assert.True(t, math.IsInf(scores[0], 1))
	assert.True(t, math.IsInf(scores[2], 1))
	assert.False(t, math.IsNaN(scores[1]), "degenerate dimension must not produce NaN")
	// Interior member: (2-0)/2 from dimension 0, 0 from dimension 1.
	assert.InDelta(t, 1.0, scores[1], 1e-12)
}

// TestCrowdingDistances_CrowdedMemberScoresLowest verifies a tightly
// clustered interior member scores below a spread-out one.
func TestCrowdingDistances_CrowdedMemberScoresLowest(t *testing.T) {
	objs := [][]float64{
		{0, 10},
		{1, 9}, // crowded: close neighbors
		{1.1, 8.9},
		{5, 5}, // isolated interior
		{10, 0},
	}

	scores := pareto.CrowdingDistances(objs)

	lowest := 0
	for i, s := range scores {
		if s < scores[lowest] {
			lowest = i
		}
	}
	assert.Contains(t, []int{1, 2}, lowest, "a member of the tight cluster must score lowest")
}

// TestCrowdingDistances_SmallSets verifies sets of size 0, 1 and 2 score
// every member as a boundary.
func TestCrowdingDistances_SmallSets(t *testing.T) {
	assert.Empty(t, pareto.CrowdingDistances(nil))

	one := pareto.CrowdingDistances([][]float64{{1, 2}})
	assert.True(t, math.IsInf(one[0], 1))

	two := pareto.CrowdingDistances([][]float64{{1, 2}, {2, 1}})
	assert.True(t, math.IsInf(two[0], 1))
	assert.True(t, math.IsInf(two[1], 1))
}

// TestCrowdingDistances_IndexKeyed verifies equal vectors get their own
// scores rather than sharing one map slot.
func TestCrowdingDistances_IndexKeyed(t *testing.T) {
	objs := [][]float64{
		{0, 2},
		{1, 1},
		{1, 1}, // duplicate of the previous member
		{2, 0},
	}

	scores := pareto.CrowdingDistances(objs)

	assert.Len(t, scores, 4, "one score per member, duplicates included")
	assert.False(t, math.IsInf(scores[1], 1) && math.IsInf(scores[2], 1),
		"duplicates in the interior must not both inherit boundary scores")
}
