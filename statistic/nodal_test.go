package statistic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
)

func TestContinuousDiffNaNZeroesWholeTerm(t *testing.T) {
	g := graph.NewDirected(2)
	value := func(v int) float64 {
		if v == 0 {
			return math.NaN()
		}
		return 4.0
	}
	diff := statistic.NewContinuousDiff(value)
	// A NaN reference zeroes the whole two-endpoint term, not just the
	// NaN operand: diff(0,1) over [NaN, 4.0] is 0, not |0 - 4|.
	assert.Equal(t, 0.0, diff(g, 0, 1, false))
}

func TestJaccardSimilarityEmptyUnionIsOne(t *testing.T) {
	g := graph.NewDirected(2)
	empty := func(v int) []attrs.SetState { return []attrs.SetState{attrs.Absent, attrs.Absent} }
	jaccard := statistic.NewJaccardSimilarity(empty)
	assert.Equal(t, 1.0, jaccard(g, 0, 1, false))
}

func TestJaccardSimilarityIgnoresNA(t *testing.T) {
	g := graph.NewDirected(2)
	sets := func(v int) []attrs.SetState {
		if v == 0 {
			return []attrs.SetState{attrs.Present, attrs.SetNA, attrs.Present}
		}
		return []attrs.SetState{attrs.Present, attrs.Present, attrs.Absent}
	}
	jaccard := statistic.NewJaccardSimilarity(sets)
	// Category 1 is NA for node 0 and must be excluded from both sets;
	// category 0 matches (intersect), category 2 only node 0 has it.
	assert.InDelta(t, 0.5, jaccard(g, 0, 1, false), 1e-9)
}

func TestMatchingInteractionRequiresBothBinary(t *testing.T) {
	g := graph.NewDirected(2)
	sets := func(v int) []attrs.SetState { return []attrs.SetState{attrs.Present} }
	binary := func(v int) int8 {
		if v == 0 {
			return 0
		}
		return 1
	}
	mi := statistic.NewMatchingInteraction(sets, binary)
	assert.Equal(t, 0.0, mi(g, 0, 1, false))
}
