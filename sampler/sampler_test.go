package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/sampler"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcEntries() []statistic.Entry {
	return []statistic.Entry{{Name: "Arc", Fn: statistic.Arc}}
}

func TestOptionsValidateThetaEntryMismatch(t *testing.T) {
	opts := sampler.Options{Theta: []float64{1, 2}, Entries: arcEntries()}
	assert.ErrorIs(t, opts.Validate(), sampler.ErrThetaEntryMismatch)
}

func TestRunBasicStronglyPositiveThetaGrowsEdges(t *testing.T) {
	g := graph.NewDirected(6)
	opts := sampler.Options{
		Theta:   []float64{5.0},
		Entries: arcEntries(),
		Rng:     rand.New(rand.NewSource(1)),
	}
	res, err := sampler.Run(g, 200, opts)
	require.NoError(t, err)
	assert.Greater(t, res.Accepted, 0)
	assert.Greater(t, g.ArcCount(), 0)
}

func TestRunBasicStronglyNegativeThetaKeepsGraphEmpty(t *testing.T) {
	g := graph.NewDirected(6)
	opts := sampler.Options{
		Theta:   []float64{-20.0},
		Entries: arcEntries(),
		Rng:     rand.New(rand.NewSource(1)),
	}
	res, err := sampler.Run(g, 200, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, g.ArcCount())
	assert.Equal(t, 0, res.Accepted)
}

func TestForbidReciprocityBlocksReverseArc(t *testing.T) {
	g := graph.NewDirected(3)
	require.NoError(t, g.InsertArc(0, 1))
	assert.False(t, sampler.LegalAdd(g, 1, 0, true))
	assert.True(t, sampler.LegalAdd(g, 1, 0, false))
}

func TestDrawDeleteCandidateEmptyGraph(t *testing.T) {
	g := graph.NewDirected(3)
	_, _, ok := sampler.DrawDeleteCandidate(g, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestNewIFDStateUsesArcCorrection(t *testing.T) {
	g := graph.NewDirected(4) // D = 12, A = 0
	state := sampler.NewIFDState(g, -2.0)
	assert.True(t, state.LastWasDelete)
	// -2.0 + log(12/1) = -2.0 + log(12)
	assert.InDelta(t, -2.0+math.Log(12), state.V, 1e-9)
}

func TestRunIFDUpdatesAuxiliaryV(t *testing.T) {
	g := graph.NewDirected(6)
	opts := sampler.Options{
		Theta:   []float64{3.0},
		Entries: arcEntries(),
		Rng:     rand.New(rand.NewSource(7)),
		IFDK:    1.0,
	}
	state := sampler.NewIFDState(g, 3.0)
	res, newState, err := sampler.RunIFD(g, 50, opts, state)
	require.NoError(t, err)
	assert.Greater(t, res.Proposed, 0)
	assert.NotEqual(t, state.V, newState.V)
}

func TestRunTNTForcesAddOnEmptyGraph(t *testing.T) {
	g := graph.NewDirected(4)
	opts := sampler.Options{
		Theta:   []float64{2.0},
		Entries: arcEntries(),
		Rng:     rand.New(rand.NewSource(3)),
	}
	res, err := sampler.RunTNT(g, 30, opts)
	require.NoError(t, err)
	assert.Greater(t, res.Proposed, 0)
}
