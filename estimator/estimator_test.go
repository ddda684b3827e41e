package estimator_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ergm/estimator"
	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcEntries() []statistic.Entry {
	return []statistic.Entry{{Name: "Arc", Fn: statistic.Arc}}
}

func TestObservedStatsCountsExistingArcs(t *testing.T) {
	g := graph.NewDirected(4)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))
	require.NoError(t, g.InsertArc(2, 3))

	t0 := estimator.ObservedStats(g, arcEntries())
	require.Len(t, t0, 1)
	assert.Equal(t, 3.0, t0[0])
	// Graph must be restored exactly as given.
	assert.Equal(t, 3, g.ArcCount())
	assert.True(t, g.IsArc(0, 1))
}

func TestObservedStatsIsolatesTag(t *testing.T) {
	g := graph.NewDirected(3)
	entries := []statistic.Entry{{Name: "Isolates", Fn: statistic.Isolates, IsIsolates: true}}
	empty := estimator.ObservedStats(g, entries)
	// No ties at all, so the add-direction-delta pass never runs; observed
	// stays at its zero initial value (EmptyGraphStats carries the offset).
	assert.Equal(t, 0.0, empty[0])

	base := statistic.EmptyGraphStats(g, entries)
	assert.Equal(t, 3.0, base[0])
}

func TestRunProducesFiniteTheta(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	g := graph.NewDirected(5)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))

	cfg := estimator.Config{
		SSteps:          2,
		SamplerSteps:    10,
		EESteps:         1,
		EEInnerSteps:    2,
		ACA_S:           0.01,
		ACA_EE:          0.01,
		CompC:           10,
		ParamNames:      []string{"Arc"},
		ThetaFilePrefix: "test",
		DzAFilePrefix:   "test",
		TaskID:          1,
	}
	theta0 := []float64{-2.0}
	rng := rand.New(rand.NewSource(42))

	final, err := estimator.Run(g, arcEntries(), cfg, theta0, rng)
	require.NoError(t, err)
	require.Len(t, final, 1)
	assert.False(t, isNaNOrInf(final[0]))

	_, err = os.Stat(filepath.Join(dir, "theta_test_1.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "dzA_test_1.txt"))
	assert.NoError(t, err)
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}
