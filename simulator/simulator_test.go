package simulator_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/simulator"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcEntries() []statistic.Entry {
	return []statistic.Entry{{Name: "Arc", Fn: statistic.Arc}}
}

func TestBuildInitialDefaultsToEmptyGraph(t *testing.T) {
	g, err := simulator.BuildInitial(5, 0, graph.Directed, nil, simulator.Config{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.ArcCount())
	assert.Equal(t, 5, g.N())
}

func TestBuildInitialErdosRenyiHitsTargetArcCount(t *testing.T) {
	cfg := simulator.Config{UseIFDSampler: true, NumArcs: 6}
	rng := rand.New(rand.NewSource(11))
	g, err := simulator.BuildInitial(6, 0, graph.Directed, nil, cfg, nil, rng)
	require.NoError(t, err)
	assert.Equal(t, 6, g.ArcCount())
}

func TestBuildInitialRandomSparseRespectsMode(t *testing.T) {
	cfg := simulator.Config{UseRandomSparseStart: true, RandomSparseP: 1.0}
	rng := rand.New(rand.NewSource(2))
	g, err := simulator.BuildInitial(5, 0, graph.Undirected, nil, cfg, nil, rng)
	require.NoError(t, err)
	// p=1.0 includes every admissible dyad: undirected complete graph on 5
	// nodes has 10 edges.
	assert.Equal(t, 10, g.EdgeCount())
}

func TestBuildInitialRandomSparseZeroProbabilityIsEmpty(t *testing.T) {
	cfg := simulator.Config{UseRandomSparseStart: true, RandomSparseP: 0.0}
	rng := rand.New(rand.NewSource(2))
	g, err := simulator.BuildInitial(5, 0, graph.Directed, nil, cfg, nil, rng)
	require.NoError(t, err)
	assert.Equal(t, 0, g.ArcCount())
}

func TestRunWritesStatsFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	g := graph.NewDirected(5)
	cfg := simulator.Config{
		SampleSize: 3,
		Interval:   5,
		Burnin:     5,
		ParamNames: []string{"Arc"},
		StatsFile:  "stats.txt",
	}
	rng := rand.New(rand.NewSource(5))
	err = simulator.Run(g, arcEntries(), []float64{-1.0}, cfg, rng)
	require.NoError(t, err)

	contents, err := os.ReadFile("stats.txt")
	require.NoError(t, err)
	assert.Contains(t, string(contents), "iteration Arc acceptance_rate")
}
