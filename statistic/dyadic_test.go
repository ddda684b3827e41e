package statistic_test

import (
	"testing"

	"github.com/katalvlaran/ergm/graph"
	"github.com/katalvlaran/ergm/statistic"
	"github.com/stretchr/testify/assert"
)

func TestGeoDistanceSameNodeIsZero(t *testing.T) {
	g := graph.NewDirected(2)
	lat := func(v int) float64 { return 0 }
	lon := func(v int) float64 { return 0 }
	geo := statistic.NewGeoDistance(lat, lon)
	assert.InDelta(t, 0, geo(g, 0, 1, false), 1e-9)
}

func TestGeoDistanceKnownPair(t *testing.T) {
	// London (51.5074, -0.1278) to Paris (48.8566, 2.3522): ~344 km.
	g := graph.NewDirected(2)
	lat := func(v int) float64 {
		if v == 0 {
			return 51.5074
		}
		return 48.8566
	}
	lon := func(v int) float64 {
		if v == 0 {
			return -0.1278
		}
		return 2.3522
	}
	geo := statistic.NewGeoDistance(lat, lon)
	assert.InDelta(t, 344, geo(g, 0, 1, false), 10)
}

func TestEuclideanDistance(t *testing.T) {
	g := graph.NewDirected(2)
	x := func(v int) float64 {
		if v == 0 {
			return 0
		}
		return 3
	}
	y := func(v int) float64 {
		if v == 0 {
			return 0
		}
		return 4
	}
	dist := statistic.NewEuclideanDistance(x, y)
	assert.Equal(t, 5.0, dist(g, 0, 1, false))
}
