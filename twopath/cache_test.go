package twopath_test

import (
	"testing"

	"github.com/katalvlaran/ergm/twopath"
	"github.com/stretchr/testify/assert"
)

func TestDenseCacheGetInc(t *testing.T) {
	c := twopath.New(twopath.Dense, 5, nil)
	assert.Equal(t, 0, c.Get(1, 2))
	c.Inc(1, 2, 1)
	assert.Equal(t, 1, c.Get(1, 2))
	c.Inc(1, 2, -1)
	assert.Equal(t, 0, c.Get(1, 2))
}

func TestSparseCacheGetInc(t *testing.T) {
	c := twopath.New(twopath.Sparse, 5, nil)
	assert.Equal(t, 0, c.Get(3, 4))
	c.Inc(3, 4, 1)
	c.Inc(3, 4, 1)
	assert.Equal(t, 2, c.Get(3, 4))
	c.Inc(3, 4, -2)
	assert.Equal(t, 0, c.Get(3, 4))
}

func TestNoneCacheRecomputesOnGet(t *testing.T) {
	calls := 0
	recompute := func(i, j int) int {
		calls++
		return i + j
	}
	c := twopath.New(twopath.None, 5, recompute)
	assert.Equal(t, 7, c.Get(3, 4))
	assert.Equal(t, 1, calls)

	// Inc is a no-op for None; Get always recomputes fresh.
	c.Inc(3, 4, 100)
	assert.Equal(t, 7, c.Get(3, 4))
	assert.Equal(t, 2, calls)
}
