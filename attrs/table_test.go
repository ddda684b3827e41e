package attrs_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ergm/attrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySlot(t *testing.T) {
	table := attrs.New(3)
	require.NoError(t, table.SetBinary("gender", []int8{0, 1, attrs.BinaryNA}))

	v, err := table.Binary("gender", 1)
	require.NoError(t, err)
	assert.Equal(t, int8(1), v)

	_, err = table.Binary("missing", 0)
	assert.ErrorIs(t, err, attrs.ErrUnknownSlot)
}

func TestRowCountMismatch(t *testing.T) {
	table := attrs.New(3)
	assert.ErrorIs(t, table.SetBinary("x", []int8{0, 1}), attrs.ErrRowCountMismatch)
}

func TestContinuousNAYieldsNaN(t *testing.T) {
	table := attrs.New(2)
	require.NoError(t, table.SetContinuous("age", []float64{25.5, math.NaN()}))

	v, err := table.Continuous("age", 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestSetCategorySlot(t *testing.T) {
	table := attrs.New(2)
	states := [][]attrs.SetState{
		{attrs.Present, attrs.Absent, attrs.SetNA},
		{attrs.Absent, attrs.Present, attrs.Absent},
	}
	require.NoError(t, table.SetSetCategory("interests", states))

	got, err := table.SetCategory("interests", 0)
	require.NoError(t, err)
	assert.Equal(t, states[0], got)
	assert.True(t, table.HasSetCategory("interests"))
	assert.False(t, table.HasSetCategory("other"))
}
