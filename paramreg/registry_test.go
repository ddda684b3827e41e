package paramreg_test

import (
	"testing"

	"github.com/katalvlaran/ergm/attrs"
	"github.com/katalvlaran/ergm/paramreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindResolvesPlainStructuralTerm(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	entries, err := r.Bind([]paramreg.TermSpec{{Name: "Arc"}}, table)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Arc", entries[0].Name)
}

func TestBindUnknownTermFails(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	_, err := r.Bind([]paramreg.TermSpec{{Name: "NotARealStatistic"}}, table)
	assert.ErrorIs(t, err, paramreg.ErrUnknownTerm)
}

func TestBindMissingAttributeFails(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	_, err := r.Bind([]paramreg.TermSpec{{Name: "Sender", Attr1: "gender"}}, table)
	assert.ErrorIs(t, err, paramreg.ErrMissingAttr)
}

func TestBindSortsByKindStably(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	require.NoError(t, table.SetCategorical("grp", []int{0, 1, 0}))

	// Declared out of Kind order: Dyadic (ContinuousDiff needs continuous,
	// skip), Nodal (Matching), Structural (Arc), Structural (Reciprocity).
	require.NoError(t, table.SetContinuous("age", []float64{1, 2, 3}))
	specs := []paramreg.TermSpec{
		{Name: "ContinuousDiff", Attr1: "age"}, // Dyadic
		{Name: "Matching", Attr1: "grp"},       // Nodal
		{Name: "Arc"},                          // Structural
		{Name: "Reciprocity"},                  // Structural
	}
	entries, err := r.Bind(specs, table)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	// Structural terms come first, in their original relative order.
	assert.Equal(t, "Arc", entries[0].Name)
	assert.Equal(t, "Reciprocity", entries[1].Name)
	assert.Equal(t, "Matching", entries[2].Name)
	assert.Equal(t, "ContinuousDiff", entries[3].Name)
}

func TestBindWithThetaKeepsThetaAlignedAfterSort(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	require.NoError(t, table.SetCategorical("grp", []int{0, 1, 0}))

	specs := []paramreg.TermSpec{
		{Name: "Matching", Attr1: "grp"}, // Nodal
		{Name: "Arc"},                    // Structural
	}
	theta0 := []float64{0.5, -1.5}

	entries, theta, err := r.BindWithTheta(specs, theta0, table)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Len(t, theta, 2)

	// Arc (Structural) sorts before Matching (Nodal); its theta must follow.
	assert.Equal(t, "Arc", entries[0].Name)
	assert.Equal(t, -1.5, theta[0])
	assert.Equal(t, "Matching", entries[1].Name)
	assert.Equal(t, 0.5, theta[1])
}

func TestBindWithThetaLengthMismatch(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	_, _, err := r.BindWithTheta([]paramreg.TermSpec{{Name: "Arc"}}, []float64{1, 2}, table)
	assert.Error(t, err)
}

func TestIsolatesTermTaggedForEmptyGraphStats(t *testing.T) {
	r := paramreg.NewRegistry()
	table := attrs.New(3)
	entries, err := r.Bind([]paramreg.TermSpec{{Name: "Isolates"}}, table)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsIsolates)
}
