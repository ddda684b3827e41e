package attrfile_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/ergm/attrfile"
	"github.com/katalvlaran/ergm/attrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBinaryWithNA(t *testing.T) {
	names, cols, err := attrfile.LoadBinary(strings.NewReader("smoker married\n1 0\nNA 1\n0 NA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"smoker", "married"}, names)
	assert.Equal(t, []int8{1, attrs.BinaryNA, 0}, cols[0])
	assert.Equal(t, []int8{0, 1, attrs.BinaryNA}, cols[1])
}

func TestLoadCategoricalWithNA(t *testing.T) {
	names, cols, err := attrfile.LoadCategorical(strings.NewReader("group\n0\n1\nNA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"group"}, names)
	assert.Equal(t, []int{0, 1, attrs.CategoricalNA}, cols[0])
}

func TestLoadContinuousNAIsNaN(t *testing.T) {
	names, cols, err := attrfile.LoadContinuous(strings.NewReader("age\n23.5\nNA\n41.0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"age"}, names)
	assert.True(t, math.IsNaN(cols[0][1]))
	assert.Equal(t, 23.5, cols[0][0])
}

func TestLoadSetCategoryBracketedIDs(t *testing.T) {
	names, cols, err := attrfile.LoadSetCategory(strings.NewReader("topics\n[0,2]\n[]\nNA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"topics"}, names)

	col := cols[0]
	require.Len(t, col, 3)
	// Width is max(id)+1 = 3 across the column.
	require.Len(t, col[0], 3)
	assert.Equal(t, attrs.Present, col[0][0])
	assert.Equal(t, attrs.Absent, col[0][1])
	assert.Equal(t, attrs.Present, col[0][2])

	for _, s := range col[1] {
		assert.Equal(t, attrs.Absent, s)
	}
	for _, s := range col[2] {
		assert.Equal(t, attrs.SetNA, s)
	}
}

func TestReadGridMismatchedRowFails(t *testing.T) {
	_, _, err := attrfile.LoadBinary(strings.NewReader("a b\n1 0\n1\n"))
	assert.Error(t, err)
}

func TestPopulateTableWiresAllFourKinds(t *testing.T) {
	table := attrs.New(2)
	bin := strings.NewReader("smoker\n1\n0\n")
	cat := strings.NewReader("group\n0\n1\n")
	cont := strings.NewReader("age\n23.5\n41.0\n")
	set := strings.NewReader("topics\n[0]\n[1]\n")

	err := attrfile.PopulateTable(table, bin, cat, cont, set)
	require.NoError(t, err)

	assert.True(t, table.HasBinary("smoker"))
	assert.True(t, table.HasCategorical("group"))
	assert.True(t, table.HasContinuous("age"))
	assert.True(t, table.HasSetCategory("topics"))

	v, err := table.Continuous("age", 1)
	require.NoError(t, err)
	assert.Equal(t, 41.0, v)
}

func TestPopulateTableSkipsNilReaders(t *testing.T) {
	table := attrs.New(2)
	err := attrfile.PopulateTable(table, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, table.HasBinary("anything"))
}
