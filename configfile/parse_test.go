package configfile_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ergm/configfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
# a comment line, and a blank line below

numNodes = 50
directed = True
structParams = {
  Arc = -4.0,
  Reciprocity = 2.1,
  AltKTrianglesT(2.5) = 0.8
}
attrParams = {Sender(gender), GeoDistance(lat, long) = 0.3}
dyadicParams = {}
arclistFile = "network.paj"
`

func TestParseScalarsAndSets(t *testing.T) {
	cfg, err := configfile.Parse(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	n, err := cfg.Int("numNodes", 0)
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	directed, err := cfg.Bool("directed", false)
	require.NoError(t, err)
	assert.True(t, directed)

	assert.Equal(t, "network.paj", cfg.String("arclistFile", ""))

	require.Len(t, cfg.StructParams, 3)
	assert.Equal(t, "Arc", cfg.StructParams[0].Spec.Name)
	assert.Equal(t, -4.0, cfg.StructParams[0].InitialTheta)
	assert.True(t, cfg.StructParams[0].HasInitial)

	assert.Equal(t, "AltKTrianglesT", cfg.StructParams[2].Spec.Name)
	assert.Equal(t, 2.5, cfg.StructParams[2].Spec.Lambda)
	assert.Equal(t, 0.8, cfg.StructParams[2].InitialTheta)

	require.Len(t, cfg.AttrParams, 2)
	assert.Equal(t, "Sender", cfg.AttrParams[0].Spec.Name)
	assert.Equal(t, "gender", cfg.AttrParams[0].Spec.Attr1)
	assert.False(t, cfg.AttrParams[0].HasInitial)

	assert.Equal(t, "GeoDistance", cfg.AttrParams[1].Spec.Name)
	assert.Equal(t, "lat", cfg.AttrParams[1].Spec.Attr1)
	assert.Equal(t, "long", cfg.AttrParams[1].Spec.Attr2)
	assert.Equal(t, 0.3, cfg.AttrParams[1].InitialTheta)

	assert.Empty(t, cfg.DyadicParams)
}

func TestAllParamsOrderAndInitialTheta(t *testing.T) {
	cfg, err := configfile.Parse(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	all := cfg.AllParams()
	// StructParams (3) then AttrParams (2) then DyadicParams (0).
	require.Len(t, all, 5)
	assert.Equal(t, "Arc", all[0].Spec.Name)
	assert.Equal(t, "GeoDistance", all[4].Spec.Name)

	theta := cfg.InitialTheta()
	require.Len(t, theta, 5)
	assert.Equal(t, -4.0, theta[0])
	assert.Equal(t, 0.0, theta[3]) // Sender has no "= value"
}

func TestUnbalancedBraceFails(t *testing.T) {
	_, err := configfile.Parse(strings.NewReader("structParams = {Arc = -1.0"))
	assert.Error(t, err)
}

func TestMissingEqualsFails(t *testing.T) {
	_, err := configfile.Parse(strings.NewReader("not a valid statement"))
	assert.Error(t, err)
}

func TestScalarDefaults(t *testing.T) {
	cfg, err := configfile.Parse(strings.NewReader("numNodes = 10"))
	require.NoError(t, err)
	assert.False(t, cfg.Has("directed"))
	v, err := cfg.Bool("directed", true)
	require.NoError(t, err)
	assert.True(t, v)
}
