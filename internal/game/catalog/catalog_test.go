package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/ttkcalc/internal/game/catalog"
	"github.com/cory-johannsen/ttkcalc/internal/game/stats"
)

func TestTable_Lookup(t *testing.T) {
	v, err := catalog.TypeEffect.Lookup("Quarter")
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = catalog.Amplifier.Lookup(" mega ")
	require.NoError(t, err)
	assert.Equal(t, 1.3, v)

	_, err = catalog.Wall.Lookup("double")
	assert.ErrorContains(t, err, "none, wall")
}

func TestTables_DefaultsResolve(t *testing.T) {
	for _, tbl := range catalog.Tables() {
		assert.NotPanics(t, func() { tbl.DefaultValue() }, tbl.Name)
	}
	assert.Equal(t, 1.0, catalog.STAB.DefaultValue())
	assert.Equal(t, 1.0, catalog.Item.DefaultValue())
}

func TestGrowthValues(t *testing.T) {
	assert.Equal(t, []string{"neutral", "up", "down"}, catalog.Growth.Labels())
}

func TestLookupVariation(t *testing.T) {
	cases := map[string]stats.Range{
		"best":        stats.Point(31),
		"fantastic":   stats.Point(30),
		"very-good":   {Lo: 26, Hi: 29},
		"pretty-good": {Lo: 16, Hi: 25},
		"decent":      {Lo: 1, Hi: 15},
		"no-good":     stats.Point(0),
		"10-20":       {Lo: 10, Hi: 20},
		"7":           stats.Point(7),
	}
	for in, want := range cases {
		got, err := catalog.LookupVariation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLookupVariation_Rejects(t *testing.T) {
	for _, in := range []string{"great", "20-10", "0-32", "-1", "x-3"} {
		_, err := catalog.LookupVariation(in)
		assert.Error(t, err, in)
	}
}

func TestVariationBucketsStayInBounds(t *testing.T) {
	require.Len(t, catalog.Variation, 6)
	for _, v := range catalog.Variation {
		assert.NoError(t, v.Range.Validate(), v.Label)
	}
}

func TestItemConstants(t *testing.T) {
	consts := catalog.ItemConstants()
	assert.Equal(t, 1.3, consts["life_orb"])
	assert.Equal(t, 1.2, consts["expert_belt"])
	assert.NotContains(t, consts, catalog.CustomItem)
	assert.NotContains(t, consts, "life-orb")
}
