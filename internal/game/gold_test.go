package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingGoldTableValidate(t *testing.T) {
	require.NoError(t, DefaultBuildingGold().Validate())

	bad := BuildingGoldTable{"CLASSIC": {"NEXUS_BUILDING": {Global: 10}}}
	assert.Error(t, bad.Validate())

	negative := BuildingGoldTable{"CLASSIC": {BuildingTower: {Global: -1}}}
	assert.Error(t, negative.Validate())
}

func TestBuildingGoldTableReward(t *testing.T) {
	table := DefaultBuildingGold()

	classic, ok := table.Reward("CLASSIC", BuildingTower)
	require.True(t, ok)
	assert.Equal(t, 250, classic.Global)
	assert.Equal(t, 150, classic.Local)

	aram, ok := table.Reward("ARAM", BuildingTower)
	require.True(t, ok)
	assert.Equal(t, 150, aram.Global)
	assert.Equal(t, 0, aram.Local)

	// Unlisted modes fall back to CLASSIC values.
	urf, ok := table.Reward("URF", BuildingInhibitor)
	require.True(t, ok)
	assert.Equal(t, 50, urf.Global)

	_, ok = table.Reward("CLASSIC", "NEXUS_BUILDING")
	assert.False(t, ok)
}
