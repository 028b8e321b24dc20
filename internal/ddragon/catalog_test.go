package ddragon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionCatalogLookup(t *testing.T) {
	catalog := NewChampionCatalog(&ChampionJSON{
		Version: "15.1.1",
		Data: map[string]Champion{
			"Aatrox": {ID: "Aatrox", Key: "266", Name: "Aatrox"},
			"Ahri":   {ID: "Ahri", Key: "103", Name: "Ahri"},
		},
	})

	byID, err := catalog.ByID("Aatrox")
	require.NoError(t, err)
	assert.Equal(t, "266", byID.Key)

	byKey, err := catalog.ByKey(103)
	require.NoError(t, err)
	assert.Equal(t, "Ahri", byKey.ID)

	// String lookups fall through to the numeric key space.
	byKeyString, err := catalog.ByID("266")
	require.NoError(t, err)
	assert.Equal(t, "Aatrox", byKeyString.ID)

	_, err = catalog.ByID("Nunu")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "champion", notFound.Kind)
}

func TestItemCatalogLookup(t *testing.T) {
	catalog, err := NewItemCatalog(&ItemJSON{
		Version: "15.1.1",
		Data: map[string]Item{
			"1001": {Name: "Boots", Gold: &ItemGold{Total: 300, Sell: 210}},
			"2055": {Name: "Control Ward", Stacks: 2},
		},
	})
	require.NoError(t, err)

	boots, err := catalog.ByID(1001)
	require.NoError(t, err)
	assert.Equal(t, 300, boots.TotalCost())
	assert.Equal(t, 210, boots.SellValue())
	assert.Equal(t, 1, boots.StackLimit())

	ward, err := catalog.ByID(2055)
	require.NoError(t, err)
	assert.Equal(t, 2, ward.StackLimit())
	assert.Equal(t, 0, ward.TotalCost())

	_, err = catalog.ByID(9999)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestItemCatalogRejectsNonNumericKeys(t *testing.T) {
	_, err := NewItemCatalog(&ItemJSON{Data: map[string]Item{"boots": {Name: "Boots"}}})
	assert.Error(t, err)
}

func TestItemHasComponent(t *testing.T) {
	catalyst := Item{Name: "Catalyst", From: []string{"2001", "2002"}}
	assert.True(t, catalyst.HasComponent(2001))
	assert.True(t, catalyst.HasComponent(2002))
	assert.False(t, catalyst.HasComponent(1001))
}
