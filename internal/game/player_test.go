package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveclient-replay/internal/ddragon"
	"liveclient-replay/internal/domain"
)

func testParticipant() *Participant {
	return &Participant{
		ID:     1,
		TeamID: 100,
		Player: domain.Player{SummonerName: "Holland", Items: []domain.Item{}},
	}
}

func TestAddItemAppendsAndStacks(t *testing.T) {
	p := testParticipant()
	ward := ddragon.Item{Name: "Control Ward", Stacks: 2, Gold: &ddragon.ItemGold{Total: 75, Sell: 30}}

	p.addItem(2055, ward, zerolog.Nop())
	require.Len(t, p.Items, 1)
	assert.Equal(t, 1, p.Items[0].Count)
	assert.Equal(t, 0, p.Items[0].Slot)
	assert.Equal(t, "Control Ward", p.Items[0].DisplayName)
	assert.Equal(t, 75, p.Items[0].Price)

	p.addItem(2055, ward, zerolog.Nop())
	require.Len(t, p.Items, 1)
	assert.Equal(t, 2, p.Items[0].Count)
}

func TestAddItemRespectsStackCap(t *testing.T) {
	p := testParticipant()
	boots := ddragon.Item{Name: "Boots", Gold: &ddragon.ItemGold{Total: 300, Sell: 210}}

	p.addItem(1001, boots, zerolog.Nop())
	p.addItem(1001, boots, zerolog.Nop())

	// Default stack limit is 1: the second purchase is a no-op.
	require.Len(t, p.Items, 1)
	assert.Equal(t, 1, p.Items[0].Count)
}

func TestRemoveItemDecrementsAndDrops(t *testing.T) {
	p := testParticipant()
	ward := ddragon.Item{Name: "Control Ward", Stacks: 2}

	p.addItem(2055, ward, zerolog.Nop())
	p.addItem(2055, ward, zerolog.Nop())

	p.removeItem(2055, zerolog.Nop())
	require.Len(t, p.Items, 1)
	assert.Equal(t, 1, p.Items[0].Count)
	assert.True(t, p.holdsItem(2055))

	p.removeItem(2055, zerolog.Nop())
	assert.Empty(t, p.Items)
	assert.False(t, p.holdsItem(2055))
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	p := testParticipant()
	p.removeItem(9999, zerolog.Nop())
	assert.Empty(t, p.Items)
}
