package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveclient-replay/internal/riot"
)

func TestFlattenOrdersByTimestamp(t *testing.T) {
	frames := []riot.Frame{
		{
			Timestamp: 60000,
			Events: []riot.RawEvent{
				{Type: "ITEM_PURCHASED", Timestamp: 45000, ParticipantID: 1, ItemID: 1001},
				{Type: "SKILL_LEVEL_UP", Timestamp: 8000, ParticipantID: 1, SkillSlot: 1},
			},
		},
		{
			Timestamp: 120000,
			Events: []riot.RawEvent{
				{Type: "SKILL_LEVEL_UP", Timestamp: 70000, ParticipantID: 2, SkillSlot: 2},
			},
		},
	}

	events := Flatten(frames)
	require.Len(t, events, 3)

	assert.Equal(t, int64(8000), events[0].Timestamp())
	assert.Equal(t, int64(45000), events[1].Timestamp())
	assert.Equal(t, int64(70000), events[2].Timestamp())
}

func TestFlattenStableOnTies(t *testing.T) {
	frames := []riot.Frame{
		{
			Timestamp: 60000,
			Events: []riot.RawEvent{
				{Type: "ITEM_PURCHASED", Timestamp: 30000, ParticipantID: 1, ItemID: 1001},
				{Type: "ITEM_SOLD", Timestamp: 30000, ParticipantID: 1, ItemID: 1001},
				{Type: "ITEM_PURCHASED", Timestamp: 30000, ParticipantID: 1, ItemID: 2001},
			},
		},
	}

	events := Flatten(frames)
	require.Len(t, events, 3)

	first, ok := events[0].(riot.ItemPurchased)
	require.True(t, ok)
	assert.Equal(t, 1001, first.ItemID)

	_, ok = events[1].(riot.ItemSold)
	require.True(t, ok)

	third, ok := events[2].(riot.ItemPurchased)
	require.True(t, ok)
	assert.Equal(t, 2001, third.ItemID)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]riot.Frame{{Timestamp: 0}}))
}
