package riot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  RawEvent
		want TimelineEvent
	}{
		{
			name: "skill level up",
			raw:  RawEvent{Type: "SKILL_LEVEL_UP", Timestamp: 8000, ParticipantID: 1, SkillSlot: 2, LevelUpType: "NORMAL"},
			want: SkillLevelUp{baseEvent: baseEvent{At: 8000}, ParticipantID: 1, SkillSlot: 2, LevelUpType: "NORMAL"},
		},
		{
			name: "item purchased",
			raw:  RawEvent{Type: "ITEM_PURCHASED", Timestamp: 45000, ParticipantID: 3, ItemID: 1001},
			want: ItemPurchased{baseEvent: baseEvent{At: 45000}, ParticipantID: 3, ItemID: 1001},
		},
		{
			name: "item undo carries before and after",
			raw:  RawEvent{Type: "ITEM_UNDO", Timestamp: 50000, ParticipantID: 3, BeforeID: 2003, AfterID: 2001},
			want: ItemUndo{baseEvent: baseEvent{At: 50000}, ParticipantID: 3, BeforeID: 2003, AfterID: 2001},
		},
		{
			name: "champion kill",
			raw:  RawEvent{Type: "CHAMPION_KILL", Timestamp: 61000, KillerID: 1, VictimID: 6, AssistingParticipantIDs: []int{2, 3}},
			want: ChampionKill{baseEvent: baseEvent{At: 61000}, KillerID: 1, VictimID: 6, AssistIDs: []int{2, 3}},
		},
		{
			name: "building kill",
			raw:  RawEvent{Type: "BUILDING_KILL", Timestamp: 900000, KillerID: 5, TeamID: 200, BuildingType: "TOWER_BUILDING", TowerType: "OUTER_TURRET", LaneType: "MID_LANE"},
			want: BuildingKill{baseEvent: baseEvent{At: 900000}, KillerID: 5, TeamID: 200, BuildingType: "TOWER_BUILDING", TowerType: "OUTER_TURRET", LaneType: "MID_LANE"},
		},
		{
			name: "ward placed",
			raw:  RawEvent{Type: "WARD_PLACED", Timestamp: 30000, CreatorID: 4, WardType: "YELLOW_TRINKET"},
			want: WardPlaced{baseEvent: baseEvent{At: 30000}, CreatorID: 4, WardType: "YELLOW_TRINKET"},
		},
		{
			name: "unknown kind",
			raw:  RawEvent{Type: "PORO_KING_SUMMON", Timestamp: 70000},
			want: UnknownEvent{baseEvent: baseEvent{At: 70000}, Type: "PORO_KING_SUMMON"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw)
			require.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw.Timestamp, got.Timestamp())
		})
	}
}
