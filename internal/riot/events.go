package riot

// TimelineEvent is the typed form of a timeline entry. Each kind carries only
// the fields that matter to it, so event handling can switch exhaustively
// instead of probing optional fields.
type TimelineEvent interface {
	// Timestamp is the event's game time in milliseconds.
	Timestamp() int64
}

type baseEvent struct {
	At int64
}

func (e baseEvent) Timestamp() int64 { return e.At }

type SkillLevelUp struct {
	baseEvent
	ParticipantID int
	SkillSlot     int
	LevelUpType   string
}

type ItemPurchased struct {
	baseEvent
	ParticipantID int
	ItemID        int
}

type ItemSold struct {
	baseEvent
	ParticipantID int
	ItemID        int
}

type ItemDestroyed struct {
	baseEvent
	ParticipantID int
	ItemID        int
}

type ItemUndo struct {
	baseEvent
	ParticipantID int
	// BeforeID is the item removed by the undo; AfterID, when non-zero, is
	// the item restored in its place (undoing an upgrade).
	BeforeID int
	AfterID  int
}

type ChampionKill struct {
	baseEvent
	KillerID  int
	VictimID  int
	AssistIDs []int
}

type WardPlaced struct {
	baseEvent
	CreatorID int
	WardType  string
}

type WardKilled struct {
	baseEvent
	KillerID int
	WardType string
}

type BuildingKill struct {
	baseEvent
	KillerID     int
	TeamID       int // team that lost the building
	AssistIDs    []int
	BuildingType string
	TowerType    string
	LaneType     string
}

// UnknownEvent covers kinds the replay does not model (elite monsters,
// capture points, ...). It is logged and skipped.
type UnknownEvent struct {
	baseEvent
	Type string
}

// Decode maps a raw wire event onto its typed variant.
func Decode(raw RawEvent) TimelineEvent {
	base := baseEvent{At: raw.Timestamp}
	switch raw.Type {
	case "SKILL_LEVEL_UP":
		return SkillLevelUp{baseEvent: base, ParticipantID: raw.ParticipantID, SkillSlot: raw.SkillSlot, LevelUpType: raw.LevelUpType}
	case "ITEM_PURCHASED":
		return ItemPurchased{baseEvent: base, ParticipantID: raw.ParticipantID, ItemID: raw.ItemID}
	case "ITEM_SOLD":
		return ItemSold{baseEvent: base, ParticipantID: raw.ParticipantID, ItemID: raw.ItemID}
	case "ITEM_DESTROYED":
		return ItemDestroyed{baseEvent: base, ParticipantID: raw.ParticipantID, ItemID: raw.ItemID}
	case "ITEM_UNDO":
		return ItemUndo{baseEvent: base, ParticipantID: raw.ParticipantID, BeforeID: raw.BeforeID, AfterID: raw.AfterID}
	case "CHAMPION_KILL":
		return ChampionKill{baseEvent: base, KillerID: raw.KillerID, VictimID: raw.VictimID, AssistIDs: raw.AssistingParticipantIDs}
	case "WARD_PLACED":
		return WardPlaced{baseEvent: base, CreatorID: raw.CreatorID, WardType: raw.WardType}
	case "WARD_KILL":
		return WardKilled{baseEvent: base, KillerID: raw.KillerID, WardType: raw.WardType}
	case "BUILDING_KILL":
		return BuildingKill{
			baseEvent:    base,
			KillerID:     raw.KillerID,
			TeamID:       raw.TeamID,
			AssistIDs:    raw.AssistingParticipantIDs,
			BuildingType: raw.BuildingType,
			TowerType:    raw.TowerType,
			LaneType:     raw.LaneType,
		}
	default:
		return UnknownEvent{baseEvent: base, Type: raw.Type}
	}
}
