// Package riot models the match-history records a replay session is built
// from: the match summary, its timeline, and the typed timeline events.
package riot

type Team struct {
	TeamID         int    `json:"teamId"`
	Win            string `json:"win"`
	TowerKills     int    `json:"towerKills"`
	InhibitorKills int    `json:"inhibitorKills"`
	BaronKills     int    `json:"baronKills"`
	DragonKills    int    `json:"dragonKills"`
}

type ParticipantStats struct {
	ParticipantID    int  `json:"participantId"`
	Win              bool `json:"win"`
	Kills            int  `json:"kills"`
	Deaths           int  `json:"deaths"`
	Assists          int  `json:"assists"`
	ChampLevel       int  `json:"champLevel"`
	GoldEarned       int  `json:"goldEarned"`
	GoldSpent        int  `json:"goldSpent"`
	TotalMinions     int  `json:"totalMinionsKilled"`
	PerkPrimaryStyle int  `json:"perkPrimaryStyle"`
	PerkSubStyle     int  `json:"perkSubStyle"`
}

type Participant struct {
	ParticipantID int              `json:"participantId"`
	TeamID        int              `json:"teamId"`
	ChampionID    int              `json:"championId"`
	Spell1ID      int              `json:"spell1Id"`
	Spell2ID      int              `json:"spell2Id"`
	Stats         ParticipantStats `json:"stats"`
}

type Player struct {
	PlatformID   string `json:"platformId"`
	AccountID    string `json:"accountId"`
	SummonerName string `json:"summonerName"`
	SummonerID   string `json:"summonerId"`
	ProfileIcon  int    `json:"profileIcon"`
}

type ParticipantIdentity struct {
	ParticipantID int    `json:"participantId"`
	Player        Player `json:"player"`
}

type Match struct {
	GameID                int64                 `json:"gameId"`
	PlatformID            string                `json:"platformId"`
	GameCreation          int64                 `json:"gameCreation"`
	GameDuration          int64                 `json:"gameDuration"`
	QueueID               int                   `json:"queueId"`
	MapID                 int                   `json:"mapId"`
	SeasonID              int                   `json:"seasonId"`
	GameVersion           string                `json:"gameVersion"`
	GameMode              string                `json:"gameMode"`
	GameType              string                `json:"gameType"`
	Teams                 []Team                `json:"teams"`
	Participants          []Participant         `json:"participants"`
	ParticipantIdentities []ParticipantIdentity `json:"participantIdentities"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RawEvent is the undiscriminated wire form of a timeline event. Decode turns
// it into a typed TimelineEvent before the engine ever sees it.
type RawEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`

	ParticipantID           int    `json:"participantId,omitempty"`
	SkillSlot               int    `json:"skillSlot,omitempty"`
	LevelUpType             string `json:"levelUpType,omitempty"`
	ItemID                  int    `json:"itemId,omitempty"`
	BeforeID                int    `json:"beforeId,omitempty"`
	AfterID                 int    `json:"afterId,omitempty"`
	CreatorID               int    `json:"creatorId,omitempty"`
	WardType                string `json:"wardType,omitempty"`
	KillerID                int    `json:"killerId,omitempty"`
	VictimID                int    `json:"victimId,omitempty"`
	AssistingParticipantIDs []int  `json:"assistingParticipantIds,omitempty"`
	TeamID                  int    `json:"teamId,omitempty"`
	BuildingType            string `json:"buildingType,omitempty"`
	TowerType               string `json:"towerType,omitempty"`
	LaneType                string `json:"laneType,omitempty"`
	MonsterType             string `json:"monsterType,omitempty"`
}

type ParticipantFrame struct {
	ParticipantID int      `json:"participantId"`
	Position      Position `json:"position"`
	CurrentGold   int      `json:"currentGold"`
	TotalGold     int      `json:"totalGold"`
	Level         int      `json:"level"`
	XP            int      `json:"xp"`
	MinionsKilled int      `json:"minionsKilled"`
}

type Frame struct {
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []RawEvent                  `json:"events"`
	Timestamp         int64                       `json:"timestamp"`
}

type MatchTimeline struct {
	Frames        []Frame `json:"frames"`
	FrameInterval int64   `json:"frameInterval"`
}
