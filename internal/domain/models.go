// Package domain holds the Live Client Data wire model. Field names and JSON
// tags mirror the real client API on https://127.0.0.1:2999 so that existing
// tooling can consume our responses unchanged.
package domain

type Ability struct {
	AbilityLevel   int    `json:"abilityLevel,omitempty"`
	DisplayName    string `json:"displayName"`
	ID             string `json:"id"`
	RawDescription string `json:"rawDescription"`
	RawDisplayName string `json:"rawDisplayName"`
}

// AbilitySlots is the fixed five-slot ability page of the active player.
// The client API keys these by slot name, never by free-form strings.
type AbilitySlots struct {
	Q       Ability `json:"Q"`
	W       Ability `json:"W"`
	E       Ability `json:"E"`
	R       Ability `json:"R"`
	Passive Ability `json:"Passive"`
}

type ChampionStats struct {
	AbilityPower                 float64 `json:"abilityPower"`
	Armor                        float64 `json:"armor"`
	ArmorPenetrationFlat         float64 `json:"armorPenetrationFlat"`
	ArmorPenetrationPercent      float64 `json:"armorPenetrationPercent"`
	AttackDamage                 float64 `json:"attackDamage"`
	AttackRange                  float64 `json:"attackRange"`
	AttackSpeed                  float64 `json:"attackSpeed"`
	BonusArmorPenetrationPercent float64 `json:"bonusArmorPenetrationPercent"`
	BonusMagicPenetrationPercent float64 `json:"bonusMagicPenetrationPercent"`
	CooldownReduction            float64 `json:"cooldownReduction"`
	CritChance                   float64 `json:"critChance"`
	CritDamage                   float64 `json:"critDamage"`
	CurrentHealth                float64 `json:"currentHealth"`
	HealthRegenRate              float64 `json:"healthRegenRate"`
	LifeSteal                    float64 `json:"lifeSteal"`
	MagicLethality               float64 `json:"magicLethality"`
	MagicPenetrationFlat         float64 `json:"magicPenetrationFlat"`
	MagicPenetrationPercent      float64 `json:"magicPenetrationPercent"`
	MagicResist                  float64 `json:"magicResist"`
	MaxHealth                    float64 `json:"maxHealth"`
	MoveSpeed                    float64 `json:"moveSpeed"`
	PhysicalLethality            float64 `json:"physicalLethality"`
	ResourceMax                  float64 `json:"resourceMax"`
	ResourceRegenRate            float64 `json:"resourceRegenRate"`
	ResourceType                 string  `json:"resourceType"`
	ResourceValue                float64 `json:"resourceValue"`
	SpellVamp                    float64 `json:"spellVamp"`
	Tenacity                     float64 `json:"tenacity"`
}

type Rune struct {
	DisplayName    string `json:"displayName"`
	ID             int    `json:"id"`
	RawDescription string `json:"rawDescription"`
	RawDisplayName string `json:"rawDisplayName"`
}

type StatRune struct {
	ID             int    `json:"id"`
	RawDescription string `json:"rawDescription"`
}

type FullRunes struct {
	GeneralRunes      []Rune     `json:"generalRunes"`
	Keystone          Rune       `json:"keystone"`
	PrimaryRuneTree   Rune       `json:"primaryRuneTree"`
	SecondaryRuneTree Rune       `json:"secondaryRuneTree"`
	StatRunes         []StatRune `json:"statRunes"`
}

type Runes struct {
	Keystone          Rune `json:"keystone"`
	PrimaryRuneTree   Rune `json:"primaryRuneTree"`
	SecondaryRuneTree Rune `json:"secondaryRuneTree"`
}

type ActivePlayer struct {
	Abilities     AbilitySlots  `json:"abilities"`
	ChampionStats ChampionStats `json:"championStats"`
	CurrentGold   float64       `json:"currentGold"`
	FullRunes     FullRunes     `json:"fullRunes"`
	Level         int           `json:"level"`
	SummonerName  string        `json:"summonerName"`
}

type Item struct {
	CanUse         bool   `json:"canUse"`
	Consumable     bool   `json:"consumable"`
	Count          int    `json:"count"`
	DisplayName    string `json:"displayName"`
	ItemID         int    `json:"itemID"`
	Price          int    `json:"price"`
	RawDescription string `json:"rawDescription"`
	RawDisplayName string `json:"rawDisplayName"`
	Slot           int    `json:"slot"`
}

type Scores struct {
	Assists    int     `json:"assists"`
	CreepScore int     `json:"creepScore"`
	Deaths     int     `json:"deaths"`
	Kills      int     `json:"kills"`
	WardScore  float64 `json:"wardScore"`
}

type SummonerSpell struct {
	DisplayName    string `json:"displayName"`
	RawDescription string `json:"rawDescription"`
	RawDisplayName string `json:"rawDisplayName"`
}

type SummonerSpells struct {
	SummonerSpellOne SummonerSpell `json:"summonerSpellOne"`
	SummonerSpellTwo SummonerSpell `json:"summonerSpellTwo"`
}

const (
	TeamOrder = "ORDER"
	TeamChaos = "CHAOS"
)

type Player struct {
	ChampionName    string         `json:"championName"`
	IsBot           bool           `json:"isBot"`
	IsDead          bool           `json:"isDead"`
	Items           []Item         `json:"items"`
	Level           int            `json:"level"`
	Position        string         `json:"position"`
	RawChampionName string         `json:"rawChampionName"`
	RawSkinName     string         `json:"rawSkinName,omitempty"`
	RespawnTimer    float64        `json:"respawnTimer"`
	Runes           Runes          `json:"runes"`
	Scores          Scores         `json:"scores"`
	SkinID          int            `json:"skinID"`
	SkinName        string         `json:"skinName,omitempty"`
	SummonerName    string         `json:"summonerName"`
	SummonerSpells  SummonerSpells `json:"summonerSpells"`
	Team            string         `json:"team"`
}

// Event is one entry of the client-visible event log. The capitalized keys
// are a quirk of the real API.
type Event struct {
	EventID   int     `json:"EventID"`
	EventName string  `json:"EventName"`
	EventTime float64 `json:"EventTime"`

	KillerName string   `json:"KillerName,omitempty"`
	VictimName string   `json:"VictimName,omitempty"`
	Assisters  []string `json:"Assisters,omitempty"`
}

type EventList struct {
	Events []Event `json:"Events"`
}

type GameData struct {
	GameMode   string  `json:"gameMode"`
	GameTime   float64 `json:"gameTime"`
	MapName    string  `json:"mapName"`
	MapNumber  int     `json:"mapNumber"`
	MapTerrain string  `json:"mapTerrain"`
}

type Response struct {
	ActivePlayer *ActivePlayer `json:"activePlayer,omitempty"`
	AllPlayers   []Player      `json:"allPlayers"`
	Events       EventList     `json:"events"`
	GameData     GameData      `json:"gameData"`
}

// ErrorPayload is the structured error body the client API returns for soft
// query failures (spectator mode, unknown summoner). It is returned as data,
// never raised.
type ErrorPayload struct {
	ErrorCode  string `json:"errorCode"`
	HTTPStatus int    `json:"httpStatus"`
	Message    string `json:"message"`
}
