package game

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"liveclient-replay/internal/ddragon"
	"liveclient-replay/internal/domain"
	"liveclient-replay/internal/riot"
)

// goldPerSecond is the passive income every player earns continuously,
// independent of discrete timeline events.
const goldPerSecond = 3.0

const startingGold = 500.0

// Options configure a replay session.
type Options struct {
	// ActiveSummoner selects which roster member is "you". Empty, or a name
	// not on the roster, runs the session in spectator mode.
	ActiveSummoner string

	// Speed is the replay speed multiplier; 0 means real time.
	Speed float64

	// BuildingGold overrides the building payout table; nil uses defaults.
	BuildingGold BuildingGoldTable
}

// Session is the single live aggregate: roster, economy, virtual clock and
// the replay cursor over the ordered event history. It is not safe for
// concurrent use; callers serialize advance+read.
type Session struct {
	clock  *Clock
	mode   string
	game   domain.GameData
	events []riot.TimelineEvent

	// cursor is the index of the last applied event, -1 initially. It only
	// moves forward.
	cursor int
	failed error

	roster   []*Participant
	byID     map[int]*Participant
	active   *activePlayer
	gold     float64
	goldTbl  BuildingGoldTable
	eventLog []domain.Event

	champions *ddragon.ChampionCatalog
	items     *ddragon.ItemCatalog
	logger    zerolog.Logger
}

// NewSession builds the initial state from the match record, its timeline and
// the loaded catalogs. All reference data must already be resolved; the
// session never fetches.
func NewSession(match *riot.Match, timeline *riot.MatchTimeline, champions *ddragon.ChampionCatalog, items *ddragon.ItemCatalog, opts Options, start time.Time, logger zerolog.Logger) (*Session, error) {
	if opts.Speed < 0 {
		return nil, fmt.Errorf("speed multiplier must not be negative, got %v", opts.Speed)
	}
	goldTbl := opts.BuildingGold
	if goldTbl == nil {
		goldTbl = DefaultBuildingGold()
	}
	if err := goldTbl.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		clock:  NewClock(start, opts.Speed),
		mode:   match.GameMode,
		cursor: -1,
		gold:   startingGold,
		byID:   make(map[int]*Participant, len(match.Participants)),
		game: domain.GameData{
			GameMode:   match.GameMode,
			MapName:    fmt.Sprintf("Map%d", match.MapID),
			MapNumber:  match.MapID,
			MapTerrain: "Default",
		},
		goldTbl:   goldTbl,
		champions: champions,
		items:     items,
		logger:    logger,
		eventLog:  []domain.Event{{EventID: 0, EventName: "GameStart", EventTime: 0}},
	}

	names := make(map[int]string, len(match.ParticipantIdentities))
	for _, identity := range match.ParticipantIdentities {
		names[identity.ParticipantID] = identity.Player.SummonerName
	}

	for _, mp := range match.Participants {
		champ, err := champions.ByKey(mp.ChampionID)
		if err != nil {
			return nil, fmt.Errorf("roster participant %d: %w", mp.ParticipantID, err)
		}

		name := names[mp.ParticipantID]
		isBot := name == ""
		if isBot {
			name = champ.Name + " Bot"
		}

		team := domain.TeamOrder
		if mp.TeamID == 200 {
			team = domain.TeamChaos
		}

		p := &Participant{
			ID:     mp.ParticipantID,
			TeamID: mp.TeamID,
			Player: domain.Player{
				ChampionName:    champ.Name,
				IsBot:           isBot,
				Items:           []domain.Item{},
				RawChampionName: "game_character_displayname_" + champ.ID,
				Runes:           defaultRunes(),
				SummonerName:    name,
				SummonerSpells:  defaultSummonerSpells(),
				Team:            team,
			},
		}
		s.roster = append(s.roster, p)
		s.byID[p.ID] = p
	}

	if opts.ActiveSummoner != "" {
		for _, p := range s.roster {
			if p.SummonerName != opts.ActiveSummoner {
				continue
			}
			champ, err := champions.ByKey(s.championKeyFor(match, p.ID))
			if err != nil {
				return nil, fmt.Errorf("active player: %w", err)
			}
			detail, err := newActiveDetail(p.SummonerName, champ)
			if err != nil {
				return nil, err
			}
			s.active = &activePlayer{participantID: p.ID, detail: detail}
			break
		}
		if s.active == nil {
			logger.Warn().Str("summoner", opts.ActiveSummoner).Msg("active summoner not on roster, running as spectator")
		}
	}

	s.events = Flatten(timeline.Frames)

	logger.Info().
		Int("participants", len(s.roster)).
		Int("events", len(s.events)).
		Str("mode", s.mode).
		Bool("spectator", s.active == nil).
		Float64("speed", s.clock.Multiplier()).
		Msg("replay session initialized")

	return s, nil
}

func (s *Session) championKeyFor(match *riot.Match, participantID int) int {
	for _, mp := range match.Participants {
		if mp.ParticipantID == participantID {
			return mp.ChampionID
		}
	}
	return 0
}

func newActiveDetail(summonerName string, champ ddragon.Champion) (domain.ActivePlayer, error) {
	if len(champ.Spells) < 4 {
		return domain.ActivePlayer{}, fmt.Errorf("champion %s has %d spells, need 4", champ.ID, len(champ.Spells))
	}

	ability := func(index int) domain.Ability {
		spell := champ.Spells[index]
		return domain.Ability{
			DisplayName:    spell.Name,
			ID:             spell.ID,
			RawDescription: fmt.Sprintf("GeneratedTip_Spell_%s_Description", spell.ID),
			RawDisplayName: fmt.Sprintf("GeneratedTip_Spell_%s_DisplayName", spell.ID),
		}
	}

	return domain.ActivePlayer{
		Level:        1,
		SummonerName: summonerName,
		CurrentGold:  startingGold,
		Abilities: domain.AbilitySlots{
			Q: ability(0),
			W: ability(1),
			E: ability(2),
			R: ability(3),
			Passive: domain.Ability{
				DisplayName:    champ.Passive.Name,
				ID:             champ.ID + "Passive",
				RawDescription: fmt.Sprintf("GeneratedTip_Passive_%s_Description", champ.Passive.Name),
				RawDisplayName: fmt.Sprintf("GeneratedTip_Passive_%s_DisplayName", champ.Passive.Name),
			},
		},
		ChampionStats: domain.ChampionStats{
			Armor:             champ.Stats.Armor,
			AttackDamage:      champ.Stats.AttackDmg,
			AttackRange:       champ.Stats.AttackRange,
			AttackSpeed:       champ.Stats.AttackSpeed,
			CurrentHealth:     champ.Stats.HP,
			HealthRegenRate:   champ.Stats.HPRegen,
			MagicResist:       champ.Stats.SpellBlock,
			MaxHealth:         champ.Stats.HP,
			MoveSpeed:         champ.Stats.MoveSpeed,
			ResourceMax:       champ.Stats.MP,
			ResourceRegenRate: champ.Stats.MPRegen,
			ResourceType:      resourceType(champ.Partype),
			ResourceValue:     champ.Stats.MP,
		},
		FullRunes: defaultFullRunes(),
	}, nil
}

func resourceType(partype string) string {
	switch partype {
	case "Mana", "":
		return "MANA"
	case "Energy":
		return "ENERGY"
	default:
		return "NONE"
	}
}

// Advance drives the session to the given wall instant: applies every event
// the virtual clock has passed, then accrues passive gold over the poll
// delta. It is the single mutation entry point; every read calls it first.
func (s *Session) Advance(now time.Time) error {
	if s.failed != nil {
		return s.failed
	}

	virtualMs := s.clock.NowMillis(now)
	for s.cursor+1 < len(s.events) && s.events[s.cursor+1].Timestamp() <= virtualMs {
		next := s.cursor + 1
		if err := s.apply(s.events[next]); err != nil {
			s.failed = &ReplayError{EventIndex: next, Err: err}
			s.logger.Error().Err(err).Int("event_index", next).Msg("replay failed, session halted")
			return s.failed
		}
		s.cursor = next
	}

	delta := s.clock.Tick(now)
	if s.active != nil {
		s.gold += goldPerSecond * delta
		s.active.detail.CurrentGold = math.Floor(s.gold)
	}
	s.game.GameTime = float64(virtualMs) / 1000

	return nil
}

// Cursor returns the index of the last applied event, -1 before any.
func (s *Session) Cursor() int { return s.cursor }

// participantFor resolves a required participant reference. A miss is a
// structural replay error, never skipped.
func (s *Session) participantFor(id int) (*Participant, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("event references unknown participant %d", id)
}

func (s *Session) isActive(participantID int) bool {
	return s.active != nil && s.active.participantID == participantID
}

func (s *Session) logEvent(ev domain.Event) {
	ev.EventID = len(s.eventLog)
	s.eventLog = append(s.eventLog, ev)
}
