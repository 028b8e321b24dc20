package game

import (
	"fmt"

	"liveclient-replay/internal/domain"
	"liveclient-replay/internal/riot"
)

// apply mutates session state for one timeline event. Structural faults
// (unresolvable required participants) return an error and halt the replay;
// cosmetic gaps are logged and absorbed.
func (s *Session) apply(ev riot.TimelineEvent) error {
	switch e := ev.(type) {
	case riot.SkillLevelUp:
		return s.applySkillLevelUp(e)
	case riot.ItemPurchased:
		return s.applyItemPurchased(e)
	case riot.ItemSold:
		return s.applyItemSold(e)
	case riot.ItemDestroyed:
		return s.applyItemDestroyed(e)
	case riot.ItemUndo:
		return s.applyItemUndo(e)
	case riot.ChampionKill:
		s.applyChampionKill(e)
		return nil
	case riot.WardPlaced:
		s.acknowledgeWard(e.WardType)
		return nil
	case riot.WardKilled:
		s.acknowledgeWard(e.WardType)
		return nil
	case riot.BuildingKill:
		return s.applyBuildingKill(e)
	case riot.UnknownEvent:
		s.logger.Debug().Str("type", e.Type).Int64("timestamp", e.Timestamp()).Msg("unhandled event kind")
		return nil
	default:
		s.logger.Debug().Int64("timestamp", ev.Timestamp()).Msg("unhandled event kind")
		return nil
	}
}

func (s *Session) applySkillLevelUp(e riot.SkillLevelUp) error {
	p, err := s.participantFor(e.ParticipantID)
	if err != nil {
		return err
	}
	p.Level++

	if !s.isActive(e.ParticipantID) {
		return nil
	}
	s.active.detail.Level = p.Level
	ability, ok := slotForSkill(e.SkillSlot, &s.active.detail.Abilities)
	if !ok {
		s.logger.Warn().Int("skill_slot", e.SkillSlot).Msg("skill up with unmapped slot ignored")
		return nil
	}
	ability.AbilityLevel++
	return nil
}

func (s *Session) applyItemPurchased(e riot.ItemPurchased) error {
	p, err := s.participantFor(e.ParticipantID)
	if err != nil {
		return err
	}
	item, err := s.items.ByID(e.ItemID)
	if err != nil {
		return fmt.Errorf("purchase: %w", err)
	}

	// Cost and inventory change are two effects of one event; the charge is
	// computed first because it consumes component stacks.
	if s.isActive(e.ParticipantID) && item.TotalCost() > 0 {
		s.spend(p, e.ItemID, item)
	}
	p.addItem(e.ItemID, item, s.logger)
	return nil
}

func (s *Session) applyItemSold(e riot.ItemSold) error {
	p, err := s.participantFor(e.ParticipantID)
	if err != nil {
		return err
	}
	item, err := s.items.ByID(e.ItemID)
	if err != nil {
		return fmt.Errorf("sale: %w", err)
	}

	p.removeItem(e.ItemID, s.logger)
	if s.isActive(e.ParticipantID) && item.TotalCost() > 0 {
		s.refund(e.ItemID, item)
	}
	return nil
}

func (s *Session) applyItemDestroyed(e riot.ItemDestroyed) error {
	p, err := s.participantFor(e.ParticipantID)
	if err != nil {
		return err
	}
	// Consumed in use: the item leaves the inventory with no compensation.
	p.removeItem(e.ItemID, s.logger)
	return nil
}

func (s *Session) applyItemUndo(e riot.ItemUndo) error {
	p, err := s.participantFor(e.ParticipantID)
	if err != nil {
		return err
	}

	if e.BeforeID != 0 {
		item, err := s.items.ByID(e.BeforeID)
		if err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		p.removeItem(e.BeforeID, s.logger)
		if s.isActive(e.ParticipantID) && item.TotalCost() > 0 {
			s.refund(e.BeforeID, item)
		}
	}
	if e.AfterID != 0 {
		// Undoing an upgrade restores the component it consumed.
		item, err := s.items.ByID(e.AfterID)
		if err != nil {
			return fmt.Errorf("undo restore: %w", err)
		}
		p.addItem(e.AfterID, item, s.logger)
	}
	return nil
}

func (s *Session) applyChampionKill(e riot.ChampionKill) {
	assists := make(map[int]bool, len(e.AssistIDs))
	for _, id := range e.AssistIDs {
		assists[id] = true
	}

	// Independent scans: a participant can match more than one role across
	// different events, never within one.
	for _, p := range s.roster {
		if p.ID == e.KillerID {
			p.Scores.Kills++
		}
		if p.ID == e.VictimID {
			p.Scores.Deaths++
		}
		if assists[p.ID] {
			p.Scores.Assists++
		}
	}

	s.logEvent(domain.Event{
		EventName:  "ChampionKill",
		EventTime:  float64(e.Timestamp()) / 1000,
		KillerName: s.summonerNameFor(e.KillerID),
		VictimName: s.summonerNameFor(e.VictimID),
		Assisters:  s.summonerNamesFor(e.AssistIDs),
	})
}

func (s *Session) acknowledgeWard(wardType string) {
	// Ward score accrual is intentionally unmodeled; placements and kills
	// are acknowledged so unexpected sub-types surface in the logs.
	switch wardType {
	case "YELLOW_TRINKET", "YELLOW_TRINKET_UPGRADE", "SIGHT_WARD", "VISION_WARD", "CONTROL_WARD", "BLUE_TRINKET", "TEEMO_MUSHROOM", "UNDEFINED":
	default:
		s.logger.Warn().Str("ward_type", wardType).Msg("unrecognized ward type")
	}
}

func (s *Session) applyBuildingKill(e riot.BuildingKill) error {
	name := "TurretKilled"
	if e.BuildingType == BuildingInhibitor {
		name = "InhibKilled"
	}
	s.logEvent(domain.Event{
		EventName:  name,
		EventTime:  float64(e.Timestamp()) / 1000,
		KillerName: s.summonerNameFor(e.KillerID),
		Assisters:  s.summonerNamesFor(e.AssistIDs),
	})

	if s.active == nil {
		return nil
	}
	// The event's team id is the side that lost the building; the payout
	// goes to the other one.
	killingTeam := 300 - e.TeamID

	activeParticipant, err := s.participantFor(s.active.participantID)
	if err != nil {
		return err
	}
	if activeParticipant.TeamID != killingTeam {
		return nil
	}

	reward, ok := s.goldTbl.Reward(s.mode, e.BuildingType)
	if !ok {
		s.logger.Warn().Str("building_type", e.BuildingType).Str("mode", s.mode).Msg("no gold entry for building")
		return nil
	}

	s.gold += float64(reward.Global)
	if e.KillerID == s.active.participantID || containsID(e.AssistIDs, s.active.participantID) {
		s.gold += float64(reward.Local)
	}
	return nil
}

func containsID(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// summonerNameFor is best-effort for event-log display; id 0 (a minion or
// neutral kill) resolves to empty.
func (s *Session) summonerNameFor(id int) string {
	if p, ok := s.byID[id]; ok {
		return p.SummonerName
	}
	return ""
}

func (s *Session) summonerNamesFor(ids []int) []string {
	var names []string
	for _, id := range ids {
		if name := s.summonerNameFor(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}
