package game

import "liveclient-replay/internal/domain"

// Read surface. Callers (the service layer) advance the session to "now"
// before any of these and hold the session lock across advance+read, so the
// projections here are pure. Player-detail reads return a structured error
// payload instead of data when the session runs in spectator mode.

// AllData is the whole-session payload of /liveclientdata/allgamedata.
func (s *Session) AllData() domain.Response {
	resp := domain.Response{
		AllPlayers: s.playersSnapshot(),
		Events:     domain.EventList{Events: append([]domain.Event(nil), s.eventLog...)},
		GameData:   s.game,
	}
	if s.active != nil {
		detail := s.active.detail
		resp.ActivePlayer = &detail
	}
	return resp
}

func (s *Session) ActivePlayer() (domain.ActivePlayer, *domain.ErrorPayload) {
	if s.active == nil {
		payload := spectatorPayload()
		return domain.ActivePlayer{}, &payload
	}
	return s.active.detail, nil
}

// ActivePlayerName is empty in spectator mode; the real API degrades the
// same way.
func (s *Session) ActivePlayerName() string {
	if s.active == nil {
		return ""
	}
	return s.active.detail.SummonerName
}

func (s *Session) Abilities() (domain.AbilitySlots, *domain.ErrorPayload) {
	if s.active == nil {
		payload := spectatorPayload()
		return domain.AbilitySlots{}, &payload
	}
	return s.active.detail.Abilities, nil
}

func (s *Session) FullRunes() (domain.FullRunes, *domain.ErrorPayload) {
	if s.active == nil {
		payload := spectatorPayload()
		return domain.FullRunes{}, &payload
	}
	return s.active.detail.FullRunes, nil
}

// AllPlayers serves normally in spectator mode; the roster is always known.
func (s *Session) AllPlayers() []domain.Player {
	return s.playersSnapshot()
}

func (s *Session) Events() domain.EventList {
	return domain.EventList{Events: append([]domain.Event(nil), s.eventLog...)}
}

func (s *Session) Stats() domain.GameData {
	return s.game
}

func (s *Session) PlayerScores(summonerName string) (domain.Scores, *domain.ErrorPayload) {
	p, payload := s.findPlayer(summonerName)
	if payload != nil {
		return domain.Scores{}, payload
	}
	return p.Scores, nil
}

func (s *Session) PlayerSummonerSpells(summonerName string) (domain.SummonerSpells, *domain.ErrorPayload) {
	p, payload := s.findPlayer(summonerName)
	if payload != nil {
		return domain.SummonerSpells{}, payload
	}
	return p.SummonerSpells, nil
}

func (s *Session) PlayerItems(summonerName string) ([]domain.Item, *domain.ErrorPayload) {
	p, payload := s.findPlayer(summonerName)
	if payload != nil {
		return nil, payload
	}
	return append([]domain.Item(nil), p.Items...), nil
}

// findPlayer distinguishes the two soft failure tiers of summoner-scoped
// queries: a missing name and an unmatched name. Both are bad requests, not
// server faults.
func (s *Session) findPlayer(summonerName string) (*Participant, *domain.ErrorPayload) {
	if summonerName == "" {
		payload := badRequestPayload("A value for 'summonerName' is required.")
		return nil, &payload
	}
	for _, p := range s.roster {
		if p.SummonerName == summonerName {
			return p, nil
		}
	}
	payload := badRequestPayload("Unable to find player")
	return nil, &payload
}

func (s *Session) playersSnapshot() []domain.Player {
	players := make([]domain.Player, 0, len(s.roster))
	for _, p := range s.roster {
		player := p.Player
		player.Items = append([]domain.Item(nil), p.Items...)
		players = append(players, player)
	}
	return players
}
