package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"liveclient-replay/internal/api"
	"liveclient-replay/internal/config"
	"liveclient-replay/internal/constants"
	"liveclient-replay/internal/ddragon"
	"liveclient-replay/internal/domain"
	"liveclient-replay/internal/game"
	"liveclient-replay/internal/repository"
	"liveclient-replay/internal/riot"
)

// GameService owns the single live session. Every read locks, advances the
// replay to "now" and projects under the same lock, which keeps the
// at-most-once event application intact under concurrent polling.
type GameService struct {
	cfg     *config.Config
	ddragon *api.DDragonClient
	riot    *api.RiotClient
	docs    *repository.DocumentRepository
	logger  zerolog.Logger

	mu        sync.Mutex
	session   *game.Session
	sessionID string
}

func NewGameService(cfg *config.Config, ddragonClient *api.DDragonClient, riotClient *api.RiotClient, docs *repository.DocumentRepository, logger zerolog.Logger) *GameService {
	return &GameService{
		cfg:     cfg,
		ddragon: ddragonClient,
		riot:    riotClient,
		docs:    docs,
		logger:  logger,
	}
}

// StartGame resolves catalogs and the match record, then replaces the live
// session wholesale. This is the only suspension point; once it returns, no
// read ever blocks on I/O.
func (s *GameService) StartGame(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.StartGameTimeout)
	defer cancel()

	patch := s.cfg.Patch
	if patch == "" {
		versions, err := s.ddragon.GetVersions(ctx)
		if err != nil {
			return fmt.Errorf("resolving latest patch: %w", err)
		}
		if len(versions) == 0 {
			return fmt.Errorf("ddragon returned no versions")
		}
		patch = versions[0]
		s.logger.Info().Str("patch", patch).Msg("resolved latest patch")
	}

	var (
		champions *ddragon.ChampionCatalog
		items     *ddragon.ItemCatalog
		match     *riot.Match
		timeline  *riot.MatchTimeline
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		champions, err = s.loadChampions(gCtx, patch)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.loadItems(gCtx, patch)
		return err
	})
	g.Go(func() error {
		var err error
		match, timeline, err = s.loadMatch(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	session, err := game.NewSession(match, timeline, champions, items, game.Options{
		ActiveSummoner: s.cfg.ActiveSummoner,
		Speed:          s.cfg.Speed,
	}, time.Now(), s.logger)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("generating session id: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.sessionID = sessionID
	s.mu.Unlock()

	s.logger.Info().Str("session_id", sessionID).Int64("game_id", match.GameID).Msg("game started")
	return nil
}

func (s *GameService) loadChampions(ctx context.Context, patch string) (*ddragon.ChampionCatalog, error) {
	body, ok, err := s.docs.Get(ctx, repository.KindChampions, "championFull", patch, s.cfg.Locale, constants.CatalogCacheTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		body, err = s.ddragon.GetChampionsRaw(ctx, patch, s.cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("fetching champion catalog: %w", err)
		}
		if err := s.docs.Put(ctx, repository.KindChampions, "championFull", patch, s.cfg.Locale, body); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache champion catalog")
		}
	}
	raw, err := api.DecodeChampions(body)
	if err != nil {
		return nil, err
	}
	return ddragon.NewChampionCatalog(raw), nil
}

func (s *GameService) loadItems(ctx context.Context, patch string) (*ddragon.ItemCatalog, error) {
	body, ok, err := s.docs.Get(ctx, repository.KindItems, "item", patch, s.cfg.Locale, constants.CatalogCacheTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		body, err = s.ddragon.GetItemsRaw(ctx, patch, s.cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("fetching item catalog: %w", err)
		}
		if err := s.docs.Put(ctx, repository.KindItems, "item", patch, s.cfg.Locale, body); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache item catalog")
		}
	}
	raw, err := api.DecodeItems(body)
	if err != nil {
		return nil, err
	}
	return ddragon.NewItemCatalog(raw)
}

func (s *GameService) loadMatch(ctx context.Context) (*riot.Match, *riot.MatchTimeline, error) {
	if s.cfg.MatchFile != "" {
		return s.loadMatchFromFiles()
	}
	return s.loadMatchFromAPI(ctx)
}

func (s *GameService) loadMatchFromFiles() (*riot.Match, *riot.MatchTimeline, error) {
	if s.cfg.TimelineFile == "" {
		return nil, nil, fmt.Errorf("TIMELINE_FILE is required alongside MATCH_FILE")
	}

	matchBody, err := os.ReadFile(s.cfg.MatchFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading match file: %w", err)
	}
	timelineBody, err := os.ReadFile(s.cfg.TimelineFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading timeline file: %w", err)
	}

	match, err := api.DecodeMatch(matchBody)
	if err != nil {
		return nil, nil, err
	}
	timeline, err := api.DecodeTimeline(timelineBody)
	if err != nil {
		return nil, nil, err
	}
	return match, timeline, nil
}

func (s *GameService) loadMatchFromAPI(ctx context.Context) (*riot.Match, *riot.MatchTimeline, error) {
	key := strconv.FormatInt(s.cfg.MatchID, 10)

	// Finished matches never change; cache hits skip the Riot API entirely.
	matchBody, ok, err := s.docs.Get(ctx, repository.KindMatch, key, "", "", 0)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		matchBody, err = s.riot.GetMatchRaw(ctx, s.cfg.MatchID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching match %s: %w", key, err)
		}
		if err := s.docs.Put(ctx, repository.KindMatch, key, "", "", matchBody); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache match")
		}
	}

	timelineBody, ok, err := s.docs.Get(ctx, repository.KindTimeline, key, "", "", 0)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		timelineBody, err = s.riot.GetTimelineRaw(ctx, s.cfg.MatchID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetching timeline %s: %w", key, err)
		}
		if err := s.docs.Put(ctx, repository.KindTimeline, key, "", "", timelineBody); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache timeline")
		}
	}

	match, err := api.DecodeMatch(matchBody)
	if err != nil {
		return nil, nil, err
	}
	timeline, err := api.DecodeTimeline(timelineBody)
	if err != nil {
		return nil, nil, err
	}
	return match, timeline, nil
}

// withSession serializes advance+read as one atomic unit: the session is
// driven to the current instant and projected under the same lock.
func (s *GameService) withSession(fn func(*game.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return game.ErrNotRunning
	}
	if err := s.session.Advance(time.Now()); err != nil {
		return err
	}
	fn(s.session)
	return nil
}

func (s *GameService) AllData() (domain.Response, error) {
	var resp domain.Response
	err := s.withSession(func(session *game.Session) {
		resp = session.AllData()
	})
	return resp, err
}

func (s *GameService) ActivePlayer() (domain.ActivePlayer, *domain.ErrorPayload, error) {
	var player domain.ActivePlayer
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		player, payload = session.ActivePlayer()
	})
	return player, payload, err
}

func (s *GameService) ActivePlayerName() (string, error) {
	var name string
	err := s.withSession(func(session *game.Session) {
		name = session.ActivePlayerName()
	})
	return name, err
}

func (s *GameService) Abilities() (domain.AbilitySlots, *domain.ErrorPayload, error) {
	var abilities domain.AbilitySlots
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		abilities, payload = session.Abilities()
	})
	return abilities, payload, err
}

func (s *GameService) FullRunes() (domain.FullRunes, *domain.ErrorPayload, error) {
	var runes domain.FullRunes
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		runes, payload = session.FullRunes()
	})
	return runes, payload, err
}

func (s *GameService) AllPlayers() ([]domain.Player, error) {
	var players []domain.Player
	err := s.withSession(func(session *game.Session) {
		players = session.AllPlayers()
	})
	return players, err
}

func (s *GameService) Events() (domain.EventList, error) {
	var events domain.EventList
	err := s.withSession(func(session *game.Session) {
		events = session.Events()
	})
	return events, err
}

func (s *GameService) Stats() (domain.GameData, error) {
	var stats domain.GameData
	err := s.withSession(func(session *game.Session) {
		stats = session.Stats()
	})
	return stats, err
}

func (s *GameService) PlayerScores(summonerName string) (domain.Scores, *domain.ErrorPayload, error) {
	var scores domain.Scores
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		scores, payload = session.PlayerScores(summonerName)
	})
	return scores, payload, err
}

func (s *GameService) PlayerSummonerSpells(summonerName string) (domain.SummonerSpells, *domain.ErrorPayload, error) {
	var spells domain.SummonerSpells
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		spells, payload = session.PlayerSummonerSpells(summonerName)
	})
	return spells, payload, err
}

func (s *GameService) PlayerItems(summonerName string) ([]domain.Item, *domain.ErrorPayload, error) {
	var items []domain.Item
	var payload *domain.ErrorPayload
	err := s.withSession(func(session *game.Session) {
		items, payload = session.PlayerItems(summonerName)
	})
	return items, payload, err
}
