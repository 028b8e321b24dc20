package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"liveclient-replay/internal/domain"
	"liveclient-replay/internal/game"
	"liveclient-replay/internal/service"
)

// LiveClientServer exposes the replayed session on the same paths the real
// game client serves, so pollers need no changes beyond the host.
type LiveClientServer struct {
	games  *service.GameService
	logger zerolog.Logger
}

func NewLiveClientServer(games *service.GameService, logger zerolog.Logger) *LiveClientServer {
	return &LiveClientServer{games: games, logger: logger}
}

// Register mounts every /liveclientdata endpoint on the mux.
func (s *LiveClientServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /liveclientdata/allgamedata", s.handleAllGameData)
	mux.HandleFunc("GET /liveclientdata/activeplayer", s.handleActivePlayer)
	mux.HandleFunc("GET /liveclientdata/activeplayername", s.handleActivePlayerName)
	mux.HandleFunc("GET /liveclientdata/activeplayerabilities", s.handleAbilities)
	mux.HandleFunc("GET /liveclientdata/activeplayerrunes", s.handleFullRunes)
	mux.HandleFunc("GET /liveclientdata/playerlist", s.handlePlayerList)
	mux.HandleFunc("GET /liveclientdata/playerscores", s.handlePlayerScores)
	mux.HandleFunc("GET /liveclientdata/playersummonerspells", s.handlePlayerSummonerSpells)
	mux.HandleFunc("GET /liveclientdata/playeritems", s.handlePlayerItems)
	mux.HandleFunc("GET /liveclientdata/eventdata", s.handleEvents)
	mux.HandleFunc("GET /liveclientdata/gamestats", s.handleGameStats)
}

func (s *LiveClientServer) handleAllGameData(w http.ResponseWriter, r *http.Request) {
	resp, err := s.games.AllData()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *LiveClientServer) handleActivePlayer(w http.ResponseWriter, r *http.Request) {
	player, payload, err := s.games.ActivePlayer()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	s.writeJSON(w, http.StatusOK, player)
}

func (s *LiveClientServer) handleActivePlayerName(w http.ResponseWriter, r *http.Request) {
	name, err := s.games.ActivePlayerName()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, name)
}

func (s *LiveClientServer) handleAbilities(w http.ResponseWriter, r *http.Request) {
	abilities, payload, err := s.games.Abilities()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	s.writeJSON(w, http.StatusOK, abilities)
}

func (s *LiveClientServer) handleFullRunes(w http.ResponseWriter, r *http.Request) {
	runes, payload, err := s.games.FullRunes()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	s.writeJSON(w, http.StatusOK, runes)
}

func (s *LiveClientServer) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	players, err := s.games.AllPlayers()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, players)
}

func (s *LiveClientServer) handlePlayerScores(w http.ResponseWriter, r *http.Request) {
	scores, payload, err := s.games.PlayerScores(r.URL.Query().Get("summonerName"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	s.writeJSON(w, http.StatusOK, scores)
}

func (s *LiveClientServer) handlePlayerSummonerSpells(w http.ResponseWriter, r *http.Request) {
	spells, payload, err := s.games.PlayerSummonerSpells(r.URL.Query().Get("summonerName"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	s.writeJSON(w, http.StatusOK, spells)
}

func (s *LiveClientServer) handlePlayerItems(w http.ResponseWriter, r *http.Request) {
	items, payload, err := s.games.PlayerItems(r.URL.Query().Get("summonerName"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if payload != nil {
		s.writePayload(w, payload)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *LiveClientServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.games.Events()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, events)
}

func (s *LiveClientServer) handleGameStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.games.Stats()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

// writeError covers the hard tier: no session, or a failed replay. The real
// client answers these with a bare 500.
func (s *LiveClientServer) writeError(w http.ResponseWriter, err error) {
	s.logger.Error().Err(err).Msg("request failed")
	message := "No game running"
	var replayErr *game.ReplayError
	if errors.As(err, &replayErr) {
		message = "Replay failed"
	}
	http.Error(w, message, http.StatusInternalServerError)
}

// writePayload covers the soft tier: the structured error body is the
// response data, served with its own status code.
func (s *LiveClientServer) writePayload(w http.ResponseWriter, payload *domain.ErrorPayload) {
	s.writeJSON(w, payload.HTTPStatus, payload)
}

func (s *LiveClientServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
